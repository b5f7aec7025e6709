// test/mock/services.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/evgrid/console/service"
	"github.com/evgrid/console/upstream"
	"github.com/evgrid/console/validation"
	"github.com/evgrid/console/viewmodel"
)

// MockBookingService is a mock implementation of service.IBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) List(ctx context.Context, token string, f upstream.BookingFilter) (*service.BookingList, error) {
	args := m.Called(ctx, token, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BookingList), args.Error(1)
}

func (m *MockBookingService) Get(ctx context.Context, token, id string) (*viewmodel.BookingDetail, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*viewmodel.BookingDetail), args.Error(1)
}

func (m *MockBookingService) Create(ctx context.Context, token string, form validation.BookingForm) (*viewmodel.BookingDetail, error) {
	args := m.Called(ctx, token, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*viewmodel.BookingDetail), args.Error(1)
}

func (m *MockBookingService) Update(ctx context.Context, token, id string, form validation.BookingForm) (*viewmodel.BookingDetail, error) {
	args := m.Called(ctx, token, id, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*viewmodel.BookingDetail), args.Error(1)
}

func (m *MockBookingService) Cancel(ctx context.Context, token, id string) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func (m *MockBookingService) Approve(ctx context.Context, token, id string) (*viewmodel.BookingDetail, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*viewmodel.BookingDetail), args.Error(1)
}

func (m *MockBookingService) Finalize(ctx context.Context, token, id string) (*viewmodel.BookingDetail, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*viewmodel.BookingDetail), args.Error(1)
}

func (m *MockBookingService) Scan(ctx context.Context, token, code string) (*viewmodel.BookingDetail, error) {
	args := m.Called(ctx, token, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*viewmodel.BookingDetail), args.Error(1)
}

// MockOwnerService is a mock implementation of service.IOwnerService
type MockOwnerService struct {
	mock.Mock
}

func (m *MockOwnerService) List(ctx context.Context, token string, f upstream.OwnerFilter) (*service.OwnerList, error) {
	args := m.Called(ctx, token, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OwnerList), args.Error(1)
}

func (m *MockOwnerService) Get(ctx context.Context, token, nic string) (*viewmodel.OwnerRow, error) {
	args := m.Called(ctx, token, nic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*viewmodel.OwnerRow), args.Error(1)
}

func (m *MockOwnerService) Create(ctx context.Context, token string, form validation.OwnerCreateForm) (*viewmodel.OwnerRow, error) {
	args := m.Called(ctx, token, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*viewmodel.OwnerRow), args.Error(1)
}

func (m *MockOwnerService) Update(ctx context.Context, token, nic string, form validation.OwnerEditForm) (*viewmodel.OwnerRow, error) {
	args := m.Called(ctx, token, nic, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*viewmodel.OwnerRow), args.Error(1)
}

func (m *MockOwnerService) SetStatus(ctx context.Context, token, nic string, isActive bool, reason string) error {
	args := m.Called(ctx, token, nic, isActive, reason)
	return args.Error(0)
}
