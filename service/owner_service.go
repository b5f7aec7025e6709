// service/owner_service.go
package service

import (
	"context"
	"encoding/json"

	console_errors "github.com/evgrid/console/errors"
	"github.com/evgrid/console/model"
	"github.com/evgrid/console/upstream"
	"github.com/evgrid/console/util"
	"github.com/evgrid/console/validation"
	"github.com/evgrid/console/viewmodel"
)

// OwnerList is the normalized listing answer.
type OwnerList struct {
	Items []viewmodel.OwnerRow `json:"items"`
	Total int                  `json:"total"`
}

// IOwnerService defines the interface for EV owner operations
type IOwnerService interface {
	List(ctx context.Context, token string, f upstream.OwnerFilter) (*OwnerList, error)
	Get(ctx context.Context, token, nic string) (*viewmodel.OwnerRow, error)
	Create(ctx context.Context, token string, form validation.OwnerCreateForm) (*viewmodel.OwnerRow, error)
	Update(ctx context.Context, token, nic string, form validation.OwnerEditForm) (*viewmodel.OwnerRow, error)
	SetStatus(ctx context.Context, token, nic string, isActive bool, reason string) error
}

type OwnerService struct {
	up       *upstream.Client
	validate *validation.Validator
	guard    *util.RowGuard
}

var _ IOwnerService = &OwnerService{}

func NewOwnerService(up *upstream.Client, validate *validation.Validator, guard *util.RowGuard) *OwnerService {
	return &OwnerService{up: up, validate: validate, guard: guard}
}

func (s *OwnerService) List(ctx context.Context, token string, f upstream.OwnerFilter) (*OwnerList, error) {
	page, err := forToken(s.up, token).Owners().List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &OwnerList{Items: viewmodel.OwnerRows(page.Items), Total: page.Total}, nil
}

func (s *OwnerService) Get(ctx context.Context, token, nic string) (*viewmodel.OwnerRow, error) {
	raw, err := forToken(s.up, token).Owners().Get(ctx, nic)
	if err != nil {
		return nil, err
	}
	return ownerRow(raw)
}

func (s *OwnerService) Create(ctx context.Context, token string, form validation.OwnerCreateForm) (*viewmodel.OwnerRow, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, err
	}
	raw, err := forToken(s.up, token).Owners().Create(ctx, model.OwnerCreate{
		NIC:      form.NIC,
		FullName: form.FullName,
		Email:    form.Email,
		Phone:    form.Phone,
		Password: form.Password,
	})
	if err != nil {
		return nil, err
	}
	return ownerRow(raw)
}

func (s *OwnerService) Update(ctx context.Context, token, nic string, form validation.OwnerEditForm) (*viewmodel.OwnerRow, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, err
	}
	raw, err := forToken(s.up, token).Owners().Update(ctx, nic, model.OwnerUpdate{
		FullName: form.FullName,
		Email:    form.Email,
		Phone:    form.Phone,
	})
	if err != nil {
		return nil, err
	}
	return ownerRow(raw)
}

// SetStatus serializes per owner row: a second status flip for the same
// NIC is refused while one is still in flight.
func (s *OwnerService) SetStatus(ctx context.Context, token, nic string, isActive bool, reason string) error {
	key := "owner:" + nic
	if !s.guard.Begin(key) {
		return console_errors.ErrRowBusy
	}
	defer s.guard.End(key)

	return forToken(s.up, token).Owners().SetStatus(ctx, nic, isActive, reason)
}

func ownerRow(raw json.RawMessage) (*viewmodel.OwnerRow, error) {
	if len(raw) == 0 {
		return nil, console_errors.ErrOwnerNotFound
	}
	rows := viewmodel.OwnerRows([]json.RawMessage{raw})
	if len(rows) == 0 {
		return nil, console_errors.ErrOwnerNotFound
	}
	return &rows[0], nil
}
