// service/booking_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/errgroup"

	console_errors "github.com/evgrid/console/errors"
	"github.com/evgrid/console/upstream"
	"github.com/evgrid/console/util"
	"github.com/evgrid/console/validation"
	"github.com/evgrid/console/viewmodel"
)

// BookingList is the normalized, cross-referenced listing answer.
type BookingList struct {
	Items []viewmodel.BookingRow `json:"items"`
	Total int                    `json:"total"`
}

// IBookingService defines the interface for booking operations. No status
// transition happens locally; the console only requests them upstream.
type IBookingService interface {
	List(ctx context.Context, token string, f upstream.BookingFilter) (*BookingList, error)
	Get(ctx context.Context, token, id string) (*viewmodel.BookingDetail, error)
	Create(ctx context.Context, token string, form validation.BookingForm) (*viewmodel.BookingDetail, error)
	Update(ctx context.Context, token, id string, form validation.BookingForm) (*viewmodel.BookingDetail, error)
	Cancel(ctx context.Context, token, id string) error
	Approve(ctx context.Context, token, id string) (*viewmodel.BookingDetail, error)
	Finalize(ctx context.Context, token, id string) (*viewmodel.BookingDetail, error)
	Scan(ctx context.Context, token, code string) (*viewmodel.BookingDetail, error)
}

type BookingService struct {
	up       *upstream.Client
	validate *validation.Validator
	guard    *util.RowGuard
	now      func() time.Time
}

var _ IBookingService = &BookingService{}

func NewBookingService(up *upstream.Client, validate *validation.Validator, guard *util.RowGuard) *BookingService {
	return &BookingService{up: up, validate: validate, guard: guard, now: time.Now}
}

// List joins the booking list with bulk owner and station lists so every
// row carries display names. The three fetches run concurrently and fail
// together: partial joins are never shown.
func (s *BookingService) List(ctx context.Context, token string, f upstream.BookingFilter) (*BookingList, error) {
	up := forToken(s.up, token)

	var bookings, owners, stations upstream.Page
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		bookings, err = up.Bookings().List(gctx, f)
		return
	})
	g.Go(func() (err error) {
		owners, err = up.Owners().List(gctx, upstream.OwnerFilter{PageSize: bulkPageSize})
		return
	})
	g.Go(func() (err error) {
		stations, err = up.Stations().List(gctx, upstream.StationFilter{PageSize: bulkPageSize})
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rows := viewmodel.BookingRows(bookings.Items, owners.Items, stations.Items)
	return &BookingList{Items: rows, Total: bookings.Total}, nil
}

func (s *BookingService) Get(ctx context.Context, token, id string) (*viewmodel.BookingDetail, error) {
	raw, err := forToken(s.up, token).Bookings().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, console_errors.ErrBookingNotFound
	}
	detail := viewmodel.BookingDetailFrom(raw)
	return &detail, nil
}

func (s *BookingService) Create(ctx context.Context, token string, form validation.BookingForm) (*viewmodel.BookingDetail, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, err
	}
	if err := validation.CheckBookingTimes(s.now(), form.StartTime, form.EndTime); err != nil {
		return nil, err
	}

	raw, err := forToken(s.up, token).Bookings().Create(ctx, form.Payload())
	if err != nil {
		return nil, err
	}
	detail := viewmodel.BookingDetailFrom(raw)
	return &detail, nil
}

// Update checks the edit cutoff against the booking's original start, not
// the edited value, so it has to read the current record first.
func (s *BookingService) Update(ctx context.Context, token, id string, form validation.BookingForm) (*viewmodel.BookingDetail, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, err
	}

	key := "booking:" + id
	if !s.guard.Begin(key) {
		return nil, console_errors.ErrRowBusy
	}
	defer s.guard.End(key)

	up := forToken(s.up, token)
	currentRaw, err := up.Bookings().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	current := viewmodel.BookingDetailFrom(currentRaw)

	if err := validation.CheckBookingEdit(s.now(), form.StartTime, form.EndTime, current.StartTime); err != nil {
		return nil, err
	}

	raw, err := up.Bookings().Update(ctx, id, form.Payload())
	if err != nil {
		return nil, err
	}
	detail := viewmodel.BookingDetailFrom(raw)
	return &detail, nil
}

func (s *BookingService) Cancel(ctx context.Context, token, id string) error {
	key := "booking:" + id
	if !s.guard.Begin(key) {
		return console_errors.ErrRowBusy
	}
	defer s.guard.End(key)

	return forToken(s.up, token).Bookings().Cancel(ctx, id)
}

func (s *BookingService) Approve(ctx context.Context, token, id string) (*viewmodel.BookingDetail, error) {
	return s.transition(ctx, token, id, forToken(s.up, token).Bookings().Approve)
}

func (s *BookingService) Finalize(ctx context.Context, token, id string) (*viewmodel.BookingDetail, error) {
	return s.transition(ctx, token, id, forToken(s.up, token).Bookings().Finalize)
}

func (s *BookingService) transition(ctx context.Context, token, id string, op func(context.Context, string) (json.RawMessage, error)) (*viewmodel.BookingDetail, error) {
	key := "booking:" + id
	if !s.guard.Begin(key) {
		return nil, console_errors.ErrRowBusy
	}
	defer s.guard.End(key)

	raw, err := op(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := viewmodel.BookingDetailFrom(raw)
	return &detail, nil
}

func (s *BookingService) Scan(ctx context.Context, token, code string) (*viewmodel.BookingDetail, error) {
	raw, err := forToken(s.up, token).Bookings().Scan(ctx, code)
	if err != nil {
		return nil, err
	}
	rec := viewmodel.ScannedBooking(raw)
	detail := viewmodel.BookingDetailFromRecord(rec)
	return &detail, nil
}
