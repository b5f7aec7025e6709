// service/station_service.go
package service

import (
	"context"
	"time"

	console_errors "github.com/evgrid/console/errors"
	"github.com/evgrid/console/model"
	"github.com/evgrid/console/upstream"
	"github.com/evgrid/console/util"
	helper_util "github.com/evgrid/console/util/helper"
	"github.com/evgrid/console/validation"
	"github.com/evgrid/console/viewmodel"
)

// StationList is the normalized listing answer.
type StationList struct {
	Items []viewmodel.StationRow `json:"items"`
	Total int                    `json:"total"`
}

// IStationService defines the interface for charging station operations
type IStationService interface {
	List(ctx context.Context, token string, f upstream.StationFilter) (*StationList, error)
	Get(ctx context.Context, token, id string) (*viewmodel.StationDetail, error)
	Create(ctx context.Context, token string, form validation.StationForm) (*viewmodel.StationDetail, error)
	Update(ctx context.Context, token, id string, form validation.StationForm) (*viewmodel.StationDetail, error)
	SetActive(ctx context.Context, token, id string, active bool) error
	UpdateSchedule(ctx context.Context, token, id string, days []model.ScheduleDay, replaceAll bool) (*viewmodel.StationDetail, error)
}

type StationService struct {
	up       *upstream.Client
	validate *validation.Validator
	guard    *util.RowGuard
}

var _ IStationService = &StationService{}

func NewStationService(up *upstream.Client, validate *validation.Validator, guard *util.RowGuard) *StationService {
	return &StationService{up: up, validate: validate, guard: guard}
}

func (s *StationService) List(ctx context.Context, token string, f upstream.StationFilter) (*StationList, error) {
	page, err := forToken(s.up, token).Stations().List(ctx, f)
	if err != nil {
		return nil, err
	}
	today := helper_util.TodayISO(time.Now())
	return &StationList{Items: viewmodel.StationRows(page.Items, today), Total: page.Total}, nil
}

func (s *StationService) Get(ctx context.Context, token, id string) (*viewmodel.StationDetail, error) {
	raw, err := forToken(s.up, token).Stations().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, console_errors.ErrStationNotFound
	}
	detail := viewmodel.StationDetailFrom(raw, helper_util.TodayISO(time.Now()))
	return &detail, nil
}

func (s *StationService) Create(ctx context.Context, token string, form validation.StationForm) (*viewmodel.StationDetail, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, err
	}
	raw, err := forToken(s.up, token).Stations().Create(ctx, stationPayload(form))
	if err != nil {
		return nil, err
	}
	detail := viewmodel.StationDetailFrom(raw, helper_util.TodayISO(time.Now()))
	return &detail, nil
}

func (s *StationService) Update(ctx context.Context, token, id string, form validation.StationForm) (*viewmodel.StationDetail, error) {
	if err := s.validate.Struct(form); err != nil {
		return nil, err
	}
	raw, err := forToken(s.up, token).Stations().Update(ctx, id, stationPayload(form))
	if err != nil {
		return nil, err
	}
	detail := viewmodel.StationDetailFrom(raw, helper_util.TodayISO(time.Now()))
	return &detail, nil
}

func (s *StationService) SetActive(ctx context.Context, token, id string, active bool) error {
	key := "station:" + id
	if !s.guard.Begin(key) {
		return console_errors.ErrRowBusy
	}
	defer s.guard.End(key)

	api := forToken(s.up, token).Stations()
	if active {
		return api.Activate(ctx, id)
	}
	return api.Deactivate(ctx, id)
}

// UpdateSchedule clamps every day into [0, totalSlots] before submission.
// The station is fetched first because the clamp bound is its current
// total, not whatever the edit page last saw.
func (s *StationService) UpdateSchedule(ctx context.Context, token, id string, days []model.ScheduleDay, replaceAll bool) (*viewmodel.StationDetail, error) {
	key := "station:" + id
	if !s.guard.Begin(key) {
		return nil, console_errors.ErrRowBusy
	}
	defer s.guard.End(key)

	up := forToken(s.up, token)
	raw, err := up.Stations().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	today := helper_util.TodayISO(time.Now())
	current := viewmodel.StationDetailFrom(raw, today)

	payload := model.SchedulePayload{
		ReplaceAll: replaceAll,
		Days:       validation.NormalizeSchedule(days, current.TotalSlots),
	}
	if len(payload.Days) == 0 {
		return nil, console_errors.ErrInvalidSchedule
	}

	updated, err := up.Stations().UpdateSchedule(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		// some deployments answer 204; refetch for the editor
		return s.getUnlocked(ctx, up, id)
	}
	detail := viewmodel.StationDetailFrom(updated, today)
	return &detail, nil
}

func (s *StationService) getUnlocked(ctx context.Context, up *upstream.Client, id string) (*viewmodel.StationDetail, error) {
	raw, err := up.Stations().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := viewmodel.StationDetailFrom(raw, helper_util.TodayISO(time.Now()))
	return &detail, nil
}

func stationPayload(form validation.StationForm) model.Station {
	return model.Station{
		Name:       form.Name,
		Type:       form.Type,
		TotalSlots: form.TotalSlots,
		Location:   form.Location,
		Lat:        form.Lat,
		Lng:        form.Lng,
	}
}
