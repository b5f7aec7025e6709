// service/dashboard_service.go
package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	console_errors "github.com/evgrid/console/errors"
	"github.com/evgrid/console/model"
	"github.com/evgrid/console/upstream"
	helper_util "github.com/evgrid/console/util/helper"
	"github.com/evgrid/console/viewmodel"
)

// IDashboardService computes the derived-metric dashboards from bulk list
// responses. There is no stats endpoint upstream; the aggregates are a
// console concern.
type IDashboardService interface {
	BackofficeSummary(ctx context.Context, token string) (*viewmodel.BackofficeSummary, error)
	OperatorSummary(ctx context.Context, token string) (*viewmodel.OperatorSummary, error)
	RoleTarget(role string) string
}

type DashboardService struct {
	up *upstream.Client
}

var _ IDashboardService = &DashboardService{}

func NewDashboardService(up *upstream.Client) *DashboardService {
	return &DashboardService{up: up}
}

// BackofficeSummary issues the four list fetches concurrently and joins
// them all-or-nothing: one rejection aborts the whole load so the cards
// never show partial data.
func (s *DashboardService) BackofficeSummary(ctx context.Context, token string) (*viewmodel.BackofficeSummary, error) {
	up := forToken(s.up, token)

	var owners, stations, bookings, staff upstream.Page
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		owners, err = up.Owners().List(gctx, upstream.OwnerFilter{PageSize: bulkPageSize})
		return
	})
	g.Go(func() (err error) {
		stations, err = up.Stations().List(gctx, upstream.StationFilter{PageSize: bulkPageSize})
		return
	})
	g.Go(func() (err error) {
		bookings, err = up.Bookings().List(gctx, upstream.BookingFilter{PageSize: bulkPageSize})
		return
	})
	g.Go(func() (err error) {
		staff, err = up.Staff().List(gctx, upstream.StaffFilter{PageSize: bulkPageSize})
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := viewmodel.Summarize(owners.Items, stations.Items, bookings.Items, staff.Items, time.Now())
	return &summary, nil
}

// OperatorSummary resolves the operator's assigned station from the
// profile, then aggregates that station's bookings and today's capacity.
func (s *DashboardService) OperatorSummary(ctx context.Context, token string) (*viewmodel.OperatorSummary, error) {
	up := forToken(s.up, token)

	me, err := up.Profile().GetMyProfile(ctx)
	if err != nil {
		return nil, err
	}
	ids := viewmodel.ProfileStationIDs(me)
	if len(ids) == 0 {
		return nil, console_errors.ErrNoStationAssigned
	}
	stationID := ids[0]

	stationRaw, err := up.Stations().Get(ctx, stationID)
	if err != nil {
		return nil, err
	}
	bookings, err := up.Bookings().List(ctx, upstream.BookingFilter{Status: "All", PageSize: 200})
	if err != nil {
		return nil, err
	}

	today := helper_util.TodayISO(time.Now())
	summary := viewmodel.SummarizeOperator(viewmodel.DecodeRecord(stationRaw), bookings.Items, today)
	return &summary, nil
}

// RoleTarget is the post-login forwarder: where a resolved role lands.
func (s *DashboardService) RoleTarget(role string) string {
	switch model.Role(role) {
	case model.RoleBackoffice:
		return "/backoffice"
	case model.RoleOperator:
		return "/operator"
	}
	return "/unauthorized"
}
