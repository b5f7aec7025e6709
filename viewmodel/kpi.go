// viewmodel/kpi.go
package viewmodel

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/evgrid/console/model"
)

// StatusSplit is an active/deactivated breakdown for one KPI card.
type StatusSplit struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// BookingSplit is the trailing-window booking breakdown.
type BookingSplit struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
}

// StaffSplit is the web-users breakdown by role.
type StaffSplit struct {
	Total      int `json:"total"`
	Backoffice int `json:"backoffice"`
	Operators  int `json:"operators"`
}

// BackofficeSummary is the four-card dashboard aggregate, computed from
// bulk list responses rather than a dedicated stats endpoint.
type BackofficeSummary struct {
	Owners    StatusSplit  `json:"owners"`
	Stations  StatusSplit  `json:"stations"`
	Bookings  BookingSplit `json:"bookings"` // trailing 7 days
	Staff     StaffSplit   `json:"staff"`
	Generated time.Time    `json:"generated"`
}

func Summarize(owners, stations, bookings, staff []json.RawMessage, now time.Time) BackofficeSummary {
	s := BackofficeSummary{Generated: now}

	s.Owners = splitByActive(owners)
	s.Stations = splitByActive(stations)
	s.Bookings = BookingWindowCounts(bookings, now)

	for _, rec := range DecodeRecords(staff) {
		s.Staff.Total++
		switch strings.ToLower(staffRole(rec)) {
		case "backoffice":
			s.Staff.Backoffice++
		case "operator":
			s.Staff.Operators++
		}
	}

	return s
}

func splitByActive(items []json.RawMessage) StatusSplit {
	var out StatusSplit
	for _, rec := range DecodeRecords(items) {
		out.Total++
		if ActiveOrDefault(rec, true) {
			out.Active++
		} else {
			out.Inactive++
		}
	}
	return out
}

// BookingWindowCounts filters bookings to a trailing 7-calendar-day window
// measured against the first defined created-or-start timestamp, then
// buckets by case-insensitive substring ("pend", "approve") instead of
// exact enum match, so backend variants like "PendingApproval" still
// count.
func BookingWindowCounts(bookings []json.RawMessage, now time.Time) BookingSplit {
	cutoff := now.AddDate(0, 0, -7)
	windowFields := append(append([]string{}, createdFields...), bookingStartFields...)
	var out BookingSplit

	for _, rec := range DecodeRecords(bookings) {
		t, ok := TimeField(rec, windowFields...)
		if !ok {
			continue
		}
		if t.Before(cutoff) || t.After(now) {
			continue
		}
		out.Total++
		status := strings.ToLower(StringField(rec, bookingStatusFields...))
		switch {
		case strings.Contains(status, "pend"):
			out.Pending++
		case strings.Contains(status, "approve"):
			out.Approved++
		}
	}
	return out
}

// OperatorSummary is the assigned-station dashboard: today's capacity plus
// booking counts for that station only. Status matching here is exact
// lowercase, the way the operator pages always did it.
type OperatorSummary struct {
	StationID   string `json:"stationId"`
	StationName string `json:"stationName"`
	TotalSlots  int    `json:"totalSlots"`
	TodaySlots  int    `json:"todaySlots"`
	Pending     int    `json:"pending"`
	Approved    int    `json:"approved"`
	Completed   int    `json:"completed"`
}

func SummarizeOperator(station Record, bookings []json.RawMessage, today string) OperatorSummary {
	s := OperatorSummary{
		StationID:   StringField(station, stationKeyFields...),
		StationName: StringField(station, stationNameField...),
		TotalSlots:  intField(station, "totalSlots", "TotalSlots"),
		TodaySlots:  TodayAvailability(station, today),
	}
	if s.StationName == "" {
		s.StationName = Placeholder
	}

	for _, rec := range DecodeRecords(bookings) {
		if strings.TrimSpace(StringField(rec, bookingStationFields...)) != s.StationID {
			continue
		}
		switch strings.ToLower(StringField(rec, bookingStatusFields...)) {
		case strings.ToLower(model.BookingPending):
			s.Pending++
		case strings.ToLower(model.BookingApproved):
			s.Approved++
		case strings.ToLower(model.BookingCompleted):
			s.Completed++
		}
	}
	return s
}
