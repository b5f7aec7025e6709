// viewmodel/detail.go
package viewmodel

import (
	"encoding/json"
	"time"

	"github.com/spf13/cast"

	"github.com/evgrid/console/model"
)

// StationDetail is the single-station view: the listing row plus the raw
// day-by-day schedule for the schedule editor.
type StationDetail struct {
	StationRow
	Schedule []model.ScheduleDay `json:"schedule"`
}

func StationDetailFrom(raw json.RawMessage, today string) StationDetail {
	rec := DecodeRecord(raw)
	rows := StationRows([]json.RawMessage{raw}, today)
	detail := StationDetail{}
	if len(rows) > 0 {
		detail.StationRow = rows[0]
	}
	detail.Schedule = scheduleDays(rec)
	return detail
}

func scheduleDays(rec Record) []model.ScheduleDay {
	v, ok := Field(rec, "schedule", "Schedule")
	if !ok {
		return nil
	}
	entries, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]model.ScheduleDay, 0, len(entries))
	for _, e := range entries {
		day, ok := e.(map[string]interface{})
		if !ok {
			continue
		}
		date := StringField(Record(day), "date", "Date")
		if date == "" {
			continue
		}
		slots := 0
		if sv, ok := Field(Record(day), "availableSlots", "AvailableSlots"); ok {
			if n, err := cast.ToIntE(sv); err == nil {
				slots = n
			}
		}
		out = append(out, model.ScheduleDay{Date: date, AvailableSlots: slots})
	}
	return out
}

// BookingDetail is the single-booking view backing the edit form, with
// parsed times so the temporal rules can run against the original start.
type BookingDetail struct {
	ID        string    `json:"id"`
	OwnerNIC  string    `json:"ownerNic"`
	StationID string    `json:"stationId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
}

func BookingDetailFrom(raw json.RawMessage) BookingDetail {
	return BookingDetailFromRecord(DecodeRecord(raw))
}

func BookingDetailFromRecord(rec Record) BookingDetail {
	start, _ := TimeField(rec, bookingStartFields...)
	end, _ := TimeField(rec, bookingEndFields...)
	return BookingDetail{
		ID:        StringField(rec, bookingIDFields...),
		OwnerNIC:  StringField(rec, bookingNICFields...),
		StationID: StringField(rec, bookingStationFields...),
		StartTime: start,
		EndTime:   end,
		Status:    StringField(rec, bookingStatusFields...),
	}
}
