// viewmodel/rows.go
package viewmodel

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
)

// Ordered source-field lists per resource. First defined wins.
var (
	bookingIDFields      = []string{"_id", "id", "Id"}
	bookingNICFields     = []string{"nic", "Nic", "ownerNic", "OwnerNic"}
	bookingStationFields = []string{"stationId", "StationId"}
	bookingStartFields   = []string{"startTimeUtc", "startTime", "StartTimeUtc", "StartTime"}
	bookingEndFields     = []string{"endTimeUtc", "endTime", "EndTimeUtc", "EndTime"}
	bookingStatusFields  = []string{"status", "Status"}
	createdFields        = []string{"createdAtUtc", "createdAt", "createdOn", "CreatedAtUtc", "CreatedAt"}

	ownerKeyFields   = []string{"nic", "Nic"}
	ownerNameFields  = []string{"fullName", "FullName", "name"}
	stationKeyFields = []string{"id", "_id", "Id"}
	stationNameField = []string{"name", "Name"}
)

// OwnerRow is the canonical owners-listing row. An absent active flag
// defaults to true in this listing.
type OwnerRow struct {
	NIC      string `json:"nic"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Active   bool   `json:"active"`
}

func OwnerRows(items []json.RawMessage) []OwnerRow {
	rows := make([]OwnerRow, 0, len(items))
	for _, rec := range DecodeRecords(items) {
		rows = append(rows, OwnerRow{
			NIC:      StringField(rec, ownerKeyFields...),
			FullName: StringField(rec, ownerNameFields...),
			Email:    StringField(rec, "email", "Email"),
			Phone:    StringField(rec, "phone", "Phone"),
			Active:   ActiveOrDefault(rec, true),
		})
	}
	return rows
}

// StationRow is the canonical stations-listing row, with today's
// availability already resolved. Absent active flag defaults to true here
// as well.
type StationRow struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Location   string  `json:"location"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	TotalSlots int     `json:"totalSlots"`
	TodaySlots int     `json:"todaySlots"`
	Active     bool    `json:"active"`
}

func StationRows(items []json.RawMessage, today string) []StationRow {
	rows := make([]StationRow, 0, len(items))
	for _, rec := range DecodeRecords(items) {
		rows = append(rows, StationRow{
			ID:         StringField(rec, stationKeyFields...),
			Name:       StringField(rec, stationNameField...),
			Type:       StringField(rec, "type", "Type"),
			Location:   StringField(rec, "location", "Location"),
			Lat:        floatField(rec, "lat", "Lat"),
			Lng:        floatField(rec, "lng", "Lng"),
			TotalSlots: intField(rec, "totalSlots", "TotalSlots"),
			TodaySlots: TodayAvailability(rec, today),
			Active:     ActiveOrDefault(rec, true),
		})
	}
	return rows
}

// BookingRow is the canonical bookings-listing row, cross-referenced
// against bulk owner and station lists. Dangling references render the
// placeholder, never an empty cell.
type BookingRow struct {
	ID          string `json:"id"`
	OwnerNIC    string `json:"ownerNic"`
	OwnerName   string `json:"ownerName"`
	StationID   string `json:"stationId"`
	StationName string `json:"stationName"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Status      string `json:"status"`
}

func BookingRows(bookings, owners, stations []json.RawMessage) []BookingRow {
	ownerNames := BuildLookup(owners, ownerKeyFields, ownerNameFields)
	stationNames := BuildLookup(stations, stationKeyFields, stationNameField)

	rows := make([]BookingRow, 0, len(bookings))
	for _, rec := range DecodeRecords(bookings) {
		nic := strings.TrimSpace(StringField(rec, bookingNICFields...))
		stationID := strings.TrimSpace(StringField(rec, bookingStationFields...))
		row := BookingRow{
			ID:          StringField(rec, bookingIDFields...),
			OwnerNIC:    nic,
			OwnerName:   ownerNames.Get(nic),
			StationID:   stationID,
			StationName: stationNames.Get(stationID),
			Start:       FormatTimeField(rec, bookingStartFields...),
			End:         FormatTimeField(rec, bookingEndFields...),
			Status:      StringField(rec, bookingStatusFields...),
		}
		if row.OwnerNIC == "" {
			row.OwnerNIC = Placeholder
		}
		rows = append(rows, row)
	}
	return rows
}

// StaffRow is the canonical web-users row. Active stays nil when the
// backend sent nothing decidable; the listing renders that as a neutral
// chip rather than assuming either state.
type StaffRow struct {
	ID         string   `json:"id"`
	FullName   string   `json:"fullName"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	Active     *bool    `json:"active"`
	Created    string   `json:"created"`
	StationIDs []string `json:"stationIds,omitempty"`
}

func StaffRows(items []json.RawMessage) []StaffRow {
	rows := make([]StaffRow, 0, len(items))
	for _, rec := range DecodeRecords(items) {
		rows = append(rows, StaffRow{
			ID:         staffID(rec),
			FullName:   StringField(rec, "fullName", "FullName", "name"),
			Email:      StringField(rec, "email", "Email"),
			Role:       staffRole(rec),
			Active:     ActiveFlag(rec),
			Created:    FormatDateField(rec, createdFields...),
			StationIDs: stringSlice(rec, "stationIds", "StationIds"),
		})
	}
	return rows
}

// StaffRowFrom normalizes a single staff record the same way the listing
// does.
func StaffRowFrom(raw json.RawMessage) StaffRow {
	rows := StaffRows([]json.RawMessage{raw})
	if len(rows) == 0 {
		return StaffRow{}
	}
	return rows[0]
}

func staffID(rec Record) string {
	return StringField(rec, "id", "_id", "userId", "username", "email")
}

func staffRole(rec Record) string {
	if s := StringField(rec, "role", "Role"); s != "" {
		return s
	}
	if roles := stringSlice(rec, "roles", "Roles"); len(roles) > 0 {
		return roles[0]
	}
	return Placeholder
}

func stringSlice(rec Record, names ...string) []string {
	v, ok := Field(rec, names...)
	if !ok {
		return nil
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		if s := cast.ToString(e); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ScannedBooking unwraps the scan endpoint's answer, which is either
// {valid, booking:{...}} or the booking itself.
func ScannedBooking(raw json.RawMessage) Record {
	rec := DecodeRecord(raw)
	if inner, ok := rec["booking"].(map[string]interface{}); ok {
		return Record(inner)
	}
	return rec
}
