// viewmodel/normalize.go

// Package viewmodel reconciles the upstream backend's heterogeneous,
// inconsistently cased payloads into canonical display rows and dashboard
// aggregates. Every tolerated source field name is an ordered list and
// the order is part of the contract: first defined wins.
package viewmodel

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Placeholder renders wherever a value is missing or unparseable. Never
// an empty string, never "Invalid Date".
const Placeholder = "—"

// Record is one raw list item after JSON decoding.
type Record map[string]interface{}

func DecodeRecord(raw json.RawMessage) Record {
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}
	}
	return rec
}

func DecodeRecords(items []json.RawMessage) []Record {
	out := make([]Record, 0, len(items))
	for _, raw := range items {
		out = append(out, DecodeRecord(raw))
	}
	return out
}

// Field returns the first defined, non-nil value among names.
func Field(rec Record, names ...string) (interface{}, bool) {
	for _, n := range names {
		if v, ok := rec[n]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// StringField resolves the first defined name to a string.
func StringField(rec Record, names ...string) string {
	v, ok := Field(rec, names...)
	if !ok {
		return ""
	}
	return cast.ToString(v)
}

// ActiveFlag derives the tri-state active flag. Probe order: isActive,
// IsActive, active, enabled, isEnabled, then a string status equal to
// "active" (case-insensitive). nil means unknown and must render as a
// neutral indicator, not default to either value.
func ActiveFlag(rec Record) *bool {
	for _, n := range []string{"isActive", "IsActive", "active", "enabled", "isEnabled"} {
		v, ok := rec[n]
		if !ok || v == nil {
			continue
		}
		if b, err := cast.ToBoolE(v); err == nil {
			return &b
		}
	}
	if s := StringField(rec, "status", "Status"); s != "" {
		b := strings.EqualFold(s, "active")
		return &b
	}
	return nil
}

// ActiveOrDefault applies a listing-specific default when the flag is
// wholly absent. The owners and stations listings default to true; the
// users listing keeps the unknown state. The divergence is inherited
// behavior, kept per listing on purpose.
func ActiveOrDefault(rec Record, def bool) bool {
	if b := ActiveFlag(rec); b != nil {
		return *b
	}
	return def
}

// TimeField parses the first defined timestamp among names. The zero time
// and false mean missing or unparseable.
func TimeField(rec Record, names ...string) (time.Time, bool) {
	v, ok := Field(rec, names...)
	if !ok {
		return time.Time{}, false
	}
	return parseTime(v)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

// FormatTimeField renders the first defined timestamp for display, or the
// placeholder when nothing parses.
func FormatTimeField(rec Record, names ...string) string {
	t, ok := TimeField(rec, names...)
	if !ok {
		return Placeholder
	}
	return t.Local().Format("2006-01-02 15:04")
}

// FormatDateField renders a date-only field, or the placeholder.
func FormatDateField(rec Record, names ...string) string {
	t, ok := TimeField(rec, names...)
	if !ok {
		return Placeholder
	}
	return t.Local().Format("2006-01-02")
}

// Lookup is a display-name table keyed by a trimmed natural key.
type Lookup map[string]string

// BuildLookup projects a bulk-fetched reference list into a lookup table.
// Keys are trimmed before insertion; empty keys are skipped.
func BuildLookup(items []json.RawMessage, keyNames, valueNames []string) Lookup {
	table := Lookup{}
	for _, raw := range items {
		rec := DecodeRecord(raw)
		key := strings.TrimSpace(StringField(rec, keyNames...))
		if key == "" {
			continue
		}
		value := StringField(rec, valueNames...)
		if value == "" {
			value = Placeholder
		}
		table[key] = value
	}
	return table
}

// Get resolves a key, falling back to the placeholder for missing rows so
// a dangling reference renders as an em-dash instead of blank.
func (l Lookup) Get(key string) string {
	if v, ok := l[strings.TrimSpace(key)]; ok {
		return v
	}
	return Placeholder
}

// TodayAvailability searches a station's schedule for today's entry:
// exact date match first, then a prefix match to tolerate
// timestamp-suffixed date strings, else the optimistic totalSlots default.
func TodayAvailability(station Record, today string) int {
	total := intField(station, "totalSlots", "TotalSlots")

	schedule, ok := Field(station, "schedule", "Schedule")
	if !ok {
		return total
	}
	entries, ok := schedule.([]interface{})
	if !ok {
		return total
	}

	match := func(equal bool) (int, bool) {
		for _, e := range entries {
			day, ok := e.(map[string]interface{})
			if !ok {
				continue
			}
			date := StringField(Record(day), "date", "Date")
			if equal && date != today {
				continue
			}
			if !equal && !strings.HasPrefix(date, today) {
				continue
			}
			if v, ok := Field(Record(day), "availableSlots", "AvailableSlots"); ok {
				if n, err := cast.ToIntE(v); err == nil {
					return n, true
				}
			}
		}
		return 0, false
	}

	if n, ok := match(true); ok {
		return n
	}
	if n, ok := match(false); ok {
		return n
	}
	return total
}

func intField(rec Record, names ...string) int {
	v, ok := Field(rec, names...)
	if !ok {
		return 0
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0
	}
	return n
}

func floatField(rec Record, names ...string) float64 {
	v, ok := Field(rec, names...)
	if !ok {
		return 0
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return f
}
