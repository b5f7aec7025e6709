package helper_util

import (
	"time"
)

// Helper function to parse time
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	return t, err
}

// TodayISO is the calendar date the schedule lookups key on.
func TodayISO(now time.Time) string {
	return now.Format("2006-01-02")
}
