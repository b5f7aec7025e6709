// validation/booking_rules.go
package validation

import (
	"errors"
	"time"
)

// Advisory booking rules, consolidated from the pages that used to carry
// near-duplicate copies. They block a request locally with a message; the
// server strictly enforces the same rules and may still answer 409 for
// capacity or overlap reasons the console cannot see.
var (
	ErrEndBeforeStart = errors.New("End must be after start.")
	ErrTooShort       = errors.New("Reservation must be at least 60 minutes.")
	ErrBeyondWindow   = errors.New("Reservation must be within 7 days from now.")
	ErrPastEditCutoff = errors.New("Changes allowed only until 12 hours before the original start time.")
)

const (
	minDuration   = 60 * time.Minute
	bookingWindow = 7 // days
	editCutoff    = 12 * time.Hour
)

// CheckBookingTimes validates a new reservation's time range against now.
func CheckBookingTimes(now, start, end time.Time) error {
	if !end.After(start) {
		return ErrEndBeforeStart
	}
	if end.Sub(start) < minDuration {
		return ErrTooShort
	}
	if start.After(now.AddDate(0, 0, bookingWindow)) {
		return ErrBeyondWindow
	}
	return nil
}

// CheckBookingEdit additionally requires now to be more than 12 hours
// before the booking's original start, not the edited one.
func CheckBookingEdit(now, start, end, originalStart time.Time) error {
	if err := CheckBookingTimes(now, start, end); err != nil {
		return err
	}
	if now.After(originalStart.Add(-editCutoff)) {
		return ErrPastEditCutoff
	}
	return nil
}

// IsRuleError reports whether err is one of the advisory booking rules,
// so callers can answer 422 instead of relaying an upstream failure.
func IsRuleError(err error) bool {
	return errors.Is(err, ErrEndBeforeStart) ||
		errors.Is(err, ErrTooShort) ||
		errors.Is(err, ErrBeyondWindow) ||
		errors.Is(err, ErrPastEditCutoff)
}
