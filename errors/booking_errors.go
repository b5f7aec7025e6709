// errors/booking_errors.go
package errors

import "errors"

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidBookingData = errors.New("invalid booking data")
	ErrRowBusy            = errors.New("another change for this row is still in progress")
)
