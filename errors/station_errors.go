// errors/station_errors.go
package errors

import "errors"

var (
	ErrStationNotFound    = errors.New("station not found")
	ErrInvalidStationData = errors.New("invalid station data")
	ErrInvalidSchedule    = errors.New("invalid schedule data")
)
