// errors/staff_errors.go
package errors

import "errors"

var (
	ErrStaffNotFound     = errors.New("staff user not found")
	ErrInvalidStaffData  = errors.New("invalid staff user data")
	ErrNoStationAssigned = errors.New("no station assigned")
)
