// errors/owner_errors.go
package errors

import "errors"

var (
	ErrOwnerNotFound    = errors.New("owner not found")
	ErrInvalidOwnerData = errors.New("invalid owner data")
)
