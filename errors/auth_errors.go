// errors/auth_errors.go
package errors

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleUnresolved     = errors.New("role not resolved")
)
