package model

// Role is the staff role carried in the bearer token.
type Role string

const (
	RoleBackoffice Role = "Backoffice"
	RoleOperator   Role = "Operator"
)

// Known reports whether the role is one the console can route.
func (r Role) Known() bool {
	return r == RoleBackoffice || r == RoleOperator
}
