package shared

import "github.com/google/uuid"

// Permission names checked by application services
const (
	PermissionViewCustomerHistory = "customer.view_history"
)

// Actor is the authenticated identity performing an operation
type Actor struct {
	UserID      uuid.UUID
	Username    string
	IsStaff     bool
	Permissions []string
}

// IsAuthenticated returns true if the actor carries a user identity
func (a Actor) IsAuthenticated() bool {
	return a.UserID != uuid.Nil
}

// HasPermission checks a named permission. Staff implicitly hold every permission.
func (a Actor) HasPermission(permission string) bool {
	if a.IsStaff {
		return true
	}
	for _, p := range a.Permissions {
		if p == permission || p == "*" {
			return true
		}
	}
	return false
}
