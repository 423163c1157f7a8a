package domain

import "github.com/google/uuid"

// Actor is the already-authenticated caller identity attached to every
// mutating operation. It is assembled by the auth middleware from verified
// token claims; services never parse roles themselves.
type Actor struct {
	UserID     uuid.UUID
	EmployeeID string
	Name       string
	Role       UserRole
}

// IsAdmin reports whether the actor carries an authenticated admin role.
// Budget ownership checks bypass the creator conflict for admins.
func (a Actor) IsAdmin() bool { return a.Role == UserRoleAdmin }

// CanReview reports whether the actor may decide expense requests and
// mutate budgets.
func (a Actor) CanReview() bool {
	return a.Role == UserRoleManager || a.Role == UserRoleAdmin
}
