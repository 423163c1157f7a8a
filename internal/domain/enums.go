package domain

import "strings"

// ActingLabel is the normalized label recorded on budget writes.
// It is derived from the caller's claimed role at the boundary and is never
// free text past that point.
type ActingLabel string

const (
	ActingLabelAdmin   ActingLabel = "Admin"
	ActingLabelManager ActingLabel = "Manager"
)

func (l ActingLabel) String() string { return string(l) }

func (l ActingLabel) IsValid() bool {
	switch l {
	case ActingLabelAdmin, ActingLabelManager:
		return true
	}
	return false
}

// ParseActingLabel validates a caller-supplied role string against the
// {Admin, Manager} allow-list, case-insensitively. Anything else yields
// ErrRoleRequired.
func ParseActingLabel(s string) (ActingLabel, error) {
	switch {
	case strings.EqualFold(s, string(ActingLabelAdmin)):
		return ActingLabelAdmin, nil
	case strings.EqualFold(s, string(ActingLabelManager)):
		return ActingLabelManager, nil
	}
	return "", ErrRoleRequired
}

// ExpenseStatus is the lifecycle state of an expense request.
type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "Pending"
	ExpenseStatusApproved ExpenseStatus = "Approved"
	ExpenseStatusRejected ExpenseStatus = "Rejected"
)

func (s ExpenseStatus) String() string { return string(s) }

func (s ExpenseStatus) IsValid() bool {
	switch s {
	case ExpenseStatusPending, ExpenseStatusApproved, ExpenseStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status admits no further transition.
func (s ExpenseStatus) IsTerminal() bool {
	return s == ExpenseStatusApproved || s == ExpenseStatusRejected
}

// AdjustmentOp identifies the kind of balance-setting operation recorded in
// the adjustment history.
type AdjustmentOp string

const (
	AdjustmentOpInitialSet AdjustmentOp = "InitialSet"
	AdjustmentOpTopUp      AdjustmentOp = "TopUp"
	AdjustmentOpReset      AdjustmentOp = "Reset"
)

func (o AdjustmentOp) String() string { return string(o) }

func (o AdjustmentOp) IsValid() bool {
	switch o {
	case AdjustmentOpInitialSet, AdjustmentOpTopUp, AdjustmentOpReset:
		return true
	}
	return false
}

// UserRole is the authenticated role claim carried by the bearer token.
type UserRole string

const (
	UserRoleEmployee UserRole = "Employee"
	UserRoleManager  UserRole = "Manager"
	UserRoleAdmin    UserRole = "Admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleEmployee, UserRoleManager, UserRoleAdmin:
		return true
	}
	return false
}
