package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
)

// CodedError is a failed invariant with a stable API code. Every CodedError
// unwraps to one of the sentinels above so transports can map HTTP status
// with errors.Is and still surface the code to the client.
type CodedError struct {
	Code    string
	Message string
	kind    error
}

func (e *CodedError) Error() string { return e.Code + ": " + e.Message }

func (e *CodedError) Unwrap() error { return e.kind }

var (
	// Validation.
	ErrRoleRequired      = &CodedError{"ROLE_REQUIRED", "acting role must be 'Admin' or 'Manager'", ErrValidation}
	ErrReferenceRequired = &CodedError{"REFERENCE_REQUIRED", "payout reference must not be blank", ErrValidation}
	ErrAmountRequired    = &CodedError{"AMOUNT_REQUIRED", "amount must be greater than zero", ErrValidation}

	// Not found.
	ErrCategoryNotFound = &CodedError{"CATEGORY_NOT_FOUND", "category does not exist", ErrNotFound}
	ErrBudgetNotFound   = &CodedError{"BUDGET_NOT_FOUND", "no budget for this category and month", ErrNotFound}
	ErrExpenseNotFound  = &CodedError{"EXPENSE_NOT_FOUND", "expense does not exist", ErrNotFound}

	// State conflicts.
	ErrCreatorConflict   = &CodedError{"BUDGET_CREATOR_CONFLICT", "another manager owns this budget month", ErrConflict}
	ErrNotPending        = &CodedError{"NOT_PENDING", "expense has already been reviewed", ErrConflict}
	ErrNotApproved       = &CodedError{"NOT_APPROVED", "expense is not approved", ErrConflict}
	ErrAlreadyReimbursed = &CodedError{"ALREADY_REIMBURSED", "expense has already been paid out", ErrConflict}
	ErrSetWindowClosed   = &CodedError{"SET_WINDOW_CLOSED", "budget set window is closed for this month", ErrConflict}
)

// InsufficientBudgetError is returned when an approval would overdraw the
// budget. It carries the current remaining balance so the caller can react
// without a follow-up read.
type InsufficientBudgetError struct {
	Remaining decimal.Decimal
}

func (e *InsufficientBudgetError) Error() string {
	return fmt.Sprintf("INSUFFICIENT_BUDGET: remaining %s", e.Remaining.StringFixed(2))
}

func (e *InsufficientBudgetError) Unwrap() error { return ErrConflict }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
