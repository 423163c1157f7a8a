package budget

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expensio-backend/internal/domain"
)

// SetBudgetInput holds the parameters for a create-or-top-up write.
// ActingRole is the caller's claimed role; it is validated against the
// {Admin, Manager} allow-list and never trusted as free text past that.
type SetBudgetInput struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Month      int
	Year       int
	ActingRole string
}

// Validate checks all fields and collects all errors.
func (i SetBudgetInput) Validate() error {
	var errs []domain.FieldError

	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be greater than zero"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}
	if i.Year < 2000 || i.Year > 2100 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "out of range"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ClearOneInput holds the parameters for resetting a single budget.
type ClearOneInput struct {
	CategoryID uuid.UUID
	Month      int
	Year       int
	ActingRole string
}

// Validate checks all fields and collects all errors.
func (i ClearOneInput) Validate() error {
	var errs []domain.FieldError

	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}
	if i.Year < 2000 || i.Year > 2100 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "out of range"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ClearMonthInput holds the parameters for resetting every budget in a month.
type ClearMonthInput struct {
	Month      int
	Year       int
	ActingRole string
}

// Validate checks all fields and collects all errors.
func (i ClearMonthInput) Validate() error {
	return domain.ValidateMonthYear(i.Month, i.Year)
}

// DeductInput holds the parameters for an approval-time deduction.
// The employee and approver fields are snapshotted onto the transaction row.
type DeductInput struct {
	CategoryID         uuid.UUID
	Month              int
	Year               int
	Amount             decimal.Decimal
	ExpenseID          uuid.UUID
	EmployeeID         string
	EmployeeName       string
	ApproverName       string
	ApproverOfficialID string
}

// DeductResult reports the outcome of a successful deduction.
type DeductResult struct {
	BudgetID       uuid.UUID
	RemainingAfter decimal.Decimal
}
