package expense

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expensio-backend/internal/domain"
)

// SubmitInput holds the parameters for a new expense submission. The
// submitting employee comes from the authenticated context, not the input.
type SubmitInput struct {
	Title       string
	Amount      decimal.Decimal
	CategoryID  uuid.UUID
	ExpenseDate time.Time
	ReceiptPath *string
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if !i.Amount.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be greater than zero"})
	}
	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}
	if i.ExpenseDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "expense_date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ReviewInput holds the parameters for an approve or reject decision. The
// approver identity comes from the authenticated context.
type ReviewInput struct {
	ExpenseID uuid.UUID
	Comment   *string
}

// Validate checks all fields and collects all errors.
func (i ReviewInput) Validate() error {
	if i.ExpenseID == uuid.Nil {
		return domain.NewValidationError("expense_id", "required")
	}
	return nil
}

// AdminCommentInput holds the parameters for an admin annotation.
type AdminCommentInput struct {
	ExpenseID uuid.UUID
	Comment   string
}

// Validate checks all fields and collects all errors.
func (i AdminCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.ExpenseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "expense_id", Message: "required"})
	}
	if strings.TrimSpace(i.Comment) == "" {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
