package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is the live initial/remaining balance for one category in one month.
// initial_amount accumulates every set and top-up; remaining_amount is
// initial minus approved-expense deductions. The row is never deleted: a
// reset zeroes both amounts but preserves the row and its history.
type Budget struct {
	ID              uuid.UUID
	CategoryID      uuid.UUID
	Month           int
	Year            int
	InitialAmount   decimal.Decimal
	RemainingAmount decimal.Decimal
	CreatedAt       time.Time
	CreatedByUserID uuid.UUID
	CreatedByLabel  ActingLabel
}

// Deducted returns the total approved-expense spend recorded against the
// budget so far.
func (b *Budget) Deducted() decimal.Decimal {
	return b.InitialAmount.Sub(b.RemainingAmount)
}

// BudgetMonthOwner records which non-admin user originated a budget month.
// The first SetBudget call in a (month, year) claims the row; every later
// non-admin mutation of that month must come from the same user. Admins
// bypass the check and take over the label.
type BudgetMonthOwner struct {
	Month       int
	Year        int
	OwnerUserID uuid.UUID
	OwnerLabel  ActingLabel
	CreatedAt   time.Time
}

// BudgetAdjustment is an append-only audit row for a balance-setting
// operation. Rows for a budget, ordered by CreatedAt, reconstruct the
// budget's cumulative initial amount exactly.
type BudgetAdjustment struct {
	ID                       uuid.UUID
	BudgetID                 uuid.UUID
	CategoryID               uuid.UUID
	Month                    int
	Year                     int
	AmountApplied            decimal.Decimal
	CumulativeInitialAfter   decimal.Decimal
	CumulativeRemainingAfter decimal.Decimal
	Operation                AdjustmentOp
	ActingUserID             uuid.UUID
	ActingLabel              ActingLabel
	CreatedAt                time.Time
}

// BudgetTransaction is an append-only audit row for an expense-driven
// deduction, written atomically with the remaining-amount decrement at
// approval time. Resets never touch these rows.
type BudgetTransaction struct {
	ID                      uuid.UUID
	BudgetID                uuid.UUID
	ExpenseID               uuid.UUID
	EmployeeID              string
	EmployeeName            string
	ApproverName            string
	ApproverOfficialID      string
	AmountDeducted          decimal.Decimal
	RemainingAfterDeduction decimal.Decimal
	CreatedAt               time.Time
}

// ValidateMonthYear rejects out-of-range budget periods.
func ValidateMonthYear(month, year int) error {
	if month < 1 || month > 12 {
		return NewValidationError("month", "must be between 1 and 12")
	}
	if year < 2000 || year > 2100 {
		return NewValidationError("year", "out of range")
	}
	return nil
}
