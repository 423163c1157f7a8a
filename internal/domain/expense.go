package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is one employee submission moving through the approval workflow.
// Status transitions exactly once, Pending → Approved or Pending → Rejected;
// the admin comment is the only field mutable after review.
type Expense struct {
	ID           uuid.UUID
	EmployeeID   string
	EmployeeName string
	Title        string
	Amount       decimal.Decimal
	CategoryID   uuid.UUID
	// ExpenseDate is the calendar date the expense was incurred, distinct
	// from SubmittedAt. The time component is dropped at submission.
	ExpenseDate time.Time
	Status      ExpenseStatus
	SubmittedAt time.Time
	ReviewedAt  *time.Time

	ApproverName       *string
	ApproverOfficialID *string
	ApproverComment    *string
	AdminComment       *string
	ReceiptPath        *string
}

// IsPending reports whether the expense still awaits a decision.
func (e *Expense) IsPending() bool { return e.Status == ExpenseStatusPending }

// Reimbursement marks an approved expense as paid out-of-band. At most one
// row exists per expense; creation is one-shot and non-retractable.
type Reimbursement struct {
	ID           uuid.UUID
	ExpenseID    uuid.UUID
	Amount       decimal.Decimal
	Status       string
	PaidAt       time.Time
	Reference    string
	PaidByUserID uuid.UUID
	PaidByName   string
	CreatedAt    time.Time
}

// ReimbursementStatusPaid is the only status a reimbursement row carries.
const ReimbursementStatusPaid = "Paid"

// Category is an entry in the read-only spend-category directory.
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}
