package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expensio-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCategory creates a category with a unique name and returns it.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	cat := domain.Category{
		ID:        uuid.New(),
		Name:      "Category " + uniqueSuffix(),
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO categories (id, name, created_at) VALUES ($1, $2, $3)`,
		cat.ID, cat.Name, cat.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert: %v", err)
	}

	return cat
}

// SeedBudget creates a budget row for the given category and period with
// equal initial and remaining amounts. It does not write adjustments or
// claim a month owner; tests that need those call the budget service.
func SeedBudget(t *testing.T, pool *pgxpool.Pool, categoryID uuid.UUID, month, year int, amount decimal.Decimal) domain.Budget {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	b := domain.Budget{
		ID:              uuid.New(),
		CategoryID:      categoryID,
		Month:           month,
		Year:            year,
		InitialAmount:   amount,
		RemainingAmount: amount,
		CreatedAt:       now,
		CreatedByUserID: uuid.New(),
		CreatedByLabel:  domain.ActingLabelManager,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO budgets (id, category_id, month, year, initial_amount, remaining_amount, created_at, created_by_user_id, created_by_label)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID, b.CategoryID, b.Month, b.Year, b.InitialAmount, b.RemainingAmount, b.CreatedAt, b.CreatedByUserID, string(b.CreatedByLabel),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBudget insert: %v", err)
	}

	return b
}

// SeedExpense creates an expense for the given category in the given status.
// For Approved and Rejected the review fields are filled with a synthetic
// approver; otherwise they stay NULL.
func SeedExpense(t *testing.T, pool *pgxpool.Pool, categoryID uuid.UUID, status domain.ExpenseStatus) domain.Expense {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	e := domain.Expense{
		ID:           uuid.New(),
		EmployeeID:   "EMP-" + suffix,
		EmployeeName: "Employee " + suffix,
		Title:        "Expense " + suffix,
		Amount:       decimal.NewFromInt(250),
		CategoryID:   categoryID,
		ExpenseDate:  now.Truncate(24 * time.Hour),
		Status:       status,
		SubmittedAt:  now,
	}

	if status.IsTerminal() {
		reviewedAt := now
		approverName := "Approver " + suffix
		approverID := "MGR-" + suffix
		e.ReviewedAt = &reviewedAt
		e.ApproverName = &approverName
		e.ApproverOfficialID = &approverID
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO expenses (id, employee_id, employee_name, title, amount, category_id, expense_date, status, submitted_at, reviewed_at, approver_name, approver_official_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		e.ID, e.EmployeeID, e.EmployeeName, e.Title, e.Amount, e.CategoryID, e.ExpenseDate,
		string(e.Status), e.SubmittedAt, e.ReviewedAt, e.ApproverName, e.ApproverOfficialID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedExpense insert: %v", err)
	}

	return e
}

// SeedReimbursement marks the given expense as paid with a synthetic payer.
func SeedReimbursement(t *testing.T, pool *pgxpool.Pool, expenseID uuid.UUID, amount decimal.Decimal) domain.Reimbursement {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	r := domain.Reimbursement{
		ID:           uuid.New(),
		ExpenseID:    expenseID,
		Amount:       amount,
		Status:       domain.ReimbursementStatusPaid,
		PaidAt:       now,
		Reference:    "TXN-" + suffix,
		PaidByUserID: uuid.New(),
		PaidByName:   "Admin " + suffix,
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO reimbursements (id, expense_id, amount, status, paid_at, reference, paid_by_user_id, paid_by_name, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.ID, r.ExpenseID, r.Amount, r.Status, r.PaidAt, r.Reference, r.PaidByUserID, r.PaidByName, r.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReimbursement insert: %v", err)
	}

	return r
}
