// Package expense implements persistence for the expense workflow.
// Fixed-shape queries use raw SQL; the admin list with its optional
// month/year filter is built with squirrel.
package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/expensio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/expensio-backend/internal/domain"
)

// ExpenseWithCategory joins an expense with its category name for list
// views and notification texts.
type ExpenseWithCategory struct {
	domain.Expense
	CategoryName string
}

// ReviewParams holds the reviewer fields recorded by a decision.
type ReviewParams struct {
	Status             domain.ExpenseStatus
	ApproverName       string
	ApproverOfficialID string
	ApproverComment    *string
	ReviewedAt         time.Time
}

// Repo provides expense persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new expense repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const expenseColumns = `e.id, e.employee_id, e.employee_name, e.title, e.amount, e.category_id,
       e.expense_date, e.status, e.submitted_at, e.reviewed_at,
       e.approver_name, e.approver_official_id, e.approver_comment, e.admin_comment, e.receipt_path`

const createSQL = `
INSERT INTO expenses (id, employee_id, employee_name, title, amount, category_id,
                      expense_date, status, submitted_at, receipt_path)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const getByIDSQL = `
SELECT ` + expenseColumns + `, c.name
FROM expenses e
JOIN categories c ON e.category_id = c.id
WHERE e.id = $1`

const updateReviewSQL = `
UPDATE expenses
SET status = $2, approver_name = $3, approver_official_id = $4,
    approver_comment = $5, reviewed_at = $6
WHERE id = $1`

const updateAdminCommentSQL = `
UPDATE expenses SET admin_comment = $2 WHERE id = $1`

const listByEmployeeSQL = `
SELECT ` + expenseColumns + `, c.name
FROM expenses e
JOIN categories c ON e.category_id = c.id
WHERE e.employee_id = $1
ORDER BY e.submitted_at DESC`

const listPendingSQL = `
SELECT ` + expenseColumns + `, c.name
FROM expenses e
JOIN categories c ON e.category_id = c.id
WHERE e.status = 'Pending'
ORDER BY e.submitted_at`

const listProcessedSQL = `
SELECT ` + expenseColumns + `, c.name
FROM expenses e
JOIN categories c ON e.category_id = c.id
WHERE e.status <> 'Pending'
ORDER BY e.reviewed_at DESC`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new expense in Pending status.
// An unknown category results in domain.ErrNotFound (FK violation).
func (r *Repo) Create(ctx context.Context, e domain.Expense) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		e.ID, e.EmployeeID, e.EmployeeName, e.Title, e.Amount, e.CategoryID,
		e.ExpenseDate, string(e.Status), e.SubmittedAt, e.ReceiptPath,
	)
	if err != nil {
		return mapError(err, "expense", e.ID)
	}

	return nil
}

// UpdateReview records a decision: terminal status, reviewer fields and the
// review timestamp. Returns domain.ErrNotFound if the expense is missing.
func (r *Repo) UpdateReview(ctx context.Context, id uuid.UUID, params ReviewParams) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateReviewSQL,
		id, string(params.Status), params.ApproverName, params.ApproverOfficialID,
		params.ApproverComment, params.ReviewedAt,
	)
	if err != nil {
		return mapError(err, "expense", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdateAdminComment overwrites the admin comment regardless of status.
// Returns domain.ErrNotFound if the expense is missing.
func (r *Repo) UpdateAdminComment(ctx context.Context, id uuid.UUID, comment string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateAdminCommentSQL, id, comment)
	if err != nil {
		return mapError(err, "expense", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an expense with its category name.
// Returns domain.ErrNotFound if no such expense exists.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (ExpenseWithCategory, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanExpenseRow(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return ExpenseWithCategory{}, mapError(err, "expense", id)
	}

	return e, nil
}

// ListByEmployee returns the employee's own expenses, most recent first.
func (r *Repo) ListByEmployee(ctx context.Context, employeeID string) ([]ExpenseWithCategory, error) {
	return r.list(ctx, listByEmployeeSQL, employeeID)
}

// ListPending returns all pending expenses, oldest first.
func (r *Repo) ListPending(ctx context.Context) ([]ExpenseWithCategory, error) {
	return r.list(ctx, listPendingSQL)
}

// ListProcessed returns all decided expenses, most recently reviewed first.
func (r *Repo) ListProcessed(ctx context.Context) ([]ExpenseWithCategory, error) {
	return r.list(ctx, listProcessedSQL)
}

// ListAll returns all expenses, optionally filtered by the expense date's
// month and/or year, most recently submitted first.
func (r *Repo) ListAll(ctx context.Context, month, year *int) ([]ExpenseWithCategory, error) {
	qb := squirrel.Select(
		"e.id", "e.employee_id", "e.employee_name", "e.title", "e.amount", "e.category_id",
		"e.expense_date", "e.status", "e.submitted_at", "e.reviewed_at",
		"e.approver_name", "e.approver_official_id", "e.approver_comment", "e.admin_comment", "e.receipt_path",
		"c.name",
	).
		From("expenses e").
		Join("categories c ON e.category_id = c.id").
		OrderBy("e.submitted_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if month != nil {
		qb = qb.Where(squirrel.Eq{"EXTRACT(MONTH FROM e.expense_date)": *month})
	}
	if year != nil {
		qb = qb.Where(squirrel.Eq{"EXTRACT(YEAR FROM e.expense_date)": *year})
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list all expenses query: %w", err)
	}

	return r.list(ctx, sql, args...)
}

func (r *Repo) list(ctx context.Context, sql string, args ...any) ([]ExpenseWithCategory, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []ExpenseWithCategory
	for rows.Next() {
		e, err := scanExpenseRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	if expenses == nil {
		expenses = []ExpenseWithCategory{}
	}

	return expenses, nil
}

func scanExpenseRow(row pgx.Row) (ExpenseWithCategory, error) {
	var e ExpenseWithCategory
	var status string
	err := row.Scan(&e.ID, &e.EmployeeID, &e.EmployeeName, &e.Title, &e.Amount, &e.CategoryID,
		&e.ExpenseDate, &status, &e.SubmittedAt, &e.ReviewedAt,
		&e.ApproverName, &e.ApproverOfficialID, &e.ApproverComment, &e.AdminComment, &e.ReceiptPath,
		&e.CategoryName)
	if err != nil {
		return ExpenseWithCategory{}, err
	}
	e.Status = domain.ExpenseStatus(status)

	return e, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
