// Package reimbursement implements persistence for the payout markers.
// The unique constraint on expense_id makes creation one-shot: a racing
// second insert surfaces as domain.ErrAlreadyReimbursed.
package reimbursement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/expensio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/expensio-backend/internal/domain"
)

// Repo provides reimbursement persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reimbursement repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const reimbursementColumns = `r.id, r.expense_id, r.amount, r.status, r.paid_at, r.reference,
       r.paid_by_user_id, r.paid_by_name, r.created_at`

const createSQL = `
INSERT INTO reimbursements (id, expense_id, amount, status, paid_at, reference,
                            paid_by_user_id, paid_by_name, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const existsSQL = `
SELECT EXISTS (SELECT 1 FROM reimbursements WHERE expense_id = $1)`

const getByExpenseIDSQL = `
SELECT ` + reimbursementColumns + `
FROM reimbursements r
WHERE r.expense_id = $1`

const listByMonthSQL = `
SELECT ` + reimbursementColumns + `
FROM reimbursements r
JOIN expenses e ON r.expense_id = e.id
WHERE EXTRACT(MONTH FROM e.submitted_at) = $1 AND EXTRACT(YEAR FROM e.submitted_at) = $2
ORDER BY r.paid_at`

const listAllSQL = `
SELECT ` + reimbursementColumns + `
FROM reimbursements r
ORDER BY r.paid_at`

const listByEmployeeSQL = `
SELECT ` + reimbursementColumns + `
FROM reimbursements r
JOIN expenses e ON r.expense_id = e.id
WHERE e.employee_id = $1
ORDER BY r.paid_at`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Create inserts a payout marker. A second marker for the same expense
// results in domain.ErrAlreadyReimbursed.
func (r *Repo) Create(ctx context.Context, reimb domain.Reimbursement) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		reimb.ID, reimb.ExpenseID, reimb.Amount, reimb.Status, reimb.PaidAt, reimb.Reference,
		reimb.PaidByUserID, reimb.PaidByName, reimb.CreatedAt,
	)
	if err != nil {
		return mapError(err, "reimbursement", reimb.ID)
	}

	return nil
}

// Exists reports whether a payout marker already exists for the expense.
func (r *Repo) Exists(ctx context.Context, expenseID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, expenseID).Scan(&exists); err != nil {
		return false, fmt.Errorf("reimbursement exists for expense %s: %w", expenseID, err)
	}

	return exists, nil
}

// GetByExpenseID returns the payout marker for an expense.
// Returns domain.ErrNotFound if the expense has not been paid.
func (r *Repo) GetByExpenseID(ctx context.Context, expenseID uuid.UUID) (domain.Reimbursement, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	reimb, err := scanReimbursementRow(querier.QueryRow(ctx, getByExpenseIDSQL, expenseID))
	if err != nil {
		return domain.Reimbursement{}, mapError(err, "reimbursement", expenseID)
	}

	return reimb, nil
}

// ListByMonth returns payout markers whose linked expense was submitted in
// (month, year).
func (r *Repo) ListByMonth(ctx context.Context, month, year int) ([]domain.Reimbursement, error) {
	return r.list(ctx, listByMonthSQL, month, year)
}

// ListAll returns every payout marker.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Reimbursement, error) {
	return r.list(ctx, listAllSQL)
}

// ListByEmployee returns payout markers for the employee's own expenses.
func (r *Repo) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Reimbursement, error) {
	return r.list(ctx, listByEmployeeSQL, employeeID)
}

func (r *Repo) list(ctx context.Context, sql string, args ...any) ([]domain.Reimbursement, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list reimbursements: %w", err)
	}
	defer rows.Close()

	var reimbs []domain.Reimbursement
	for rows.Next() {
		reimb, err := scanReimbursementRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reimbursement: %w", err)
		}
		reimbs = append(reimbs, reimb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reimbursements: %w", err)
	}

	if reimbs == nil {
		reimbs = []domain.Reimbursement{}
	}

	return reimbs, nil
}

func scanReimbursementRow(row pgx.Row) (domain.Reimbursement, error) {
	var reimb domain.Reimbursement
	err := row.Scan(&reimb.ID, &reimb.ExpenseID, &reimb.Amount, &reimb.Status, &reimb.PaidAt,
		&reimb.Reference, &reimb.PaidByUserID, &reimb.PaidByName, &reimb.CreatedAt)
	if err != nil {
		return domain.Reimbursement{}, err
	}

	return reimb, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors. The expense_id
// unique violation maps to the coded ErrAlreadyReimbursed so a racing
// second MarkPaid reports the same outcome as the pre-check.
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
			if pgErr.ConstraintName == "reimbursements_expense_uniq" {
				return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyReimbursed)
			}
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
