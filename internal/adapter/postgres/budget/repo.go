// Package budget implements persistence for the budget ledger: live budget
// rows, the per-month owner record, and the two append-only audit trails
// (adjustments and expense-driven transactions).
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/expensio-backend/internal/adapter/postgres"
	"github.com/heartmarshall/expensio-backend/internal/domain"
)

// BudgetWithCategory joins a budget row with its category name for the
// history and overview read paths.
type BudgetWithCategory struct {
	domain.Budget
	CategoryName string
}

// Repo provides budget-ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new budget repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const budgetColumns = `id, category_id, month, year, initial_amount, remaining_amount,
       created_at, created_by_user_id, created_by_label`

const getSQL = `
SELECT ` + budgetColumns + `
FROM budgets
WHERE category_id = $1 AND month = $2 AND year = $3`

const getForUpdateSQL = getSQL + `
FOR UPDATE`

const createSQL = `
INSERT INTO budgets (id, category_id, month, year, initial_amount, remaining_amount,
                     created_at, created_by_user_id, created_by_label)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const updateAmountsSQL = `
UPDATE budgets
SET initial_amount = $2, remaining_amount = $3, created_by_label = $4
WHERE id = $1`

const updateRemainingSQL = `
UPDATE budgets SET remaining_amount = $2 WHERE id = $1`

const listByMonthSQL = `
SELECT b.id, b.category_id, b.month, b.year, b.initial_amount, b.remaining_amount,
       b.created_at, b.created_by_user_id, b.created_by_label, c.name
FROM budgets b
JOIN categories c ON b.category_id = c.id
WHERE b.month = $1 AND b.year = $2
ORDER BY c.name`

const listByYearSQL = `
SELECT b.id, b.category_id, b.month, b.year, b.initial_amount, b.remaining_amount,
       b.created_at, b.created_by_user_id, b.created_by_label, c.name
FROM budgets b
JOIN categories c ON b.category_id = c.id
WHERE b.year = $1
ORDER BY b.year, b.month, c.name`

const getMonthOwnerSQL = `
SELECT month, year, owner_user_id, owner_label, created_at
FROM budget_month_owners
WHERE month = $1 AND year = $2`

const createMonthOwnerSQL = `
INSERT INTO budget_month_owners (month, year, owner_user_id, owner_label, created_at)
VALUES ($1, $2, $3, $4, $5)`

const createAdjustmentSQL = `
INSERT INTO budget_adjustments (id, budget_id, category_id, month, year, amount_applied,
                                cumulative_initial_after, cumulative_remaining_after,
                                operation, acting_user_id, acting_label, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

const listAdjustmentsByMonthSQL = `
SELECT id, budget_id, category_id, month, year, amount_applied,
       cumulative_initial_after, cumulative_remaining_after,
       operation, acting_user_id, acting_label, created_at
FROM budget_adjustments
WHERE month = $1 AND year = $2
ORDER BY category_id, created_at DESC`

const createTransactionSQL = `
INSERT INTO budget_transactions (id, budget_id, expense_id, employee_id, employee_name,
                                 approver_name, approver_official_id, amount_deducted,
                                 remaining_after_deduction, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const listTransactionsByBudgetSQL = `
SELECT id, budget_id, expense_id, employee_id, employee_name,
       approver_name, approver_official_id, amount_deducted,
       remaining_after_deduction, created_at
FROM budget_transactions
WHERE budget_id = $1
ORDER BY created_at`

// ---------------------------------------------------------------------------
// Budget rows
// ---------------------------------------------------------------------------

// Get returns the budget for (category, month, year).
// Returns domain.ErrNotFound if the row does not exist.
func (r *Repo) Get(ctx context.Context, categoryID uuid.UUID, month, year int) (domain.Budget, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	return scanBudget(querier.QueryRow(ctx, getSQL, categoryID, month, year), categoryID)
}

// GetForUpdate returns the budget for (category, month, year) with a row
// lock. Must be called inside a transaction; it serializes concurrent
// top-ups and approvals against the same row.
func (r *Repo) GetForUpdate(ctx context.Context, categoryID uuid.UUID, month, year int) (domain.Budget, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)
	return scanBudget(querier.QueryRow(ctx, getForUpdateSQL, categoryID, month, year), categoryID)
}

// Create inserts a new budget row.
// A duplicate (category, month, year) results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, b domain.Budget) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createSQL,
		b.ID, b.CategoryID, b.Month, b.Year, b.InitialAmount, b.RemainingAmount,
		b.CreatedAt, b.CreatedByUserID, string(b.CreatedByLabel),
	)
	if err != nil {
		return mapError(err, "budget", b.ID)
	}

	return nil
}

// UpdateAmounts overwrites both balances and the acting label on a budget
// row. Used by top-ups and resets; callers hold the row lock.
func (r *Repo) UpdateAmounts(ctx context.Context, id uuid.UUID, initial, remaining decimal.Decimal, label domain.ActingLabel) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateAmountsSQL, id, initial, remaining, string(label))
	if err != nil {
		return mapError(err, "budget", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("budget %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdateRemaining overwrites remaining_amount only. Used by the approval
// deduction; callers hold the row lock.
func (r *Repo) UpdateRemaining(ctx context.Context, id uuid.UUID, remaining decimal.Decimal) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateRemainingSQL, id, remaining)
	if err != nil {
		return mapError(err, "budget", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("budget %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListByMonth returns all budgets for (month, year) with category names,
// ordered by category name.
func (r *Repo) ListByMonth(ctx context.Context, month, year int) ([]BudgetWithCategory, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByMonthSQL, month, year)
	if err != nil {
		return nil, fmt.Errorf("list budgets by month: %w", err)
	}
	defer rows.Close()

	return scanBudgetsWithCategory(rows)
}

// ListByYear returns all budgets for a year with category names, ordered by
// month then category name.
func (r *Repo) ListByYear(ctx context.Context, year int) ([]BudgetWithCategory, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByYearSQL, year)
	if err != nil {
		return nil, fmt.Errorf("list budgets by year: %w", err)
	}
	defer rows.Close()

	return scanBudgetsWithCategory(rows)
}

// ---------------------------------------------------------------------------
// Month owner
// ---------------------------------------------------------------------------

// GetMonthOwner returns the owner record for (month, year).
// Returns domain.ErrNotFound if the month has no budgets yet.
func (r *Repo) GetMonthOwner(ctx context.Context, month, year int) (domain.BudgetMonthOwner, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var o domain.BudgetMonthOwner
	var label string
	err := querier.QueryRow(ctx, getMonthOwnerSQL, month, year).
		Scan(&o.Month, &o.Year, &o.OwnerUserID, &label, &o.CreatedAt)
	if err != nil {
		return domain.BudgetMonthOwner{}, mapError(err, "budget month owner", uuid.Nil)
	}
	o.OwnerLabel = domain.ActingLabel(label)

	return o, nil
}

// CreateMonthOwner claims (month, year) for the given owner.
// A second claim results in domain.ErrAlreadyExists.
func (r *Repo) CreateMonthOwner(ctx context.Context, o domain.BudgetMonthOwner) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createMonthOwnerSQL,
		o.Month, o.Year, o.OwnerUserID, string(o.OwnerLabel), o.CreatedAt,
	)
	if err != nil {
		return mapError(err, "budget month owner", o.OwnerUserID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Audit trails
// ---------------------------------------------------------------------------

// CreateAdjustment appends an adjustment row. Rows are never updated or
// deleted.
func (r *Repo) CreateAdjustment(ctx context.Context, a domain.BudgetAdjustment) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createAdjustmentSQL,
		a.ID, a.BudgetID, a.CategoryID, a.Month, a.Year, a.AmountApplied,
		a.CumulativeInitialAfter, a.CumulativeRemainingAfter,
		string(a.Operation), a.ActingUserID, string(a.ActingLabel), a.CreatedAt,
	)
	if err != nil {
		return mapError(err, "budget adjustment", a.ID)
	}

	return nil
}

// ListAdjustmentsByMonth returns all adjustments for (month, year), grouped
// by category and newest-first within each category.
func (r *Repo) ListAdjustmentsByMonth(ctx context.Context, month, year int) ([]domain.BudgetAdjustment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listAdjustmentsByMonthSQL, month, year)
	if err != nil {
		return nil, fmt.Errorf("list budget adjustments: %w", err)
	}
	defer rows.Close()

	var adjs []domain.BudgetAdjustment
	for rows.Next() {
		var a domain.BudgetAdjustment
		var op, label string
		if err := rows.Scan(&a.ID, &a.BudgetID, &a.CategoryID, &a.Month, &a.Year,
			&a.AmountApplied, &a.CumulativeInitialAfter, &a.CumulativeRemainingAfter,
			&op, &a.ActingUserID, &label, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan budget adjustment: %w", err)
		}
		a.Operation = domain.AdjustmentOp(op)
		a.ActingLabel = domain.ActingLabel(label)
		adjs = append(adjs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budget adjustments: %w", err)
	}

	if adjs == nil {
		adjs = []domain.BudgetAdjustment{}
	}

	return adjs, nil
}

// CreateTransaction appends an expense-deduction row. Rows are never
// updated or deleted, resets included.
func (r *Repo) CreateTransaction(ctx context.Context, t domain.BudgetTransaction) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, createTransactionSQL,
		t.ID, t.BudgetID, t.ExpenseID, t.EmployeeID, t.EmployeeName,
		t.ApproverName, t.ApproverOfficialID, t.AmountDeducted,
		t.RemainingAfterDeduction, t.CreatedAt,
	)
	if err != nil {
		return mapError(err, "budget transaction", t.ID)
	}

	return nil
}

// ListTransactionsByBudget returns all deduction rows for a budget, oldest
// first.
func (r *Repo) ListTransactionsByBudget(ctx context.Context, budgetID uuid.UUID) ([]domain.BudgetTransaction, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listTransactionsByBudgetSQL, budgetID)
	if err != nil {
		return nil, fmt.Errorf("list budget transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.BudgetTransaction
	for rows.Next() {
		var t domain.BudgetTransaction
		if err := rows.Scan(&t.ID, &t.BudgetID, &t.ExpenseID, &t.EmployeeID, &t.EmployeeName,
			&t.ApproverName, &t.ApproverOfficialID, &t.AmountDeducted,
			&t.RemainingAfterDeduction, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan budget transaction: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budget transactions: %w", err)
	}

	if txs == nil {
		txs = []domain.BudgetTransaction{}
	}

	return txs, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanBudget(row pgx.Row, id uuid.UUID) (domain.Budget, error) {
	var b domain.Budget
	var label string
	err := row.Scan(&b.ID, &b.CategoryID, &b.Month, &b.Year,
		&b.InitialAmount, &b.RemainingAmount,
		&b.CreatedAt, &b.CreatedByUserID, &label)
	if err != nil {
		return domain.Budget{}, mapError(err, "budget", id)
	}
	b.CreatedByLabel = domain.ActingLabel(label)

	return b, nil
}

func scanBudgetsWithCategory(rows pgx.Rows) ([]BudgetWithCategory, error) {
	var budgets []BudgetWithCategory
	for rows.Next() {
		var bc BudgetWithCategory
		var label string
		if err := rows.Scan(&bc.ID, &bc.CategoryID, &bc.Month, &bc.Year,
			&bc.InitialAmount, &bc.RemainingAmount,
			&bc.CreatedAt, &bc.CreatedByUserID, &label, &bc.CategoryName); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		bc.CreatedByLabel = domain.ActingLabel(label)
		budgets = append(budgets, bc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budgets: %w", err)
	}

	if budgets == nil {
		budgets = []BudgetWithCategory{}
	}

	return budgets, nil
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
