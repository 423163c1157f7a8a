// Package budget implements the budget ledger: the authoritative
// initial/remaining balance per (category, month, year), its append-only
// audit trails, and the single-writer-per-month ownership rule.
package budget

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	budgetrepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/budget"
	"github.com/heartmarshall/expensio-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

//go:generate moq -out mocks_test.go . budgetRepo categoryRepo txManager

type budgetRepo interface {
	Get(ctx context.Context, categoryID uuid.UUID, month, year int) (domain.Budget, error)
	GetForUpdate(ctx context.Context, categoryID uuid.UUID, month, year int) (domain.Budget, error)
	Create(ctx context.Context, b domain.Budget) error
	UpdateAmounts(ctx context.Context, id uuid.UUID, initial, remaining decimal.Decimal, label domain.ActingLabel) error
	UpdateRemaining(ctx context.Context, id uuid.UUID, remaining decimal.Decimal) error
	ListByMonth(ctx context.Context, month, year int) ([]budgetrepo.BudgetWithCategory, error)
	ListByYear(ctx context.Context, year int) ([]budgetrepo.BudgetWithCategory, error)

	GetMonthOwner(ctx context.Context, month, year int) (domain.BudgetMonthOwner, error)
	CreateMonthOwner(ctx context.Context, o domain.BudgetMonthOwner) error

	CreateAdjustment(ctx context.Context, a domain.BudgetAdjustment) error
	ListAdjustmentsByMonth(ctx context.Context, month, year int) ([]domain.BudgetAdjustment, error)

	CreateTransaction(ctx context.Context, t domain.BudgetTransaction) error
}

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Category, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// WindowPolicy configures the budget set window: days 1-10 of the budget's
// own month, evaluated in Location. Enforce gates SetBudget; the window
// state is always reported read-only regardless.
type WindowPolicy struct {
	Enforce  bool
	Location *time.Location
}

// Service provides budget-ledger operations.
type Service struct {
	budgets    budgetRepo
	categories categoryRepo
	tx         txManager
	window     WindowPolicy
	log        *slog.Logger

	now func() time.Time
}

// NewService creates a new budget ledger service.
func NewService(
	log *slog.Logger,
	budgets budgetRepo,
	categories categoryRepo,
	tx txManager,
	window WindowPolicy,
) *Service {
	if window.Location == nil {
		window.Location = time.UTC
	}
	return &Service{
		budgets:    budgets,
		categories: categories,
		tx:         tx,
		window:     window,
		log:        log.With("service", "budget"),
		now:        time.Now,
	}
}
