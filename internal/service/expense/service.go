// Package expense implements the expense approval workflow: employee
// submissions, the one-shot Pending to Approved or Rejected transition, and
// the review queries. Approval is the single place the workflow mutates
// ledger state, through the ledger's own deduction operation inside the
// workflow's transaction.
package expense

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	expenserepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/expense"
	"github.com/heartmarshall/expensio-backend/internal/domain"
	"github.com/heartmarshall/expensio-backend/internal/service/budget"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

//go:generate moq -out mocks_test.go . expenseRepo categoryRepo budgetLedger txManager notifier

type expenseRepo interface {
	Create(ctx context.Context, e domain.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (expenserepo.ExpenseWithCategory, error)
	UpdateReview(ctx context.Context, id uuid.UUID, params expenserepo.ReviewParams) error
	UpdateAdminComment(ctx context.Context, id uuid.UUID, comment string) error
	ListByEmployee(ctx context.Context, employeeID string) ([]expenserepo.ExpenseWithCategory, error)
	ListPending(ctx context.Context) ([]expenserepo.ExpenseWithCategory, error)
	ListProcessed(ctx context.Context) ([]expenserepo.ExpenseWithCategory, error)
	ListAll(ctx context.Context, month, year *int) ([]expenserepo.ExpenseWithCategory, error)
}

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Category, error)
}

type budgetLedger interface {
	DeductForApproval(ctx context.Context, input budget.DeductInput) (budget.DeductResult, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	NotifyUser(ctx context.Context, employeeID, message string) error
	NotifyRole(ctx context.Context, role, message string) error
}

// Service provides expense workflow operations.
type Service struct {
	expenses   expenseRepo
	categories categoryRepo
	ledger     budgetLedger
	tx         txManager
	notify     notifier
	log        *slog.Logger

	now func() time.Time
}

// NewService creates a new expense workflow service.
func NewService(
	log *slog.Logger,
	expenses expenseRepo,
	categories categoryRepo,
	ledger budgetLedger,
	tx txManager,
	notify notifier,
) *Service {
	return &Service{
		expenses:   expenses,
		categories: categories,
		ledger:     ledger,
		tx:         tx,
		notify:     notify,
		log:        log.With("service", "expense"),
		now:        time.Now,
	}
}
