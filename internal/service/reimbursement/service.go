// Package reimbursement implements the payout ledger: the one-shot MarkPaid
// operation recording an out-of-band payment against an approved expense,
// and the read-only status projections the clients poll.
package reimbursement

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	expenserepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/expense"
	"github.com/heartmarshall/expensio-backend/internal/domain"
)

//go:generate moq -out mocks_test.go . reimbursementRepo expenseRepo txManager notifier

type reimbursementRepo interface {
	Create(ctx context.Context, r domain.Reimbursement) error
	Exists(ctx context.Context, expenseID uuid.UUID) (bool, error)
	ListByMonth(ctx context.Context, month, year int) ([]domain.Reimbursement, error)
	ListAll(ctx context.Context) ([]domain.Reimbursement, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Reimbursement, error)
}

type expenseRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (expenserepo.ExpenseWithCategory, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	NotifyUser(ctx context.Context, employeeID, message string) error
}

// Service provides reimbursement ledger operations.
type Service struct {
	reimbursements reimbursementRepo
	expenses       expenseRepo
	tx             txManager
	notify         notifier
	log            *slog.Logger

	now func() time.Time
}

// NewService creates a new reimbursement ledger service.
func NewService(
	log *slog.Logger,
	reimbursements reimbursementRepo,
	expenses expenseRepo,
	tx txManager,
	notify notifier,
) *Service {
	return &Service{
		reimbursements: reimbursements,
		expenses:       expenses,
		tx:             tx,
		notify:         notify,
		log:            log.With("service", "reimbursement"),
		now:            time.Now,
	}
}
