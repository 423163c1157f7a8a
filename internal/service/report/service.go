// Package report assembles the derived budget views: per-category usage and
// health for the admin overview, and the manager's month summary. It owns no
// state and mutates nothing.
package report

import (
	"context"
	"log/slog"

	budgetrepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/budget"
)

//go:generate moq -out mocks_test.go . budgetLister

type budgetLister interface {
	ListByMonth(ctx context.Context, month, year int) ([]budgetrepo.BudgetWithCategory, error)
}

// Service provides reporting queries over the live budget state.
type Service struct {
	budgets budgetLister
	log     *slog.Logger
}

// NewService creates a new reporting service.
func NewService(log *slog.Logger, budgets budgetLister) *Service {
	return &Service{
		budgets: budgets,
		log:     log.With("service", "report"),
	}
}
