package expense

import (
	"context"
	"fmt"

	expenserepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/expense"
	"github.com/heartmarshall/expensio-backend/internal/domain"
	"github.com/heartmarshall/expensio-backend/pkg/ctxutil"
)

// My returns the authenticated employee's own submissions, newest first.
func (s *Service) My(ctx context.Context) ([]expenserepo.ExpenseWithCategory, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.expenses.ListByEmployee(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return items, nil
}

// Pending returns the review queue, oldest submission first.
func (s *Service) Pending(ctx context.Context) ([]expenserepo.ExpenseWithCategory, error) {
	if !ctxutil.CanReviewCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	items, err := s.expenses.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending expenses: %w", err)
	}
	return items, nil
}

// Processed returns decided expenses, most recently reviewed first.
func (s *Service) Processed(ctx context.Context) ([]expenserepo.ExpenseWithCategory, error) {
	if !ctxutil.CanReviewCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	items, err := s.expenses.ListProcessed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processed expenses: %w", err)
	}
	return items, nil
}

// All returns every expense, optionally filtered by expense-date month and
// year. Admin only.
func (s *Service) All(ctx context.Context, month, year *int) ([]expenserepo.ExpenseWithCategory, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if month != nil && (*month < 1 || *month > 12) {
		return nil, domain.NewValidationError("month", "must be between 1 and 12")
	}

	items, err := s.expenses.ListAll(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return items, nil
}
