package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/expensio-backend/internal/domain"
	"github.com/heartmarshall/expensio-backend/pkg/ctxutil"
)

// Submit creates a Pending expense for the authenticated employee and
// notifies managers. The time component of ExpenseDate is dropped: budgets
// are monthly and only the calendar date matters.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (uuid.UUID, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	if actor.Role != domain.UserRoleEmployee {
		return uuid.Nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return uuid.Nil, err
	}

	if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, domain.ErrCategoryNotFound
		}
		return uuid.Nil, fmt.Errorf("get category: %w", err)
	}

	day := input.ExpenseDate
	e := domain.Expense{
		ID:           uuid.New(),
		EmployeeID:   actor.EmployeeID,
		EmployeeName: actor.Name,
		Title:        input.Title,
		Amount:       input.Amount,
		CategoryID:   input.CategoryID,
		ExpenseDate:  time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
		Status:       domain.ExpenseStatusPending,
		SubmittedAt:  s.now().UTC(),
		ReceiptPath:  input.ReceiptPath,
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return uuid.Nil, fmt.Errorf("create expense: %w", err)
	}

	s.log.InfoContext(ctx, "expense submitted",
		slog.String("expense_id", e.ID.String()),
		slog.String("employee_id", e.EmployeeID),
		slog.String("amount", e.Amount.StringFixed(2)),
	)

	msg := fmt.Sprintf("New expense request: %s by %s", e.Title, e.EmployeeName)
	if err := s.notify.NotifyRole(ctx, domain.UserRoleManager.String(), msg); err != nil {
		s.log.WarnContext(ctx, "notify managers failed", slog.String("error", err.Error()))
	}

	return e.ID, nil
}
