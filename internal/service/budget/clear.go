package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expensio-backend/internal/domain"
	"github.com/heartmarshall/expensio-backend/pkg/ctxutil"
)

// ClearOne zeroes both balances of a single budget. The row and its audit
// history survive; expense-deduction records are never touched.
func (s *Service) ClearOne(ctx context.Context, input ClearOneInput) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !actor.CanReview() {
		return domain.ErrForbidden
	}

	label, err := domain.ParseActingLabel(input.ActingRole)
	if err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		b, getErr := s.budgets.GetForUpdate(txCtx, input.CategoryID, input.Month, input.Year)
		if getErr != nil {
			if errors.Is(getErr, domain.ErrNotFound) {
				return domain.ErrBudgetNotFound
			}
			return fmt.Errorf("get budget: %w", getErr)
		}

		if !actor.IsAdmin() && b.CreatedByUserID != actor.UserID {
			return domain.ErrCreatorConflict
		}

		return s.resetBudget(txCtx, b.ID, b.CategoryID, b.Month, b.Year, actor, label)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "budget cleared",
		slog.String("category_id", input.CategoryID.String()),
		slog.Int("month", input.Month),
		slog.Int("year", input.Year),
		slog.String("acting_label", label.String()),
	)

	return nil
}

// ClearMonth zeroes every budget of (month, year). Returns the number of
// rows cleared; a month with no budgets is a no-op, not an error. The
// ownership check runs once against the month owner.
func (s *Service) ClearMonth(ctx context.Context, input ClearMonthInput) (int, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	if !actor.CanReview() {
		return 0, domain.ErrForbidden
	}

	label, err := domain.ParseActingLabel(input.ActingRole)
	if err != nil {
		return 0, err
	}
	if err := input.Validate(); err != nil {
		return 0, err
	}

	var cleared int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		budgets, listErr := s.budgets.ListByMonth(txCtx, input.Month, input.Year)
		if listErr != nil {
			return fmt.Errorf("list budgets: %w", listErr)
		}
		if len(budgets) == 0 {
			return nil
		}

		if !actor.IsAdmin() {
			owner, ownerErr := s.budgets.GetMonthOwner(txCtx, input.Month, input.Year)
			if ownerErr != nil {
				return fmt.Errorf("get month owner: %w", ownerErr)
			}
			if owner.OwnerUserID != actor.UserID {
				return domain.ErrCreatorConflict
			}
		}

		for _, b := range budgets {
			if err := s.resetBudget(txCtx, b.ID, b.CategoryID, b.Month, b.Year, actor, label); err != nil {
				return err
			}
		}
		cleared = len(budgets)

		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "budget month cleared",
		slog.Int("month", input.Month),
		slog.Int("year", input.Year),
		slog.Int("count", cleared),
		slog.String("acting_label", label.String()),
	)

	return cleared, nil
}

// resetBudget zeroes one budget row and appends its Reset adjustment.
// Runs inside the caller's transaction.
func (s *Service) resetBudget(
	ctx context.Context,
	budgetID, categoryID uuid.UUID,
	month, year int,
	actor domain.Actor,
	label domain.ActingLabel,
) error {
	if err := s.budgets.UpdateAmounts(ctx, budgetID, decimal.Zero, decimal.Zero, label); err != nil {
		return fmt.Errorf("reset budget: %w", err)
	}

	adj := domain.BudgetAdjustment{
		ID:                       uuid.New(),
		BudgetID:                 budgetID,
		CategoryID:               categoryID,
		Month:                    month,
		Year:                     year,
		AmountApplied:            decimal.Zero,
		CumulativeInitialAfter:   decimal.Zero,
		CumulativeRemainingAfter: decimal.Zero,
		Operation:                domain.AdjustmentOpReset,
		ActingUserID:             actor.UserID,
		ActingLabel:              label,
		CreatedAt:                s.now().UTC(),
	}
	if err := s.budgets.CreateAdjustment(ctx, adj); err != nil {
		return fmt.Errorf("record reset adjustment: %w", err)
	}

	return nil
}
