package budget

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

// SetBudget creates the budget for (category, month, year) or tops it up.
// The first write in a month claims the month for the acting user; later
// non-admin writes by anyone else fail with BUDGET_CREATOR_CONFLICT. The
// balance mutation and its adjustment row commit atomically.
func (s *Service) SetBudget(ctx context.Context, input SetBudgetInput) error {
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

	if s.window.Enforce && !s.IsSetWindowOpen(input.Month, input.Year) {
		return domain.ErrSetWindowClosed
	}

	if _, err := s.categories.GetByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("get category: %w", err)
	}

	var op domain.AdjustmentOp
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ownerKnown := true
		owner, ownerErr := s.budgets.GetMonthOwner(txCtx, input.Month, input.Year)
		if ownerErr != nil {
			if !errors.Is(ownerErr, domain.ErrNotFound) {
				return fmt.Errorf("get month owner: %w", ownerErr)
			}
			ownerKnown = false
		}
		if ownerKnown && !actor.IsAdmin() && owner.OwnerUserID != actor.UserID {
			return domain.ErrCreatorConflict
		}

		now := s.now().UTC()

		existing, getErr := s.budgets.GetForUpdate(txCtx, input.CategoryID, input.Month, input.Year)
		if getErr != nil {
			if !errors.Is(getErr, domain.ErrNotFound) {
				return fmt.Errorf("get budget: %w", getErr)
			}
			op = domain.AdjustmentOpInitialSet
			return s.createBudget(txCtx, input, actor, label, now, !ownerKnown)
		}

		// Per-row check: a non-admin may only top up rows they created.
		if !actor.IsAdmin() && existing.CreatedByUserID != actor.UserID {
			return domain.ErrCreatorConflict
		}

		op = domain.AdjustmentOpTopUp
		newInitial := existing.InitialAmount.Add(input.Amount)
		newRemaining := existing.RemainingAmount.Add(input.Amount)

		if err := s.budgets.UpdateAmounts(txCtx, existing.ID, newInitial, newRemaining, label); err != nil {
			return fmt.Errorf("top up budget: %w", err)
		}

		adj := domain.BudgetAdjustment{
			ID:                       uuid.New(),
			BudgetID:                 existing.ID,
			CategoryID:               existing.CategoryID,
			Month:                    existing.Month,
			Year:                     existing.Year,
			AmountApplied:            input.Amount,
			CumulativeInitialAfter:   newInitial,
			CumulativeRemainingAfter: newRemaining,
			Operation:                domain.AdjustmentOpTopUp,
			ActingUserID:             actor.UserID,
			ActingLabel:              label,
			CreatedAt:                now,
		}
		if err := s.budgets.CreateAdjustment(txCtx, adj); err != nil {
			return fmt.Errorf("record top-up adjustment: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "budget set",
		slog.String("category_id", input.CategoryID.String()),
		slog.Int("month", input.Month),
		slog.Int("year", input.Year),
		slog.String("amount", input.Amount.StringFixed(2)),
		slog.String("operation", op.String()),
		slog.String("acting_label", label.String()),
	)

	return nil
}

// createBudget inserts the first budget row for (category, month, year),
// claims the month owner when the month is fresh, and records the
// InitialSet adjustment. Runs inside the caller's transaction.
func (s *Service) createBudget(
	ctx context.Context,
	input SetBudgetInput,
	actor domain.Actor,
	label domain.ActingLabel,
	now time.Time,
	claimMonth bool,
) error {
	b := domain.Budget{
		ID:              uuid.New(),
		CategoryID:      input.CategoryID,
		Month:           input.Month,
		Year:            input.Year,
		InitialAmount:   input.Amount,
		RemainingAmount: input.Amount,
		CreatedAt:       now,
		CreatedByUserID: actor.UserID,
		CreatedByLabel:  label,
	}
	if err := s.budgets.Create(ctx, b); err != nil {
		return fmt.Errorf("create budget: %w", err)
	}

	if claimMonth {
		owner := domain.BudgetMonthOwner{
			Month:       input.Month,
			Year:        input.Year,
			OwnerUserID: actor.UserID,
			OwnerLabel:  label,
			CreatedAt:   now,
		}
		if err := s.budgets.CreateMonthOwner(ctx, owner); err != nil {
			return fmt.Errorf("claim budget month: %w", err)
		}
	}

	adj := domain.BudgetAdjustment{
		ID:                       uuid.New(),
		BudgetID:                 b.ID,
		CategoryID:               b.CategoryID,
		Month:                    b.Month,
		Year:                     b.Year,
		AmountApplied:            input.Amount,
		CumulativeInitialAfter:   b.InitialAmount,
		CumulativeRemainingAfter: b.RemainingAmount,
		Operation:                domain.AdjustmentOpInitialSet,
		ActingUserID:             actor.UserID,
		ActingLabel:              label,
		CreatedAt:                now,
	}
	if err := s.budgets.CreateAdjustment(ctx, adj); err != nil {
		return fmt.Errorf("record initial-set adjustment: %w", err)
	}

	return nil
}
