package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	expenserepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/expense"
	"github.com/heartmarshall/expensio-backend/internal/domain"
	"github.com/heartmarshall/expensio-backend/internal/service/budget"
	"github.com/heartmarshall/expensio-backend/pkg/ctxutil"
)

// Approve decides a pending expense in the employee's favor. The budget
// deduction, its transaction row and the status flip commit atomically:
// the ledger's deduction runs inside this operation's transaction, so an
// insufficient budget aborts everything.
func (s *Service) Approve(ctx context.Context, input ReviewInput) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !actor.CanReview() {
		return domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return err
	}

	var approved expenserepo.ExpenseWithCategory
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		e, getErr := s.expenses.GetByID(txCtx, input.ExpenseID)
		if getErr != nil {
			if errors.Is(getErr, domain.ErrNotFound) {
				return domain.ErrExpenseNotFound
			}
			return fmt.Errorf("get expense: %w", getErr)
		}
		if !e.IsPending() {
			return domain.ErrNotPending
		}

		result, dedErr := s.ledger.DeductForApproval(txCtx, budget.DeductInput{
			CategoryID:         e.CategoryID,
			Month:              int(e.ExpenseDate.Month()),
			Year:               e.ExpenseDate.Year(),
			Amount:             e.Amount,
			ExpenseID:          e.ID,
			EmployeeID:         e.EmployeeID,
			EmployeeName:       e.EmployeeName,
			ApproverName:       actor.Name,
			ApproverOfficialID: actor.EmployeeID,
		})
		if dedErr != nil {
			return dedErr
		}

		if err := s.expenses.UpdateReview(txCtx, e.ID, expenserepo.ReviewParams{
			Status:             domain.ExpenseStatusApproved,
			ApproverName:       actor.Name,
			ApproverOfficialID: actor.EmployeeID,
			ApproverComment:    input.Comment,
			ReviewedAt:         s.now().UTC(),
		}); err != nil {
			return fmt.Errorf("update expense review: %w", err)
		}

		approved = e
		s.log.InfoContext(txCtx, "expense approved",
			slog.String("expense_id", e.ID.String()),
			slog.String("remaining_after", result.RemainingAfter.StringFixed(2)),
		)
		return nil
	})
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Your expense %q has been approved.", approved.Title)
	if err := s.notify.NotifyUser(ctx, approved.EmployeeID, msg); err != nil {
		s.log.WarnContext(ctx, "notify employee failed", slog.String("error", err.Error()))
	}

	return nil
}

// Reject decides a pending expense against the employee. No budget
// interaction.
func (s *Service) Reject(ctx context.Context, input ReviewInput) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !actor.CanReview() {
		return domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return err
	}

	var rejected expenserepo.ExpenseWithCategory
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		e, getErr := s.expenses.GetByID(txCtx, input.ExpenseID)
		if getErr != nil {
			if errors.Is(getErr, domain.ErrNotFound) {
				return domain.ErrExpenseNotFound
			}
			return fmt.Errorf("get expense: %w", getErr)
		}
		if !e.IsPending() {
			return domain.ErrNotPending
		}

		if err := s.expenses.UpdateReview(txCtx, e.ID, expenserepo.ReviewParams{
			Status:             domain.ExpenseStatusRejected,
			ApproverName:       actor.Name,
			ApproverOfficialID: actor.EmployeeID,
			ApproverComment:    input.Comment,
			ReviewedAt:         s.now().UTC(),
		}); err != nil {
			return fmt.Errorf("update expense review: %w", err)
		}

		rejected = e
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "expense rejected", slog.String("expense_id", rejected.ID.String()))

	msg := fmt.Sprintf("Your expense %q has been rejected.", rejected.Title)
	if err := s.notify.NotifyUser(ctx, rejected.EmployeeID, msg); err != nil {
		s.log.WarnContext(ctx, "notify employee failed", slog.String("error", err.Error()))
	}

	return nil
}

// AdminComment annotates an expense regardless of its status. The comment
// overwrites any previous one and never touches the state machine.
func (s *Service) AdminComment(ctx context.Context, input AdminCommentInput) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return err
	}

	e, err := s.expenses.GetByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrExpenseNotFound
		}
		return fmt.Errorf("get expense: %w", err)
	}

	if err := s.expenses.UpdateAdminComment(ctx, e.ID, input.Comment); err != nil {
		return fmt.Errorf("update admin comment: %w", err)
	}

	msg := fmt.Sprintf("Admin commented on expense %q: %s", e.Title, input.Comment)
	if err := s.notify.NotifyRole(ctx, domain.UserRoleManager.String(), msg); err != nil {
		s.log.WarnContext(ctx, "notify managers failed", slog.String("error", err.Error()))
	}

	return nil
}
