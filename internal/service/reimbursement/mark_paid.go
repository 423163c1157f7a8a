package reimbursement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expensio-backend/internal/domain"
	"github.com/heartmarshall/expensio-backend/pkg/ctxutil"
)

// MarkPaidInput holds the parameters for recording a payout. Reference is
// the external transaction id of the out-of-band payment.
type MarkPaidInput struct {
	ExpenseID uuid.UUID
	Reference string
	Amount    decimal.Decimal
}

// Validate checks all fields and collects all errors.
func (i MarkPaidInput) Validate() error {
	if i.ExpenseID == uuid.Nil {
		return domain.NewValidationError("expense_id", "required")
	}
	if strings.TrimSpace(i.Reference) == "" {
		return domain.ErrReferenceRequired
	}
	if !i.Amount.IsPositive() {
		return domain.ErrAmountRequired
	}
	return nil
}

// MarkPaid records the one-shot payout for an approved expense and notifies
// the employee. The unique constraint on expense_id backs up the existence
// check, so two racing calls cannot both succeed.
func (s *Service) MarkPaid(ctx context.Context, input MarkPaidInput) error {
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

	var employeeID, categoryName string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		e, getErr := s.expenses.GetByID(txCtx, input.ExpenseID)
		if getErr != nil {
			if errors.Is(getErr, domain.ErrNotFound) {
				return domain.ErrExpenseNotFound
			}
			return fmt.Errorf("get expense: %w", getErr)
		}
		if e.Status != domain.ExpenseStatusApproved {
			return domain.ErrNotApproved
		}

		exists, exErr := s.reimbursements.Exists(txCtx, e.ID)
		if exErr != nil {
			return fmt.Errorf("check reimbursement: %w", exErr)
		}
		if exists {
			return domain.ErrAlreadyReimbursed
		}

		now := s.now().UTC()
		r := domain.Reimbursement{
			ID:           uuid.New(),
			ExpenseID:    e.ID,
			Amount:       input.Amount,
			Status:       domain.ReimbursementStatusPaid,
			PaidAt:       now,
			Reference:    input.Reference,
			PaidByUserID: actor.UserID,
			PaidByName:   actor.Name,
			CreatedAt:    now,
		}
		if err := s.reimbursements.Create(txCtx, r); err != nil {
			return fmt.Errorf("create reimbursement: %w", err)
		}

		employeeID = e.EmployeeID
		categoryName = e.CategoryName
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "expense reimbursed",
		slog.String("expense_id", input.ExpenseID.String()),
		slog.String("reference", input.Reference),
		slog.String("amount", input.Amount.StringFixed(2)),
	)

	msg := fmt.Sprintf("Your %s expense has been reimbursed having transaction ID %s.", categoryName, input.Reference)
	if err := s.notify.NotifyUser(ctx, employeeID, msg); err != nil {
		s.log.WarnContext(ctx, "notify employee failed", slog.String("error", err.Error()))
	}

	return nil
}
