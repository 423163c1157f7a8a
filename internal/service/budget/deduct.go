package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/expensio-backend/internal/domain"
)

// DeductForApproval decrements the budget's remaining amount for an
// approved expense and records the deduction snapshot. This is the one
// ledger mutation invoked from outside the package: the expense workflow
// calls it inside its own RunInTx, so the decrement, the transaction row
// and the expense status change commit or roll back together.
//
// Must run inside the caller's transaction; the row lock taken here holds
// until that transaction ends.
func (s *Service) DeductForApproval(ctx context.Context, input DeductInput) (DeductResult, error) {
	b, err := s.budgets.GetForUpdate(ctx, input.CategoryID, input.Month, input.Year)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return DeductResult{}, domain.ErrBudgetNotFound
		}
		return DeductResult{}, fmt.Errorf("get budget: %w", err)
	}

	if b.RemainingAmount.LessThan(input.Amount) {
		return DeductResult{}, &domain.InsufficientBudgetError{Remaining: b.RemainingAmount}
	}

	remaining := b.RemainingAmount.Sub(input.Amount)
	if err := s.budgets.UpdateRemaining(ctx, b.ID, remaining); err != nil {
		return DeductResult{}, fmt.Errorf("deduct from budget: %w", err)
	}

	tx := domain.BudgetTransaction{
		ID:                      uuid.New(),
		BudgetID:                b.ID,
		ExpenseID:               input.ExpenseID,
		EmployeeID:              input.EmployeeID,
		EmployeeName:            input.EmployeeName,
		ApproverName:            input.ApproverName,
		ApproverOfficialID:      input.ApproverOfficialID,
		AmountDeducted:          input.Amount,
		RemainingAfterDeduction: remaining,
		CreatedAt:               s.now().UTC(),
	}
	if err := s.budgets.CreateTransaction(ctx, tx); err != nil {
		return DeductResult{}, fmt.Errorf("record budget transaction: %w", err)
	}

	return DeductResult{BudgetID: b.ID, RemainingAfter: remaining}, nil
}
