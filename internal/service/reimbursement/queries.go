package reimbursement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expensio-backend/internal/domain"
	"github.com/heartmarshall/expensio-backend/pkg/ctxutil"
)

// MapItem is the per-expense payout status entry the clients key by
// expense id.
type MapItem struct {
	ExpenseID  uuid.UUID
	Reimbursed bool
	Amount     decimal.Decimal
	PaidAt     time.Time
	Reference  string
}

// Map returns the payout entries for expenses submitted in (month, year).
// The filter runs on the linked expense's submission date. Admin only.
func (s *Service) Map(ctx context.Context, month, year int) ([]MapItem, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := domain.ValidateMonthYear(month, year); err != nil {
		return nil, err
	}

	rows, err := s.reimbursements.ListByMonth(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("list reimbursements: %w", err)
	}
	return toMapItems(rows), nil
}

// MapAll returns every payout entry. Admin only.
func (s *Service) MapAll(ctx context.Context) ([]MapItem, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	rows, err := s.reimbursements.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reimbursements: %w", err)
	}
	return toMapItems(rows), nil
}

// MyStatus returns the authenticated employee's own payout entries.
func (s *Service) MyStatus(ctx context.Context) ([]MapItem, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rows, err := s.reimbursements.ListByEmployee(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("list reimbursements: %w", err)
	}
	return toMapItems(rows), nil
}

func toMapItems(rows []domain.Reimbursement) []MapItem {
	items := make([]MapItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, MapItem{
			ExpenseID:  r.ExpenseID,
			Reimbursed: true,
			Amount:     r.Amount,
			PaidAt:     r.PaidAt,
			Reference:  r.Reference,
		})
	}
	return items
}
