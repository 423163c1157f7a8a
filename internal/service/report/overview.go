package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expensio-backend/internal/domain"
	"github.com/heartmarshall/expensio-backend/pkg/ctxutil"
)

// ManagerRow is one category's budget state in the manager overview.
type ManagerRow struct {
	CategoryID      uuid.UUID
	CategoryName    string
	InitialAmount   decimal.Decimal
	RemainingAmount decimal.Decimal
	Deducted        decimal.Decimal
	UsagePercent    float64
	BudgetSetBy     domain.ActingLabel
}

// AdminRow is one category's budget state in the admin overview, with the
// health bucket attached.
type AdminRow struct {
	CategoryID      uuid.UUID
	CategoryName    string
	InitialAmount   decimal.Decimal
	RemainingAmount decimal.Decimal
	Deducted        decimal.Decimal
	UsagePercent    float64
	Health          Health
}

// AdminTotals is the month summary row at the bottom of the admin overview.
type AdminTotals struct {
	Month       int
	Year        int
	TotalBudget decimal.Decimal
	Remaining   decimal.Decimal
	Expenses    decimal.Decimal
}

// AdminOverview is the admin's full month view: per-category rows plus the
// totals row.
type AdminOverview struct {
	Categories []AdminRow
	Totals     AdminTotals
}

// ManagerOverview returns the month's budgets with usage, sorted by category
// name. Manager or admin.
func (s *Service) ManagerOverview(ctx context.Context, month, year int) ([]ManagerRow, error) {
	if !ctxutil.CanReviewCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := domain.ValidateMonthYear(month, year); err != nil {
		return nil, err
	}

	budgets, err := s.budgets.ListByMonth(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}

	rows := make([]ManagerRow, 0, len(budgets))
	for _, b := range budgets {
		deducted := b.Deducted()
		rows = append(rows, ManagerRow{
			CategoryID:      b.CategoryID,
			CategoryName:    b.CategoryName,
			InitialAmount:   b.InitialAmount,
			RemainingAmount: b.RemainingAmount,
			Deducted:        deducted,
			UsagePercent:    UsagePercent(b.InitialAmount, deducted),
			BudgetSetBy:     b.CreatedByLabel,
		})
	}
	return rows, nil
}

// Overview returns the admin's month view with per-category health and the
// totals row. Admin only.
func (s *Service) Overview(ctx context.Context, month, year int) (AdminOverview, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return AdminOverview{}, domain.ErrForbidden
	}
	if err := domain.ValidateMonthYear(month, year); err != nil {
		return AdminOverview{}, err
	}

	budgets, err := s.budgets.ListByMonth(ctx, month, year)
	if err != nil {
		return AdminOverview{}, fmt.Errorf("list budgets: %w", err)
	}

	overview := AdminOverview{
		Categories: make([]AdminRow, 0, len(budgets)),
		Totals:     AdminTotals{Month: month, Year: year},
	}
	for _, b := range budgets {
		deducted := b.Deducted()
		usage := UsagePercent(b.InitialAmount, deducted)
		overview.Categories = append(overview.Categories, AdminRow{
			CategoryID:      b.CategoryID,
			CategoryName:    b.CategoryName,
			InitialAmount:   b.InitialAmount,
			RemainingAmount: b.RemainingAmount,
			Deducted:        deducted,
			UsagePercent:    usage,
			Health:          Classify(usage),
		})
		overview.Totals.TotalBudget = overview.Totals.TotalBudget.Add(b.InitialAmount)
		overview.Totals.Remaining = overview.Totals.Remaining.Add(b.RemainingAmount)
		overview.Totals.Expenses = overview.Totals.Expenses.Add(deducted)
	}

	return overview, nil
}
