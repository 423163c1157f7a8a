package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expensio-backend/internal/domain"
	"github.com/heartmarshall/expensio-backend/pkg/ctxutil"
)

// HistoryItem is one category's budget inside a history month.
type HistoryItem struct {
	BudgetID        uuid.UUID
	CategoryID      uuid.UUID
	CategoryName    string
	InitialAmount   decimal.Decimal
	RemainingAmount decimal.Decimal
	CreatedAt       time.Time
}

// HistoryMonth groups a year's budgets by month. BudgetSetBy is a display
// string built from the label of the month's first budget row.
type HistoryMonth struct {
	Month           int
	Year            int
	BudgetSetBy     string
	IsSetWindowOpen bool
	Items           []HistoryItem
}

// AdjustmentEntry is one audit row in a category's detail view, rendered
// with the amounts and formatted date the clients expect.
type AdjustmentEntry struct {
	BudgetSet           decimal.Decimal
	BudgetAmountBecomes decimal.Decimal
	Date                string
	Operation           domain.AdjustmentOp
	SetBy               domain.ActingLabel
}

// CategoryDetail is one category's budget plus its full adjustment trail
// for a single month, newest adjustment first.
type CategoryDetail struct {
	CategoryID           uuid.UUID
	CategoryName         string
	Month                int
	Year                 int
	InitialMonthlyBudget decimal.Decimal
	RemainingBudget      decimal.Decimal
	ExpensesDeducted     decimal.Decimal
	History              []AdjustmentEntry
}

// detailDateLayout renders adjustment dates as dd/MM/yyyy.
const detailDateLayout = "02/01/2006"

// History returns the year's budgets grouped by month, newest month first.
// Months with no budgets are omitted.
func (s *Service) History(ctx context.Context, year int) ([]HistoryMonth, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !actor.CanReview() {
		return nil, domain.ErrForbidden
	}
	if year < 2000 || year > 2100 {
		return nil, domain.NewValidationError("year", "out of range")
	}

	rows, err := s.budgets.ListByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}

	byMonth := make(map[int]*HistoryMonth)
	order := make([]int, 0, 12)
	for _, r := range rows {
		m, seen := byMonth[r.Month]
		if !seen {
			m = &HistoryMonth{
				Month:           r.Month,
				Year:            year,
				BudgetSetBy:     fmt.Sprintf("Budgets set by - %s", r.CreatedByLabel),
				IsSetWindowOpen: s.IsSetWindowOpen(r.Month, year),
			}
			byMonth[r.Month] = m
			order = append(order, r.Month)
		}
		m.Items = append(m.Items, HistoryItem{
			BudgetID:        r.ID,
			CategoryID:      r.CategoryID,
			CategoryName:    r.CategoryName,
			InitialAmount:   r.InitialAmount,
			RemainingAmount: r.RemainingAmount,
			CreatedAt:       r.CreatedAt,
		})
	}

	// Newest month first.
	months := make([]HistoryMonth, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		months = append(months, *byMonth[order[i]])
	}

	return months, nil
}

// HistoryDetail returns every category budget of (month, year) together
// with its adjustment trail, newest adjustment first per category.
func (s *Service) HistoryDetail(ctx context.Context, month, year int) ([]CategoryDetail, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !actor.CanReview() {
		return nil, domain.ErrForbidden
	}
	if err := domain.ValidateMonthYear(month, year); err != nil {
		return nil, err
	}

	rows, err := s.budgets.ListByMonth(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	adjustments, err := s.budgets.ListAdjustmentsByMonth(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}

	byBudget := make(map[uuid.UUID][]domain.BudgetAdjustment, len(rows))
	for _, a := range adjustments {
		byBudget[a.BudgetID] = append(byBudget[a.BudgetID], a)
	}

	details := make([]CategoryDetail, 0, len(rows))
	for _, r := range rows {
		d := CategoryDetail{
			CategoryID:           r.CategoryID,
			CategoryName:         r.CategoryName,
			Month:                r.Month,
			Year:                 r.Year,
			InitialMonthlyBudget: r.InitialAmount,
			RemainingBudget:      r.RemainingAmount,
			ExpensesDeducted:     r.Deducted(),
		}
		for _, a := range byBudget[r.ID] {
			d.History = append(d.History, AdjustmentEntry{
				BudgetSet:           a.AmountApplied,
				BudgetAmountBecomes: a.CumulativeInitialAfter,
				Date:                a.CreatedAt.In(s.window.Location).Format(detailDateLayout),
				Operation:           a.Operation,
				SetBy:               a.ActingLabel,
			})
		}
		details = append(details, d)
	}

	return details, nil
}

// IsSetWindowOpen reports whether (month, year) currently accepts budget
// writes: days 1 through 10 of that same month, evaluated in the configured
// location.
func (s *Service) IsSetWindowOpen(month, year int) bool {
	now := s.now().In(s.window.Location)
	return now.Year() == year && int(now.Month()) == month && now.Day() <= 10
}
