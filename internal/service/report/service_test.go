package report

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	budgetrepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/budget"
	"github.com/heartmarshall/expensio-backend/internal/domain"
	"github.com/heartmarshall/expensio-backend/pkg/ctxutil"
)

func newTestService(budgets budgetLister) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, budgets)
}

func roleCtx(role domain.UserRole) context.Context {
	return ctxutil.WithActor(context.Background(), domain.Actor{
		UserID: uuid.New(),
		Role:   role,
	})
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ---------------------------------------------------------------------------
// UsagePercent / Classify tests
// ---------------------------------------------------------------------------

func TestUsagePercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		initial  string
		deducted string
		want     float64
	}{
		{"zero initial", "0", "0", 0},
		{"zero initial with deductions", "0", "100", 0},
		{"untouched", "1000", "0", 0},
		{"half used", "1000", "500", 50},
		{"fully used", "1000", "1000", 100},
		{"rounded to two decimals", "300", "100", 33.33},
		{"rounds up", "3", "2", 66.67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := UsagePercent(dec(tt.initial), dec(tt.deducted))
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		usage float64
		want  Health
	}{
		{0, HealthHealthy},
		{69.99, HealthHealthy},
		{70, HealthAtRisk},
		{89.99, HealthAtRisk},
		{90, HealthCritical},
		{100, HealthCritical},
		{120, HealthCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.usage), "usage %.2f", tt.usage)
	}
}

// ---------------------------------------------------------------------------
// Overview tests
// ---------------------------------------------------------------------------

func monthBudgets() []budgetrepo.BudgetWithCategory {
	return []budgetrepo.BudgetWithCategory{
		{
			Budget: domain.Budget{
				ID:              uuid.New(),
				CategoryID:      uuid.New(),
				Month:           5,
				Year:            2030,
				InitialAmount:   dec("1000"),
				RemainingAmount: dec("50"),
				CreatedByLabel:  domain.ActingLabelManager,
			},
			CategoryName: "Office",
		},
		{
			Budget: domain.Budget{
				ID:              uuid.New(),
				CategoryID:      uuid.New(),
				Month:           5,
				Year:            2030,
				InitialAmount:   dec("2000"),
				RemainingAmount: dec("1500"),
				CreatedByLabel:  domain.ActingLabelAdmin,
			},
			CategoryName: "Travel",
		},
	}
}

func TestService_Overview_ComputesHealthAndTotals(t *testing.T) {
	t.Parallel()

	budgets := &budgetListerMock{
		ListByMonthFunc: func(ctx context.Context, month, year int) ([]budgetrepo.BudgetWithCategory, error) {
			return monthBudgets(), nil
		},
	}

	svc := newTestService(budgets)
	overview, err := svc.Overview(roleCtx(domain.UserRoleAdmin), 5, 2030)

	require.NoError(t, err)
	require.Len(t, overview.Categories, 2)

	office := overview.Categories[0]
	assert.Equal(t, "Office", office.CategoryName)
	assert.InDelta(t, 95.0, office.UsagePercent, 0.001)
	assert.Equal(t, HealthCritical, office.Health)

	travel := overview.Categories[1]
	assert.InDelta(t, 25.0, travel.UsagePercent, 0.001)
	assert.Equal(t, HealthHealthy, travel.Health)

	assert.Equal(t, 5, overview.Totals.Month)
	assert.Equal(t, 2030, overview.Totals.Year)
	assert.True(t, overview.Totals.TotalBudget.Equal(dec("3000")))
	assert.True(t, overview.Totals.Remaining.Equal(dec("1550")))
	assert.True(t, overview.Totals.Expenses.Equal(dec("1450")))
}

func TestService_Overview_ManagerForbidden(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)
	_, err := svc.Overview(roleCtx(domain.UserRoleManager), 5, 2030)

	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestService_Overview_EmptyMonth(t *testing.T) {
	t.Parallel()

	budgets := &budgetListerMock{
		ListByMonthFunc: func(ctx context.Context, month, year int) ([]budgetrepo.BudgetWithCategory, error) {
			return nil, nil
		},
	}

	svc := newTestService(budgets)
	overview, err := svc.Overview(roleCtx(domain.UserRoleAdmin), 5, 2030)

	require.NoError(t, err)
	assert.Empty(t, overview.Categories)
	assert.True(t, overview.Totals.TotalBudget.IsZero())
}

func TestService_ManagerOverview_CarriesSetByLabel(t *testing.T) {
	t.Parallel()

	budgets := &budgetListerMock{
		ListByMonthFunc: func(ctx context.Context, month, year int) ([]budgetrepo.BudgetWithCategory, error) {
			return monthBudgets(), nil
		},
	}

	svc := newTestService(budgets)
	rows, err := svc.ManagerOverview(roleCtx(domain.UserRoleManager), 5, 2030)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.ActingLabelManager, rows[0].BudgetSetBy)
	assert.Equal(t, domain.ActingLabelAdmin, rows[1].BudgetSetBy)
	assert.True(t, rows[0].Deducted.Equal(dec("950")))
}

func TestService_ManagerOverview_EmployeeForbidden(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)
	_, err := svc.ManagerOverview(roleCtx(domain.UserRoleEmployee), 5, 2030)

	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestService_ManagerOverview_InvalidMonth(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil)
	_, err := svc.ManagerOverview(roleCtx(domain.UserRoleManager), 13, 2030)

	require.ErrorIs(t, err, domain.ErrValidation)
}
