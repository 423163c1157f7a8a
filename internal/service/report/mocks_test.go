package report

import (
	"context"
	"sync"

	budgetrepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/budget"
)

var _ budgetLister = &budgetListerMock{}

type budgetListerMock struct {
	ListByMonthFunc func(ctx context.Context, month, year int) ([]budgetrepo.BudgetWithCategory, error)

	calls struct {
		ListByMonth []struct {
			Month int
			Year  int
		}
	}
	lockListByMonth sync.RWMutex
}

func (mock *budgetListerMock) ListByMonth(ctx context.Context, month, year int) ([]budgetrepo.BudgetWithCategory, error) {
	if mock.ListByMonthFunc == nil {
		panic("budgetListerMock.ListByMonthFunc: method is nil but budgetLister.ListByMonth was just called")
	}
	callInfo := struct {
		Month int
		Year  int
	}{Month: month, Year: year}
	mock.lockListByMonth.Lock()
	mock.calls.ListByMonth = append(mock.calls.ListByMonth, callInfo)
	mock.lockListByMonth.Unlock()
	return mock.ListByMonthFunc(ctx, month, year)
}

func (mock *budgetListerMock) ListByMonthCalls() []struct {
	Month int
	Year  int
} {
	mock.lockListByMonth.RLock()
	calls := mock.calls.ListByMonth
	mock.lockListByMonth.RUnlock()
	return calls
}
