package budget

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	budgetrepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/budget"
	"github.com/heartmarshall/expensio-backend/internal/domain"
)

var _ budgetRepo = &budgetRepoMock{}

type budgetRepoMock struct {
	GetFunc                    func(ctx context.Context, categoryID uuid.UUID, month, year int) (domain.Budget, error)
	GetForUpdateFunc           func(ctx context.Context, categoryID uuid.UUID, month, year int) (domain.Budget, error)
	CreateFunc                 func(ctx context.Context, b domain.Budget) error
	UpdateAmountsFunc          func(ctx context.Context, id uuid.UUID, initial, remaining decimal.Decimal, label domain.ActingLabel) error
	UpdateRemainingFunc        func(ctx context.Context, id uuid.UUID, remaining decimal.Decimal) error
	ListByMonthFunc            func(ctx context.Context, month, year int) ([]budgetrepo.BudgetWithCategory, error)
	ListByYearFunc             func(ctx context.Context, year int) ([]budgetrepo.BudgetWithCategory, error)
	GetMonthOwnerFunc          func(ctx context.Context, month, year int) (domain.BudgetMonthOwner, error)
	CreateMonthOwnerFunc       func(ctx context.Context, o domain.BudgetMonthOwner) error
	CreateAdjustmentFunc       func(ctx context.Context, a domain.BudgetAdjustment) error
	ListAdjustmentsByMonthFunc func(ctx context.Context, month, year int) ([]domain.BudgetAdjustment, error)
	CreateTransactionFunc      func(ctx context.Context, t domain.BudgetTransaction) error

	calls struct {
		Get []struct {
			CategoryID uuid.UUID
			Month      int
			Year       int
		}
		GetForUpdate []struct {
			CategoryID uuid.UUID
			Month      int
			Year       int
		}
		Create []struct {
			B domain.Budget
		}
		UpdateAmounts []struct {
			ID        uuid.UUID
			Initial   decimal.Decimal
			Remaining decimal.Decimal
			Label     domain.ActingLabel
		}
		UpdateRemaining []struct {
			ID        uuid.UUID
			Remaining decimal.Decimal
		}
		ListByMonth []struct {
			Month int
			Year  int
		}
		ListByYear []struct {
			Year int
		}
		GetMonthOwner []struct {
			Month int
			Year  int
		}
		CreateMonthOwner []struct {
			O domain.BudgetMonthOwner
		}
		CreateAdjustment []struct {
			A domain.BudgetAdjustment
		}
		ListAdjustmentsByMonth []struct {
			Month int
			Year  int
		}
		CreateTransaction []struct {
			T domain.BudgetTransaction
		}
	}
	lockGet                    sync.RWMutex
	lockGetForUpdate           sync.RWMutex
	lockCreate                 sync.RWMutex
	lockUpdateAmounts          sync.RWMutex
	lockUpdateRemaining        sync.RWMutex
	lockListByMonth            sync.RWMutex
	lockListByYear             sync.RWMutex
	lockGetMonthOwner          sync.RWMutex
	lockCreateMonthOwner       sync.RWMutex
	lockCreateAdjustment       sync.RWMutex
	lockListAdjustmentsByMonth sync.RWMutex
	lockCreateTransaction      sync.RWMutex
}

func (mock *budgetRepoMock) Get(ctx context.Context, categoryID uuid.UUID, month, year int) (domain.Budget, error) {
	if mock.GetFunc == nil {
		panic("budgetRepoMock.GetFunc: method is nil but budgetRepo.Get was just called")
	}
	callInfo := struct {
		CategoryID uuid.UUID
		Month      int
		Year       int
	}{CategoryID: categoryID, Month: month, Year: year}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, categoryID, month, year)
}

func (mock *budgetRepoMock) GetCalls() []struct {
	CategoryID uuid.UUID
	Month      int
	Year       int
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *budgetRepoMock) GetForUpdate(ctx context.Context, categoryID uuid.UUID, month, year int) (domain.Budget, error) {
	if mock.GetForUpdateFunc == nil {
		panic("budgetRepoMock.GetForUpdateFunc: method is nil but budgetRepo.GetForUpdate was just called")
	}
	callInfo := struct {
		CategoryID uuid.UUID
		Month      int
		Year       int
	}{CategoryID: categoryID, Month: month, Year: year}
	mock.lockGetForUpdate.Lock()
	mock.calls.GetForUpdate = append(mock.calls.GetForUpdate, callInfo)
	mock.lockGetForUpdate.Unlock()
	return mock.GetForUpdateFunc(ctx, categoryID, month, year)
}

func (mock *budgetRepoMock) GetForUpdateCalls() []struct {
	CategoryID uuid.UUID
	Month      int
	Year       int
} {
	mock.lockGetForUpdate.RLock()
	calls := mock.calls.GetForUpdate
	mock.lockGetForUpdate.RUnlock()
	return calls
}

func (mock *budgetRepoMock) Create(ctx context.Context, b domain.Budget) error {
	if mock.CreateFunc == nil {
		panic("budgetRepoMock.CreateFunc: method is nil but budgetRepo.Create was just called")
	}
	callInfo := struct {
		B domain.Budget
	}{B: b}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *budgetRepoMock) CreateCalls() []struct {
	B domain.Budget
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *budgetRepoMock) UpdateAmounts(ctx context.Context, id uuid.UUID, initial, remaining decimal.Decimal, label domain.ActingLabel) error {
	if mock.UpdateAmountsFunc == nil {
		panic("budgetRepoMock.UpdateAmountsFunc: method is nil but budgetRepo.UpdateAmounts was just called")
	}
	callInfo := struct {
		ID        uuid.UUID
		Initial   decimal.Decimal
		Remaining decimal.Decimal
		Label     domain.ActingLabel
	}{ID: id, Initial: initial, Remaining: remaining, Label: label}
	mock.lockUpdateAmounts.Lock()
	mock.calls.UpdateAmounts = append(mock.calls.UpdateAmounts, callInfo)
	mock.lockUpdateAmounts.Unlock()
	return mock.UpdateAmountsFunc(ctx, id, initial, remaining, label)
}

func (mock *budgetRepoMock) UpdateAmountsCalls() []struct {
	ID        uuid.UUID
	Initial   decimal.Decimal
	Remaining decimal.Decimal
	Label     domain.ActingLabel
} {
	mock.lockUpdateAmounts.RLock()
	calls := mock.calls.UpdateAmounts
	mock.lockUpdateAmounts.RUnlock()
	return calls
}

func (mock *budgetRepoMock) UpdateRemaining(ctx context.Context, id uuid.UUID, remaining decimal.Decimal) error {
	if mock.UpdateRemainingFunc == nil {
		panic("budgetRepoMock.UpdateRemainingFunc: method is nil but budgetRepo.UpdateRemaining was just called")
	}
	callInfo := struct {
		ID        uuid.UUID
		Remaining decimal.Decimal
	}{ID: id, Remaining: remaining}
	mock.lockUpdateRemaining.Lock()
	mock.calls.UpdateRemaining = append(mock.calls.UpdateRemaining, callInfo)
	mock.lockUpdateRemaining.Unlock()
	return mock.UpdateRemainingFunc(ctx, id, remaining)
}

func (mock *budgetRepoMock) UpdateRemainingCalls() []struct {
	ID        uuid.UUID
	Remaining decimal.Decimal
} {
	mock.lockUpdateRemaining.RLock()
	calls := mock.calls.UpdateRemaining
	mock.lockUpdateRemaining.RUnlock()
	return calls
}

func (mock *budgetRepoMock) ListByMonth(ctx context.Context, month, year int) ([]budgetrepo.BudgetWithCategory, error) {
	if mock.ListByMonthFunc == nil {
		panic("budgetRepoMock.ListByMonthFunc: method is nil but budgetRepo.ListByMonth was just called")
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

func (mock *budgetRepoMock) ListByMonthCalls() []struct {
	Month int
	Year  int
} {
	mock.lockListByMonth.RLock()
	calls := mock.calls.ListByMonth
	mock.lockListByMonth.RUnlock()
	return calls
}

func (mock *budgetRepoMock) ListByYear(ctx context.Context, year int) ([]budgetrepo.BudgetWithCategory, error) {
	if mock.ListByYearFunc == nil {
		panic("budgetRepoMock.ListByYearFunc: method is nil but budgetRepo.ListByYear was just called")
	}
	callInfo := struct {
		Year int
	}{Year: year}
	mock.lockListByYear.Lock()
	mock.calls.ListByYear = append(mock.calls.ListByYear, callInfo)
	mock.lockListByYear.Unlock()
	return mock.ListByYearFunc(ctx, year)
}

func (mock *budgetRepoMock) ListByYearCalls() []struct {
	Year int
} {
	mock.lockListByYear.RLock()
	calls := mock.calls.ListByYear
	mock.lockListByYear.RUnlock()
	return calls
}

func (mock *budgetRepoMock) GetMonthOwner(ctx context.Context, month, year int) (domain.BudgetMonthOwner, error) {
	if mock.GetMonthOwnerFunc == nil {
		panic("budgetRepoMock.GetMonthOwnerFunc: method is nil but budgetRepo.GetMonthOwner was just called")
	}
	callInfo := struct {
		Month int
		Year  int
	}{Month: month, Year: year}
	mock.lockGetMonthOwner.Lock()
	mock.calls.GetMonthOwner = append(mock.calls.GetMonthOwner, callInfo)
	mock.lockGetMonthOwner.Unlock()
	return mock.GetMonthOwnerFunc(ctx, month, year)
}

func (mock *budgetRepoMock) GetMonthOwnerCalls() []struct {
	Month int
	Year  int
} {
	mock.lockGetMonthOwner.RLock()
	calls := mock.calls.GetMonthOwner
	mock.lockGetMonthOwner.RUnlock()
	return calls
}

func (mock *budgetRepoMock) CreateMonthOwner(ctx context.Context, o domain.BudgetMonthOwner) error {
	if mock.CreateMonthOwnerFunc == nil {
		panic("budgetRepoMock.CreateMonthOwnerFunc: method is nil but budgetRepo.CreateMonthOwner was just called")
	}
	callInfo := struct {
		O domain.BudgetMonthOwner
	}{O: o}
	mock.lockCreateMonthOwner.Lock()
	mock.calls.CreateMonthOwner = append(mock.calls.CreateMonthOwner, callInfo)
	mock.lockCreateMonthOwner.Unlock()
	return mock.CreateMonthOwnerFunc(ctx, o)
}

func (mock *budgetRepoMock) CreateMonthOwnerCalls() []struct {
	O domain.BudgetMonthOwner
} {
	mock.lockCreateMonthOwner.RLock()
	calls := mock.calls.CreateMonthOwner
	mock.lockCreateMonthOwner.RUnlock()
	return calls
}

func (mock *budgetRepoMock) CreateAdjustment(ctx context.Context, a domain.BudgetAdjustment) error {
	if mock.CreateAdjustmentFunc == nil {
		panic("budgetRepoMock.CreateAdjustmentFunc: method is nil but budgetRepo.CreateAdjustment was just called")
	}
	callInfo := struct {
		A domain.BudgetAdjustment
	}{A: a}
	mock.lockCreateAdjustment.Lock()
	mock.calls.CreateAdjustment = append(mock.calls.CreateAdjustment, callInfo)
	mock.lockCreateAdjustment.Unlock()
	return mock.CreateAdjustmentFunc(ctx, a)
}

func (mock *budgetRepoMock) CreateAdjustmentCalls() []struct {
	A domain.BudgetAdjustment
} {
	mock.lockCreateAdjustment.RLock()
	calls := mock.calls.CreateAdjustment
	mock.lockCreateAdjustment.RUnlock()
	return calls
}

func (mock *budgetRepoMock) ListAdjustmentsByMonth(ctx context.Context, month, year int) ([]domain.BudgetAdjustment, error) {
	if mock.ListAdjustmentsByMonthFunc == nil {
		panic("budgetRepoMock.ListAdjustmentsByMonthFunc: method is nil but budgetRepo.ListAdjustmentsByMonth was just called")
	}
	callInfo := struct {
		Month int
		Year  int
	}{Month: month, Year: year}
	mock.lockListAdjustmentsByMonth.Lock()
	mock.calls.ListAdjustmentsByMonth = append(mock.calls.ListAdjustmentsByMonth, callInfo)
	mock.lockListAdjustmentsByMonth.Unlock()
	return mock.ListAdjustmentsByMonthFunc(ctx, month, year)
}

func (mock *budgetRepoMock) ListAdjustmentsByMonthCalls() []struct {
	Month int
	Year  int
} {
	mock.lockListAdjustmentsByMonth.RLock()
	calls := mock.calls.ListAdjustmentsByMonth
	mock.lockListAdjustmentsByMonth.RUnlock()
	return calls
}

func (mock *budgetRepoMock) CreateTransaction(ctx context.Context, t domain.BudgetTransaction) error {
	if mock.CreateTransactionFunc == nil {
		panic("budgetRepoMock.CreateTransactionFunc: method is nil but budgetRepo.CreateTransaction was just called")
	}
	callInfo := struct {
		T domain.BudgetTransaction
	}{T: t}
	mock.lockCreateTransaction.Lock()
	mock.calls.CreateTransaction = append(mock.calls.CreateTransaction, callInfo)
	mock.lockCreateTransaction.Unlock()
	return mock.CreateTransactionFunc(ctx, t)
}

func (mock *budgetRepoMock) CreateTransactionCalls() []struct {
	T domain.BudgetTransaction
} {
	mock.lockCreateTransaction.RLock()
	calls := mock.calls.CreateTransaction
	mock.lockCreateTransaction.RUnlock()
	return calls
}

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Category, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *categoryRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *categoryRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
