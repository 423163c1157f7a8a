package reimbursement

import (
	"context"
	"sync"

	"github.com/google/uuid"

	expenserepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/expense"
	"github.com/heartmarshall/expensio-backend/internal/domain"
)

var _ reimbursementRepo = &reimbursementRepoMock{}

type reimbursementRepoMock struct {
	CreateFunc         func(ctx context.Context, r domain.Reimbursement) error
	ExistsFunc         func(ctx context.Context, expenseID uuid.UUID) (bool, error)
	ListByMonthFunc    func(ctx context.Context, month, year int) ([]domain.Reimbursement, error)
	ListAllFunc        func(ctx context.Context) ([]domain.Reimbursement, error)
	ListByEmployeeFunc func(ctx context.Context, employeeID string) ([]domain.Reimbursement, error)

	calls struct {
		Create []struct {
			R domain.Reimbursement
		}
		Exists []struct {
			ExpenseID uuid.UUID
		}
		ListByMonth []struct {
			Month int
			Year  int
		}
		ListAll        []struct{}
		ListByEmployee []struct {
			EmployeeID string
		}
	}
	lockCreate         sync.RWMutex
	lockExists         sync.RWMutex
	lockListByMonth    sync.RWMutex
	lockListAll        sync.RWMutex
	lockListByEmployee sync.RWMutex
}

func (mock *reimbursementRepoMock) Create(ctx context.Context, r domain.Reimbursement) error {
	if mock.CreateFunc == nil {
		panic("reimbursementRepoMock.CreateFunc: method is nil but reimbursementRepo.Create was just called")
	}
	callInfo := struct {
		R domain.Reimbursement
	}{R: r}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, r)
}

func (mock *reimbursementRepoMock) CreateCalls() []struct {
	R domain.Reimbursement
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reimbursementRepoMock) Exists(ctx context.Context, expenseID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("reimbursementRepoMock.ExistsFunc: method is nil but reimbursementRepo.Exists was just called")
	}
	callInfo := struct{ ExpenseID uuid.UUID }{ExpenseID: expenseID}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, expenseID)
}

func (mock *reimbursementRepoMock) ExistsCalls() []struct{ ExpenseID uuid.UUID } {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *reimbursementRepoMock) ListByMonth(ctx context.Context, month, year int) ([]domain.Reimbursement, error) {
	if mock.ListByMonthFunc == nil {
		panic("reimbursementRepoMock.ListByMonthFunc: method is nil but reimbursementRepo.ListByMonth was just called")
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

func (mock *reimbursementRepoMock) ListByMonthCalls() []struct {
	Month int
	Year  int
} {
	mock.lockListByMonth.RLock()
	calls := mock.calls.ListByMonth
	mock.lockListByMonth.RUnlock()
	return calls
}

func (mock *reimbursementRepoMock) ListAll(ctx context.Context) ([]domain.Reimbursement, error) {
	if mock.ListAllFunc == nil {
		panic("reimbursementRepoMock.ListAllFunc: method is nil but reimbursementRepo.ListAll was just called")
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, struct{}{})
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

func (mock *reimbursementRepoMock) ListAllCalls() []struct{} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *reimbursementRepoMock) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Reimbursement, error) {
	if mock.ListByEmployeeFunc == nil {
		panic("reimbursementRepoMock.ListByEmployeeFunc: method is nil but reimbursementRepo.ListByEmployee was just called")
	}
	callInfo := struct{ EmployeeID string }{EmployeeID: employeeID}
	mock.lockListByEmployee.Lock()
	mock.calls.ListByEmployee = append(mock.calls.ListByEmployee, callInfo)
	mock.lockListByEmployee.Unlock()
	return mock.ListByEmployeeFunc(ctx, employeeID)
}

func (mock *reimbursementRepoMock) ListByEmployeeCalls() []struct{ EmployeeID string } {
	mock.lockListByEmployee.RLock()
	calls := mock.calls.ListByEmployee
	mock.lockListByEmployee.RUnlock()
	return calls
}

var _ expenseRepo = &expenseRepoMock{}

type expenseRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (expenserepo.ExpenseWithCategory, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *expenseRepoMock) GetByID(ctx context.Context, id uuid.UUID) (expenserepo.ExpenseWithCategory, error) {
	if mock.GetByIDFunc == nil {
		panic("expenseRepoMock.GetByIDFunc: method is nil but expenseRepo.GetByID was just called")
	}
	callInfo := struct{ ID uuid.UUID }{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *expenseRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
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

var _ notifier = &notifierMock{}

type notifierMock struct {
	NotifyUserFunc func(ctx context.Context, employeeID, message string) error

	calls struct {
		NotifyUser []struct {
			EmployeeID string
			Message    string
		}
	}
	lockNotifyUser sync.RWMutex
}

func (mock *notifierMock) NotifyUser(ctx context.Context, employeeID, message string) error {
	if mock.NotifyUserFunc == nil {
		panic("notifierMock.NotifyUserFunc: method is nil but notifier.NotifyUser was just called")
	}
	callInfo := struct {
		EmployeeID string
		Message    string
	}{EmployeeID: employeeID, Message: message}
	mock.lockNotifyUser.Lock()
	mock.calls.NotifyUser = append(mock.calls.NotifyUser, callInfo)
	mock.lockNotifyUser.Unlock()
	return mock.NotifyUserFunc(ctx, employeeID, message)
}

func (mock *notifierMock) NotifyUserCalls() []struct {
	EmployeeID string
	Message    string
} {
	mock.lockNotifyUser.RLock()
	calls := mock.calls.NotifyUser
	mock.lockNotifyUser.RUnlock()
	return calls
}
