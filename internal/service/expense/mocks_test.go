package expense

import (
	"context"
	"sync"

	"github.com/google/uuid"

	expenserepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/expense"
	"github.com/heartmarshall/expensio-backend/internal/domain"
	"github.com/heartmarshall/expensio-backend/internal/service/budget"
)

var _ expenseRepo = &expenseRepoMock{}

type expenseRepoMock struct {
	CreateFunc             func(ctx context.Context, e domain.Expense) error
	GetByIDFunc            func(ctx context.Context, id uuid.UUID) (expenserepo.ExpenseWithCategory, error)
	UpdateReviewFunc       func(ctx context.Context, id uuid.UUID, params expenserepo.ReviewParams) error
	UpdateAdminCommentFunc func(ctx context.Context, id uuid.UUID, comment string) error
	ListByEmployeeFunc     func(ctx context.Context, employeeID string) ([]expenserepo.ExpenseWithCategory, error)
	ListPendingFunc        func(ctx context.Context) ([]expenserepo.ExpenseWithCategory, error)
	ListProcessedFunc      func(ctx context.Context) ([]expenserepo.ExpenseWithCategory, error)
	ListAllFunc            func(ctx context.Context, month, year *int) ([]expenserepo.ExpenseWithCategory, error)

	calls struct {
		Create []struct {
			E domain.Expense
		}
		GetByID []struct {
			ID uuid.UUID
		}
		UpdateReview []struct {
			ID     uuid.UUID
			Params expenserepo.ReviewParams
		}
		UpdateAdminComment []struct {
			ID      uuid.UUID
			Comment string
		}
		ListByEmployee []struct {
			EmployeeID string
		}
		ListPending   []struct{}
		ListProcessed []struct{}
		ListAll       []struct {
			Month *int
			Year  *int
		}
	}
	lockCreate             sync.RWMutex
	lockGetByID            sync.RWMutex
	lockUpdateReview       sync.RWMutex
	lockUpdateAdminComment sync.RWMutex
	lockListByEmployee     sync.RWMutex
	lockListPending        sync.RWMutex
	lockListProcessed      sync.RWMutex
	lockListAll            sync.RWMutex
}

func (mock *expenseRepoMock) Create(ctx context.Context, e domain.Expense) error {
	if mock.CreateFunc == nil {
		panic("expenseRepoMock.CreateFunc: method is nil but expenseRepo.Create was just called")
	}
	callInfo := struct {
		E domain.Expense
	}{E: e}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *expenseRepoMock) CreateCalls() []struct {
	E domain.Expense
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *expenseRepoMock) UpdateReview(ctx context.Context, id uuid.UUID, params expenserepo.ReviewParams) error {
	if mock.UpdateReviewFunc == nil {
		panic("expenseRepoMock.UpdateReviewFunc: method is nil but expenseRepo.UpdateReview was just called")
	}
	callInfo := struct {
		ID     uuid.UUID
		Params expenserepo.ReviewParams
	}{ID: id, Params: params}
	mock.lockUpdateReview.Lock()
	mock.calls.UpdateReview = append(mock.calls.UpdateReview, callInfo)
	mock.lockUpdateReview.Unlock()
	return mock.UpdateReviewFunc(ctx, id, params)
}

func (mock *expenseRepoMock) UpdateReviewCalls() []struct {
	ID     uuid.UUID
	Params expenserepo.ReviewParams
} {
	mock.lockUpdateReview.RLock()
	calls := mock.calls.UpdateReview
	mock.lockUpdateReview.RUnlock()
	return calls
}

func (mock *expenseRepoMock) UpdateAdminComment(ctx context.Context, id uuid.UUID, comment string) error {
	if mock.UpdateAdminCommentFunc == nil {
		panic("expenseRepoMock.UpdateAdminCommentFunc: method is nil but expenseRepo.UpdateAdminComment was just called")
	}
	callInfo := struct {
		ID      uuid.UUID
		Comment string
	}{ID: id, Comment: comment}
	mock.lockUpdateAdminComment.Lock()
	mock.calls.UpdateAdminComment = append(mock.calls.UpdateAdminComment, callInfo)
	mock.lockUpdateAdminComment.Unlock()
	return mock.UpdateAdminCommentFunc(ctx, id, comment)
}

func (mock *expenseRepoMock) UpdateAdminCommentCalls() []struct {
	ID      uuid.UUID
	Comment string
} {
	mock.lockUpdateAdminComment.RLock()
	calls := mock.calls.UpdateAdminComment
	mock.lockUpdateAdminComment.RUnlock()
	return calls
}

func (mock *expenseRepoMock) ListByEmployee(ctx context.Context, employeeID string) ([]expenserepo.ExpenseWithCategory, error) {
	if mock.ListByEmployeeFunc == nil {
		panic("expenseRepoMock.ListByEmployeeFunc: method is nil but expenseRepo.ListByEmployee was just called")
	}
	callInfo := struct{ EmployeeID string }{EmployeeID: employeeID}
	mock.lockListByEmployee.Lock()
	mock.calls.ListByEmployee = append(mock.calls.ListByEmployee, callInfo)
	mock.lockListByEmployee.Unlock()
	return mock.ListByEmployeeFunc(ctx, employeeID)
}

func (mock *expenseRepoMock) ListByEmployeeCalls() []struct{ EmployeeID string } {
	mock.lockListByEmployee.RLock()
	calls := mock.calls.ListByEmployee
	mock.lockListByEmployee.RUnlock()
	return calls
}

func (mock *expenseRepoMock) ListPending(ctx context.Context) ([]expenserepo.ExpenseWithCategory, error) {
	if mock.ListPendingFunc == nil {
		panic("expenseRepoMock.ListPendingFunc: method is nil but expenseRepo.ListPending was just called")
	}
	mock.lockListPending.Lock()
	mock.calls.ListPending = append(mock.calls.ListPending, struct{}{})
	mock.lockListPending.Unlock()
	return mock.ListPendingFunc(ctx)
}

func (mock *expenseRepoMock) ListPendingCalls() []struct{} {
	mock.lockListPending.RLock()
	calls := mock.calls.ListPending
	mock.lockListPending.RUnlock()
	return calls
}

func (mock *expenseRepoMock) ListProcessed(ctx context.Context) ([]expenserepo.ExpenseWithCategory, error) {
	if mock.ListProcessedFunc == nil {
		panic("expenseRepoMock.ListProcessedFunc: method is nil but expenseRepo.ListProcessed was just called")
	}
	mock.lockListProcessed.Lock()
	mock.calls.ListProcessed = append(mock.calls.ListProcessed, struct{}{})
	mock.lockListProcessed.Unlock()
	return mock.ListProcessedFunc(ctx)
}

func (mock *expenseRepoMock) ListProcessedCalls() []struct{} {
	mock.lockListProcessed.RLock()
	calls := mock.calls.ListProcessed
	mock.lockListProcessed.RUnlock()
	return calls
}

func (mock *expenseRepoMock) ListAll(ctx context.Context, month, year *int) ([]expenserepo.ExpenseWithCategory, error) {
	if mock.ListAllFunc == nil {
		panic("expenseRepoMock.ListAllFunc: method is nil but expenseRepo.ListAll was just called")
	}
	callInfo := struct {
		Month *int
		Year  *int
	}{Month: month, Year: year}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, month, year)
}

func (mock *expenseRepoMock) ListAllCalls() []struct {
	Month *int
	Year  *int
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
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

var _ budgetLedger = &budgetLedgerMock{}

type budgetLedgerMock struct {
	DeductForApprovalFunc func(ctx context.Context, input budget.DeductInput) (budget.DeductResult, error)

	calls struct {
		DeductForApproval []struct {
			Input budget.DeductInput
		}
	}
	lockDeductForApproval sync.RWMutex
}

func (mock *budgetLedgerMock) DeductForApproval(ctx context.Context, input budget.DeductInput) (budget.DeductResult, error) {
	if mock.DeductForApprovalFunc == nil {
		panic("budgetLedgerMock.DeductForApprovalFunc: method is nil but budgetLedger.DeductForApproval was just called")
	}
	callInfo := struct {
		Input budget.DeductInput
	}{Input: input}
	mock.lockDeductForApproval.Lock()
	mock.calls.DeductForApproval = append(mock.calls.DeductForApproval, callInfo)
	mock.lockDeductForApproval.Unlock()
	return mock.DeductForApprovalFunc(ctx, input)
}

func (mock *budgetLedgerMock) DeductForApprovalCalls() []struct {
	Input budget.DeductInput
} {
	mock.lockDeductForApproval.RLock()
	calls := mock.calls.DeductForApproval
	mock.lockDeductForApproval.RUnlock()
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
	NotifyRoleFunc func(ctx context.Context, role, message string) error

	calls struct {
		NotifyUser []struct {
			EmployeeID string
			Message    string
		}
		NotifyRole []struct {
			Role    string
			Message string
		}
	}
	lockNotifyUser sync.RWMutex
	lockNotifyRole sync.RWMutex
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

func (mock *notifierMock) NotifyRole(ctx context.Context, role, message string) error {
	if mock.NotifyRoleFunc == nil {
		panic("notifierMock.NotifyRoleFunc: method is nil but notifier.NotifyRole was just called")
	}
	callInfo := struct {
		Role    string
		Message string
	}{Role: role, Message: message}
	mock.lockNotifyRole.Lock()
	mock.calls.NotifyRole = append(mock.calls.NotifyRole, callInfo)
	mock.lockNotifyRole.Unlock()
	return mock.NotifyRoleFunc(ctx, role, message)
}

func (mock *notifierMock) NotifyRoleCalls() []struct {
	Role    string
	Message string
} {
	mock.lockNotifyRole.RLock()
	calls := mock.calls.NotifyRole
	mock.lockNotifyRole.RUnlock()
	return calls
}
