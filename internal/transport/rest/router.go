package rest

import "net/http"

// RouterDeps bundles the handlers the router mounts.
type RouterDeps struct {
	Health         *HealthHandler
	Categories     *CategoryHandler
	Budgets        *BudgetHandler
	Expenses       *ExpenseHandler
	Reimbursements *ReimbursementHandler
}

// NewRouter mounts every REST endpoint on a ServeMux. All business routes
// live under /api/v1; the health probes stay unprefixed for orchestrators.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /healthz", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)

	mux.HandleFunc("GET /api/v1/categories", deps.Categories.List)

	mux.HandleFunc("POST /api/v1/budget/set", deps.Budgets.Set)
	mux.HandleFunc("POST /api/v1/budget/clear-one", deps.Budgets.ClearOne)
	mux.HandleFunc("POST /api/v1/budget/clear-month", deps.Budgets.ClearMonth)
	mux.HandleFunc("GET /api/v1/budget/history", deps.Budgets.History)
	mux.HandleFunc("GET /api/v1/budget/history-detail", deps.Budgets.HistoryDetail)
	mux.HandleFunc("GET /api/v1/budget/overview", deps.Budgets.Overview)
	mux.HandleFunc("GET /api/v1/budget/overview-admin", deps.Budgets.OverviewAdmin)
	mux.HandleFunc("GET /api/v1/budget/window", deps.Budgets.Window)

	mux.HandleFunc("POST /api/v1/expenses/submit", deps.Expenses.Submit)
	mux.HandleFunc("GET /api/v1/expenses/my", deps.Expenses.My)
	mux.HandleFunc("GET /api/v1/expenses/pending", deps.Expenses.Pending)
	mux.HandleFunc("GET /api/v1/expenses/processed", deps.Expenses.Processed)
	mux.HandleFunc("GET /api/v1/expenses/all", deps.Expenses.All)
	mux.HandleFunc("PUT /api/v1/expenses/approve/{id}", deps.Expenses.Approve)
	mux.HandleFunc("PUT /api/v1/expenses/reject/{id}", deps.Expenses.Reject)
	mux.HandleFunc("PUT /api/v1/expenses/comment/{id}", deps.Expenses.Comment)

	mux.HandleFunc("GET /api/v1/reimbursements/map", deps.Reimbursements.Map)
	mux.HandleFunc("GET /api/v1/reimbursements/map-all", deps.Reimbursements.MapAll)
	mux.HandleFunc("PUT /api/v1/reimbursements/mark-paid/{expenseId}", deps.Reimbursements.MarkPaid)
	mux.HandleFunc("GET /api/v1/reimbursements/status/my", deps.Reimbursements.MyStatus)

	return mux
}
