package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expensio-backend/internal/service/budget"
	"github.com/heartmarshall/expensio-backend/internal/service/report"
)

// budgetService defines the minimal interface needed by BudgetHandler.
type budgetService interface {
	SetBudget(ctx context.Context, input budget.SetBudgetInput) error
	ClearOne(ctx context.Context, input budget.ClearOneInput) error
	ClearMonth(ctx context.Context, input budget.ClearMonthInput) (int, error)
	History(ctx context.Context, year int) ([]budget.HistoryMonth, error)
	HistoryDetail(ctx context.Context, month, year int) ([]budget.CategoryDetail, error)
	IsSetWindowOpen(month, year int) bool
}

// reportService defines the minimal interface needed for the overviews.
type reportService interface {
	ManagerOverview(ctx context.Context, month, year int) ([]report.ManagerRow, error)
	Overview(ctx context.Context, month, year int) (report.AdminOverview, error)
}

// BudgetHandler serves budget ledger REST endpoints.
type BudgetHandler struct {
	budgets budgetService
	reports reportService
	log     *slog.Logger
}

// NewBudgetHandler creates a BudgetHandler.
func NewBudgetHandler(budgets budgetService, reports reportService, logger *slog.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgets: budgets,
		reports: reports,
		log:     logger.With("handler", "budget"),
	}
}

type setBudgetRequest struct {
	CategoryID uuid.UUID       `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Month      int             `json:"month"`
	Year       int             `json:"year"`
	ActingRole string          `json:"acting_role"`
}

// Set handles POST /budget/set.
func (h *BudgetHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req setBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	err := h.budgets.SetBudget(r.Context(), budget.SetBudgetInput{
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Month:      req.Month,
		Year:       req.Year,
		ActingRole: req.ActingRole,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type clearOneRequest struct {
	CategoryID uuid.UUID `json:"category_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	ActingRole string    `json:"acting_role"`
}

// ClearOne handles POST /budget/clear-one.
func (h *BudgetHandler) ClearOne(w http.ResponseWriter, r *http.Request) {
	var req clearOneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	err := h.budgets.ClearOne(r.Context(), budget.ClearOneInput{
		CategoryID: req.CategoryID,
		Month:      req.Month,
		Year:       req.Year,
		ActingRole: req.ActingRole,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type clearMonthRequest struct {
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	ActingRole string `json:"acting_role"`
}

// ClearMonth handles POST /budget/clear-month.
func (h *BudgetHandler) ClearMonth(w http.ResponseWriter, r *http.Request) {
	var req clearMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	cleared, err := h.budgets.ClearMonth(r.Context(), budget.ClearMonthInput{
		Month:      req.Month,
		Year:       req.Year,
		ActingRole: req.ActingRole,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"cleared": cleared})
}

type historyItemResponse struct {
	BudgetID        uuid.UUID       `json:"budget_id"`
	CategoryID      uuid.UUID       `json:"category_id"`
	CategoryName    string          `json:"category_name"`
	InitialAmount   decimal.Decimal `json:"initial_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

type historyMonthResponse struct {
	Month           int                   `json:"month"`
	Year            int                   `json:"year"`
	BudgetSetBy     string                `json:"budget_set_by"`
	IsSetWindowOpen bool                  `json:"is_set_window_open"`
	Items           []historyItemResponse `json:"items"`
}

// History handles GET /budget/history?year=.
func (h *BudgetHandler) History(w http.ResponseWriter, r *http.Request) {
	year, ok := queryInt(w, r, "year")
	if !ok {
		return
	}

	months, err := h.budgets.History(r.Context(), year)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := make([]historyMonthResponse, 0, len(months))
	for _, m := range months {
		items := make([]historyItemResponse, 0, len(m.Items))
		for _, it := range m.Items {
			items = append(items, historyItemResponse{
				BudgetID:        it.BudgetID,
				CategoryID:      it.CategoryID,
				CategoryName:    it.CategoryName,
				InitialAmount:   it.InitialAmount,
				RemainingAmount: it.RemainingAmount,
				CreatedAt:       it.CreatedAt,
			})
		}
		resp = append(resp, historyMonthResponse{
			Month:           m.Month,
			Year:            m.Year,
			BudgetSetBy:     m.BudgetSetBy,
			IsSetWindowOpen: m.IsSetWindowOpen,
			Items:           items,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type adjustmentEntryResponse struct {
	BudgetSet           decimal.Decimal `json:"budget_set"`
	BudgetAmountBecomes decimal.Decimal `json:"budget_amount_becomes"`
	Date                string          `json:"date"`
	Operation           string          `json:"operation"`
	SetBy               string          `json:"set_by"`
}

type categoryDetailResponse struct {
	CategoryID           uuid.UUID                 `json:"category_id"`
	CategoryName         string                    `json:"category_name"`
	Month                int                       `json:"month"`
	Year                 int                       `json:"year"`
	InitialMonthlyBudget decimal.Decimal           `json:"initial_monthly_budget"`
	RemainingBudget      decimal.Decimal           `json:"remaining_budget"`
	ExpensesDeducted     decimal.Decimal           `json:"expenses_deducted"`
	History              []adjustmentEntryResponse `json:"history"`
}

// HistoryDetail handles GET /budget/history-detail?month=&year=.
func (h *BudgetHandler) HistoryDetail(w http.ResponseWriter, r *http.Request) {
	month, ok := queryInt(w, r, "month")
	if !ok {
		return
	}
	year, ok := queryInt(w, r, "year")
	if !ok {
		return
	}

	details, err := h.budgets.HistoryDetail(r.Context(), month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := make([]categoryDetailResponse, 0, len(details))
	for _, d := range details {
		entries := make([]adjustmentEntryResponse, 0, len(d.History))
		for _, a := range d.History {
			entries = append(entries, adjustmentEntryResponse{
				BudgetSet:           a.BudgetSet,
				BudgetAmountBecomes: a.BudgetAmountBecomes,
				Date:                a.Date,
				Operation:           a.Operation.String(),
				SetBy:               a.SetBy.String(),
			})
		}
		resp = append(resp, categoryDetailResponse{
			CategoryID:           d.CategoryID,
			CategoryName:         d.CategoryName,
			Month:                d.Month,
			Year:                 d.Year,
			InitialMonthlyBudget: d.InitialMonthlyBudget,
			RemainingBudget:      d.RemainingBudget,
			ExpensesDeducted:     d.ExpensesDeducted,
			History:              entries,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type managerRowResponse struct {
	CategoryID      uuid.UUID       `json:"category_id"`
	CategoryName    string          `json:"category_name"`
	InitialAmount   decimal.Decimal `json:"initial_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	Deducted        decimal.Decimal `json:"deducted"`
	UsagePercent    float64         `json:"usage_percent"`
	BudgetSetBy     string          `json:"budget_set_by"`
}

// Overview handles GET /budget/overview?month=&year=.
func (h *BudgetHandler) Overview(w http.ResponseWriter, r *http.Request) {
	month, ok := queryInt(w, r, "month")
	if !ok {
		return
	}
	year, ok := queryInt(w, r, "year")
	if !ok {
		return
	}

	rows, err := h.reports.ManagerOverview(r.Context(), month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := make([]managerRowResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, managerRowResponse{
			CategoryID:      row.CategoryID,
			CategoryName:    row.CategoryName,
			InitialAmount:   row.InitialAmount,
			RemainingAmount: row.RemainingAmount,
			Deducted:        row.Deducted,
			UsagePercent:    row.UsagePercent,
			BudgetSetBy:     row.BudgetSetBy.String(),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type adminRowResponse struct {
	CategoryID      uuid.UUID       `json:"category_id"`
	CategoryName    string          `json:"category_name"`
	InitialAmount   decimal.Decimal `json:"initial_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	Deducted        decimal.Decimal `json:"deducted"`
	UsagePercent    float64         `json:"usage_percent"`
	Health          string          `json:"health"`
}

type adminOverviewResponse struct {
	Categories []adminRowResponse `json:"categories"`
	Totals     struct {
		Month       int             `json:"month"`
		Year        int             `json:"year"`
		TotalBudget decimal.Decimal `json:"total_budget"`
		Remaining   decimal.Decimal `json:"remaining"`
		Expenses    decimal.Decimal `json:"expenses"`
	} `json:"totals"`
}

// OverviewAdmin handles GET /budget/overview-admin?month=&year=.
func (h *BudgetHandler) OverviewAdmin(w http.ResponseWriter, r *http.Request) {
	month, ok := queryInt(w, r, "month")
	if !ok {
		return
	}
	year, ok := queryInt(w, r, "year")
	if !ok {
		return
	}

	overview, err := h.reports.Overview(r.Context(), month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	var resp adminOverviewResponse
	resp.Categories = make([]adminRowResponse, 0, len(overview.Categories))
	for _, row := range overview.Categories {
		resp.Categories = append(resp.Categories, adminRowResponse{
			CategoryID:      row.CategoryID,
			CategoryName:    row.CategoryName,
			InitialAmount:   row.InitialAmount,
			RemainingAmount: row.RemainingAmount,
			Deducted:        row.Deducted,
			UsagePercent:    row.UsagePercent,
			Health:          string(row.Health),
		})
	}
	resp.Totals.Month = overview.Totals.Month
	resp.Totals.Year = overview.Totals.Year
	resp.Totals.TotalBudget = overview.Totals.TotalBudget
	resp.Totals.Remaining = overview.Totals.Remaining
	resp.Totals.Expenses = overview.Totals.Expenses

	writeJSON(w, http.StatusOK, resp)
}

// Window handles GET /budget/window?month=&year=.
func (h *BudgetHandler) Window(w http.ResponseWriter, r *http.Request) {
	month, ok := queryInt(w, r, "month")
	if !ok {
		return
	}
	year, ok := queryInt(w, r, "year")
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{
		"is_set_window_open": h.budgets.IsSetWindowOpen(month, year),
	})
}
