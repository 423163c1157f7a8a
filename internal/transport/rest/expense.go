package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	expenserepo "github.com/heartmarshall/expensio-backend/internal/adapter/postgres/expense"
	"github.com/heartmarshall/expensio-backend/internal/service/expense"
	"github.com/heartmarshall/expensio-backend/internal/transport/middleware"
)

// expenseService defines the minimal interface needed by ExpenseHandler.
type expenseService interface {
	Submit(ctx context.Context, input expense.SubmitInput) (uuid.UUID, error)
	Approve(ctx context.Context, input expense.ReviewInput) error
	Reject(ctx context.Context, input expense.ReviewInput) error
	AdminComment(ctx context.Context, input expense.AdminCommentInput) error
	My(ctx context.Context) ([]expenserepo.ExpenseWithCategory, error)
	Pending(ctx context.Context) ([]expenserepo.ExpenseWithCategory, error)
	Processed(ctx context.Context) ([]expenserepo.ExpenseWithCategory, error)
	All(ctx context.Context, month, year *int) ([]expenserepo.ExpenseWithCategory, error)
}

// ExpenseHandler serves the expense workflow REST endpoints.
type ExpenseHandler struct {
	expenses expenseService
	log      *slog.Logger
}

// NewExpenseHandler creates an ExpenseHandler.
func NewExpenseHandler(expenses expenseService, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenses: expenses,
		log:      logger.With("handler", "expense"),
	}
}

type submitExpenseRequest struct {
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  uuid.UUID       `json:"category_id"`
	ExpenseDate time.Time       `json:"expense_date"`
	ReceiptPath *string         `json:"receipt_path,omitempty"`
}

// Submit handles POST /expenses/submit.
func (h *ExpenseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	id, err := h.expenses.Submit(r.Context(), expense.SubmitInput{
		Title:       req.Title,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		ExpenseDate: req.ExpenseDate,
		ReceiptPath: req.ReceiptPath,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

type reviewRequest struct {
	Comment *string `json:"comment,omitempty"`
}

// Approve handles PUT /expenses/approve/{id}.
func (h *ExpenseHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.expenses.Approve)
}

// Reject handles PUT /expenses/reject/{id}.
func (h *ExpenseHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.expenses.Reject)
}

func (h *ExpenseHandler) review(w http.ResponseWriter, r *http.Request, decide func(context.Context, expense.ReviewInput) error) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	// Body is optional for review decisions.
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	if err := decide(r.Context(), expense.ReviewInput{ExpenseID: id, Comment: req.Comment}); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type adminCommentRequest struct {
	Comment string `json:"comment"`
}

// Comment handles PUT /expenses/comment/{id}. Admin only.
func (h *ExpenseHandler) Comment(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}

	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req adminCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	if err := h.expenses.AdminComment(r.Context(), expense.AdminCommentInput{ExpenseID: id, Comment: req.Comment}); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// My handles GET /expenses/my.
func (h *ExpenseHandler) My(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.expenses.My)
}

// Pending handles GET /expenses/pending.
func (h *ExpenseHandler) Pending(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.expenses.Pending)
}

// Processed handles GET /expenses/processed.
func (h *ExpenseHandler) Processed(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.expenses.Processed)
}

// All handles GET /expenses/all?month=&year=. Admin only.
func (h *ExpenseHandler) All(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}

	month, ok := queryIntOptional(w, r, "month")
	if !ok {
		return
	}
	year, ok := queryIntOptional(w, r, "year")
	if !ok {
		return
	}

	items, err := h.expenses.All(r.Context(), month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toExpenseResponses(items))
}

func (h *ExpenseHandler) list(w http.ResponseWriter, r *http.Request, fetch func(context.Context) ([]expenserepo.ExpenseWithCategory, error)) {
	items, err := fetch(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toExpenseResponses(items))
}

type expenseResponse struct {
	ID           uuid.UUID       `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryID   uuid.UUID       `json:"category_id"`
	CategoryName string          `json:"category_name"`
	ExpenseDate  time.Time       `json:"expense_date"`
	Status       string          `json:"status"`
	SubmittedAt  time.Time       `json:"submitted_at"`
	ReviewedAt   *time.Time      `json:"reviewed_at,omitempty"`

	ApproverName       *string `json:"approver_name,omitempty"`
	ApproverOfficialID *string `json:"approver_official_id,omitempty"`
	ApproverComment    *string `json:"approver_comment,omitempty"`
	AdminComment       *string `json:"admin_comment,omitempty"`
	ReceiptPath        *string `json:"receipt_path,omitempty"`
}

func toExpenseResponses(items []expenserepo.ExpenseWithCategory) []expenseResponse {
	resp := make([]expenseResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, toExpenseResponse(it))
	}
	return resp
}

func toExpenseResponse(e expenserepo.ExpenseWithCategory) expenseResponse {
	return expenseResponse{
		ID:                 e.ID,
		EmployeeID:         e.EmployeeID,
		EmployeeName:       e.EmployeeName,
		Title:              e.Title,
		Amount:             e.Amount,
		CategoryID:         e.CategoryID,
		CategoryName:       e.CategoryName,
		ExpenseDate:        e.ExpenseDate,
		Status:             e.Status.String(),
		SubmittedAt:        e.SubmittedAt,
		ReviewedAt:         e.ReviewedAt,
		ApproverName:       e.ApproverName,
		ApproverOfficialID: e.ApproverOfficialID,
		ApproverComment:    e.ApproverComment,
		AdminComment:       e.AdminComment,
		ReceiptPath:        e.ReceiptPath,
	}
}
