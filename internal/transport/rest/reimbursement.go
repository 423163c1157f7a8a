package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/expensio-backend/internal/service/reimbursement"
	"github.com/heartmarshall/expensio-backend/internal/transport/middleware"
)

// reimbursementService defines the minimal interface needed by ReimbursementHandler.
type reimbursementService interface {
	MarkPaid(ctx context.Context, input reimbursement.MarkPaidInput) error
	Map(ctx context.Context, month, year int) ([]reimbursement.MapItem, error)
	MapAll(ctx context.Context) ([]reimbursement.MapItem, error)
	MyStatus(ctx context.Context) ([]reimbursement.MapItem, error)
}

// ReimbursementHandler serves the reimbursement ledger REST endpoints.
type ReimbursementHandler struct {
	reimbursements reimbursementService
	log            *slog.Logger
}

// NewReimbursementHandler creates a ReimbursementHandler.
func NewReimbursementHandler(reimbursements reimbursementService, logger *slog.Logger) *ReimbursementHandler {
	return &ReimbursementHandler{
		reimbursements: reimbursements,
		log:            logger.With("handler", "reimbursement"),
	}
}

type markPaidRequest struct {
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
}

// MarkPaid handles PUT /reimbursements/mark-paid/{expenseId}. Admin only.
func (h *ReimbursementHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}

	expenseID, ok := pathUUID(w, r, "expenseId")
	if !ok {
		return
	}

	var req markPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	err := h.reimbursements.MarkPaid(r.Context(), reimbursement.MarkPaidInput{
		ExpenseID: expenseID,
		Reference: req.Reference,
		Amount:    req.Amount,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Map handles GET /reimbursements/map?month=&year=. Admin only.
func (h *ReimbursementHandler) Map(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}

	month, ok := queryInt(w, r, "month")
	if !ok {
		return
	}
	year, ok := queryInt(w, r, "year")
	if !ok {
		return
	}

	items, err := h.reimbursements.Map(r.Context(), month, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReimbursementResponses(items))
}

// MapAll handles GET /reimbursements/map-all. Admin only.
func (h *ReimbursementHandler) MapAll(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}

	items, err := h.reimbursements.MapAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReimbursementResponses(items))
}

// MyStatus handles GET /reimbursements/status/my.
func (h *ReimbursementHandler) MyStatus(w http.ResponseWriter, r *http.Request) {
	items, err := h.reimbursements.MyStatus(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReimbursementResponses(items))
}

type reimbursementResponse struct {
	ExpenseID  uuid.UUID       `json:"expense_id"`
	Reimbursed bool            `json:"reimbursed"`
	Amount     decimal.Decimal `json:"amount"`
	PaidAt     time.Time       `json:"paid_at"`
	Reference  string          `json:"reference"`
}

func toReimbursementResponses(items []reimbursement.MapItem) []reimbursementResponse {
	resp := make([]reimbursementResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, reimbursementResponse{
			ExpenseID:  it.ExpenseID,
			Reimbursed: it.Reimbursed,
			Amount:     it.Amount,
			PaidAt:     it.PaidAt,
			Reference:  it.Reference,
		})
	}
	return resp
}
