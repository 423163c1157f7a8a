package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/expensio-backend/internal/domain"
)

// categoryLister defines the minimal interface needed by CategoryHandler.
type categoryLister interface {
	List(ctx context.Context) ([]domain.Category, error)
}

// CategoryHandler serves the read-only spend-category directory.
type CategoryHandler struct {
	categories categoryLister
	log        *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(categories categoryLister, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		log:        logger.With("handler", "category"),
	}
}

type categoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// List handles GET /categories. Any authenticated caller submits against
// these ids, so the directory is not role-gated.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	cats, err := h.categories.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		resp = append(resp, categoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
	}

	writeJSON(w, http.StatusOK, resp)
}
