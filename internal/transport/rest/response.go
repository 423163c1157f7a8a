package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/heartmarshall/expensio-backend/internal/domain"
)

// errorResponse is the JSON error body. Remaining is set only for
// INSUFFICIENT_BUDGET, carrying the current balance.
type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Remaining string `json:"remaining,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// writeServiceError maps a service error to an HTTP response. Coded errors
// keep their stable code; sentinel kinds drive the status.
func writeServiceError(w http.ResponseWriter, err error) {
	var insufficient *domain.InsufficientBudgetError
	if errors.As(err, &insufficient) {
		writeJSON(w, http.StatusConflict, errorResponse{
			Code:      "INSUFFICIENT_BUDGET",
			Message:   "budget has insufficient remaining balance",
			Remaining: insufficient.Remaining.StringFixed(2),
		})
		return
	}

	var coded *domain.CodedError
	if errors.As(err, &coded) {
		writeError(w, statusOf(err), coded.Code, coded.Message)
		return
	}

	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", validation.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "insufficient permissions")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "CONFLICT", "conflicting state")
	default:
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
