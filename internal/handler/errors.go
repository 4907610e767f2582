package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/nvats/travelog/internal/domain"
)

// ErrorResponse is the JSON error envelope returned by every handler.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondJSON writes v as the JSON body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("handler: encode response", "error", err)
	}
}

// respondError maps a service error to its HTTP status:
// ErrNotFound → 404, ErrValidation → 422, ErrBusy → 409, anything else →
// 502 (the only remaining failures come from external collaborators).
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: unwrapMessage(err)}})
	case errors.Is(err, domain.ErrValidation):
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}})
	case errors.Is(err, domain.ErrBusy):
		respondJSON(w, http.StatusConflict, ErrorResponse{Error: ErrorDetail{Code: "busy", Message: unwrapMessage(err)}})
	default:
		slog.Error("handler: request failed", "error", err)
		respondJSON(w, http.StatusBadGateway, ErrorResponse{Error: ErrorDetail{Code: "export_failed", Message: "document generation failed"}})
	}
}

// respondRequestError rejects a request before it reaches the service layer
// (malformed ID, unreadable body).
func respondRequestError(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}})
}

// unwrapMessage strips the "service.X.Y: " wrapping prefix from an error so
// clients see only the human-readable part.
func unwrapMessage(err error) string {
	msg := err.Error()
	if strings.HasPrefix(msg, "service.") {
		if i := strings.Index(msg, ": "); i >= 0 {
			return msg[i+2:]
		}
	}
	return msg
}
