package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"bairro-ads/internal/core/port"
	"bairro-ads/internal/core/workflow"
)

type errorResponse struct {
	Error    string   `json:"error"`
	Messages []string `json:"messages,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors to status codes. Unknown errors are
// logged and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *workflow.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: workflow.ErrCreativeInvalid.Error(), Messages: verr.Messages})
	case errors.Is(err, port.ErrSessionNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, port.ErrInvalidInput),
		errors.Is(err, port.ErrUnknownPlacement),
		errors.Is(err, port.ErrUnknownPeriod),
		errors.Is(err, port.ErrUnknownNeighborhood):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, port.ErrPaymentNotConfirmed):
		h.writeJSON(w, http.StatusPaymentRequired, errorResponse{Error: port.ErrPaymentNotConfirmed.Error()})
	case errors.Is(err, port.ErrSlotTaken),
		errors.Is(err, workflow.ErrOccupancyConflict),
		errors.Is(err, workflow.ErrPublishInProgress),
		errors.Is(err, workflow.ErrCommitPending),
		errors.Is(err, workflow.ErrSessionClosed),
		errors.Is(err, workflow.ErrNotReady),
		errors.Is(err, workflow.ErrIllegalTransition):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return false
	}
	return true
}
