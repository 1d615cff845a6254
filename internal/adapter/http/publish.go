package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bairro-ads/internal/core/domain"
)

type publishRequest struct {
	Method domain.PaymentMethod `json:"method"`
}

type bookingResponse struct {
	ID            string                  `json:"id"`
	MerchantID    string                  `json:"merchant_id"`
	Target        string                  `json:"target"`
	Placement     domain.PlacementID      `json:"placement"`
	Period        string                  `json:"period"`
	Neighborhoods []string                `json:"neighborhoods"`
	Creative      domain.CreativeEnvelope `json:"creative"`
	Active        bool                    `json:"active"`
	ExpiresAt     *time.Time              `json:"expires_at,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
}

// handleValidate runs the creative rules. Violations are part of the
// returned view; the call itself succeeds.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	h.respondView(w, r)(h.svc.ValidateCreative(r.Context(), chi.URLParam(r, "id")))
}

// handlePublish pays for and publishes the session's booking. It returns
// HTTP 201 with the booking, 402 when payment is not confirmed, 409 while
// another publish is running or a slot is already sold, and 422 with every
// message when the creative is invalid.
func (h *Handler) handlePublish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if !h.decode(w, r, &req) {
		return
	}
	b, err := h.svc.Publish(r.Context(), chi.URLParam(r, "id"), req.Method)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, bookingResponse{
		ID:            b.ID,
		MerchantID:    b.MerchantID,
		Target:        b.Target,
		Placement:     b.PlacementID,
		Period:        b.PeriodID,
		Neighborhoods: b.NeighborhoodIDs,
		Creative:      domain.Envelope(b.Creative),
		Active:        b.Active,
		ExpiresAt:     b.ExpiresAt,
		CreatedAt:     b.CreatedAt,
	})
}
