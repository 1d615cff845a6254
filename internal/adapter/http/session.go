package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bairro-ads/internal/core/domain"
	"bairro-ads/internal/core/workflow"
)

type startSessionRequest struct {
	MerchantID       string `json:"merchant_id"`
	MerchantName     string `json:"merchant_name"`
	MerchantCategory string `json:"merchant_category"`
}

type placementRequest struct {
	Placement domain.PlacementID `json:"placement"`
}

type periodRequest struct {
	Period string `json:"period"`
}

type neighborhoodsRequest struct {
	Neighborhoods []string `json:"neighborhoods"`
}

type addonRequest struct {
	Selected bool `json:"selected"`
}

// handleStartSession opens a purchase flow and returns its first view
// with HTTP 201.
func (h *Handler) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if !h.decode(w, r, &req) {
		return
	}
	v, err := h.svc.StartSession(r.Context(), domain.Merchant{
		ID:       req.MerchantID,
		Name:     req.MerchantName,
		Category: req.MerchantCategory,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, v)
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	h.respondView(w, r)(h.svc.GetSession(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) handlePlacement(w http.ResponseWriter, r *http.Request) {
	var req placementRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respondView(w, r)(h.svc.ChoosePlacement(r.Context(), chi.URLParam(r, "id"), req.Placement))
}

func (h *Handler) handlePeriod(w http.ResponseWriter, r *http.Request) {
	var req periodRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respondView(w, r)(h.svc.ChoosePeriod(r.Context(), chi.URLParam(r, "id"), req.Period))
}

func (h *Handler) handleNeighborhoods(w http.ResponseWriter, r *http.Request) {
	var req neighborhoodsRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respondView(w, r)(h.svc.ChooseNeighborhoods(r.Context(), chi.URLParam(r, "id"), req.Neighborhoods))
}

func (h *Handler) handleSelectAll(w http.ResponseWriter, r *http.Request) {
	h.respondView(w, r)(h.svc.SelectAllAvailable(r.Context(), chi.URLParam(r, "id")))
}

func (h *Handler) handleAddon(w http.ResponseWriter, r *http.Request) {
	var req addonRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respondView(w, r)(h.svc.SetCreativeAddon(r.Context(), chi.URLParam(r, "id"), req.Selected))
}

// handleCreative replaces the session creative. The body is a creative
// envelope; an unknown kind is rejected with HTTP 400.
func (h *Handler) handleCreative(w http.ResponseWriter, r *http.Request) {
	var env domain.CreativeEnvelope
	if !h.decode(w, r, &env) {
		return
	}
	payload, err := env.Payload()
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	h.respondView(w, r)(h.svc.SetCreative(r.Context(), chi.URLParam(r, "id"), payload))
}

// respondView writes the view returned by a use case call, or its error.
func (h *Handler) respondView(w http.ResponseWriter, r *http.Request) func(*workflow.View, error) {
	return func(v *workflow.View, err error) {
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, v)
	}
}
