package httpadapter

import (
	"net/http"
)

// handleCatalog returns the sellable placements, periods, neighborhoods and
// creative templates.
func (h *Handler) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Catalog())
}

// handleAvailability lists every neighborhood with its availability for the
// periods named by the repeated `period` query parameter.
func (h *Handler) handleAvailability(w http.ResponseWriter, r *http.Request) {
	periods := r.URL.Query()["period"]
	if len(periods) == 0 {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "at least one period is required"})
		return
	}
	avail, err := h.svc.Availability(r.Context(), periods)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, avail)
}
