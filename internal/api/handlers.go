// Package api implements the shiori JSON API using chi.
package api

import "net/http"

// Handler holds API route handlers.
type Handler struct {
	svc *Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetTrip handles GET /api/trip: the full event sequence plus facets.
func (h *Handler) GetTrip(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Trip())
}

// GetView handles GET /api/view: the filtered view for the filter state
// carried in the query parameters (day, category, area, map_only).
func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	state := h.svc.StateFromQuery(r.URL.Query())
	writeJSON(w, http.StatusOK, h.svc.View(state))
}
