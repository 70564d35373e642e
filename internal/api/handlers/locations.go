package handlers

import (
	"net/http"
	"strings"

	"geo-round-service/internal/api/dto"
	"geo-round-service/internal/domain"
	"geo-round-service/internal/services"
)

// Attempts handed to the orchestrator per API request; the fallback chain
// below it guarantees a response regardless.
const orchestratorAttempts = 10

// LocationHandler exposes raw (unverified) sampled coordinates.
type LocationHandler struct {
	Orchestrator *services.Orchestrator
}

// Get returns a sampled coordinate, optionally constrained to ?country=.
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	country := strings.TrimSpace(r.URL.Query().Get("country"))

	var c domain.Coordinate
	if country != "" {
		c = h.Orchestrator.LocationForCountry(country, orchestratorAttempts)
	} else {
		c = h.Orchestrator.RandomLocation(orchestratorAttempts)
	}

	writeJSON(w, r, http.StatusOK, dto.LocationResponse{
		Location: dto.CoordinateResponse{Lat: c.Lat, Lng: c.Lng},
	})
}
