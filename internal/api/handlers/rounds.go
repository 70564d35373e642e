package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"geo-round-service/internal/api/dto"
	"geo-round-service/internal/services"
)

// RoundHandler produces verified street-view rounds.
type RoundHandler struct {
	Rounds *services.RoundService
}

// New samples and confirms a round target, optionally constrained to
// ?country=. Oracle exhaustion maps to 503: the client should prompt the
// player to try again, since it usually means the imagery service is down.
func (h *RoundHandler) New(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	country := strings.TrimSpace(r.URL.Query().Get("country"))

	round, err := h.Rounds.RandomStreetViewLocation(r.Context(), country)
	if err != nil {
		if errors.Is(err, services.ErrNoUsableLocation) {
			writeError(w, r, http.StatusServiceUnavailable, "no usable location found, try again")
			return
		}
		log.Printf("new round failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RoundResponse{
		Location:   dto.CoordinateResponse{Lat: round.Coordinate.Lat, Lng: round.Coordinate.Lng},
		HeadingDeg: round.HeadingDeg,
		PitchDeg:   round.PitchDeg,
		PanoID:     round.PanoID,
	})
}
