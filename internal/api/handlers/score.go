package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"geo-round-service/internal/api/dto"
	"geo-round-service/internal/domain"
)

// ScoreHandler computes the score for a player guess against a round
// target.
type ScoreHandler struct{}

func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ScoreRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	target := domain.Coordinate{Lat: req.Target.Lat, Lng: req.Target.Lng}
	guess := domain.Coordinate{Lat: req.Guess.Lat, Lng: req.Guess.Lng}

	if err := target.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid target coordinate")
		return
	}
	if err := guess.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid guess coordinate")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ScoreResponse{
		Score:      domain.Score(target, guess),
		DistanceKm: target.DistanceKm(guess),
	})
}
