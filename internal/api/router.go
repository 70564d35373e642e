package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"geo-round-service/internal/api/handlers"
	"geo-round-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(orchestrator *services.Orchestrator, rounds *services.RoundService) http.Handler {
	mux := http.NewServeMux()

	locationHandler := &handlers.LocationHandler{Orchestrator: orchestrator}
	roundHandler := &handlers.RoundHandler{Rounds: rounds}
	scoreHandler := &handlers.ScoreHandler{}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/api/location", locationHandler.Get)
	mux.HandleFunc("/api/round", roundHandler.New)
	mux.HandleFunc("/api/score", scoreHandler.Score)
	mux.Handle("/metrics", promhttp.Handler())

	return requestIDMiddleware(loggingMiddleware(mux))
}
