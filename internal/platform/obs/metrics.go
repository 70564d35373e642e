package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Fallback-chain and oracle counters. The layered retry design absorbs
// failures silently by contract; these collectors are how operators tell
// healthy degradation from a misconfigured catalog or a remote outage.
var (
	SamplerFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "georound_sampler_fallbacks_total",
		Help: "Fallbacks taken per layer (region-center, fallback-city, country-region)",
	}, []string{"layer"})

	OracleChecksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "georound_oracle_checks_total",
		Help: "Coverage oracle calls issued",
	})
	OracleMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "georound_oracle_misses_total",
		Help: "Coverage oracle calls reporting no imagery",
	})
	OracleErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "georound_oracle_errors_total",
		Help: "Coverage oracle calls failing with transport or remote errors",
	})
	OracleDurationMs = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "georound_oracle_duration_ms",
		Help:    "Coverage oracle call duration in milliseconds",
		Buckets: []float64{5, 10, 20, 50, 100, 200, 500, 1000, 2000},
	})

	RoundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "georound_rounds_total",
		Help: "Street-view rounds produced, labeled by outcome (ok, exhausted)",
	}, []string{"outcome"})

	CoverageCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "georound_coverage_cache_hits_total",
		Help: "Coverage cache hits",
	})
	CoverageCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "georound_coverage_cache_misses_total",
		Help: "Coverage cache misses",
	})
)
