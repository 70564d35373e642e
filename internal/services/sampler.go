package services

import (
	"fmt"
	"log"

	"geo-round-service/internal/domain"
	"geo-round-service/internal/platform/obs"
	"geo-round-service/internal/random"
)

const (
	// Jitter applied to every accepted candidate, breaking residual
	// lattice patterns from floating-point repetition.
	candidateJitterKm = 0.1

	// Jitter for the region-center fallback when every attempt fails
	// validation.
	centerFallbackJitterKm = 1.0

	// Probability that the requested strategy is swapped for a random one,
	// so a fixed calling pattern still produces varied placements.
	strategyOverrideProb = 0.1
)

// Sample produces a best-effort valid coordinate inside the region.
//
// An invalid region is a caller programming error and fails fast. Attempt
// failures inside the loop are expected sampling variance and are absorbed:
// after maxAttempts the region center plus a small offset is returned,
// which is always valid because the center was validated up front.
func Sample(region domain.Region, strategy Strategy, maxAttempts int, src random.Source) (domain.Coordinate, error) {
	if err := region.Validate(); err != nil {
		return domain.Coordinate{}, fmt.Errorf("sample: %w", err)
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	if src.Float64() < strategyOverrideProb {
		strategy = RandomStrategy(src)
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		c := jitter(strategy.Candidate(region, src), candidateJitterKm, src)
		if c.Valid() {
			return c, nil
		}
	}

	// Degraded but guaranteed-valid result.
	obs.SamplerFallbacks.WithLabelValues("region-center").Inc()
	log.Printf("op=sample.fallback region=%q strategy=%s attempts=%d", region.Name, strategy, maxAttempts)

	return jitter(region.Center, centerFallbackJitterKm, src), nil
}

// jitter displaces the coordinate by up to maxKm in a uniform direction.
func jitter(c domain.Coordinate, maxKm float64, src random.Source) domain.Coordinate {
	return c.Offset(src.Float64()*maxKm, random.Angle(src, 0))
}
