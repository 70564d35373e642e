package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"geo-round-service/internal/domain"
	"geo-round-service/internal/platform/obs"
	"geo-round-service/internal/ports"
	"geo-round-service/internal/random"
)

// ErrNoUsableLocation is returned when the full oracle attempt budget is
// spent without a confirmation. This is the one error the top-level caller
// must handle: it usually means the remote service is down or the catalog
// is misconfigured, not ordinary sampling variance.
var ErrNoUsableLocation = errors.New("no usable location found")

const (
	// DefaultOracleAttempts bounds the sample -> check cycle.
	DefaultOracleAttempts = 50

	// Search radius handed to the oracle around each candidate.
	oracleRadiusMeters = 50000

	// Budget handed to the orchestrator per candidate draw.
	candidateAttempts = 5
)

// RoundService wraps the sampling orchestrator with the external coverage
// oracle, retrying the whole sample -> check cycle until a playable round
// is found or the attempt ceiling is exhausted.
type RoundService struct {
	Orchestrator *Orchestrator
	Oracle       ports.CoverageOracle
	Src          random.Source

	// MaxAttempts overrides DefaultOracleAttempts when positive.
	MaxAttempts int
}

// RandomStreetViewLocation produces a confirmed round target. countryName
// is optional; empty means worldwide. Each failed or uncovered candidate is
// discarded and a fresh one drawn; the same candidate is never re-checked.
func (s *RoundService) RandomStreetViewLocation(ctx context.Context, countryName string) (domain.RoundLocation, error) {
	attempts := s.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultOracleAttempts
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return domain.RoundLocation{}, fmt.Errorf("street view location: %w", err)
		}

		var candidate domain.Coordinate
		if countryName != "" {
			candidate = s.Orchestrator.LocationForCountry(countryName, candidateAttempts)
		} else {
			candidate = s.Orchestrator.RandomLocation(candidateAttempts)
		}

		obs.OracleChecksTotal.Inc()
		res, err := s.Oracle.CheckCoverage(ctx, candidate, oracleRadiusMeters)
		if err != nil {
			if errors.Is(err, ports.ErrNoCoverage) {
				obs.OracleMissesTotal.Inc()
				continue
			}
			if ctx.Err() != nil {
				return domain.RoundLocation{}, fmt.Errorf("street view location: %w", ctx.Err())
			}
			// Transient oracle failure: log, discard the candidate, move on.
			obs.OracleErrorsTotal.Inc()
			log.Printf("op=round.oracleError attempt=%d err=%v", attempt, err)
			continue
		}

		obs.RoundsTotal.WithLabelValues("ok").Inc()
		return domain.RoundLocation{
			Coordinate: res.Location,
			HeadingDeg: s.Src.Float64() * 360,
			PitchDeg:   (s.Src.Float64() - 0.5) * 20,
			PanoID:     res.PanoID,
		}, nil
	}

	obs.RoundsTotal.WithLabelValues("exhausted").Inc()
	log.Printf("op=round.exhausted attempts=%d country=%q", attempts, countryName)

	return domain.RoundLocation{}, fmt.Errorf("street view location: %d attempts: %w", attempts, ErrNoUsableLocation)
}
