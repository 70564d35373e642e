package ports

import (
	"context"
	"errors"

	"geo-round-service/internal/domain"
)

// ErrNoCoverage is reported by a CoverageOracle when no usable imagery
// exists near the queried coordinate. It is an expected miss, retried by
// drawing a fresh candidate, never surfaced to callers as-is.
var ErrNoCoverage = errors.New("no imagery coverage near coordinate")

// CoverageResult is an oracle confirmation: the coordinate snapped to the
// nearest confirmed panorama and that panorama's external ID.
type CoverageResult struct {
	Location domain.Coordinate
	PanoID   string
}

// CoverageOracle is the external "is this coordinate usable" check.
// Implementations are network-bound and may be slow or fail transiently;
// callers bound each check with the context.
type CoverageOracle interface {
	// CheckCoverage searches for confirmed imagery within radiusMeters of
	// the coordinate. Returns ErrNoCoverage when nothing is found.
	CheckCoverage(ctx context.Context, c domain.Coordinate, radiusMeters int) (CoverageResult, error)
}
