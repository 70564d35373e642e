package ports

import (
	"context"

	"geo-round-service/internal/domain"
)

// CoverageCache stores oracle confirmations keyed by coarse coordinate so
// repeat lookups near a known panorama skip the network round trip.
// A cache miss is (zero result, false, nil); errors are reserved for the
// backing store misbehaving and callers treat them as misses.
type CoverageCache interface {
	Get(ctx context.Context, c domain.Coordinate) (CoverageResult, bool, error)
	Put(ctx context.Context, c domain.Coordinate, res CoverageResult) error
}
