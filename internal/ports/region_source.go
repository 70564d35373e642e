package ports

import (
	"context"

	"geo-round-service/internal/domain"
)

// Port: a boundary for loading the region catalog from a data source
// (embedded file, disk, or database). The catalog is read once at startup.
type RegionSource interface {
	ListRegions(ctx context.Context) ([]domain.Region, error)
}
