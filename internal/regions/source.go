package regions

import (
	"context"

	"geo-round-service/internal/domain"
)

// CatalogSource implements the RegionSource port over regions.json: the
// file at Path when set, otherwise the catalog embedded in the binary.
type CatalogSource struct {
	Path string
}

func (s CatalogSource) ListRegions(ctx context.Context) ([]domain.Region, error) {
	if s.Path != "" {
		return LoadCatalog(s.Path)
	}
	return EmbeddedCatalog()
}
