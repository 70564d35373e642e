package regions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"geo-round-service/internal/domain"
)

// Catalog shipped with the binary. Regenerate with cmd/regiontool.
//
//go:embed regions.json
var embeddedCatalog []byte

type catalogFile struct {
	Regions []catalogEntry `json:"regions"`
}

type catalogEntry struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Radius    float64 `json:"radius"`
	Name      string  `json:"name"`
	Continent string  `json:"continent"`
	Type      string  `json:"type"`
}

// EmbeddedCatalog parses the regions.json compiled into the binary.
func EmbeddedCatalog() ([]domain.Region, error) {
	return parseCatalog(embeddedCatalog)
}

// LoadCatalog reads a regions.json file from disk, for deployments that
// override the embedded catalog.
func LoadCatalog(path string) ([]domain.Region, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: read %q: %w", path, err)
	}
	regs, err := parseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("load catalog %q: %w", path, err)
	}
	return regs, nil
}

func parseCatalog(data []byte) ([]domain.Region, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	regs := make([]domain.Region, 0, len(file.Regions))
	for i, e := range file.Regions {
		r := domain.Region{
			Name:      e.Name,
			Country:   countryTag(e.Name, e.Type),
			Continent: e.Continent,
			Type:      e.Type,
			Center:    domain.Coordinate{Lat: e.Lat, Lng: e.Lng},
			RadiusKm:  e.Radius,
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("parse catalog: entry %d: %w", i, err)
		}
		regs = append(regs, r)
	}

	return regs, nil
}

// countryTag derives the country a catalog entry belongs to. Country
// entries are their own tag; sub-region entries are named
// "<Place>, <Country>" (regiontool convention inherited from the catalog
// generator).
func countryTag(name, typ string) string {
	if typ != domain.RegionTypeRegion {
		return name
	}
	if idx := strings.LastIndex(name, ", "); idx >= 0 {
		return name[idx+2:]
	}
	return name
}
