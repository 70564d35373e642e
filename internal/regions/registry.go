// Package regions holds the immutable region catalog and its derived
// lookup indexes. A Registry is built once at startup and injected into
// the sampling layer; after construction it is read-only and safe for
// concurrent use without locking.
package regions

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"geo-round-service/internal/domain"
	"geo-round-service/internal/random"
)

// ErrEmptyCatalog is returned when a Registry is built from zero regions.
// Without a catalog the system cannot produce any location, so this is a
// fatal configuration error rather than something a fallback can absorb.
var ErrEmptyCatalog = errors.New("regions: catalog is empty")

// Registry indexes the region catalog two ways: a prefix-sum table for
// O(log n) weighted selection and a country-name map for filtered lookups.
type Registry struct {
	regions []domain.Region

	// prefix[i] is the cumulative weight of regions[0..i]; the final
	// entry is the total weight.
	prefix []float64

	byCountry map[string][]int
}

// NewRegistry validates the catalog and builds both indexes. Selection
// weights favor larger regions modestly and carry a per-build random
// jitter so repeated process starts do not reproduce the exact same
// ordering effects.
func NewRegistry(catalog []domain.Region, src random.Source) (*Registry, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	regs := make([]domain.Region, len(catalog))
	copy(regs, catalog)

	prefix := make([]float64, len(regs))
	byCountry := make(map[string][]int)

	total := 0.0
	for i, r := range regs {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("regions: catalog entry %d: %w", i, err)
		}

		total += regionWeight(r, src)
		prefix[i] = total

		key := normalizeName(r.Country)
		byCountry[key] = append(byCountry[key], i)
	}

	return &Registry{regions: regs, prefix: prefix, byCountry: byCountry}, nil
}

// regionWeight implements the selection weight: a base share for every
// region, a logarithmic bonus for size, and noise worth up to half a base
// share.
func regionWeight(r domain.Region, src random.Source) float64 {
	return 1 + math.Log(r.RadiusKm+1)/10 + src.Float64()*0.5
}

// All returns the catalog. Callers must treat the slice as read-only.
func (reg *Registry) All() []domain.Region { return reg.regions }

// Len returns the number of regions in the catalog.
func (reg *Registry) Len() int { return len(reg.regions) }

// SelectWeighted draws one region with probability proportional to its
// build-time weight, in O(log n) via binary search on the prefix sums.
func (reg *Registry) SelectWeighted(src random.Source) domain.Region {
	total := reg.prefix[len(reg.prefix)-1]
	target := src.Float64() * total

	idx := sort.SearchFloat64s(reg.prefix, target)
	if idx >= len(reg.regions) {
		idx = len(reg.regions) - 1
	}
	return reg.regions[idx]
}

// ForCountry returns every region tagged with the given country name.
// Lookup is exact on the normalized name first; on a miss it falls back to
// a case-insensitive substring match in either direction ("United" finds
// "United States" and "United Kingdom"). An empty result is not an error:
// the orchestrator has its own fallback.
func (reg *Registry) ForCountry(name string) []domain.Region {
	key := normalizeName(name)
	if key == "" {
		return nil
	}

	if idxs, ok := reg.byCountry[key]; ok {
		return reg.collect(idxs)
	}

	var out []domain.Region
	for country, idxs := range reg.byCountry {
		if strings.Contains(country, key) || strings.Contains(key, country) {
			out = append(out, reg.collect(idxs)...)
		}
	}
	return out
}

func (reg *Registry) collect(idxs []int) []domain.Region {
	out := make([]domain.Region, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, reg.regions[i])
	}
	return out
}

// normalizeName folds case and collapses interior whitespace so lookups
// are insensitive to formatting.
func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
