package domain

import (
	"errors"
	"fmt"
)

// Catalog entry kinds: whole countries vs. states/cities inside one.
const (
	RegionTypeCountry = "country"
	RegionTypeRegion  = "region"
)

// Region is a named circular sampling area. Regions are static
// configuration loaded once at startup and never mutated.
type Region struct {
	Name      string
	Country   string
	Continent string
	Type      string
	Center    Coordinate
	RadiusKm  float64
}

// Validate checks the region invariants: a valid center coordinate and a
// radius in (0, 1000] km. A region failing this check is a configuration
// (or caller programming) error, never retried.
func (r Region) Validate() error {
	if r.Name == "" {
		return errors.New("region: name must be non-empty")
	}
	if err := r.Center.Validate(); err != nil {
		return fmt.Errorf("region %q: center: %w", r.Name, err)
	}
	if r.RadiusKm <= 0 || r.RadiusKm > 1000 {
		return fmt.Errorf("region %q: radius %v km out of range (0,1000]", r.Name, r.RadiusKm)
	}
	return nil
}

// Contains reports whether the coordinate lies within the region circle,
// with a small tolerance for the jitter sampling applies.
func (r Region) Contains(c Coordinate, toleranceKm float64) bool {
	return r.Center.DistanceKm(c) <= r.RadiusKm+toleranceKm
}
