package services

import (
	"log"

	"geo-round-service/internal/domain"
	"geo-round-service/internal/platform/obs"
	"geo-round-service/internal/random"
	"geo-round-service/internal/regions"
)

const (
	// Attempts given to the sampler for each selected region.
	perRegionAttempts = 8

	cityFallbackJitterKm    = 2.0
	countryFallbackJitterKm = 5.0

	// Size thresholds (km) steering strategy choice in country sampling.
	smallRegionRadiusKm = 3
	largeRegionRadiusKm = 10
)

// fallbackCities are the catalog-wide last resort: well-known, densely
// covered coordinates that guarantee RandomLocation is total even when
// every sampling layer fails.
var fallbackCities = []domain.Coordinate{
	{Lat: 48.8566, Lng: 2.3522},    // Paris
	{Lat: 51.5074, Lng: -0.1278},   // London
	{Lat: 40.7128, Lng: -74.0060},  // New York
	{Lat: 35.6762, Lng: 139.6503},  // Tokyo
	{Lat: -33.8688, Lng: 151.2093}, // Sydney
}

// Orchestrator is the top-level sampling entry point. It owns the region
// registry and randomness source; both are immutable after construction so
// the orchestrator is safe for concurrent use.
type Orchestrator struct {
	registry *regions.Registry
	src      random.Source

	// sampleFn is Sample in production; tests substitute it to drive the
	// fallback layers.
	sampleFn func(domain.Region, Strategy, int, random.Source) (domain.Coordinate, error)
}

func NewOrchestrator(registry *regions.Registry, src random.Source) *Orchestrator {
	return &Orchestrator{registry: registry, src: src, sampleFn: Sample}
}

// RandomLocation returns a valid coordinate from a weighted-random region.
//
// Up to maxAttempts regions are tried; if all are exhausted the result is
// one of five fixed well-known cities plus a small offset, so the function
// never fails outright.
func (o *Orchestrator) RandomLocation(maxAttempts int) domain.Coordinate {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		region := o.registry.SelectWeighted(o.src)
		strategy := RandomStrategy(o.src)

		c, err := o.sampleFn(region, strategy, perRegionAttempts, o.src)
		if err == nil && c.Valid() {
			return c
		}
	}

	obs.SamplerFallbacks.WithLabelValues("fallback-city").Inc()
	log.Printf("op=randomLocation.fallback attempts=%d", maxAttempts)

	city := fallbackCities[random.IntBetween(o.src, 0, len(fallbackCities)-1)]
	return jitter(city, cityFallbackJitterKm, o.src)
}

// LocationForCountry returns a valid coordinate inside a region tagged with
// the given country. The constraint is best-effort: an unknown country
// silently delegates to RandomLocation rather than failing.
func (o *Orchestrator) LocationForCountry(name string, maxAttempts int) domain.Coordinate {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	candidates := o.registry.ForCountry(name)
	if len(candidates) == 0 {
		log.Printf("op=locationForCountry.miss country=%q", name)
		return o.RandomLocation(maxAttempts)
	}

	// Shuffle so repeated calls do not always favor catalog order.
	random.Shuffle(o.src, candidates)

	// Split the budget evenly across the shuffled regions.
	perRegion := maxAttempts / len(candidates)
	if perRegion < 1 {
		perRegion = 1
	}

	for _, region := range candidates {
		strategy := o.strategyForSize(region)
		c, err := o.sampleFn(region, strategy, perRegion, o.src)
		if err == nil && c.Valid() {
			return c
		}
	}

	obs.SamplerFallbacks.WithLabelValues("country-region").Inc()
	log.Printf("op=locationForCountry.fallback country=%q regions=%d", name, len(candidates))

	return jitter(candidates[0].Center, countryFallbackJitterKm, o.src)
}

// strategyForSize biases strategy choice by region size: large regions get
// dispersing strategies, small ones get concentrating strategies, medium
// ones draw freely.
func (o *Orchestrator) strategyForSize(r domain.Region) Strategy {
	switch {
	case r.RadiusKm >= largeRegionRadiusKm:
		if o.src.Float64() < 0.5 {
			return StrategyScattered
		}
		return StrategyEdgeBiased
	case r.RadiusKm <= smallRegionRadiusKm:
		if o.src.Float64() < 0.5 {
			return StrategyUniform
		}
		return StrategyCenterBiased
	default:
		return RandomStrategy(o.src)
	}
}
