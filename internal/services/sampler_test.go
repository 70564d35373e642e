package services

import (
	"testing"

	"geo-round-service/internal/domain"
	"geo-round-service/internal/random"
)

func TestSampleProducesValidCoordinates(t *testing.T) {
	src := random.NewSeededSource(200)
	region := testRegion(8)

	for i := 0; i < 10000; i++ {
		c, err := Sample(region, StrategyUniform, 8, src)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := c.Validate(); err != nil {
			t.Fatalf("sample %d invalid: %v", i, err)
		}
	}
}

func TestSampleContainmentWithJitter(t *testing.T) {
	src := random.NewSeededSource(201)
	region := testRegion(8)

	const n = 10000
	outside := 0
	for i := 0; i < n; i++ {
		c, err := Sample(region, StrategyCenterBiased, 8, src)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// The ~10% strategy override can swap in any strategy, so the
		// bound is the region radius plus jitter, not the center bias.
		if region.Center.DistanceKm(c) > region.RadiusKm*1.01+candidateJitterKm {
			outside++
		}
	}
	if frac := float64(outside) / n; frac > 0.01 {
		t.Fatalf("%.2f%% of samples escaped the region", frac*100)
	}
}

func TestSampleRejectsInvalidRegion(t *testing.T) {
	src := random.NewSeededSource(202)

	bad := testRegion(8)
	bad.RadiusKm = 2000
	if _, err := Sample(bad, StrategyUniform, 8, src); err == nil {
		t.Fatal("oversized region accepted")
	}

	bad = testRegion(8)
	bad.Center = domain.Coordinate{Lat: 95, Lng: 0}
	if _, err := Sample(bad, StrategyUniform, 8, src); err == nil {
		t.Fatal("invalid center accepted")
	}
}

func TestSampleFallsBackToRegionCenter(t *testing.T) {
	src := random.NewSeededSource(203)

	// A region hugging the (0,0) sentinel: candidates that land exactly on
	// it are rejected, everything else is valid, so sampling still returns
	// a valid coordinate every time.
	region := domain.Region{
		Name: "Gulf of Guinea", Country: "None", Continent: "Africa",
		Type:   domain.RegionTypeCountry,
		Center: domain.Coordinate{Lat: 0.05, Lng: 0.05}, RadiusKm: 20,
	}

	for i := 0; i < 2000; i++ {
		c, err := Sample(region, StrategyScattered, 1, src)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !c.Valid() {
			t.Fatalf("invalid coordinate %v", c)
		}
	}
}
