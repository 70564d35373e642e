package services

import (
	"testing"

	"geo-round-service/internal/domain"
	"geo-round-service/internal/random"
	"geo-round-service/internal/regions"
)

func testRegistry(t *testing.T, src random.Source) *regions.Registry {
	t.Helper()
	catalog := []domain.Region{
		testRegion(8),
		{
			Name: "Japan", Country: "Japan", Continent: "Asia",
			Type:   domain.RegionTypeCountry,
			Center: domain.Coordinate{Lat: 36, Lng: 138}, RadiusKm: 8,
		},
		{
			Name: "Tokyo, Japan", Country: "Japan", Continent: "Asia",
			Type:   domain.RegionTypeRegion,
			Center: domain.Coordinate{Lat: 35.6762, Lng: 139.6503}, RadiusKm: 3,
		},
		{
			Name: "Australia", Country: "Australia", Continent: "Oceania",
			Type:   domain.RegionTypeCountry,
			Center: domain.Coordinate{Lat: -27, Lng: 133}, RadiusKm: 20,
		},
	}
	reg, err := regions.NewRegistry(catalog, src)
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return reg
}

func TestRandomLocationDomainInvariant(t *testing.T) {
	src := random.NewSeededSource(300)
	o := NewOrchestrator(testRegistry(t, src), src)

	for i := 0; i < 10000; i++ {
		c := o.RandomLocation(3)
		if err := c.Validate(); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
}

func TestRandomLocationLandsInsideSomeRegion(t *testing.T) {
	src := random.NewSeededSource(301)
	reg := testRegistry(t, src)
	o := NewOrchestrator(reg, src)

	const n = 5000
	stray := 0
	for i := 0; i < n; i++ {
		c := o.RandomLocation(3)
		contained := false
		for _, r := range reg.All() {
			if r.Contains(c, candidateJitterKm+centerFallbackJitterKm) {
				contained = true
				break
			}
		}
		if !contained {
			stray++
		}
	}
	// Every sample should come from a catalog region; the city fallback
	// only triggers when all layers fail, which healthy sampling never hits.
	if stray != 0 {
		t.Fatalf("%d of %d samples outside every catalog region", stray, n)
	}
}

func TestLocationForCountry(t *testing.T) {
	src := random.NewSeededSource(302)
	reg := testRegistry(t, src)
	o := NewOrchestrator(reg, src)

	japanRegions := reg.ForCountry("Japan")

	for i := 0; i < 5000; i++ {
		c := o.LocationForCountry("Japan", 10)
		if err := c.Validate(); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		contained := false
		for _, r := range japanRegions {
			if r.Contains(c, candidateJitterKm+countryFallbackJitterKm) {
				contained = true
				break
			}
		}
		if !contained {
			t.Fatalf("call %d: %v not inside any Japan region", i, c)
		}
	}
}

func TestLocationForCountryUnknownDelegates(t *testing.T) {
	src := random.NewSeededSource(303)
	o := NewOrchestrator(testRegistry(t, src), src)

	// Unknown country is best-effort: behaves like RandomLocation, never
	// fails.
	for i := 0; i < 1000; i++ {
		c := o.LocationForCountry("Atlantis", 3)
		if err := c.Validate(); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
	}
}

func TestStrategyForSize(t *testing.T) {
	src := random.NewSeededSource(304)
	o := NewOrchestrator(testRegistry(t, src), src)

	for i := 0; i < 500; i++ {
		large := o.strategyForSize(testRegionWithRadius(20))
		if large != StrategyScattered && large != StrategyEdgeBiased {
			t.Fatalf("large region got %s", large)
		}

		small := o.strategyForSize(testRegionWithRadius(2))
		if small != StrategyUniform && small != StrategyCenterBiased {
			t.Fatalf("small region got %s", small)
		}
	}

	seen := map[Strategy]bool{}
	for i := 0; i < 1000; i++ {
		seen[o.strategyForSize(testRegionWithRadius(5))] = true
	}
	if len(seen) != int(strategyCount) {
		t.Fatalf("medium region drew only %d strategies", len(seen))
	}
}

func testRegionWithRadius(radiusKm float64) domain.Region {
	r := testRegion(8)
	r.RadiusKm = radiusKm
	return r
}

func TestRandomLocationFallbackTotality(t *testing.T) {
	src := random.NewSeededSource(305)
	o := NewOrchestrator(testRegistry(t, src), src)

	// Force every sampling attempt to fail validation: the catalog-wide
	// fallback must still return a structurally valid coordinate near one
	// of the fixed cities rather than erroring.
	o.sampleFn = func(domain.Region, Strategy, int, random.Source) (domain.Coordinate, error) {
		return domain.Coordinate{}, nil
	}

	for i := 0; i < 1000; i++ {
		c := o.RandomLocation(4)
		if err := c.Validate(); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}

		nearCity := false
		for _, city := range fallbackCities {
			if city.DistanceKm(c) <= cityFallbackJitterKm+0.1 {
				nearCity = true
				break
			}
		}
		if !nearCity {
			t.Fatalf("call %d: %v not near any fallback city", i, c)
		}
	}
}

func TestLocationForCountryFallback(t *testing.T) {
	src := random.NewSeededSource(306)
	reg := testRegistry(t, src)
	o := NewOrchestrator(reg, src)

	o.sampleFn = func(domain.Region, Strategy, int, random.Source) (domain.Coordinate, error) {
		return domain.Coordinate{}, nil
	}

	japanRegions := reg.ForCountry("Japan")

	for i := 0; i < 1000; i++ {
		c := o.LocationForCountry("Japan", 10)
		if err := c.Validate(); err != nil {
			t.Fatalf("call %d: %v", i, err)
		}

		// Region-level exhaustion falls back to a shuffled region's center
		// plus a bounded offset, so the country constraint still holds.
		nearCenter := false
		for _, r := range japanRegions {
			if r.Center.DistanceKm(c) <= countryFallbackJitterKm+0.1 {
				nearCenter = true
				break
			}
		}
		if !nearCenter {
			t.Fatalf("call %d: %v not near any Japan region center", i, c)
		}
	}
}
