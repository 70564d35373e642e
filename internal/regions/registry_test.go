package regions

import (
	"errors"
	"testing"

	"geo-round-service/internal/domain"
	"geo-round-service/internal/random"
)

func testCatalog() []domain.Region {
	return []domain.Region{
		{
			Name: "France", Country: "France", Continent: "Europe",
			Type:   domain.RegionTypeCountry,
			Center: domain.Coordinate{Lat: 46, Lng: 2}, RadiusKm: 8,
		},
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
			Name: "United States", Country: "United States", Continent: "North America",
			Type:   domain.RegionTypeCountry,
			Center: domain.Coordinate{Lat: 38, Lng: -97}, RadiusKm: 20,
		},
	}
}

func TestNewRegistryRejectsBadCatalogs(t *testing.T) {
	src := random.NewSeededSource(1)

	if _, err := NewRegistry(nil, src); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("empty catalog error = %v, want ErrEmptyCatalog", err)
	}

	bad := testCatalog()
	bad[1].RadiusKm = -1
	if _, err := NewRegistry(bad, src); err == nil {
		t.Fatal("catalog with invalid region accepted")
	}
}

func TestSelectWeightedCoversCatalog(t *testing.T) {
	src := random.NewSeededSource(2)
	reg, err := NewRegistry(testCatalog(), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	counts := map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[reg.SelectWeighted(src).Name]++
	}

	// Every region should be reachable with a share bounded by the weight
	// formula: base 1, log-size bonus at most log(21)/10, jitter at most
	// 0.5. No region can fall under ~15% or climb over ~40% of draws.
	for _, r := range testCatalog() {
		share := float64(counts[r.Name]) / 10000
		if share < 0.15 || share > 0.40 {
			t.Errorf("region %q drawn %.1f%% of the time, want within [15%%,40%%]", r.Name, share*100)
		}
	}
}

func TestForCountry(t *testing.T) {
	src := random.NewSeededSource(3)
	reg, err := NewRegistry(testCatalog(), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	japan := reg.ForCountry("Japan")
	if len(japan) != 2 {
		t.Fatalf("ForCountry(Japan) returned %d regions, want 2", len(japan))
	}

	// Normalization: case and whitespace folded.
	if got := reg.ForCountry("  jApAn "); len(got) != 2 {
		t.Fatalf("normalized lookup returned %d regions, want 2", len(got))
	}

	// Fuzzy fallback: substring in either direction.
	if got := reg.ForCountry("united"); len(got) != 1 || got[0].Name != "United States" {
		t.Fatalf("substring lookup = %v", got)
	}
	if got := reg.ForCountry("the United States of America"); len(got) != 1 {
		t.Fatalf("superstring lookup returned %d regions, want 1", len(got))
	}

	// Absence is empty, not an error.
	if got := reg.ForCountry("Atlantis"); len(got) != 0 {
		t.Fatalf("unknown country returned %d regions", len(got))
	}
	if got := reg.ForCountry(""); got != nil {
		t.Fatalf("empty query returned %v", got)
	}
}

func TestEmbeddedCatalog(t *testing.T) {
	regs, err := EmbeddedCatalog()
	if err != nil {
		t.Fatalf("embedded catalog failed to parse: %v", err)
	}
	if len(regs) < 50 {
		t.Fatalf("embedded catalog has %d regions, expected a worldwide set", len(regs))
	}

	continents := map[string]bool{}
	for _, r := range regs {
		if err := r.Validate(); err != nil {
			t.Errorf("embedded region invalid: %v", err)
		}
		continents[r.Continent] = true
	}
	for _, c := range []string{"Africa", "Asia", "Europe", "North America", "South America", "Oceania"} {
		if !continents[c] {
			t.Errorf("no regions on continent %q", c)
		}
	}

	// Sub-region entries inherit their country tag from the name suffix.
	src := random.NewSeededSource(4)
	reg, err := NewRegistry(regs, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	japan := reg.ForCountry("japan")
	if len(japan) < 2 {
		t.Fatalf("embedded catalog has %d Japan regions, want country + sub-regions", len(japan))
	}
}
