// Command regiontool regenerates regions.json from the REST Countries API
// and optionally seeds the regions table in Postgres.
//
// Usage:
//
//	regiontool -out regions.json
//	regiontool -seed -database-url postgres://...
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"

	"geo-round-service/internal/adapters/repositories"
	"geo-round-service/internal/domain"
	"geo-round-service/internal/platform/db"
)

const countriesURL = "https://restcountries.com/v3.1/all?fields=name,latlng,area,region,subregion"

type apiCountry struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	LatLng    []float64 `json:"latlng"`
	Area      float64   `json:"area"`
	Region    string    `json:"region"`
	Subregion string    `json:"subregion"`
}

type catalogEntry struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Radius    float64 `json:"radius"`
	Name      string  `json:"name"`
	Continent string  `json:"continent"`
	Type      string  `json:"type"`
}

type catalogFile struct {
	Regions []catalogEntry `json:"regions"`
}

func main() {
	out := flag.String("out", "regions.json", "output path for the generated catalog")
	minArea := flag.Float64("min-area", 10000, "skip countries smaller than this many km²")
	seed := flag.Bool("seed", false, "seed the generated catalog into Postgres")
	databaseURL := flag.String("database-url", "", "Postgres URL (defaults to DATABASE_URL)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	entries, err := fetchCountries(*minArea)
	if err != nil {
		log.Fatal(err)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Continent != entries[j].Continent {
			return entries[i].Continent < entries[j].Continent
		}
		return entries[i].Name < entries[j].Name
	})

	data, err := json.MarshalIndent(catalogFile{Regions: entries}, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote catalog path=%s regions=%d", *out, len(entries))

	if *seed {
		url := *databaseURL
		if url == "" {
			url = os.Getenv("DATABASE_URL")
		}
		if url == "" {
			log.Fatal("-seed requires -database-url or DATABASE_URL")
		}
		if err := seedDatabase(url, entries); err != nil {
			log.Fatal(err)
		}
		log.Printf("Seeded regions table regions=%d", len(entries))
	}
}

func fetchCountries(minArea float64) ([]catalogEntry, error) {
	client := &http.Client{Timeout: 30 * time.Second}

	resp, err := client.Get(countriesURL)
	if err != nil {
		return nil, fmt.Errorf("fetch countries: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch countries: status %d", resp.StatusCode)
	}

	var countries []apiCountry
	if err := json.NewDecoder(resp.Body).Decode(&countries); err != nil {
		return nil, fmt.Errorf("fetch countries: decode response: %w", err)
	}

	entries := make([]catalogEntry, 0, len(countries))
	skipped := 0
	for _, c := range countries {
		if c.Name.Common == "" || len(c.LatLng) != 2 {
			skipped++
			continue
		}
		if c.Area < minArea {
			skipped++
			continue
		}
		entries = append(entries, catalogEntry{
			Lat:       c.LatLng[0],
			Lng:       c.LatLng[1],
			Radius:    radiusForArea(c.Area),
			Name:      c.Name.Common,
			Continent: continentName(c.Region, c.Subregion),
			Type:      domain.RegionTypeCountry,
		})
	}

	if skipped > 0 {
		log.Printf("Skipped countries count=%d reason=missing-data-or-small", skipped)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("fetch countries: no usable entries")
	}
	return entries, nil
}

// radiusForArea buckets a country's equivalent circular radius into the
// game-scale radii the sampler expects.
func radiusForArea(areaKm2 float64) float64 {
	if areaKm2 <= 0 {
		return 2
	}
	r := math.Sqrt(areaKm2 / math.Pi)
	switch {
	case r < 50:
		return 2
	case r < 200:
		return 4
	case r < 500:
		return 8
	case r < 1000:
		return 12
	default:
		return 20
	}
}

// continentName folds the API's region/subregion pair into the continent
// tags the catalog uses; the Americas split on subregion.
func continentName(region, subregion string) string {
	switch region {
	case "Africa", "Asia", "Europe", "Oceania":
		return region
	case "Americas":
		switch subregion {
		case "Northern America", "Central America", "Caribbean":
			return "North America"
		}
		return "South America"
	default:
		return "Unknown"
	}
}

func seedDatabase(databaseURL string, entries []catalogEntry) error {
	pool, err := db.Open(databaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx := context.Background()
	if err := repositories.InitSchema(ctx, pool); err != nil {
		return err
	}

	catalog := make([]domain.Region, 0, len(entries))
	for _, e := range entries {
		catalog = append(catalog, domain.Region{
			Name:      e.Name,
			Country:   e.Name,
			Continent: e.Continent,
			Type:      e.Type,
			Center:    domain.Coordinate{Lat: e.Lat, Lng: e.Lng},
			RadiusKm:  e.Radius,
		})
	}

	return repositories.SeedFromCatalog(ctx, pool, catalog)
}
