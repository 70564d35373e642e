package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"geo-round-service/internal/adapters/cache"
	"geo-round-service/internal/adapters/repositories"
	"geo-round-service/internal/adapters/streetview"
	"geo-round-service/internal/api"
	"geo-round-service/internal/domain"
	"geo-round-service/internal/platform/db"
	"geo-round-service/internal/ports"
	"geo-round-service/internal/random"
	"geo-round-service/internal/regions"
	"geo-round-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, the street-view oracle)
// behind ports, builds the immutable region registry once, and starts the
// HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")
	regionsPath := os.Getenv("REGIONS_PATH")
	databaseURL := os.Getenv("DATABASE_URL")
	redisAddr := os.Getenv("REDIS_ADDR")

	svKey := os.Getenv("STREETVIEW_API_KEY")
	if strings.TrimSpace(svKey) == "" {
		log.Fatal("STREETVIEW_API_KEY is required")
	}

	ctx := context.Background()

	catalog, err := loadCatalog(ctx, databaseURL, regionsPath)
	if err != nil {
		log.Fatal(err)
	}

	src := random.NewSecureSource()

	registry, err := regions.NewRegistry(catalog, src)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Region catalog loaded regions=%d", registry.Len())

	// Coverage confirmations are cached in Redis when configured; without
	// it every oracle check goes to the network.
	var coverageCache ports.CoverageCache
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: os.Getenv("REDIS_PASS"),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("verify redis connection: %v", err)
		}
		coverageCache = cache.NewRedisCoverageCache(client, 24*time.Hour)
	}

	oracle, err := streetview.NewMetadataOracle(svKey, coverageCache)
	if err != nil {
		log.Fatal(err)
	}

	orchestrator := services.NewOrchestrator(registry, src)
	rounds := &services.RoundService{
		Orchestrator: orchestrator,
		Oracle:       oracle,
		Src:          src,
	}

	router := api.NewRouter(orchestrator, rounds)

	// Write timeout covers a full oracle retry cycle on a slow upstream.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// loadCatalog reads regions from Postgres when DATABASE_URL is set
// (seeding an empty table from the embedded catalog), otherwise from the
// regions file or the embedded copy.
func loadCatalog(ctx context.Context, databaseURL, regionsPath string) ([]domain.Region, error) {
	if databaseURL == "" {
		return regions.CatalogSource{Path: regionsPath}.ListRegions(ctx)
	}

	pool, err := db.Open(databaseURL)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	if err := repositories.InitSchema(ctx, pool); err != nil {
		return nil, err
	}

	repo := repositories.NewPgRegionRepository(pool)
	catalog, err := repo.ListRegions(ctx)
	if err != nil {
		return nil, err
	}

	if len(catalog) == 0 {
		embedded, err := regions.EmbeddedCatalog()
		if err != nil {
			return nil, err
		}
		if err := repositories.SeedFromCatalog(ctx, pool, embedded); err != nil {
			return nil, err
		}
		return repo.ListRegions(ctx)
	}

	return catalog, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
