package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"geo-round-service/internal/domain"
	"geo-round-service/internal/ports"
)

// RedisCoverageCache stores oracle confirmations in Redis, keyed by a
// coarse coordinate cell so nearby candidates share an entry. The cell is
// two decimal places, roughly a 1 km grid, well inside the 50 km search
// radius the oracle is queried with.
type RedisCoverageCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCoverageCache(client *redis.Client, ttl time.Duration) *RedisCoverageCache {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisCoverageCache{Client: client, TTL: ttl}
}

type cachedCoverage struct {
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	PanoID string  `json:"pano_id"`
}

func cellKey(c domain.Coordinate) string {
	return fmt.Sprintf("coverage:%.2f:%.2f", c.Lat, c.Lng)
}

// Get fetches a cached confirmation for the coordinate's cell.
func (r *RedisCoverageCache) Get(ctx context.Context, c domain.Coordinate) (ports.CoverageResult, bool, error) {
	if r.Client == nil {
		return ports.CoverageResult{}, false, errors.New("coverage cache: client is nil")
	}

	raw, err := r.Client.Get(ctx, cellKey(c)).Result()
	if errors.Is(err, redis.Nil) {
		return ports.CoverageResult{}, false, nil
	}
	if err != nil {
		return ports.CoverageResult{}, false, fmt.Errorf("get coverage cache: %w", err)
	}

	var entry cachedCoverage
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return ports.CoverageResult{}, false, fmt.Errorf("get coverage cache: decode entry: %w", err)
	}

	return ports.CoverageResult{
		Location: domain.Coordinate{Lat: entry.Lat, Lng: entry.Lng},
		PanoID:   entry.PanoID,
	}, true, nil
}

// Put stores a confirmation under the coordinate's cell with the cache TTL.
func (r *RedisCoverageCache) Put(ctx context.Context, c domain.Coordinate, res ports.CoverageResult) error {
	if r.Client == nil {
		return errors.New("coverage cache: client is nil")
	}

	raw, err := json.Marshal(cachedCoverage{
		Lat:    res.Location.Lat,
		Lng:    res.Location.Lng,
		PanoID: res.PanoID,
	})
	if err != nil {
		return fmt.Errorf("put coverage cache: encode entry: %w", err)
	}

	if err := r.Client.Set(ctx, cellKey(c), raw, r.TTL).Err(); err != nil {
		return fmt.Errorf("put coverage cache: %w", err)
	}
	return nil
}
