package streetview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"geo-round-service/internal/domain"
	"geo-round-service/internal/platform/obs"
	"geo-round-service/internal/ports"
)

// MetadataOracle implements CoverageOracle against the Street View metadata
// endpoint.
//
// It coordinates:
//   - Cache-aside lookups through an optional CoverageCache
//   - External API calls with retry/backoff
//   - Snapping the raw candidate to the confirmed panorama location
//
// The oracle is safe for concurrent use. The source filter is pinned to
// outdoor imagery; indoor panoramas make unplayable rounds.
type MetadataOracle struct {
	session *http.Client
	apiKey  string
	baseURL string
	cache   ports.CoverageCache
}

func NewMetadataOracle(apiKey string, cache ports.CoverageCache) (*MetadataOracle, error) {
	if apiKey == "" {
		return nil, errors.New("street view api key is empty")
	}

	return &MetadataOracle{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/streetview/metadata",
		cache:   cache,
	}, nil
}

type metadataResponse struct {
	Status   string `json:"status"`
	PanoID   string `json:"pano_id"`
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

// CheckCoverage searches for a confirmed outdoor panorama within
// radiusMeters of the coordinate. ZERO_RESULTS maps to ports.ErrNoCoverage;
// anything else unexpected is a transport-level error for the caller's
// retry loop to absorb.
func (p *MetadataOracle) CheckCoverage(
	ctx context.Context,
	c domain.Coordinate,
	radiusMeters int,
) (_ ports.CoverageResult, err error) {
	defer obs.Time(ctx, "streetview.CheckCoverage")(&err)

	if err := c.Validate(); err != nil {
		return ports.CoverageResult{}, fmt.Errorf("check coverage: %w", err)
	}
	if radiusMeters <= 0 {
		return ports.CoverageResult{}, errors.New("check coverage: radiusMeters must be positive")
	}

	if p.cache != nil {
		if res, ok, cacheErr := p.cache.Get(ctx, c); cacheErr == nil && ok {
			obs.CoverageCacheHits.Inc()
			return res, nil
		} else if cacheErr != nil {
			// A broken cache is a miss, not a failure.
			log.Printf("op=streetview.cacheGet err=%v", cacheErr)
		}
		obs.CoverageCacheMisses.Inc()
	}

	start := time.Now()
	res, err := p.lookup(ctx, c, radiusMeters)
	obs.OracleDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return ports.CoverageResult{}, err
	}

	if p.cache != nil {
		if cacheErr := p.cache.Put(ctx, c, res); cacheErr != nil {
			log.Printf("op=streetview.cachePut err=%v", cacheErr)
		}
	}

	return res, nil
}

func (p *MetadataOracle) lookup(ctx context.Context, c domain.Coordinate, radiusMeters int) (ports.CoverageResult, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", c.Lat, c.Lng))
	q.Set("radius", fmt.Sprintf("%d", radiusMeters))
	q.Set("source", "outdoor")
	q.Set("key", p.apiKey)
	reqURL := p.baseURL + "?" + q.Encode()

	resp, err := p.doWithRetry(ctx, func() (*http.Request, error) {
		return p.newRequest(ctx, reqURL)
	})
	if err != nil {
		return ports.CoverageResult{}, fmt.Errorf("check coverage: metadata request: %w", err)
	}
	defer resp.Body.Close()

	var body metadataResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.CoverageResult{}, fmt.Errorf("check coverage: decode metadata response: %w", err)
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS", "NOT_FOUND":
		return ports.CoverageResult{}, ports.ErrNoCoverage
	default:
		return ports.CoverageResult{}, fmt.Errorf("check coverage: metadata status %q", body.Status)
	}

	confirmed := domain.Coordinate{Lat: body.Location.Lat, Lng: body.Location.Lng}
	if err := confirmed.Validate(); err != nil {
		return ports.CoverageResult{}, fmt.Errorf("check coverage: confirmed location: %w", err)
	}

	return ports.CoverageResult{Location: confirmed, PanoID: body.PanoID}, nil
}
