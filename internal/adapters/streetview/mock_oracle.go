package streetview

import (
	"context"
	"sync"

	"geo-round-service/internal/domain"
	"geo-round-service/internal/ports"
)

// MockStep is one scripted oracle response.
type MockStep struct {
	Result ports.CoverageResult
	Err    error
}

// MockOracle is a scripted CoverageOracle for tests. Each call consumes the
// next scripted step; when the script runs out, Fallback is applied to
// every further call.
type MockOracle struct {
	mu       sync.Mutex
	script   []MockStep
	calls    int
	Fallback func(c domain.Coordinate) (ports.CoverageResult, error)
}

func NewMockOracle(script ...MockStep) *MockOracle {
	return &MockOracle{script: script}
}

// AlwaysMiss returns an oracle reporting no coverage for every candidate.
func AlwaysMiss() *MockOracle {
	return &MockOracle{
		Fallback: func(domain.Coordinate) (ports.CoverageResult, error) {
			return ports.CoverageResult{}, ports.ErrNoCoverage
		},
	}
}

// AlwaysSnap returns an oracle confirming every candidate at its own
// location with the given panorama ID.
func AlwaysSnap(panoID string) *MockOracle {
	return &MockOracle{
		Fallback: func(c domain.Coordinate) (ports.CoverageResult, error) {
			return ports.CoverageResult{Location: c, PanoID: panoID}, nil
		},
	}
}

func (m *MockOracle) CheckCoverage(ctx context.Context, c domain.Coordinate, radiusMeters int) (ports.CoverageResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if len(m.script) > 0 {
		step := m.script[0]
		m.script = m.script[1:]
		return step.Result, step.Err
	}
	if m.Fallback != nil {
		return m.Fallback(c)
	}
	return ports.CoverageResult{}, ports.ErrNoCoverage
}

// Calls reports how many coverage checks were issued.
func (m *MockOracle) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
