package services

import (
	"math"

	"geo-round-service/internal/domain"
	"geo-round-service/internal/random"
)

// Strategy selects how a candidate point is placed within a region. All
// strategies draw a (distance, angle) polar pair around the region center
// and differ only in how the pair is shaped.
type Strategy int

const (
	StrategyUniform Strategy = iota
	StrategyEdgeBiased
	StrategyCenterBiased
	StrategyClustered
	StrategyScattered

	strategyCount
)

func (s Strategy) String() string {
	switch s {
	case StrategyUniform:
		return "uniform"
	case StrategyEdgeBiased:
		return "edge-biased"
	case StrategyCenterBiased:
		return "center-biased"
	case StrategyClustered:
		return "clustered"
	case StrategyScattered:
		return "scattered"
	default:
		return "unknown"
	}
}

// RandomStrategy draws one strategy uniformly from the enum.
func RandomStrategy(src random.Source) Strategy {
	return Strategy(random.IntBetween(src, 0, int(strategyCount)-1))
}

// Candidate produces an unvalidated candidate coordinate inside the region
// according to the strategy. Pure given the randomness source.
func (s Strategy) Candidate(r domain.Region, src random.Source) domain.Coordinate {
	switch s {
	case StrategyEdgeBiased:
		// Outer-band bias with a light pull toward compass directions.
		d := random.Distance(src, r.RadiusKm, 0.5)
		return r.Center.Offset(d, random.Angle(src, 0.1))

	case StrategyCenterBiased:
		d := random.Distance(src, r.RadiusKm, 3)
		return r.Center.Offset(d, random.Angle(src, 0))

	case StrategyClustered:
		return clusteredCandidate(r, src)

	case StrategyScattered:
		// Heavier median smoothing on both axes fights clustering across
		// repeated calls.
		d := math.Sqrt(random.Median(src, 5)) * r.RadiusKm
		angle := random.Median(src, 5)*2*math.Pi + (src.Float64()-0.5)*0.3
		return r.Center.Offset(d, angle)

	default: // StrategyUniform
		// sqrt of the radial draw keeps density roughly proportional to r,
		// i.e. an area-uniform fill of the circle.
		d := math.Sqrt(random.Median(src, 3)) * r.RadiusKm
		return r.Center.Offset(d, random.Angle(src, 0))
	}
}

// clusteredCandidate simulates points-of-interest density: it draws several
// independent near-center candidates and keeps the middle one by distance,
// producing tight local clusters.
func clusteredCandidate(r domain.Region, src random.Source) domain.Coordinate {
	n := random.IntBetween(src, 3, 7)

	type polar struct{ d, a float64 }
	candidates := make([]polar, 0, n)
	for i := 0; i < n; i++ {
		candidates = append(candidates, polar{
			d: src.Float64() * 0.7 * r.RadiusKm,
			a: random.Angle(src, 0.2),
		})
	}

	// Median-ish pick: sort by distance, take the middle element.
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0 && candidates[j].d < candidates[j-1].d; j-- {
			candidates[j], candidates[j-1] = candidates[j-1], candidates[j]
		}
	}
	best := candidates[len(candidates)/2]

	return r.Center.Offset(best.d, best.a)
}
