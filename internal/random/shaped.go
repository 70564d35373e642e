package random

import (
	"math"
	"sort"
)

// IntBetween returns a uniform integer in [min, max] inclusive. Swapped
// bounds are tolerated; a degenerate range returns min.
func IntBetween(src Source, min, max int) int {
	if min > max {
		min, max = max, min
	}
	if min == max {
		return min
	}
	return min + int(src.Float64()*float64(max-min+1))
}

// Median draws n uniforms and returns their median, biasing away from the
// extreme tails. n < 1 is treated as 1; even n averages the middle pair.
func Median(src Source, n int) float64 {
	if n < 1 {
		n = 1
	}
	draws := make([]float64, n)
	for i := range draws {
		draws[i] = src.Float64()
	}
	sort.Float64s(draws)
	if n%2 == 1 {
		return draws[n/2]
	}
	return (draws[n/2-1] + draws[n/2]) / 2
}

// Angle returns an angle in [0, 2π), optionally pulled toward the nearest
// of the 8 cardinal/diagonal directions. bias 0 is pure uniform; bias 1
// snaps to the nearest compass direction. Out-of-range bias is clamped.
func Angle(src Source, bias float64) float64 {
	angle := src.Float64() * 2 * math.Pi
	if bias <= 0 {
		return angle
	}
	if bias > 1 {
		bias = 1
	}

	const step = math.Pi / 4
	nearest := math.Round(angle/step) * step

	angle = angle + (nearest-angle)*bias
	if angle >= 2*math.Pi {
		angle -= 2 * math.Pi
	}
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

// Distance returns a value in [0, maxDistance] whose density is shaped by
// a Beta-like power transform: shape > 1 biases toward 0 (the region
// center), shape < 1 toward maxDistance (the edge), shape == 1 is uniform.
// The exact curve is a tunable heuristic; only the qualitative bias is
// contractual.
func Distance(src Source, maxDistance, shape float64) float64 {
	if maxDistance <= 0 {
		return 0
	}
	if shape <= 0 {
		shape = 1
	}
	return maxDistance * math.Pow(src.Float64(), shape)
}

// Shuffle permutes the slice in place (Fisher-Yates).
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := IntBetween(src, 0, i)
		items[i], items[j] = items[j], items[i]
	}
}
