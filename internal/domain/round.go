package domain

import "math"

// Score bounds and decay scale for guess scoring. The decay constant
// operates on the kilometer scale: a guess ~2000 km off earns ~1/e of the
// maximum.
const (
	MaxScore       = 5000
	scoreDecayKm   = 2000.0
	perfectGuessKm = 0.25
)

// RoundLocation is a confirmed, playable round target: the oracle-corrected
// coordinate plus a randomized initial camera orientation and the external
// panorama ID the oracle reported.
type RoundLocation struct {
	Coordinate Coordinate
	HeadingDeg float64
	PitchDeg   float64
	PanoID     string
}

// Score converts the great-circle distance between the round target and a
// player guess into a score in [0, MaxScore] using exponential decay.
// Guesses inside perfectGuessKm earn the full score.
func Score(target, guess Coordinate) int {
	d := target.DistanceKm(guess)
	if d <= perfectGuessKm {
		return MaxScore
	}
	s := MaxScore * math.Exp(-d/scoreDecayKm)
	if s < 0 {
		return 0
	}
	return int(math.Round(s))
}
