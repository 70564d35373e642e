package domain

import (
	"errors"
	"fmt"
	"math"
)

// Mean kilometers per degree of latitude; longitude degrees shrink by
// cos(latitude).
const KmPerDegree = 111.0

const earthRadiusKm = 6371.0

// Immutable geographic coordinate (latitude, longitude) in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks the coordinate domain: finite values, lat in [-90,90],
// lng in [-180,180]. Exact (0,0) is rejected because the rest of the system
// uses it as an "unset" sentinel; sampling must never produce it.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) {
		return errors.New("coordinate: lat is not finite")
	}
	if math.IsNaN(c.Lng) || math.IsInf(c.Lng, 0) {
		return errors.New("coordinate: lng is not finite")
	}
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("coordinate: lat %v out of range [-90,90]", c.Lat)
	}
	if c.Lng < -180 || c.Lng > 180 {
		return fmt.Errorf("coordinate: lng %v out of range [-180,180]", c.Lng)
	}
	if c.Lat == 0 && c.Lng == 0 {
		return errors.New("coordinate: (0,0) is reserved as the unset sentinel")
	}
	return nil
}

// Valid reports whether Validate would accept the coordinate.
func (c Coordinate) Valid() bool { return c.Validate() == nil }

// Offset returns the coordinate displaced by distanceKm at the given angle
// (radians, 0 = due east) using the flat-earth approximation 1° ≈ 111 km,
// with the longitude delta corrected by cos(latitude). Good enough at the
// region scale this system samples at; results are clamped/wrapped back
// into the coordinate domain.
func (c Coordinate) Offset(distanceKm, angle float64) Coordinate {
	dLat := (distanceKm * math.Sin(angle)) / KmPerDegree

	cosLat := math.Cos(c.Lat * math.Pi / 180)
	// Near the poles cos(lat) vanishes; floor it so the division stays sane.
	if math.Abs(cosLat) < 1e-6 {
		cosLat = 1e-6
	}
	dLng := (distanceKm * math.Cos(angle)) / (KmPerDegree * cosLat)

	return Coordinate{
		Lat: clampLat(c.Lat + dLat),
		Lng: wrapLng(c.Lng + dLng),
	}
}

// DistanceKm returns the great-circle distance to other in kilometers
// (haversine formula).
func (c Coordinate) DistanceKm(other Coordinate) float64 {
	lat1 := c.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - c.Lat) * math.Pi / 180
	dLng := (other.Lng - c.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func clampLat(lat float64) float64 {
	if lat > 90 {
		return 90
	}
	if lat < -90 {
		return -90
	}
	return lat
}

func wrapLng(lng float64) float64 {
	for lng > 180 {
		lng -= 360
	}
	for lng < -180 {
		lng += 360
	}
	return lng
}
