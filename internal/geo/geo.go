// Package geo provides the distance and travel-time primitives behind
// proximity filtering.
//
// Distances are great-circle on WGS-84 coordinates. Travel time is estimated
// from straight-line distance at a constant average speed, not from routing.
package geo

import (
	"math"

	"github.com/golang/geo/s2"

	"aqarsearch/internal/model"
)

const (
	// EarthRadiusKm is the mean radius of Earth in kilometers.
	EarthRadiusKm = 6371.0

	// DrivingSpeedKmph is the assumed average city driving speed.
	DrivingSpeedKmph = 30.0

	// WalkingSpeedKmph is the assumed walking speed.
	WalkingSpeedKmph = 5.0
)

// DistanceKm returns the great-circle distance between two points in
// kilometers. Symmetric, and zero iff both points coincide. Callers are
// responsible for validating points beforehand; NaN inputs propagate.
func DistanceKm(a, b model.GeoPoint) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// TravelTimeMinutes returns the estimated driving time in whole minutes for
// the given distance, rounded to nearest. Zero distance yields zero.
func TravelTimeMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / DrivingSpeedKmph * 60))
}

// WalkingTimeMinutes returns the estimated walking time in whole minutes for
// the given distance, rounded to nearest. Used by the mosque display path;
// proximity filtering itself uses driving time uniformly.
func WalkingTimeMinutes(distanceKm float64) int {
	return int(math.Round(distanceKm / WalkingSpeedKmph * 60))
}
