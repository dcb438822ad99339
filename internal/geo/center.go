package geo

import "aqarsearch/internal/model"

// CenterOf returns the arithmetic-mean centroid of the valid points in the
// input. Points carrying the (0,0) sentinel or out-of-range coordinates are
// skipped. Reports false when no valid points remain.
func CenterOf(points []model.GeoPoint) (model.GeoPoint, bool) {
	var sumLat, sumLon float64
	n := 0
	for _, p := range points {
		if !p.Valid() {
			continue
		}
		sumLat += p.Lat
		sumLon += p.Lon
		n++
	}
	if n == 0 {
		return model.GeoPoint{}, false
	}
	return model.GeoPoint{
		Lat: sumLat / float64(n),
		Lon: sumLon / float64(n),
	}, true
}

// ResolveReference returns the centroid of the given points, or fallback when
// none are valid, so downstream proximity computations always have a usable
// reference even before any search executes.
func ResolveReference(points []model.GeoPoint, fallback model.GeoPoint) model.GeoPoint {
	if center, ok := CenterOf(points); ok {
		return center
	}
	return fallback
}

// PointsOf extracts the coordinate pairs of a located slice.
func PointsOf[T model.Located](entities []T) []model.GeoPoint {
	points := make([]model.GeoPoint, 0, len(entities))
	for _, e := range entities {
		points = append(points, e.Location())
	}
	return points
}
