package geo

import (
	"math"
	"testing"

	"aqarsearch/internal/model"
)

var riyadhFallback = model.GeoPoint{Lat: 24.7136, Lon: 46.6753}

func TestCenterOf_SinglePoint(t *testing.T) {
	p := model.GeoPoint{Lat: 24.71, Lon: 46.68}
	got, ok := CenterOf([]model.GeoPoint{p})
	if !ok {
		t.Fatal("CenterOf single valid point: ok = false, want true")
	}
	if got != p {
		t.Errorf("CenterOf([p]) = %+v, want %+v", got, p)
	}
}

func TestCenterOf_Mean(t *testing.T) {
	points := []model.GeoPoint{
		{Lat: 24.0, Lon: 46.0},
		{Lat: 26.0, Lon: 48.0},
	}
	got, ok := CenterOf(points)
	if !ok {
		t.Fatal("CenterOf: ok = false, want true")
	}
	if math.Abs(got.Lat-25.0) > 1e-9 || math.Abs(got.Lon-47.0) > 1e-9 {
		t.Errorf("CenterOf = %+v, want {25 47}", got)
	}
}

func TestCenterOf_SkipsSentinelAndInvalid(t *testing.T) {
	points := []model.GeoPoint{
		{Lat: 0, Lon: 0},       // sentinel for unknown location
		{Lat: 95, Lon: 46},     // out of range
		{Lat: 24.7, Lon: 46.7}, // only valid
	}
	got, ok := CenterOf(points)
	if !ok {
		t.Fatal("CenterOf: ok = false, want true")
	}
	if got.Lat != 24.7 || got.Lon != 46.7 {
		t.Errorf("CenterOf = %+v, want the only valid point", got)
	}
}

func TestCenterOf_Empty(t *testing.T) {
	if _, ok := CenterOf(nil); ok {
		t.Error("CenterOf(nil): ok = true, want false")
	}
	if _, ok := CenterOf([]model.GeoPoint{{Lat: 0, Lon: 0}}); ok {
		t.Error("CenterOf(only sentinels): ok = true, want false")
	}
}

func TestResolveReference_Fallback(t *testing.T) {
	got := ResolveReference(nil, riyadhFallback)
	if got != riyadhFallback {
		t.Errorf("ResolveReference(nil) = %+v, want fallback %+v", got, riyadhFallback)
	}
}

func TestResolveReference_UsesCentroid(t *testing.T) {
	points := []model.GeoPoint{{Lat: 25.0, Lon: 47.0}}
	got := ResolveReference(points, riyadhFallback)
	if got != points[0] {
		t.Errorf("ResolveReference = %+v, want centroid %+v", got, points[0])
	}
}

func TestPointsOf(t *testing.T) {
	schools := []model.School{
		{Lat: 24.7, Lon: 46.7},
		{Lat: 24.8, Lon: 46.8},
	}
	points := PointsOf(schools)
	if len(points) != 2 {
		t.Fatalf("PointsOf: len = %d, want 2", len(points))
	}
	if points[0] != (model.GeoPoint{Lat: 24.7, Lon: 46.7}) {
		t.Errorf("PointsOf[0] = %+v", points[0])
	}
}
