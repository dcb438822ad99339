package geo

import (
	"math"
	"testing"

	"aqarsearch/internal/model"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	p := model.GeoPoint{Lat: 24.7136, Lon: 46.6753}
	if got := DistanceKm(p, p); got != 0 {
		t.Errorf("DistanceKm(same point) = %v, want 0", got)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := model.GeoPoint{Lat: 24.7136, Lon: 46.6753}
	b := model.GeoPoint{Lat: 21.4858, Lon: 39.1925}
	d1 := DistanceKm(a, b)
	d2 := DistanceKm(b, a)
	if math.Abs(d1-d2) > 1e-9 {
		t.Errorf("DistanceKm not symmetric: %v vs %v", d1, d2)
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Riyadh (Kingdom Centre) to Jeddah, roughly 850 km
	riyadh := model.GeoPoint{Lat: 24.7136, Lon: 46.6753}
	jeddah := model.GeoPoint{Lat: 21.4858, Lon: 39.1925}
	got := DistanceKm(riyadh, jeddah)
	wantMin, wantMax := 800.0, 900.0
	if got < wantMin || got > wantMax {
		t.Errorf("DistanceKm(Riyadh→Jeddah) = %.2f km, want between %.0f and %.0f", got, wantMin, wantMax)
	}
}

func TestDistanceKm_TriangleInequality(t *testing.T) {
	a := model.GeoPoint{Lat: 24.71, Lon: 46.67}
	b := model.GeoPoint{Lat: 24.80, Lon: 46.70}
	c := model.GeoPoint{Lat: 24.65, Lon: 46.80}
	if DistanceKm(a, c) > DistanceKm(a, b)+DistanceKm(b, c)+1e-9 {
		t.Errorf("triangle inequality violated: d(a,c)=%v > d(a,b)+d(b,c)=%v",
			DistanceKm(a, c), DistanceKm(a, b)+DistanceKm(b, c))
	}
}

func TestTravelTimeMinutes(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		want       int
	}{
		{"zero distance", 0, 0},
		{"half hour at city speed", 15, 30},
		{"rounds to nearest", 10, 20},
		{"rounds up", 5.2, 10}, // 10.4 min → 10
		{"one km", 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TravelTimeMinutes(tt.distanceKm); got != tt.want {
				t.Errorf("TravelTimeMinutes(%v) = %d, want %d", tt.distanceKm, got, tt.want)
			}
		})
	}
}

func TestWalkingTimeMinutes(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		want       int
	}{
		{"zero distance", 0, 0},
		{"one km", 1, 12},
		{"2.5 km", 2.5, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WalkingTimeMinutes(tt.distanceKm); got != tt.want {
				t.Errorf("WalkingTimeMinutes(%v) = %d, want %d", tt.distanceKm, got, tt.want)
			}
		})
	}
}

func TestWalkingSlowerThanDriving(t *testing.T) {
	a := model.GeoPoint{Lat: 24.7136, Lon: 46.6753}
	b := model.GeoPoint{Lat: 24.7536, Lon: 46.7153}
	d := DistanceKm(a, b)
	if WalkingTimeMinutes(d) < TravelTimeMinutes(d) {
		t.Errorf("walking time %d should not be below driving time %d",
			WalkingTimeMinutes(d), TravelTimeMinutes(d))
	}
}
