package model

// School represents a school record. Gender and level arrive as Arabic
// literals (e.g. بنين / بنات, ابتدائي) and are matched by containment,
// never by equality.
type School struct {
	ID     int64         `json:"id" db:"id"`
	Name   BilingualName `json:"name" db:"name"`
	Gender string        `json:"gender,omitempty" db:"gender"`
	Level  string        `json:"level,omitempty" db:"level"`
	City   string        `json:"city,omitempty" db:"city"`
	Lat    float64       `json:"lat" db:"lat"`
	Lon    float64       `json:"lon" db:"lon"`
}

// Location returns the school's coordinate pair.
func (s School) Location() GeoPoint {
	return GeoPoint{Lat: s.Lat, Lon: s.Lon}
}

// University represents a university record.
type University struct {
	ID   int64         `json:"id" db:"id"`
	Name BilingualName `json:"name" db:"name"`
	City string        `json:"city,omitempty" db:"city"`
	Lat  float64       `json:"lat" db:"lat"`
	Lon  float64       `json:"lon" db:"lon"`
}

// Location returns the university's coordinate pair.
func (u University) Location() GeoPoint {
	return GeoPoint{Lat: u.Lat, Lon: u.Lon}
}

// Mosque represents a mosque record.
type Mosque struct {
	ID   int64         `json:"id" db:"id"`
	Name BilingualName `json:"name" db:"name"`
	City string        `json:"city,omitempty" db:"city"`
	Lat  float64       `json:"lat" db:"lat"`
	Lon  float64       `json:"lon" db:"lon"`
}

// Location returns the mosque's coordinate pair.
func (m Mosque) Location() GeoPoint {
	return GeoPoint{Lat: m.Lat, Lon: m.Lon}
}

// Located is any record carrying a coordinate pair.
type Located interface {
	Location() GeoPoint
}

// Nearby pairs a facility with its computed travel time from the reference
// point. The annotation is derived per query and never persisted.
type Nearby[T Located] struct {
	Entity            T   `json:"entity"`
	TravelTimeMinutes int `json:"travel_time_minutes"`
}

// Location returns the annotated entity's coordinate pair.
func (n Nearby[T]) Location() GeoPoint {
	return n.Entity.Location()
}

// NearbyMosque extends the travel annotation with walking time, which the
// mosque display path reports alongside driving time.
type NearbyMosque struct {
	Mosque             Mosque `json:"mosque"`
	TravelTimeMinutes  int    `json:"travel_time_minutes"`
	WalkingTimeMinutes int    `json:"walking_time_minutes"`
}
