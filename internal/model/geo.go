package model

// GeoPoint represents a WGS-84 coordinate pair
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the point is a usable coordinate. The data source
// stores (0,0) as the "no location known" sentinel, so the origin is never
// treated as a real location.
func (p GeoPoint) Valid() bool {
	if p.Lat == 0 && p.Lon == 0 {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// BilingualName holds the Arabic and English forms of a display name.
// Records in the source have no single canonical name field.
type BilingualName struct {
	AR string `json:"name_ar" db:"name_ar"`
	EN string `json:"name_en" db:"name_en"`
}

// In returns the name for the given language code ("ar" or "en"),
// falling back to the other form when the requested one is empty.
func (n BilingualName) In(lang string) string {
	if lang == "ar" {
		if n.AR != "" {
			return n.AR
		}
		return n.EN
	}
	if n.EN != "" {
		return n.EN
	}
	return n.AR
}
