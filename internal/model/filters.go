package model

// School gender filter values
const (
	GenderAny   = ""
	GenderBoys  = "Boys"
	GenderGirls = "Girls"
)

// School level filter values
const (
	LevelAny          = ""
	LevelNursery      = "nursery"
	LevelKindergarten = "kindergarten"
	LevelElementary   = "elementary"
	LevelMiddle       = "middle"
	LevelHigh         = "high"
)

// FilterCriteria is the flat record of independent filter dimensions. Each
// numeric range is in one of three states: unrestricted (both bounds zero),
// one-sided (only min or only max set), or bounded (inclusive [min,max]).
// A bound of 0 is indistinguishable from "unset".
type FilterCriteria struct {
	PropertyType string `json:"property_type,omitempty"`
	District     string `json:"district,omitempty"`
	City         string `json:"city,omitempty"`
	Purpose      string `json:"purpose,omitempty"` // Arabic literal: بيع / إيجار

	PriceMin float64 `json:"price_min,omitempty"`
	PriceMax float64 `json:"price_max,omitempty"`
	AreaMin  float64 `json:"area_min,omitempty"`
	AreaMax  float64 `json:"area_max,omitempty"`

	Bedrooms    int `json:"bedrooms,omitempty"`
	Bathrooms   int `json:"bathrooms,omitempty"`
	LivingRooms int `json:"living_rooms,omitempty"`

	SchoolActive     bool   `json:"school_active,omitempty"`
	SchoolGender     string `json:"school_gender,omitempty"`
	SchoolLevel      string `json:"school_level,omitempty"`
	SchoolMaxMinutes int    `json:"school_max_minutes,omitempty"`

	UniversityActive     bool   `json:"university_active,omitempty"`
	UniversityName       string `json:"university_name,omitempty"`
	UniversityMaxMinutes int    `json:"university_max_minutes,omitempty"`

	MosqueRequired   bool `json:"mosque_required,omitempty"`
	MosqueMaxMinutes int  `json:"mosque_max_minutes,omitempty"`

	MetroRequired   bool `json:"metro_required,omitempty"`
	MetroMaxMinutes int  `json:"metro_max_minutes,omitempty"`
}

// FilterPatch carries a partial update to the draft criteria. Only non-nil
// fields are merged, so a caller can adjust one dimension without clobbering
// the rest of the draft.
type FilterPatch struct {
	PropertyType *string `json:"property_type,omitempty"`
	District     *string `json:"district,omitempty"`
	City         *string `json:"city,omitempty"`
	Purpose      *string `json:"purpose,omitempty"`

	PriceMin *float64 `json:"price_min,omitempty"`
	PriceMax *float64 `json:"price_max,omitempty"`
	AreaMin  *float64 `json:"area_min,omitempty"`
	AreaMax  *float64 `json:"area_max,omitempty"`

	Bedrooms    *int `json:"bedrooms,omitempty"`
	Bathrooms   *int `json:"bathrooms,omitempty"`
	LivingRooms *int `json:"living_rooms,omitempty"`

	SchoolActive     *bool   `json:"school_active,omitempty"`
	SchoolGender     *string `json:"school_gender,omitempty"`
	SchoolLevel      *string `json:"school_level,omitempty"`
	SchoolMaxMinutes *int    `json:"school_max_minutes,omitempty"`

	UniversityActive     *bool   `json:"university_active,omitempty"`
	UniversityName       *string `json:"university_name,omitempty"`
	UniversityMaxMinutes *int    `json:"university_max_minutes,omitempty"`

	MosqueRequired   *bool `json:"mosque_required,omitempty"`
	MosqueMaxMinutes *int  `json:"mosque_max_minutes,omitempty"`

	MetroRequired   *bool `json:"metro_required,omitempty"`
	MetroMaxMinutes *int  `json:"metro_max_minutes,omitempty"`
}

// SchoolRequirements is the assistant's nested school criteria.
type SchoolRequirements struct {
	Required   bool   `json:"required"`
	Gender     string `json:"gender,omitempty"` // Arabic literal, e.g. بنات
	Level      string `json:"level,omitempty"`  // Arabic literal, e.g. ابتدائي
	MaxMinutes int    `json:"max_distance_minutes,omitempty"`
}

// UniversityRequirements is the assistant's nested university criteria.
type UniversityRequirements struct {
	Required   bool   `json:"required"`
	Name       string `json:"name,omitempty"`
	MaxMinutes int    `json:"max_distance_minutes,omitempty"`
}

// MosqueRequirements is the assistant's nested mosque criteria.
type MosqueRequirements struct {
	Required   bool `json:"required"`
	MaxMinutes int  `json:"max_distance_minutes,omitempty"`
}

// SearchCriteria is the structured output of the conversational assistant
// backend. Nested requirement blocks are optional; absent blocks leave the
// corresponding local filters untouched.
type SearchCriteria struct {
	District     string  `json:"district,omitempty"`
	City         string  `json:"city,omitempty"`
	PropertyType string  `json:"property_type,omitempty"`
	Purpose      string  `json:"purpose,omitempty"`
	PriceMin     float64 `json:"price_min,omitempty"`
	PriceMax     float64 `json:"price_max,omitempty"`
	Bedrooms     int     `json:"bedrooms,omitempty"`

	SchoolRequirements     *SchoolRequirements     `json:"school_requirements,omitempty"`
	UniversityRequirements *UniversityRequirements `json:"university_requirements,omitempty"`
	MosqueRequirements     *MosqueRequirements     `json:"mosque_requirements,omitempty"`
}
