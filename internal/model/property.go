package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pgvector/pgvector-go"
)

// Property represents a real-estate listing. Price and area arrive from the
// backend as strings that may carry thousands-separator commas; callers must
// coerce via the attribute filter rather than trusting the raw values.
type Property struct {
	ID           int64           `json:"id" db:"id"`
	Title        BilingualName   `json:"title" db:"title"`
	PropertyType string          `json:"property_type,omitempty" db:"property_type"`
	Purpose      string          `json:"purpose,omitempty" db:"purpose"` // Arabic literal: بيع / إيجار
	District     string          `json:"district,omitempty" db:"district"`
	City         string          `json:"city,omitempty" db:"city"`
	Price        string          `json:"price,omitempty" db:"price"`
	AreaM2       string          `json:"area_m2,omitempty" db:"area_m2"`
	Bedrooms     int             `json:"bedrooms" db:"bedrooms"`
	Bathrooms    int             `json:"bathrooms" db:"bathrooms"`
	LivingRooms  int             `json:"living_rooms" db:"living_rooms"`
	MetroTimeMin *int            `json:"metro_time_minutes,omitempty" db:"metro_time_minutes"`
	Lat          float64         `json:"lat" db:"lat"`
	Lon          float64         `json:"lon" db:"lon"`
	Images       JSONArray       `json:"images,omitempty" db:"images"`
	Details      JSONMap         `json:"details,omitempty" db:"details"`
	Embedding    pgvector.Vector `json:"-" db:"embedding"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// Location returns the property's coordinate pair.
func (p Property) Location() GeoPoint {
	return GeoPoint{Lat: p.Lat, Lon: p.Lon}
}

// EmbeddingItem represents a single embedding with its property reference
type EmbeddingItem struct {
	PropertyID int64     `json:"property_id" binding:"required"`
	Embedding  []float32 `json:"embedding" binding:"required"`
	Text       string    `json:"text,omitempty"` // The text used to generate the embedding
}

// EmbeddingBatchRequest represents a batch embedding update request
type EmbeddingBatchRequest struct {
	Embeddings []EmbeddingItem `json:"embeddings" binding:"required"`
}

// EmbeddingBatchResponse represents the response for a batch embedding update
type EmbeddingBatchResponse struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// JSONArray represents a JSON array field
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}

// JSONMap represents a JSON object field
type JSONMap map[string]interface{}

// Value implements driver.Valuer interface
func (j JSONMap) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner interface
func (j *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}
