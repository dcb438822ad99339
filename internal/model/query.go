package model

// SearchRequest represents a search query request
type SearchRequest struct {
	Query     string       `json:"query,omitempty"`
	SessionID string       `json:"session_id,omitempty"`
	Filters   *FilterPatch `json:"filters,omitempty"`
	Language  string       `json:"language,omitempty"` // "ar" (default) or "en"
	Limit     int          `json:"limit,omitempty"`
	Offset    int          `json:"offset,omitempty"`
}

// SearchResponse represents a search result response.
//
// CandidateTotal counts the rows matching the SQL-level criteria before the
// client-side attribute and proximity passes narrow the page; it bounds how
// far paging can go, not how many rows a fully filtered scan would return.
type SearchResponse struct {
	Results            []Property           `json:"results"`
	CandidateTotal     int                  `json:"candidate_total"`
	NearbySchools      []Nearby[School]     `json:"nearby_schools,omitempty"`
	NearbyUniversities []Nearby[University] `json:"nearby_universities,omitempty"`
	NearbyMosques      []NearbyMosque       `json:"nearby_mosques,omitempty"`
	Reference          *GeoPoint            `json:"reference,omitempty"`
	Criteria           FilterCriteria       `json:"criteria"`
	HasSearched        bool                 `json:"has_searched"`
	Took               int64                `json:"took_ms"` // Response time in milliseconds
}

// SemanticSearchRequest carries a pre-computed query embedding. Similarity
// ranking happens server-side; the returned candidates still pass through
// the client-side attribute filters of the session.
type SemanticSearchRequest struct {
	Embedding []float32 `json:"embedding" binding:"required"`
	SessionID string    `json:"session_id,omitempty"`
	Limit     int       `json:"limit,omitempty"`
}

// AssistantSearchRequest represents a conversational search request
type AssistantSearchRequest struct {
	Utterance string `json:"utterance" binding:"required"`
	SessionID string `json:"session_id,omitempty"`
	Language  string `json:"language,omitempty"`
}

// AssistantSearchResponse wraps a search response with the criteria the
// assistant extracted from the utterance.
type AssistantSearchResponse struct {
	Criteria *SearchCriteria `json:"criteria,omitempty"`
	Search   *SearchResponse `json:"search"`
}

// FavoriteRequest represents a favorite toggle request
type FavoriteRequest struct {
	UserID     string `json:"user_id" binding:"required"`
	PropertyID int64  `json:"property_id" binding:"required"`
}

// FavoriteResponse represents a favorite toggle response
type FavoriteResponse struct {
	Success   bool `json:"success"`
	Favorited bool `json:"favorited"`
}

// BestValueResult pairs a property with its value score relative to its
// district's average price per square meter.
type BestValueResult struct {
	Property
	PricePerM2    float64  `json:"price_per_m2"`
	DistrictAvgM2 float64  `json:"district_avg_per_m2,omitempty"`
	Score         float64  `json:"score"`
	Reasons       []string `json:"reasons"`
}

// DistrictStats is one cell of the district price heatmap.
type DistrictStats struct {
	District string  `json:"district" db:"district"`
	City     string  `json:"city,omitempty" db:"city"`
	AvgPrice float64 `json:"avg_price" db:"avg_price"`
	MinPrice float64 `json:"min_price" db:"min_price"`
	MaxPrice float64 `json:"max_price" db:"max_price"`
	Count    int     `json:"count" db:"count"`
}
