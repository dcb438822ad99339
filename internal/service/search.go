package service

import (
	"context"
	"strings"
	"time"

	"aqarsearch/internal/geo"
	"aqarsearch/internal/model"
	"aqarsearch/internal/repository"
	"aqarsearch/internal/textmatch"
)

// SearchService runs the full pipeline: fetch candidates, apply attribute
// filters, resolve the reference point from the surviving result set, run
// the facility proximity passes, and narrow properties to those near the
// qualifying facilities.
type SearchService struct {
	repo       *repository.PostgresRepository
	attributes *AttributeFilter
	fallback   model.GeoPoint
}

// NewSearchService creates a new search service
func NewSearchService(repo *repository.PostgresRepository, attributes *AttributeFilter, fallback model.GeoPoint) *SearchService {
	return &SearchService{
		repo:       repo,
		attributes: attributes,
		fallback:   fallback,
	}
}

// Search executes the applied criteria of the given session state.
func (s *SearchService) Search(ctx context.Context, state *FilterState, limit, offset int) (*model.SearchResponse, error) {
	startTime := time.Now()

	criteria := state.Applied()
	query := state.Query()

	properties, total, err := s.repo.ListProperties(ctx, criteria, query, limit, offset)
	if err != nil {
		return nil, err
	}

	properties = s.attributes.Filter(properties, criteria)

	// The reference point is the centroid of the current result set, falling
	// back to the configured city default before any usable result exists.
	reference := geo.ResolveReference(geo.PointsOf(properties), s.fallback)

	response := &model.SearchResponse{
		Reference:   &reference,
		Criteria:    criteria,
		HasSearched: state.HasSearched(),
	}

	// Facility passes compose sequentially: each active kind narrows the
	// surviving properties further.
	if criteria.SchoolActive {
		schools, err := s.repo.ListSchools(ctx, criteria.City)
		if err != nil {
			return nil, err
		}
		schools = filterSchools(schools, criteria.SchoolGender, criteria.SchoolLevel)
		nearby := FindNearby(schools, reference, criteria.SchoolMaxMinutes, true)
		response.NearbySchools = nearby
		properties = PropertiesNear(properties, nearby, criteria.SchoolMaxMinutes)
	}

	if criteria.UniversityActive || criteria.UniversityName != "" {
		universities, err := s.repo.ListUniversities(ctx, criteria.City)
		if err != nil {
			return nil, err
		}
		nearby := FindNearbyUniversities(universities, reference, criteria.UniversityName, criteria.UniversityMaxMinutes, criteria.UniversityActive)
		response.NearbyUniversities = nearby
		properties = PropertiesNear(properties, nearby, criteria.UniversityMaxMinutes)
	}

	if criteria.MosqueRequired {
		mosques, err := s.repo.ListMosques(ctx, criteria.City)
		if err != nil {
			return nil, err
		}
		nearby := FindNearby(mosques, reference, criteria.MosqueMaxMinutes, true)
		response.NearbyMosques = annotateWalking(nearby, reference)
		properties = PropertiesNear(properties, nearby, criteria.MosqueMaxMinutes)
	}

	response.Results = properties
	response.CandidateTotal = total
	response.Took = time.Since(startTime).Milliseconds()
	return response, nil
}

// SemanticSearch runs server-side similarity ranking and post-filters the
// candidate set with the session's applied attribute criteria.
func (s *SearchService) SemanticSearch(ctx context.Context, embedding []float32, state *FilterState, limit int) ([]model.Property, error) {
	candidates, err := s.repo.SemanticSearch(ctx, embedding, limit)
	if err != nil {
		return nil, err
	}
	return s.attributes.Filter(candidates, state.Applied()), nil
}

// GetProperty retrieves a single property by ID
func (s *SearchService) GetProperty(ctx context.Context, id int64) (*model.Property, error) {
	return s.repo.GetPropertyByID(ctx, id)
}

// UpdateEmbeddings updates embeddings for multiple properties
func (s *SearchService) UpdateEmbeddings(ctx context.Context, items []model.EmbeddingItem) (int, []string) {
	return s.repo.BatchUpdateEmbeddings(ctx, items)
}

// ToggleFavorite flips the favorite state of a property for a user
func (s *SearchService) ToggleFavorite(ctx context.Context, userID string, propertyID int64) (bool, error) {
	return s.repo.ToggleFavorite(ctx, userID, propertyID)
}

// ListFavorites returns a user's favorited properties
func (s *SearchService) ListFavorites(ctx context.Context, userID string) ([]model.Property, error) {
	return s.repo.ListFavorites(ctx, userID)
}

// filterSchools narrows schools by the gender and level filter enums. The
// stored values are Arabic literals, so matching is by fuzzy containment.
func filterSchools(schools []model.School, gender, level string) []model.School {
	if gender == model.GenderAny && level == model.LevelAny {
		return schools
	}
	kept := make([]model.School, 0, len(schools))
	for _, school := range schools {
		if gender != model.GenderAny && !schoolGenderMatches(school.Gender, gender) {
			continue
		}
		if level != model.LevelAny && !schoolLevelMatches(school.Level, level) {
			continue
		}
		kept = append(kept, school)
	}
	return kept
}

func schoolGenderMatches(stored, want string) bool {
	switch want {
	case model.GenderGirls:
		return textmatch.Matches("بنات", stored)
	case model.GenderBoys:
		return textmatch.Matches("بنين", stored) || textmatch.Matches("اولاد", stored)
	}
	return true
}

var levelLiterals = map[string][]string{
	model.LevelNursery:      {"حضان"},
	model.LevelKindergarten: {"روض"},
	model.LevelElementary:   {"ابتدائ"},
	model.LevelMiddle:       {"متوسط"},
	model.LevelHigh:         {"ثانوي"},
}

func schoolLevelMatches(stored, want string) bool {
	literals, ok := levelLiterals[want]
	if !ok {
		return true
	}
	for _, literal := range literals {
		if strings.Contains(textmatch.Normalize(stored), textmatch.Normalize(literal)) {
			return true
		}
	}
	return false
}

// annotateWalking adds the walking-time estimate to nearby mosques for the
// display path; the filtering itself already ran on driving time.
func annotateWalking(nearby []model.Nearby[model.Mosque], reference model.GeoPoint) []model.NearbyMosque {
	out := make([]model.NearbyMosque, 0, len(nearby))
	for _, n := range nearby {
		walking := geo.WalkingTimeMinutes(geo.DistanceKm(reference, n.Location()))
		out = append(out, model.NearbyMosque{
			Mosque:             n.Entity,
			TravelTimeMinutes:  n.TravelTimeMinutes,
			WalkingTimeMinutes: walking,
		})
	}
	return out
}
