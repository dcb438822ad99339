package service

import (
	"context"
	"sort"

	"aqarsearch/internal/model"
	"aqarsearch/internal/repository"
)

// Reason constants for best-value results
const (
	ReasonBelowDistrictAvg = "Below district average"
	ReasonLargeArea        = "Large area for price"
	ReasonNearMetro        = "Near metro"
	ReasonGeneralValue     = "Competitive price per m²"
)

// InsightsService derives the market views: best-value properties and the
// district price heatmap.
type InsightsService struct {
	repo            *repository.PostgresRepository
	weightDistrict  float64
	weightPricePerM float64
}

// NewInsightsService creates a new insights service with scoring weights
func NewInsightsService(repo *repository.PostgresRepository, weightDistrict, weightPricePerM float64) *InsightsService {
	return &InsightsService{
		repo:            repo,
		weightDistrict:  weightDistrict,
		weightPricePerM: weightPricePerM,
	}
}

// DistrictHeatmap returns aggregated price statistics per district.
func (s *InsightsService) DistrictHeatmap(ctx context.Context, city string) ([]model.DistrictStats, error) {
	return s.repo.DistrictPriceStats(ctx, city)
}

// BestValue fetches the current candidate set and ranks it by value score.
func (s *InsightsService) BestValue(ctx context.Context, city string, limit int) ([]model.BestValueResult, error) {
	properties, _, err := s.repo.ListProperties(ctx, model.FilterCriteria{City: city}, "", 1000, 0)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.DistrictPriceStats(ctx, city)
	if err != nil {
		return nil, err
	}

	return s.RankByValue(properties, stats, limit), nil
}

// RankByValue scores properties by price per square meter against their
// district average and returns the top results, best value first. Properties
// with unusable price or area are skipped rather than scored.
func (s *InsightsService) RankByValue(properties []model.Property, stats []model.DistrictStats, limit int) []model.BestValueResult {
	avgByDistrict := make(map[string]float64, len(stats))
	countByDistrict := make(map[string]int, len(stats))
	for _, st := range stats {
		avgByDistrict[st.District] = st.AvgPrice
		countByDistrict[st.District] = st.Count
	}

	results := make([]model.BestValueResult, 0, len(properties))
	for _, p := range properties {
		price := ParseAmount(p.Price)
		area := ParseAmount(p.AreaM2)
		if price <= 0 || area <= 0 {
			continue
		}
		perM2 := price / area

		result := model.BestValueResult{
			Property:   p,
			PricePerM2: perM2,
			Reasons:    []string{},
		}

		// District score: how far below the district average the asking
		// price sits, normalized to 0..1.
		districtScore := 0.5
		if avg := avgByDistrict[p.District]; avg > 0 && countByDistrict[p.District] > 1 {
			result.DistrictAvgM2 = avg / area
			ratio := price / avg
			switch {
			case ratio <= 0.5:
				districtScore = 1.0
			case ratio >= 1.5:
				districtScore = 0.0
			default:
				districtScore = 1.5 - ratio
			}
			if ratio < 0.9 {
				result.Reasons = append(result.Reasons, ReasonBelowDistrictAvg)
			}
		}

		// Size score: more area per unit price is better. Normalized against
		// a nominal 10,000 per m² ceiling.
		sizeScore := 1.0 - perM2/10000
		if sizeScore < 0 {
			sizeScore = 0
		}
		if sizeScore > 0.7 {
			result.Reasons = append(result.Reasons, ReasonLargeArea)
		}

		if p.MetroTimeMin != nil && *p.MetroTimeMin <= 15 {
			result.Reasons = append(result.Reasons, ReasonNearMetro)
		}
		if len(result.Reasons) == 0 {
			result.Reasons = append(result.Reasons, ReasonGeneralValue)
		}

		result.Score = s.weightDistrict*districtScore + s.weightPricePerM*sizeScore
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
