package service

import (
	"strconv"
	"strings"

	"aqarsearch/internal/model"
	"aqarsearch/internal/textmatch"
)

// AttributeFilter applies the per-property filters: city scope plus the
// numeric dimensions price, area, and metro proximity. Each range dimension
// follows a three-mode policy: both bounds zero means unrestricted, a single
// bound acts alone, both bounds form an inclusive range. A bound of exactly 0
// is indistinguishable from "unset"; that matches the data source and is kept
// as-is.
type AttributeFilter struct{}

// NewAttributeFilter creates a new attribute filter
func NewAttributeFilter() *AttributeFilter {
	return &AttributeFilter{}
}

// Matches reports whether the property satisfies every active dimension of
// the criteria.
func (f *AttributeFilter) Matches(p model.Property, criteria model.FilterCriteria) bool {
	return f.cityMatch(p, criteria) && f.priceMatch(p, criteria) && f.areaMatch(p, criteria) && f.metroMatch(p, criteria)
}

// Filter returns the subset of properties matching the criteria.
func (f *AttributeFilter) Filter(properties []model.Property, criteria model.FilterCriteria) []model.Property {
	kept := make([]model.Property, 0, len(properties))
	for _, p := range properties {
		if f.Matches(p, criteria) {
			kept = append(kept, p)
		}
	}
	return kept
}

// cityMatch scopes results to the requested city. Candidates from the
// semantic-search path never pass through SQL criteria, so the check has to
// hold here as well; normalized bilingual containment keeps "جده" and "جدة"
// equivalent.
func (f *AttributeFilter) cityMatch(p model.Property, criteria model.FilterCriteria) bool {
	if criteria.City == "" {
		return true
	}
	return textmatch.Matches(criteria.City, p.City)
}

func (f *AttributeFilter) priceMatch(p model.Property, criteria model.FilterCriteria) bool {
	return inRange(ParseAmount(p.Price), criteria.PriceMin, criteria.PriceMax)
}

func (f *AttributeFilter) areaMatch(p model.Property, criteria model.FilterCriteria) bool {
	return inRange(ParseAmount(p.AreaM2), criteria.AreaMin, criteria.AreaMax)
}

// metroMatch is strict when the metro flag is active: a property with no
// metro-time data does not pass as "unknown".
func (f *AttributeFilter) metroMatch(p model.Property, criteria model.FilterCriteria) bool {
	if !criteria.MetroRequired {
		return true
	}
	if p.MetroTimeMin == nil {
		return false
	}
	return *p.MetroTimeMin <= criteria.MetroMaxMinutes
}

// inRange implements the three-mode policy over an inclusive [min,max].
func inRange(value, min, max float64) bool {
	if min > 0 && value < min {
		return false
	}
	if max > 0 && value > max {
		return false
	}
	return true
}

// ParseAmount coerces a backend numeric string to a float. Thousands-separator
// commas are stripped before parsing; missing or malformed input degrades to
// 0 rather than failing.
func ParseAmount(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
