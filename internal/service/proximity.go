package service

import (
	"sort"

	"aqarsearch/internal/geo"
	"aqarsearch/internal/model"
	"aqarsearch/internal/textmatch"
)

// FindNearby computes a driving travel time from reference to every candidate
// and returns the annotated subset within maxMinutes, ordered by ascending
// travel time.
//
// When active is false the filter was not requested and the result is empty
// regardless of candidates; callers distinguish "not requested" from
// "requested, no match" with their own flag, never by inspecting the result.
// Candidates at the (0,0) sentinel or with out-of-range coordinates are
// silently excluded.
func FindNearby[T model.Located](candidates []T, reference model.GeoPoint, maxMinutes int, active bool) []model.Nearby[T] {
	if !active || len(candidates) == 0 {
		return []model.Nearby[T]{}
	}

	nearby := make([]model.Nearby[T], 0, len(candidates))
	for _, candidate := range candidates {
		loc := candidate.Location()
		if !loc.Valid() {
			continue
		}
		minutes := geo.TravelTimeMinutes(geo.DistanceKm(reference, loc))
		if minutes <= maxMinutes {
			nearby = append(nearby, model.Nearby[T]{Entity: candidate, TravelTimeMinutes: minutes})
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].TravelTimeMinutes < nearby[j].TravelTimeMinutes
	})
	return nearby
}

// FindNearbyUniversities is the university variant of FindNearby. When a
// specific university name is selected, the engine switches mode entirely:
// every university whose Arabic or English name matches the selection is
// returned, ignoring the time threshold. Selection-by-name short-circuits
// distance filtering.
func FindNearbyUniversities(universities []model.University, reference model.GeoPoint, selectedName string, maxMinutes int, active bool) []model.Nearby[model.University] {
	if selectedName != "" {
		matched := make([]model.Nearby[model.University], 0, len(universities))
		for _, u := range universities {
			if !textmatch.MatchesName(selectedName, u.Name) {
				continue
			}
			minutes := 0
			if loc := u.Location(); loc.Valid() {
				minutes = geo.TravelTimeMinutes(geo.DistanceKm(reference, loc))
			}
			matched = append(matched, model.Nearby[model.University]{Entity: u, TravelTimeMinutes: minutes})
		}
		return matched
	}
	return FindNearby(universities, reference, maxMinutes, active)
}

// PropertiesNear narrows properties to those within maxMinutes of at least
// one of the given facilities. The distance is recomputed property→facility;
// it is independent of the facility's own travel time from the original
// reference point.
//
// An empty facility set passes the properties through unchanged: absence of
// qualifying facilities must not erase all results; only an explicitly
// active, non-empty facility filter narrows the set. Properties without valid
// coordinates are always dropped from a narrowed result.
func PropertiesNear[T model.Located](properties []model.Property, nearbyFacilities []model.Nearby[T], maxMinutes int) []model.Property {
	if len(nearbyFacilities) == 0 {
		return properties
	}

	kept := make([]model.Property, 0, len(properties))
	for _, p := range properties {
		loc := p.Location()
		if !loc.Valid() {
			continue
		}
		for _, f := range nearbyFacilities {
			facLoc := f.Location()
			if !facLoc.Valid() {
				continue
			}
			if geo.TravelTimeMinutes(geo.DistanceKm(loc, facLoc)) <= maxMinutes {
				kept = append(kept, p)
				break
			}
		}
	}
	return kept
}
