package service

import (
	"strings"
	"sync"

	"aqarsearch/internal/model"
)

// FilterState orchestrates the two filter snapshots of a search session:
// draft (user-editable) and applied (drives queries), plus the hasSearched
// gate that distinguishes "no search yet" from "searched, empty result".
// Draft edits do not affect results until explicitly applied; assistant
// criteria and free-text queries force an implicit apply.
type FilterState struct {
	mu          sync.Mutex
	defaults    model.FilterCriteria
	draft       model.FilterCriteria
	applied     model.FilterCriteria
	query       string
	hasSearched bool
}

// NewFilterState creates a controller seeded with the given defaults.
func NewFilterState(defaults model.FilterCriteria) *FilterState {
	return &FilterState{
		defaults: defaults,
		draft:    defaults,
		applied:  defaults,
	}
}

// Draft returns the current draft snapshot.
func (s *FilterState) Draft() model.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Applied returns the last-committed snapshot.
func (s *FilterState) Applied() model.FilterCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}

// HasSearched reports whether a search has been triggered in this session.
func (s *FilterState) HasSearched() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasSearched
}

// Query returns the current free-text query.
func (s *FilterState) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// SetDraftFilters merges the patch into the draft snapshot only.
func (s *FilterState) SetDraftFilters(patch model.FilterPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mergePatch(&s.draft, patch)
}

// ApplyFilters copies draft to applied and marks the session as searched.
func (s *FilterState) ApplyFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = s.draft
	s.hasSearched = true
}

// ResetFilters restores both snapshots to defaults and clears the searched
// gate and query.
func (s *FilterState) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = s.defaults
	s.applied = s.defaults
	s.query = ""
	s.hasSearched = false
}

// SetQuery records the free-text query. A non-empty query triggers the
// searched gate immediately, independent of the apply flow.
func (s *FilterState) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	if strings.TrimSpace(query) != "" {
		s.hasSearched = true
	}
}

// SyncFromExternalCriteria maps assistant-supplied criteria into the flat
// filter shape and merges them into both snapshots. Arrival of external
// criteria is an implicit search trigger, bypassing the normal apply step.
// Independently-set local filters outside the supplied fields are kept.
func (s *FilterState) SyncFromExternalCriteria(criteria model.SearchCriteria) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if criteria.District != "" {
		s.draft.District = criteria.District
	}
	if criteria.City != "" {
		s.draft.City = criteria.City
	}
	if criteria.PropertyType != "" {
		s.draft.PropertyType = criteria.PropertyType
	}
	if criteria.Purpose != "" {
		s.draft.Purpose = criteria.Purpose
	}
	if criteria.PriceMin > 0 {
		s.draft.PriceMin = criteria.PriceMin
	}
	if criteria.PriceMax > 0 {
		s.draft.PriceMax = criteria.PriceMax
	}
	if criteria.Bedrooms > 0 {
		s.draft.Bedrooms = criteria.Bedrooms
	}

	if req := criteria.SchoolRequirements; req != nil && req.Required {
		s.draft.SchoolActive = true
		if g := mapSchoolGender(req.Gender); g != model.GenderAny {
			s.draft.SchoolGender = g
		}
		if l := mapSchoolLevel(req.Level); l != model.LevelAny {
			s.draft.SchoolLevel = l
		}
		if req.MaxMinutes > 0 {
			s.draft.SchoolMaxMinutes = req.MaxMinutes
		}
	}
	if req := criteria.UniversityRequirements; req != nil && req.Required {
		s.draft.UniversityActive = true
		if req.Name != "" {
			s.draft.UniversityName = req.Name
		}
		if req.MaxMinutes > 0 {
			s.draft.UniversityMaxMinutes = req.MaxMinutes
		}
	}
	if req := criteria.MosqueRequirements; req != nil && req.Required {
		s.draft.MosqueRequired = true
		if req.MaxMinutes > 0 {
			s.draft.MosqueMaxMinutes = req.MaxMinutes
		}
	}

	s.applied = s.draft
	s.hasSearched = true
}

// mapSchoolGender maps an assistant-supplied Arabic gender literal onto the
// filter enum by substring containment, not exact match.
func mapSchoolGender(literal string) string {
	switch {
	case strings.Contains(literal, "بنات"):
		return model.GenderGirls
	case strings.Contains(literal, "بنين"), strings.Contains(literal, "اولاد"), strings.Contains(literal, "أولاد"):
		return model.GenderBoys
	}
	return model.GenderAny
}

// mapSchoolLevel maps an assistant-supplied Arabic level literal onto the
// filter enum by substring containment.
func mapSchoolLevel(literal string) string {
	switch {
	case strings.Contains(literal, "حضان"):
		return model.LevelNursery
	case strings.Contains(literal, "روض"):
		return model.LevelKindergarten
	case strings.Contains(literal, "ابتدائ"), strings.Contains(literal, "إبتدائ"):
		return model.LevelElementary
	case strings.Contains(literal, "متوسط"):
		return model.LevelMiddle
	case strings.Contains(literal, "ثانوي"):
		return model.LevelHigh
	}
	return model.LevelAny
}

// mergePatch applies the non-nil fields of a patch to the criteria.
func mergePatch(criteria *model.FilterCriteria, patch model.FilterPatch) {
	if patch.PropertyType != nil {
		criteria.PropertyType = *patch.PropertyType
	}
	if patch.District != nil {
		criteria.District = *patch.District
	}
	if patch.City != nil {
		criteria.City = *patch.City
	}
	if patch.Purpose != nil {
		criteria.Purpose = *patch.Purpose
	}
	if patch.PriceMin != nil {
		criteria.PriceMin = *patch.PriceMin
	}
	if patch.PriceMax != nil {
		criteria.PriceMax = *patch.PriceMax
	}
	if patch.AreaMin != nil {
		criteria.AreaMin = *patch.AreaMin
	}
	if patch.AreaMax != nil {
		criteria.AreaMax = *patch.AreaMax
	}
	if patch.Bedrooms != nil {
		criteria.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		criteria.Bathrooms = *patch.Bathrooms
	}
	if patch.LivingRooms != nil {
		criteria.LivingRooms = *patch.LivingRooms
	}
	if patch.SchoolActive != nil {
		criteria.SchoolActive = *patch.SchoolActive
	}
	if patch.SchoolGender != nil {
		criteria.SchoolGender = *patch.SchoolGender
	}
	if patch.SchoolLevel != nil {
		criteria.SchoolLevel = *patch.SchoolLevel
	}
	if patch.SchoolMaxMinutes != nil {
		criteria.SchoolMaxMinutes = *patch.SchoolMaxMinutes
	}
	if patch.UniversityActive != nil {
		criteria.UniversityActive = *patch.UniversityActive
	}
	if patch.UniversityName != nil {
		criteria.UniversityName = *patch.UniversityName
	}
	if patch.UniversityMaxMinutes != nil {
		criteria.UniversityMaxMinutes = *patch.UniversityMaxMinutes
	}
	if patch.MosqueRequired != nil {
		criteria.MosqueRequired = *patch.MosqueRequired
	}
	if patch.MosqueMaxMinutes != nil {
		criteria.MosqueMaxMinutes = *patch.MosqueMaxMinutes
	}
	if patch.MetroRequired != nil {
		criteria.MetroRequired = *patch.MetroRequired
	}
	if patch.MetroMaxMinutes != nil {
		criteria.MetroMaxMinutes = *patch.MetroMaxMinutes
	}
}

// FilterSessions hands out one FilterState per active search session.
type FilterSessions struct {
	mu       sync.Mutex
	defaults model.FilterCriteria
	sessions map[string]*FilterState
}

// NewFilterSessions creates a session store seeded with the given defaults.
func NewFilterSessions(defaults model.FilterCriteria) *FilterSessions {
	return &FilterSessions{
		defaults: defaults,
		sessions: make(map[string]*FilterState),
	}
}

// Get returns the controller for the session, creating it on first use.
// An empty session ID maps to a shared anonymous session.
func (fs *FilterSessions) Get(sessionID string) *FilterState {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if state, ok := fs.sessions[sessionID]; ok {
		return state
	}
	state := NewFilterState(fs.defaults)
	fs.sessions[sessionID] = state
	return state
}
