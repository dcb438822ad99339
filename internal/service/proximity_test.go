package service

import (
	"testing"

	"aqarsearch/internal/model"
)

var testReference = model.GeoPoint{Lat: 24.7136, Lon: 46.6753}

// schoolAt builds a school roughly n kilometers north of the test reference.
// One degree of latitude is ~111 km.
func schoolAt(id int64, km float64) model.School {
	return model.School{
		ID:  id,
		Lat: testReference.Lat + km/111.0,
		Lon: testReference.Lon,
	}
}

func TestFindNearby_InactiveReturnsEmpty(t *testing.T) {
	schools := []model.School{schoolAt(1, 1)}
	got := FindNearby(schools, testReference, 60, false)
	if len(got) != 0 {
		t.Errorf("inactive filter returned %d results, want 0", len(got))
	}
}

func TestFindNearby_EmptyCandidates(t *testing.T) {
	got := FindNearby([]model.School{}, testReference, 60, true)
	if len(got) != 0 {
		t.Errorf("empty candidates returned %d results, want 0", len(got))
	}
}

func TestFindNearby_Threshold(t *testing.T) {
	schools := []model.School{
		schoolAt(1, 2),  // ~4 min drive
		schoolAt(2, 10), // ~20 min drive
		schoolAt(3, 50), // ~100 min drive
	}
	got := FindNearby(schools, testReference, 30, true)
	if len(got) != 2 {
		t.Fatalf("FindNearby returned %d results, want 2", len(got))
	}
	for _, n := range got {
		if n.TravelTimeMinutes > 30 {
			t.Errorf("school %d annotated with %d minutes, above threshold", n.Entity.ID, n.TravelTimeMinutes)
		}
	}
}

func TestFindNearby_Monotonicity(t *testing.T) {
	schools := []model.School{
		schoolAt(1, 3), schoolAt(2, 8), schoolAt(3, 20), schoolAt(4, 40),
	}
	narrow := FindNearby(schools, testReference, 15, true)
	wide := FindNearby(schools, testReference, 60, true)

	wideIDs := make(map[int64]bool)
	for _, n := range wide {
		wideIDs[n.Entity.ID] = true
	}
	for _, n := range narrow {
		if !wideIDs[n.Entity.ID] {
			t.Errorf("school %d in narrow result but not in wide result", n.Entity.ID)
		}
	}
	if len(narrow) > len(wide) {
		t.Errorf("narrow result larger than wide: %d > %d", len(narrow), len(wide))
	}
}

func TestFindNearby_SkipsSentinelCoordinates(t *testing.T) {
	schools := []model.School{
		{ID: 1, Lat: 0, Lon: 0},
		schoolAt(2, 1),
	}
	got := FindNearby(schools, testReference, 60, true)
	if len(got) != 1 || got[0].Entity.ID != 2 {
		t.Errorf("sentinel-coordinate school leaked into results: %+v", got)
	}
}

func TestFindNearby_SortedByTravelTime(t *testing.T) {
	schools := []model.School{schoolAt(1, 20), schoolAt(2, 2), schoolAt(3, 10)}
	got := FindNearby(schools, testReference, 120, true)
	for i := 1; i < len(got); i++ {
		if got[i].TravelTimeMinutes < got[i-1].TravelTimeMinutes {
			t.Errorf("results not sorted by travel time: %v", got)
		}
	}
}

func TestFindNearbyUniversities_NameSelectionBypassesThreshold(t *testing.T) {
	// ~100 km away, far beyond a 1-minute threshold.
	ksu := model.University{
		ID:   1,
		Name: model.BilingualName{AR: "جامعة الملك سعود", EN: "King Saud University"},
		Lat:  testReference.Lat + 0.9,
		Lon:  testReference.Lon,
	}
	universities := []model.University{ksu}

	withSelection := FindNearbyUniversities(universities, testReference, "جامعة الملك سعود", 1, true)
	if len(withSelection) != 1 {
		t.Fatalf("selected university not returned despite distance: got %d results", len(withSelection))
	}
	if withSelection[0].TravelTimeMinutes <= 1 {
		t.Errorf("annotated travel time %d should reflect the real distance", withSelection[0].TravelTimeMinutes)
	}

	withoutSelection := FindNearbyUniversities(universities, testReference, "", 1, true)
	if len(withoutSelection) != 0 {
		t.Errorf("without selection the 1-minute threshold must filter it out, got %d", len(withoutSelection))
	}
}

func TestFindNearbyUniversities_SelectionMatchesBothLanguages(t *testing.T) {
	universities := []model.University{
		{ID: 1, Name: model.BilingualName{AR: "جامعة الملك سعود", EN: "King Saud University"}, Lat: 24.72, Lon: 46.63},
		{ID: 2, Name: model.BilingualName{AR: "جامعة الأميرة نورة", EN: "Princess Nourah University"}, Lat: 24.84, Lon: 46.73},
	}
	got := FindNearbyUniversities(universities, testReference, "king saud", 15, true)
	if len(got) != 1 || got[0].Entity.ID != 1 {
		t.Errorf("English selection should match exactly one university, got %+v", got)
	}
}

func propertyAt(id int64, km float64) model.Property {
	return model.Property{
		ID:  id,
		Lat: testReference.Lat + km/111.0,
		Lon: testReference.Lon,
	}
}

func TestPropertiesNear_EmptyFacilitiesPassThrough(t *testing.T) {
	properties := []model.Property{propertyAt(1, 1), {ID: 2, Lat: 0, Lon: 0}}
	got := PropertiesNear(properties, []model.Nearby[model.School]{}, 10)
	if len(got) != len(properties) {
		t.Errorf("empty facility set must pass properties through, got %d of %d", len(got), len(properties))
	}
}

func TestPropertiesNear_NarrowsToFacilityNeighborhood(t *testing.T) {
	properties := []model.Property{
		propertyAt(1, 1),  // near the facility below
		propertyAt(2, 60), // far from it
	}
	facilities := []model.Nearby[model.School]{
		{Entity: schoolAt(10, 2), TravelTimeMinutes: 4},
	}
	got := PropertiesNear(properties, facilities, 15)
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("PropertiesNear = %+v, want only property 1", got)
	}
}

func TestPropertiesNear_DropsSentinelProperties(t *testing.T) {
	properties := []model.Property{
		{ID: 1, Lat: 0, Lon: 0},
		propertyAt(2, 1),
	}
	facilities := []model.Nearby[model.School]{
		{Entity: schoolAt(10, 1), TravelTimeMinutes: 2},
	}
	got := PropertiesNear(properties, facilities, 30)
	for _, p := range got {
		if p.ID == 1 {
			t.Error("sentinel-coordinate property leaked into narrowed results")
		}
	}
}

func TestPropertiesNear_ORAcrossFacilitiesOfSameKind(t *testing.T) {
	properties := []model.Property{
		propertyAt(1, 1),
		propertyAt(2, 30),
	}
	facilities := []model.Nearby[model.School]{
		{Entity: schoolAt(10, 2), TravelTimeMinutes: 4},
		{Entity: schoolAt(11, 29), TravelTimeMinutes: 58},
	}
	got := PropertiesNear(properties, facilities, 10)
	if len(got) != 2 {
		t.Errorf("each property is near one of the two facilities, want both kept, got %d", len(got))
	}
}

func TestPropertiesNear_ComposesANDAcrossKinds(t *testing.T) {
	properties := []model.Property{
		propertyAt(1, 1),
		propertyAt(2, 30),
	}
	schools := []model.Nearby[model.School]{
		{Entity: schoolAt(10, 2), TravelTimeMinutes: 4},
		{Entity: schoolAt(11, 29), TravelTimeMinutes: 58},
	}
	mosques := []model.Nearby[model.Mosque]{
		{Entity: model.Mosque{ID: 20, Lat: testReference.Lat + 1.0/111.0, Lon: testReference.Lon}, TravelTimeMinutes: 2},
	}

	// Both survive the school pass, only the first survives the mosque pass.
	afterSchools := PropertiesNear(properties, schools, 10)
	afterMosques := PropertiesNear(afterSchools, mosques, 10)
	if len(afterMosques) != 1 || afterMosques[0].ID != 1 {
		t.Errorf("sequential composition = %+v, want only property 1", afterMosques)
	}
}
