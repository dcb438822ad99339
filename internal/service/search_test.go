package service

import (
	"testing"

	"aqarsearch/internal/model"
)

func TestFilterSchools(t *testing.T) {
	schools := []model.School{
		{ID: 1, Gender: "بنات", Level: "ابتدائي"},
		{ID: 2, Gender: "بنين", Level: "ثانوي"},
		{ID: 3, Gender: "مدارس بنات", Level: "المرحلة المتوسطة"},
	}

	tests := []struct {
		name    string
		gender  string
		level   string
		wantIDs []int64
	}{
		{"no filter passes all", model.GenderAny, model.LevelAny, []int64{1, 2, 3}},
		{"girls only", model.GenderGirls, model.LevelAny, []int64{1, 3}},
		{"boys only", model.GenderBoys, model.LevelAny, []int64{2}},
		{"elementary only", model.GenderAny, model.LevelElementary, []int64{1}},
		{"girls middle", model.GenderGirls, model.LevelMiddle, []int64{3}},
		{"no match", model.GenderBoys, model.LevelElementary, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterSchools(schools, tt.gender, tt.level)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("filterSchools returned %d schools, want %d", len(got), len(tt.wantIDs))
			}
			for i, school := range got {
				if school.ID != tt.wantIDs[i] {
					t.Errorf("result[%d].ID = %d, want %d", i, school.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestAnnotateWalking(t *testing.T) {
	mosque := model.Mosque{ID: 1, Lat: testReference.Lat + 1.0/111.0, Lon: testReference.Lon} // ~1 km north
	nearby := []model.Nearby[model.Mosque]{{Entity: mosque, TravelTimeMinutes: 2}}

	got := annotateWalking(nearby, testReference)
	if len(got) != 1 {
		t.Fatalf("annotateWalking returned %d entries, want 1", len(got))
	}
	if got[0].TravelTimeMinutes != 2 {
		t.Errorf("driving annotation changed: %d", got[0].TravelTimeMinutes)
	}
	// ~1 km at 5 km/h is ~12 minutes.
	if got[0].WalkingTimeMinutes < 10 || got[0].WalkingTimeMinutes > 14 {
		t.Errorf("walking time = %d, want roughly 12", got[0].WalkingTimeMinutes)
	}
}
