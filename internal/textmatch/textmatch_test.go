package textmatch

import (
	"testing"

	"aqarsearch/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"latin case fold", "King Saud University", "king saud university"},
		{"trims space", "  جامعة  ", "جامعة"},
		{"strips tashkeel", "مَدْرَسَة", "مدرسه"},
		{"alef hamza above", "أحمد", "احمد"},
		{"alef hamza below", "إسلام", "اسلام"},
		{"alef madda", "آمنة", "امنه"},
		{"taa marbuta to haa", "جامعة", "جامعه"},
		{"alef maqsura to yaa", "مستشفى", "مستشفي"},
		{"drops tatweel", "مـدرسـة", "مدرسه"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		candidate string
		want      bool
	}{
		{"empty query never matches", "", "جامعة الملك سعود", false},
		{"empty candidate never matches", "جامعة", "", false},
		{"exact arabic", "جامعة الملك سعود", "جامعة الملك سعود", true},
		{"partial user input", "الملك سعود", "جامعة الملك سعود", true},
		{"candidate shorter than query", "جامعة الملك سعود فرع الرياض", "جامعة الملك سعود", true},
		{"tashkeel variation", "جَامِعَة المَلِك سُعُود", "جامعة الملك سعود", true},
		{"alef variant", "جامعة الامير سلطان", "جامعة الأمير سلطان", true},
		{"latin case insensitive", "king saud", "King Saud University", true},
		{"unrelated names", "جامعة الملك عبدالعزيز", "جامعة الأميرة نورة", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.query, tt.candidate); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.query, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestMatchesName(t *testing.T) {
	name := model.BilingualName{AR: "جامعة الملك سعود", EN: "King Saud University"}

	if !MatchesName("الملك سعود", name) {
		t.Error("expected Arabic partial to match name_ar")
	}
	if !MatchesName("king saud", name) {
		t.Error("expected English partial to match name_en")
	}
	if MatchesName("", name) {
		t.Error("empty query must not match")
	}
	if MatchesName("جامعة نورة", name) {
		t.Error("unrelated name must not match")
	}
}
