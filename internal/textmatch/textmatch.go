// Package textmatch performs fuzzy bilingual name matching. A user-typed
// Arabic or English fragment matches a stored name when either normalized
// form contains the other, so partial input and minor orthographic variation
// (tashkeel, Alef forms, Taa Marbuta) still find the record.
package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"aqarsearch/internal/model"
)

// stripMarks decomposes and removes combining marks: Arabic tashkeel, the
// hamza/madda carriers on Alef, and Latin diacritics.
var stripMarks = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize returns the canonical comparison form of a name fragment.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	out = strings.Map(unifyRune, out)
	return strings.ToLower(strings.TrimSpace(out))
}

// unifyRune folds Arabic letter variants that spelling commonly confuses.
// Tatweel is dropped entirely.
func unifyRune(r rune) rune {
	switch r {
	case 'أ', 'إ', 'آ', 'ٱ':
		return 'ا'
	case 'ة':
		return 'ه'
	case 'ى':
		return 'ي'
	case 'ـ': // tatweel
		return -1
	}
	return r
}

// Matches reports whether the normalized query is contained in the normalized
// candidate or vice versa. An empty query matches nothing by contract;
// callers must special-case "no selection" before invoking this.
func Matches(query, candidate string) bool {
	q := Normalize(query)
	if q == "" {
		return false
	}
	c := Normalize(candidate)
	if c == "" {
		return false
	}
	return strings.Contains(c, q) || strings.Contains(q, c)
}

// MatchesName matches a query against either language form of a name.
func MatchesName(query string, name model.BilingualName) bool {
	return Matches(query, name.AR) || Matches(query, name.EN)
}
