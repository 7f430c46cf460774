package iso639

import (
	"maps"
	"slices"
)

// All returns every registered language code, sorted by code. The returned
// slice is a fresh copy; mutating it does not affect the registry.
func All() []LanguageCode {
	return slices.Sorted(maps.Keys(languages))
}

// Codes returns the canonical two-letter code of every registered language,
// sorted.
func Codes() []string {
	codes := make([]string, 0, len(languages))
	for c := range languages {
		codes = append(codes, string(c))
	}
	slices.Sort(codes)
	return codes
}
