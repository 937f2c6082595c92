package utils

import (
	"strings"
)

// SuggestionFilter tracks suggestions already seen within one bucket and
// drops case-insensitive duplicates, keeping the first occurrence.
type SuggestionFilter struct {
	seen map[string]bool
}

// NewSuggestionFilter creates an empty filter for a single bucket pass
func NewSuggestionFilter() *SuggestionFilter {
	return &SuggestionFilter{
		seen: make(map[string]bool),
	}
}

// ShouldInclude reports whether a suggestion has not been seen yet.
// The first casing encountered claims the slot; later casings are duplicates.
func (f *SuggestionFilter) ShouldInclude(suggestion string) bool {
	lower := strings.ToLower(suggestion)
	if f.seen[lower] {
		return false
	}
	f.seen[lower] = true
	return true
}

// Dedup returns suggestions with case-insensitive duplicates removed,
// preserving the relative order of first occurrences.
func Dedup(suggestions []string) []string {
	filter := NewSuggestionFilter()
	unique := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		if filter.ShouldInclude(s) {
			unique = append(unique, s)
		}
	}
	return unique
}
