package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// MinCountrySimilarity is the lowest levenshtein similarity accepted for a fuzzy match
const MinCountrySimilarity = 0.8

func normalizeInput(input string) string {
	input = strings.ToLower(unidecode.Unidecode(input))
	return strings.TrimSpace(input)
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity is 1 - distance/longest, 1.0 for two empty strings
func calculateSimilarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	distance := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	maxLen := float64(len(ra))
	if float64(len(rb)) > maxLen {
		maxLen = float64(len(rb))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// CountryMatcher resolves free-form country names to country ids
type CountryMatcher struct {
	ids     map[string][]uint
	matcher *closestmatch.ClosestMatch
}

// NewCountryMatcher indexes names by normalised form. names maps a country id to its known names.
func NewCountryMatcher(names map[uint][]string) *CountryMatcher {
	ids := map[string][]uint{}
	for id, list := range names {
		for _, name := range list {
			key := normalizeInput(name)
			if key == "" || containsID(ids[key], id) {
				continue
			}
			ids[key] = append(ids[key], id)
		}
	}
	keys := make([]string, 0, len(ids))
	for k := range ids {
		keys = append(keys, k)
	}
	m := &CountryMatcher{ids: ids}
	if len(keys) > 0 {
		m.matcher = createMatcher(keys)
	}
	return m
}

func containsID(list []uint, id uint) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// Match returns the countries named name, exactly after normalisation or by the closest
// sufficiently similar name. fuzzy reports whether the fallback was used.
func (m *CountryMatcher) Match(name string) (ids []uint, fuzzy bool) {
	key := normalizeInput(name)
	if key == "" {
		return nil, false
	}
	if hit, ok := m.ids[key]; ok {
		return hit, false
	}
	if m.matcher == nil {
		return nil, false
	}
	closest := m.matcher.Closest(key)
	if closest == "" || calculateSimilarity(key, closest) < MinCountrySimilarity {
		return nil, false
	}
	return m.ids[closest], true
}
