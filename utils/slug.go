package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9_\s-]`)
	slugCollapse = regexp.MustCompile(`[-\s]+`)
)

// Slugify transliterates s to ASCII and reduces it to lowercase words joined by hyphens.
func Slugify(s string) string {
	s = unidecode.Unidecode(s)
	s = strings.ToLower(s)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-_")
}

// UniqueSlug returns base, or base-1, base-2... whichever taken reports as free first.
func UniqueSlug(base string, taken func(string) (bool, error)) (string, error) {
	candidate := base
	for i := 1; ; i++ {
		used, err := taken(candidate)
		if err != nil {
			return "", err
		}
		if !used {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
