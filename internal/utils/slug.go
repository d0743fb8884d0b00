package utils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9-]`)
	validSlug     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// GenerateSlug lowercases text, turns whitespace runs into dashes and drops
// everything outside [a-z0-9-]. Arabic titles therefore produce an empty slug.
func GenerateSlug(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = whitespaceRun.ReplaceAllString(s, "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	return strings.Trim(s, "-")
}

// IsValidSlug reports whether s is a non-empty dash-separated run of [a-z0-9].
func IsValidSlug(s string) bool {
	return validSlug.MatchString(s)
}
