// Package util holds small helpers shared by the seed and the services.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	separators   = regexp.MustCompile(`[\s_]+`)
	disallowed   = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenChains = regexp.MustCompile(`-{2,}`)
)

// Slugify turns a title into a category slug: accents dropped, lowercase,
// words joined by single hyphens.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}

	out = strings.ToLower(strings.TrimSpace(out))
	out = separators.ReplaceAllString(out, "-")
	out = disallowed.ReplaceAllString(out, "")
	out = hyphenChains.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// IsValidSlug reports whether s could have been produced by Slugify.
func IsValidSlug(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' || strings.Contains(s, "--") {
		return false
	}
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
			return false
		}
	}
	return true
}
