// Package util provides common utility functions.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	wordSeparatorRe   = regexp.MustCompile(`[\s_/]+`)
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9-]`)
	multipleDashRe    = regexp.MustCompile(`-+`)
)

// Slugify converts a display name to a URL slug. Used for business and
// category URLs ("Raj's Café & Catering" → "rajs-cafe-catering").
//
// Accented characters are decomposed and their marks stripped so "café"
// becomes "cafe" rather than disappearing.
func Slugify(input string) string {
	s := stripMarks(norm.NFKD.String(input))
	s = strings.ToLower(strings.TrimSpace(s))
	s = wordSeparatorRe.ReplaceAllString(s, "-")
	s = nonAlphanumericRe.ReplaceAllString(s, "")
	s = multipleDashRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func stripMarks(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.Is(unicode.Mn, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
