package util

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	quoteReplacer = strings.NewReplacer(
		"’", "'", "‘", "'",
		"“", `"`, "”", `"`,
	)
	reNumericNoise = regexp.MustCompile(`^[\d,.]+$`)
)

// CleanItemName unifies typographic quotes and unicode quirks so the market
// matches the name. NFKC folds visually identical glyph variants together.
func CleanItemName(raw string) string {
	if raw == "" {
		return raw
	}
	s := quoteReplacer.Replace(raw)
	s = norm.NFKC.String(s)
	return strings.TrimSpace(s)
}

// IsNoiseToken reports whether a cleaned token is UI noise rather than an
// item name: shorter than two runes, or a bare stack count like "5" or "12,345".
func IsNoiseToken(s string) bool {
	s = strings.TrimSpace(s)
	if len([]rune(s)) < 2 {
		return true
	}
	return reNumericNoise.MatchString(s)
}
