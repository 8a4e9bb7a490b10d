package util

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	currencyReplacer = strings.NewReplacer(
		"₱", "", "PHP", "", "US$", "", "Mex$", "", "$", "", "USD", "", "₴", "",
	)
	reNumeral = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParsePrice extracts a numeric value from a market price string. The source
// formats decimals either "1,234.56" or "56,49" style, so a lone comma is a
// decimal separator while a comma alongside a dot is thousands grouping.
// Handles strings like "₱34.38", "$45.32", "56,49₴", "2,450.00".
func ParsePrice(text string) (float64, bool) {
	s := currencyReplacer.Replace(strings.TrimSpace(text))
	s = strings.TrimSpace(s)

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		s = strings.ReplaceAll(s, ",", "")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	token := reNumeral.FindString(s)
	if token == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
