package importer

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts a currency-like string to a number. Currency
// symbols and whitespace are stripped, then the comma/period ambiguity is
// resolved: with both present the later-occurring separator is the decimal
// point; with only commas, a comma followed by exactly two characters is a
// decimal point, otherwise commas are thousands separators. Unparseable
// input yields 0; ParseAmount never fails.
func ParseAmount(raw string) float64 {
	s := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r == '€' || r == '$' || r == '£' || r == '₱':
			return -1
		}
		return r
	}, raw)
	if s == "" {
		return 0
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = decimalAt(s, strings.LastIndex(s, ","), ",")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		if len(s)-lastComma-1 == 2 {
			s = decimalAt(s, lastComma, ",")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// decimalAt rewrites the separator at index i as the decimal point and
// strips any earlier occurrences of the same separator.
func decimalAt(s string, i int, sep string) string {
	return strings.ReplaceAll(s[:i], sep, "") + "." + s[i+1:]
}
