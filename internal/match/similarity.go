// Package match scores name similarity for account reconciliation.
package match

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Containment scoring: a name contained in the other starts at
// ContainsBase and gains up to ContainsSpan as the lengths converge.
const (
	ContainsBase = 0.7
	ContainsSpan = 0.3
)

// Similarity returns a score in [0,1] for two names, case-insensitive and
// trimmed. Equal names score 1, empty names 0, containment scores
// ContainsBase plus ContainsSpan times the length ratio, and anything else
// falls back to normalised Levenshtein distance. Symmetric in its
// arguments.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		if a == "" {
			return 0
		}
		return 1
	}
	if a == "" || b == "" {
		return 0
	}

	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	shorter, longer := la, lb
	if shorter > longer {
		shorter, longer = longer, shorter
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		return ContainsBase + ContainsSpan*float64(shorter)/float64(longer)
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longer)
}
