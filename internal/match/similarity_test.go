package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSimilarity(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1.0, Similarity("Chase Checking", "chase checking"))
	require.Equal(t, 1.0, Similarity(" Chase Checking ", "chase checking"))
	require.Equal(t, 0.0, Similarity("", "x"))
	require.Equal(t, 0.0, Similarity("", ""))

	// containment bias: 0.7 + 0.3 * (5/14)
	score := Similarity("Chase", "Chase Checking")
	require.GreaterOrEqual(t, score, 0.7)
	require.InDelta(t, ContainsBase+ContainsSpan*5.0/14.0, score, 1e-9)

	// one-character typo: 1 - 1/14
	require.InDelta(t, 1.0-1.0/14.0, Similarity("Chase Checkng", "Chase Checking"), 1e-9)

	// unrelated names stay low
	require.Less(t, Similarity("Chase Checking", "Home Mortgage"), 0.5)
}

func TestSimilaritySymmetry(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"Chase Checking", "chase checking"},
		{"Chase", "Chase Checking"},
		{"Chase Checkng", "Chase Checking"},
		{"", "x"},
		{"Visa", "Amex"},
		{"Emergency Fund", "Emergency"},
	}
	for _, p := range pairs {
		require.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), "%q vs %q", p[0], p[1])
	}
}

func TestSimilarityBounds(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"a", "completely different account name"},
		{"aaaa", "bbbb"},
		{"Chase Checking", "Chase Checking Backup"},
	}
	for _, p := range pairs {
		s := Similarity(p[0], p[1])
		require.GreaterOrEqual(t, s, 0.0, "%q vs %q", p[0], p[1])
		require.LessOrEqual(t, s, 1.0, "%q vs %q", p[0], p[1])
	}
}
