package importer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
	}{
		{"€1,234.56", 1234.56},
		{"1.234,56", 1234.56},
		{"1,23", 1.23},
		{"1,234", 1234},
		{"", 0},
		{"   ", 0},
		{"abc", 0},
		{"$ 2,500.00", 2500},
		{"£-300", -300},
		{"₱1.234.567,89", 1234567.89},
		{"42", 42},
		{"42.5", 42.5},
		{"1,234,567", 1234567},
	}
	for _, tc := range cases {
		require.InDelta(t, tc.want, ParseAmount(tc.in), 1e-9, "input %q", tc.in)
	}
}
