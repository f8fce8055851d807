package hamming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexis/hamming"
)

// TestDistance_KnownPairs checks classic Hamming fixtures.
func TestDistance_KnownPairs(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"same", "same", 0},
		{"karolin", "kathrin", 3},
		{"1011101", "1001001", 2},
		{"2173896", "2233796", 3},
	}
	for _, tc := range cases {
		d, err := hamming.Distance(tc.a, tc.b)
		require.NoError(t, err, "equal-length inputs must not error")
		assert.Equal(t, tc.want, d, "Distance(%q, %q)", tc.a, tc.b)
	}
}

// TestDistance_LengthMismatch asserts the sentinel on unequal lengths.
func TestDistance_LengthMismatch(t *testing.T) {
	_, err := hamming.Distance("short", "longer")
	assert.ErrorIs(t, err, hamming.ErrLengthMismatch, "unequal lengths must error")

	// Byte lengths match, rune counts do not.
	_, err = hamming.Distance("éé", "abcd")
	assert.ErrorIs(t, err, hamming.ErrLengthMismatch, "distance is per code point, not byte")
}

// TestDistance_Unicode checks per-code-point comparison.
func TestDistance_Unicode(t *testing.T) {
	d, err := hamming.Distance("café", "cafe")
	require.NoError(t, err)
	assert.Equal(t, 1, d, "é and e are one mismatched position")
}

// TestDistanceOf_Generic exercises the generic variant over bytes and ints.
func TestDistanceOf_Generic(t *testing.T) {
	d, err := hamming.DistanceOf([]byte{0x0F, 0xAA}, []byte{0xF0, 0xAA})
	require.NoError(t, err)
	assert.Equal(t, 1, d, "one differing byte")

	d, err = hamming.DistanceOf([]int{1, 2, 3}, []int{3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, d, "first and last positions differ")

	_, err = hamming.DistanceOf([]int{1}, []int{1, 2})
	assert.ErrorIs(t, err, hamming.ErrLengthMismatch)
}
