package lcs_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexis/lcs"
)

// naiveLength is the full-table reference implementation used to verify the
// linear-space engine against classic quadratic DP.
func naiveLength(a, b []rune) int {
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}
	return table[len(a)][len(b)]
}

// isSubsequence reports whether sub appears in s in order (not necessarily
// contiguously).
func isSubsequence(sub, s []rune) bool {
	i := 0
	for _, v := range s {
		if i < len(sub) && sub[i] == v {
			i++
		}
	}
	return i == len(sub)
}

// TestLength_NilInput verifies that Length rejects nil sequences with
// ErrNilSequence on either side.
func TestLength_NilInput(t *testing.T) {
	_, err := lcs.Length(nil, []byte("abc"))
	assert.ErrorIs(t, err, lcs.ErrNilSequence, "nil left sequence should error")

	_, err = lcs.Length([]byte("abc"), nil)
	assert.ErrorIs(t, err, lcs.ErrNilSequence, "nil right sequence should error")
}

// TestLongest_NilInput verifies that Longest rejects nil sequences.
func TestLongest_NilInput(t *testing.T) {
	_, err := lcs.Longest(nil, []byte("abc"))
	assert.ErrorIs(t, err, lcs.ErrNilSequence, "nil left sequence should error")

	_, err = lcs.Longest([]byte("abc"), nil)
	assert.ErrorIs(t, err, lcs.ErrNilSequence, "nil right sequence should error")
}

// TestLength_KnownPairs checks the classic textbook pairs.
func TestLength_KnownPairs(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"ABCBDAB", "BDCABA", 4},
		{"", "", 0},
		{"abc", "abc", 3},
		{"abc", "xyz", 0},
		{"a", "ba", 1},
		{"AGCAT", "GAC", 2},
		{"left", "", 0},
		{"", "right", 0},
		{"frog", "fog", 3},
		{"illustration", "illustrator", 10}, // "illustrat" + "o"
	}
	for _, tc := range cases {
		got := lcs.LengthString(tc.a, tc.b)
		assert.Equal(t, tc.want, got, "LengthString(%q, %q)", tc.a, tc.b)
		assert.Equal(t, naiveLength([]rune(tc.a), []rune(tc.b)), got,
			"LengthString(%q, %q) must match reference DP", tc.a, tc.b)
	}
}

// TestLength_Symmetry asserts Length(a,b) == Length(b,a).
func TestLength_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"ABCBDAB", "BDCABA"},
		{"AGCAT", "GAC"},
		{"kitten", "sitting"},
		{"", "nonempty"},
	}
	for _, p := range pairs {
		ab := lcs.LengthString(p[0], p[1])
		ba := lcs.LengthString(p[1], p[0])
		assert.Equal(t, ab, ba, "Length must be symmetric for %q/%q", p[0], p[1])
	}
}

// TestLength_Identity asserts Length(a,a) == len(a) and that reconstruction
// of a sequence against itself returns the sequence.
func TestLength_Identity(t *testing.T) {
	for _, s := range []string{"a", "abc", "ABCBDAB", "ééé"} {
		assert.Equal(t, len([]rune(s)), lcs.LengthString(s, s), "Length(%q, %q)", s, s)
		assert.Equal(t, s, lcs.LongestString(s, s), "Longest(%q, %q)", s, s)
	}
}

// TestLongest_KnownPairs pins the deterministic reconstructions for the
// textbook pairs (first-split tie-break).
func TestLongest_KnownPairs(t *testing.T) {
	// Only length and subsequence validity are universal; the exact string
	// is pinned where the tie-break makes it stable.
	got := lcs.LongestString("abc", "abc")
	assert.Equal(t, "abc", got, "identical inputs reconstruct themselves")

	got = lcs.LongestString("abc", "xyz")
	assert.Equal(t, "", got, "disjoint alphabets reconstruct empty")

	got = lcs.LongestString("a", "ba")
	assert.Equal(t, "a", got, "single-element left scans right for first match")

	got = lcs.LongestString("AGCAT", "GAC")
	assert.Len(t, []rune(got), 2, "AGCAT/GAC has LCS length 2")

	got = lcs.LongestString("ABCBDAB", "BDCABA")
	assert.Len(t, []rune(got), 4, "ABCBDAB/BDCABA has LCS length 4")
	assert.True(t, isSubsequence([]rune(got), []rune("ABCBDAB")), "result must be a subsequence of left")
	assert.True(t, isSubsequence([]rune(got), []rune("BDCABA")), "result must be a subsequence of right")
}

// TestLongest_EmptyRight asserts the empty-right base case.
func TestLongest_EmptyRight(t *testing.T) {
	assert.Equal(t, "", lcs.LongestString("anything", ""), "empty right yields empty LCS")
	assert.Equal(t, "", lcs.LongestString("", "anything"), "empty left yields empty LCS")
}

// TestLongest_Deterministic asserts that repeated calls reconstruct the
// same subsequence when several optimal ones exist.
func TestLongest_Deterministic(t *testing.T) {
	first := lcs.LongestString("ABCBDAB", "BDCABA")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, lcs.LongestString("ABCBDAB", "BDCABA"), "tie-break must be stable")
	}
}

// TestLongest_ConsistencyRandom cross-checks length, reconstruction and
// subsequence validity on random inputs against the reference DP.
func TestLongest_ConsistencyRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []rune("abcd")
	for trial := 0; trial < 200; trial++ {
		a := make([]rune, rng.Intn(40))
		b := make([]rune, rng.Intn(40))
		for i := range a {
			a[i] = alphabet[rng.Intn(len(alphabet))]
		}
		for i := range b {
			b[i] = alphabet[rng.Intn(len(alphabet))]
		}

		want := naiveLength(a, b)

		n, err := lcs.Length(a, b)
		require.NoError(t, err)
		require.Equal(t, want, n, "Length(%q, %q) must match reference DP", string(a), string(b))

		seq, err := lcs.Longest(a, b)
		require.NoError(t, err)
		require.Len(t, seq, want, "len(Longest) must equal Length for %q/%q", string(a), string(b))
		require.True(t, isSubsequence(seq, a), "LCS of %q/%q must be a subsequence of left", string(a), string(b))
		require.True(t, isSubsequence(seq, b), "LCS of %q/%q must be a subsequence of right", string(a), string(b))
	}
}

// TestLength_Bound asserts 0 ≤ Length ≤ min(len(a), len(b)) on random input.
func TestLength_Bound(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 100; trial++ {
		a := make([]byte, rng.Intn(30))
		b := make([]byte, rng.Intn(30))
		rng.Read(a)
		rng.Read(b)

		n, err := lcs.Length(a, b)
		require.NoError(t, err)
		lo := len(a)
		if len(b) < lo {
			lo = len(b)
		}
		require.GreaterOrEqual(t, n, 0)
		require.LessOrEqual(t, n, lo)
	}
}

// TestDistance_Basics checks the LCS edit distance consumer.
func TestDistance_Basics(t *testing.T) {
	d, err := lcs.Distance([]byte("frog"), []byte("fog"))
	require.NoError(t, err)
	assert.Equal(t, 1, d, "frog→fog is one deletion")

	d, err = lcs.Distance([]byte("elephant"), []byte("hippo"))
	require.NoError(t, err)
	assert.Equal(t, 11, d, "elephant/hippo share a single element")

	assert.Equal(t, 0, lcs.DistanceString("same", "same"), "identical strings are distance 0")
	assert.Equal(t, 4, lcs.DistanceString("left", ""), "distance to empty is the full length")

	_, err = lcs.Distance[byte](nil, nil)
	assert.ErrorIs(t, err, lcs.ErrNilSequence, "nil inputs must error")
}

// TestLength_GenericElements exercises the engine over a non-rune element
// type (token IDs).
func TestLength_GenericElements(t *testing.T) {
	a := []int64{1, 2, 3, 4, 5}
	b := []int64{9, 2, 4, 9, 5}

	n, err := lcs.Length(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, n, "token sequences share 2,4,5")

	seq, err := lcs.Longest(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4, 5}, seq, "reconstruction over int64 tokens")
}
