// SPDX-License-Identifier: MIT
// Package: lexis/levenshtein
//
// levenshtein.go — plain and thresholded Levenshtein distance plus the
// normalized similarity wrapper.

package levenshtein

// Distance returns the code-point Levenshtein distance between a and b:
// the minimum number of insertions, deletions and substitutions that turn
// a into b.
//
// The common prefix and suffix are trimmed first (they never affect the
// distance), and the DP row follows the shorter remainder, so memory is
// O(min(m,n)).
func Distance(a, b string) int {
	ra, rb := trimCommon([]rune(a), []rune(b))

	// Keep the shorter string as the row; its length bounds memory.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return len(rb)
	}

	// Wagner-Fischer with a single rolling row.
	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}
	for j := 1; j <= len(rb); j++ {
		prevDiag := row[0]
		row[0] = j
		for i := 1; i <= len(ra); i++ {
			old := row[i]
			if rb[j-1] == ra[i-1] {
				row[i] = prevDiag
			} else {
				row[i] = 1 + min3(row[i-1], old, prevDiag)
			}
			prevDiag = old
		}
	}

	return row[len(ra)]
}

// DistanceLimit returns the Levenshtein distance between a and b if it is
// at most limit, and limit+1 otherwise. A negative limit is treated as 0.
//
// The calculation bails out as soon as every cell of the current row
// exceeds the limit, so wildly different strings cost O(limit·min(m,n))
// instead of O(m·n).
func DistanceLimit(a, b string, limit int) int {
	if limit < 0 {
		limit = 0
	}

	ra, rb := trimCommon([]rune(a), []rune(b))
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	// The length differential is a lower bound for the distance.
	if len(rb)-len(ra) > limit {
		return limit + 1
	}
	if len(ra) == 0 {
		return len(rb)
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}
	for j := 1; j <= len(rb); j++ {
		prevDiag := row[0]
		row[0] = j
		rowMin := row[0]
		for i := 1; i <= len(ra); i++ {
			old := row[i]
			if rb[j-1] == ra[i-1] {
				row[i] = prevDiag
			} else {
				row[i] = 1 + min3(row[i-1], old, prevDiag)
			}
			prevDiag = old
			if row[i] < rowMin {
				rowMin = row[i]
			}
		}
		if rowMin > limit {
			return limit + 1
		}
	}

	if d := row[len(ra)]; d <= limit {
		return d
	}

	return limit + 1
}

// Similarity returns 1 − Distance(a,b)/max(m,n), a similarity score in
// [0,1] where 1 means the strings are identical. Two empty strings are
// identical by definition.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1.0
	}

	return 1.0 - float64(Distance(a, b))/float64(longest)
}

// trimCommon strips the longest common prefix and suffix of a and b.
// Neither affects any of the distances in this package.
func trimCommon(a, b []rune) ([]rune, []rune) {
	for len(a) > 0 && len(b) > 0 && a[0] == b[0] {
		a, b = a[1:], b[1:]
	}
	for len(a) > 0 && len(b) > 0 && a[len(a)-1] == b[len(b)-1] {
		a, b = a[:len(a)-1], b[:len(b)-1]
	}

	return a, b
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}

	return a
}
