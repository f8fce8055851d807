// SPDX-License-Identifier: MIT
// Package: lexis/hamming
//
// hamming.go — positional mismatch count over equal-length sequences.

package hamming

import "errors"

// ErrLengthMismatch indicates that the two inputs differ in length.
// Hamming distance is undefined in that case; callers that need a metric
// over unequal lengths should use levenshtein.Distance instead.
// Usage: if errors.Is(err, ErrLengthMismatch) { /* fall back */ }.
var ErrLengthMismatch = errors.New("hamming: sequences differ in length")

// Distance returns the Hamming distance between the code points of a and b.
//
// Returns ErrLengthMismatch when a and b decode to different rune counts.
func Distance(a, b string) (int, error) {
	return DistanceOf([]rune(a), []rune(b))
}

// DistanceOf returns the Hamming distance between two sequences of any
// comparable element type.
//
// Returns ErrLengthMismatch when the lengths differ.
func DistanceOf[T comparable](a, b []T) (int, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	d := 0
	for i := range a {
		if a[i] != b[i] {
			d++
		}
	}

	return d, nil
}
