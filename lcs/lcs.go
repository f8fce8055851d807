// SPDX-License-Identifier: MIT
// Package: lexis/lcs
//
// lcs.go — public API: LCS length, reconstruction and LCS-based edit
// distance over generic sequences, plus rune-based string wrappers.

package lcs

import "unicode/utf8"

// Length returns the length of the longest common subsequence of left and
// right.
//
// Symmetric: Length(a, b) == Length(b, a).
// Bounded:   0 ≤ Length(a, b) ≤ min(len(a), len(b)).
//
// The reduction always runs with the shorter sequence as the DP row, so
// memory is O(min(m,n)) rather than O(max(m,n)). Empty inputs return 0
// without touching the DP machinery.
//
// Returns ErrNilSequence if either slice is nil.
func Length[T comparable](left, right []T) (int, error) {
	if left == nil || right == nil {
		return 0, ErrNilSequence
	}
	if len(left) == 0 || len(right) == 0 {
		return 0, nil
	}

	// The row width follows the second argument; keep it the shorter one.
	if len(right) > len(left) {
		left, right = right, left
	}
	row := finalRow(left, right)

	return row[len(row)-1], nil
}

// Longest returns one longest common subsequence of left and right.
//
// The result is always a genuine subsequence of both inputs and its length
// always equals Length(left, right). When several subsequences share the
// maximal length the same one is returned on every call (first-split
// tie-break, see package docs); callers should not rely on which one
// beyond that determinism.
//
// Runs in O(m·n) time and O(m+n) auxiliary memory: the full DP table is
// never materialized, only two rows per divide step.
//
// Returns ErrNilSequence if either slice is nil.
func Longest[T comparable](left, right []T) ([]T, error) {
	if left == nil || right == nil {
		return nil, ErrNilSequence
	}

	capacity := len(left)
	if len(right) < capacity {
		capacity = len(right)
	}

	return reconstruct(left, right, make([]T, 0, capacity)), nil
}

// Distance returns the LCS edit distance between left and right:
// the number of single-element insertions and deletions needed to turn
// left into right, i.e. len(left) + len(right) − 2·Length(left, right).
//
// Returns ErrNilSequence if either slice is nil.
func Distance[T comparable](left, right []T) (int, error) {
	n, err := Length(left, right)
	if err != nil {
		return 0, err
	}

	return len(left) + len(right) - 2*n, nil
}

// LengthString is Length over the code points of a and b.
func LengthString(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	n, _ := Length([]rune(a), []rune(b))

	return n
}

// LongestString is Longest over the code points of a and b.
func LongestString(a, b string) string {
	if len(a) == 0 || len(b) == 0 {
		return ""
	}
	seq, _ := Longest([]rune(a), []rune(b))

	return string(seq)
}

// DistanceString is Distance over the code points of a and b.
func DistanceString(a, b string) int {
	return utf8.RuneCountInString(a) + utf8.RuneCountInString(b) - 2*LengthString(a, b)
}
