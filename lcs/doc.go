// Package lcs computes longest common subsequences of generic sequences
// in linear memory, using Hirschberg's divide-and-conquer formulation.
//
// 🚀 What is an LCS?
//
//	The longest common subsequence of two sequences is the longest run of
//	elements that appears, in order but not necessarily contiguously, in
//	both.  It underpins diffing, plagiarism scoring, bioinformatics
//	alignment and LCS-based edit distance.
//
// ✨ Key features:
//   - Length    — score only, two rolling DP rows, O(min(m,n)) memory
//   - Longest   — full reconstruction in O(m+n) auxiliary memory via
//     Hirschberg's forward/backward row split (never the O(m·n) table)
//   - Distance  — the LCS edit distance m + n − 2·LCS(m,n)
//   - Generic   — works over []T for any comparable T; rune-based
//     convenience wrappers for strings
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lexis/lcs"
//
//	n, err := lcs.Length([]byte("ABCBDAB"), []byte("BDCABA")) // 4
//	s := lcs.LongestString("AGCAT", "GAC")                    // "GA"
//
// Determinism:
//
//	When several subsequences share the maximal length, reconstruction
//	always returns the same one: the divide step picks the first
//	(smallest) split index achieving the maximal combined score.
//
// Errors (sentinel):
//
//	– ErrNilSequence if either input slice is nil. Empty non-nil inputs
//	  are legal and yield an empty result without running the DP.
//
// Performance:
//
//   - Time:   O(m·n) for Length, Longest and Distance
//   - Memory: O(min(m,n)) for Length, O(m+n) for Longest
//   - Recursion depth of Longest: O(log m) — the left sequence halves on
//     every divide step.
package lcs
