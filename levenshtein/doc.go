// Package levenshtein implements edit-distance metrics over Unicode code
// points: the classic Levenshtein distance, a thresholded variant, the
// optimal-string-alignment distance and the unrestricted
// Damerau-Levenshtein distance.
//
// 🚀 What is edit distance?
//
//	The minimum number of single-character edits (insertions, deletions,
//	substitutions — plus adjacent transpositions for the Damerau variants)
//	required to transform one string into another.
//
// ✨ Key features:
//   - Distance      — single rolling row, common prefix/suffix trimmed,
//     O(min(m,n)) memory
//   - DistanceLimit — stops as soon as the result provably exceeds a
//     threshold, returning limit+1
//   - Similarity    — normalized 1 − d/max(m,n) in [0,1]
//   - OSA           — adjacent transpositions, each substring edited once
//   - Damerau       — unrestricted transpositions (Lowrance-Wagner)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lexis/levenshtein"
//
//	levenshtein.Distance("kitten", "sitting") // 3
//	levenshtein.OSA("ca", "abc")              // 3
//	levenshtein.Damerau("ca", "abc")          // 2
//
// All functions are pure and total: every pair of strings has a defined,
// non-negative distance, so there are no error returns. Invalid UTF-8
// sequences decode to utf8.RuneError and compare equal to each other; no
// Unicode normalization is performed.
//
// Performance:
//
//   - Time:   O(m·n) worst case; DistanceLimit prunes to O(limit·min(m,n))
//   - Memory: O(min(m,n)) for Distance/DistanceLimit, O(m·n) for the
//     transposition variants (they need the full table)
package levenshtein
