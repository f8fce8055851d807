// Package lexis is your in-memory toolbox for comparing, scoring and
// transforming text — from classic edit distances to a linear-space
// longest-common-subsequence engine.
//
// 🚀 What is lexis?
//
//	A small, focused library of independent string algorithms:
//		• Edit distances: Levenshtein (plain, limited, OSA, Damerau)
//		• Fuzzy similarity: Jaro & Jaro-Winkler
//		• Positional distance: Hamming
//		• Set similarity: Jaccard, Sørensen-Dice, Cosine over tokens/shingles
//		• LCS: Hirschberg divide-and-conquer in O(m+n) memory
//		• Escaping: table-driven translators (XML, JSON) that plug into
//		  golang.org/x/text/transform
//
// ✨ Why choose lexis?
//
//   - Pure functions – no shared state, safe for concurrent use
//   - Generic where it matters – LCS and Hamming work over any comparable
//     element type, not just runes
//   - Deterministic – every tie in every algorithm breaks the same way
//   - Honest errors – package sentinels, branch with errors.Is
//
// Everything is organized as one package per algorithm family:
//
//	lcs/         — longest common subsequence (length, reconstruction, distance)
//	levenshtein/ — Levenshtein, OSA and Damerau-Levenshtein distances
//	jaro/        — Jaro and Jaro-Winkler similarity
//	hamming/     — Hamming distance over equal-length sequences
//	similarity/  — Jaccard, Sørensen-Dice and Cosine over token sets
//	translate/   — escaping/translation pipelines and x/text adapters
//	cmd/lexis/   — tiny CLI exposing all of the above
//
// Quick taste:
//
//	lcs.LengthString("ABCBDAB", "BDCABA")   // 4
//	levenshtein.Distance("kitten", "sitting") // 3
//	jaro.WinklerSimilarity("martha", "marhta") // ≈0.961
//
//	go get github.com/katalvlaran/lexis
package lexis
