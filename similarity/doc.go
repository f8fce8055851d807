// Package similarity implements set- and vector-based similarity measures
// over tokenized strings: Jaccard, Sørensen-Dice and Cosine.
//
// 🚀 What are set similarities?
//
//	Instead of aligning characters, these measures tokenize both strings
//	(words, or overlapping character k-grams called shingles) and compare
//	the resulting sets or term-frequency vectors. They are cheap, order-
//	insensitive and robust for fuzzy document or title matching.
//
// ✨ Key features:
//   - Jaccard      — |A∩B| / |A∪B| over distinct tokens
//   - SorensenDice — 2|A∩B| / (|A|+|B|) over distinct tokens
//   - Cosine       — angle between term-frequency vectors (multiset-aware)
//   - Tokenizer    — pluggable: Fields (whitespace words) or Shingles(k)
//     (overlapping character k-grams)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lexis/similarity"
//
//	bigrams := similarity.Shingles(2)
//	similarity.Jaccard("night", "nacht", bigrams)      // 1/7  ≈ 0.143
//	similarity.SorensenDice("night", "nacht", bigrams) // 2/8  = 0.25
//	similarity.Cosine("night", "nacht", bigrams)       // 1/4  = 0.25
//
// Edge rules (uniform across all three measures):
//   - both token sets empty → 1 (nothing differs)
//   - exactly one empty     → 0 (nothing shared)
//
// Shingles panics if k < 1 — validation panics are confined to
// constructors; the measures themselves never panic.
//
// Performance: O(m+n) time and memory after tokenization.
package similarity
