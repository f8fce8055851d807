// Package jaro implements the Jaro similarity and its Winkler variant,
// fuzzy metrics tuned for short strings such as names and identifiers.
//
// 🚀 What is Jaro similarity?
//
//	A score in [0,1] built from the number of matching code points within
//	a sliding half-window and the number of transpositions among them.
//	Winkler's variant boosts pairs that already agree on a common prefix,
//	on the observation that such pairs are usually spelling variations.
//
// ✨ Key features:
//   - Similarity             — plain Jaro score
//   - WinklerSimilarity      — prefix-boosted score with standard constants
//     (scale 0.1, boost threshold 0.7, prefix capped at 4)
//   - WinklerSimilarityWith  — the same with caller-supplied Options
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lexis/jaro"
//
//	jaro.Similarity("martha", "marhta")        // ≈0.944
//	jaro.WinklerSimilarity("martha", "marhta") // ≈0.961
//
// Errors (sentinel):
//
//	– ErrBadScale     if Options.PrefixScale is outside [0, 0.25]
//	  (above 0.25 a long prefix could push the score past 1)
//	– ErrBadThreshold if Options.BoostThreshold is outside [0, 1]
//	– ErrBadPrefix    if Options.MaxPrefix is negative
//
// Performance:
//
//   - Time:   O(m·n) worst case (window scan), O(m+n) typical
//   - Memory: O(m+n) for the match flags
package jaro
