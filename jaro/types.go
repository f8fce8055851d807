// Package jaro defines configuration options for the Winkler prefix boost.
package jaro

// Standard Winkler constants, as published.
const (
	// DefaultPrefixScale is how strongly a shared prefix lifts the score.
	DefaultPrefixScale = 0.1

	// DefaultBoostThreshold is the minimum Jaro score that earns a boost;
	// below it the pair is too dissimilar for a prefix to mean anything.
	DefaultBoostThreshold = 0.7

	// DefaultMaxPrefix caps how many leading code points count.
	DefaultMaxPrefix = 4

	// maxPrefixScale is the largest scale that keeps the boosted score ≤ 1
	// with a four-character prefix.
	maxPrefixScale = 0.25
)

// Options configures WinklerSimilarityWith.
//
// Fields:
//   - PrefixScale    — boost per shared leading code point, in [0, 0.25].
//   - BoostThreshold — minimum Jaro score required before any boost, in [0, 1].
//   - MaxPrefix      — cap on the counted common prefix length, ≥ 0.
//
// Example:
//
//	opts := jaro.DefaultOptions()
//	opts.BoostThreshold = 0 // boost every pair, however dissimilar
//	score, err := jaro.WinklerSimilarityWith("martha", "marhta", opts)
type Options struct {
	PrefixScale    float64
	BoostThreshold float64
	MaxPrefix      int
}

// DefaultOptions returns the standard Winkler parameters
// (scale 0.1, threshold 0.7, prefix cap 4).
func DefaultOptions() Options {
	return Options{
		PrefixScale:    DefaultPrefixScale,
		BoostThreshold: DefaultBoostThreshold,
		MaxPrefix:      DefaultMaxPrefix,
	}
}
