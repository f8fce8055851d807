// SPDX-License-Identifier: MIT
// Package: lexis/jaro
//
// jaro.go — Jaro similarity and the Winkler prefix-boosted variant.

package jaro

// Similarity returns the Jaro similarity of a and b in [0,1].
//
// Two code points match when they are equal and no further apart than
// max(m,n)/2 − 1 positions; each code point of b matches at most once.
// The score combines the match count with the number of transpositions
// among the matched code points:
//
//	jaro = (m/|a| + m/|b| + (m − t/2)/m) / 3
//
// Two empty strings are identical (score 1); one empty string scores 0.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 && lb == 0 {
		return 1.0
	}
	if la == 0 || lb == 0 {
		return 0.0
	}

	window := la
	if lb > window {
		window = lb
	}
	window = window/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, la)
	matchedB := make([]bool, lb)
	matches := 0
	for i := 0; i < la; i++ {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window + 1
		if hi > lb {
			hi = lb
		}
		for j := lo; j < hi; j++ {
			if !matchedB[j] && ra[i] == rb[j] {
				matchedA[i] = true
				matchedB[j] = true
				matches++

				break
			}
		}
	}
	if matches == 0 {
		return 0.0
	}

	// Transpositions: matched code points in a and b, compared in order.
	transpositions := 0
	j := 0
	for i := 0; i < la; i++ {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if ra[i] != rb[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)

	return (m/float64(la) + m/float64(lb) + (m-float64(transpositions)/2)/m) / 3
}

// WinklerSimilarity returns the Jaro-Winkler similarity of a and b using
// the standard constants (scale 0.1, boost threshold 0.7, prefix cap 4).
func WinklerSimilarity(a, b string) float64 {
	score, _ := WinklerSimilarityWith(a, b, DefaultOptions())

	return score
}

// WinklerSimilarityWith returns the Jaro-Winkler similarity of a and b
// under the supplied Options:
//
//	winkler = jaro + l·scale·(1 − jaro)
//
// where l is the length of the common prefix, capped at opts.MaxPrefix.
// The boost only applies when the plain Jaro score reaches
// opts.BoostThreshold.
//
// Returns ErrBadScale, ErrBadThreshold or ErrBadPrefix on invalid options.
func WinklerSimilarityWith(a, b string, opts Options) (float64, error) {
	if opts.PrefixScale < 0 || opts.PrefixScale > maxPrefixScale {
		return 0, ErrBadScale
	}
	if opts.BoostThreshold < 0 || opts.BoostThreshold > 1 {
		return 0, ErrBadThreshold
	}
	if opts.MaxPrefix < 0 {
		return 0, ErrBadPrefix
	}

	score := Similarity(a, b)
	if score < opts.BoostThreshold {
		return score, nil
	}

	prefix := commonPrefix([]rune(a), []rune(b), opts.MaxPrefix)

	return score + float64(prefix)*opts.PrefixScale*(1.0-score), nil
}

// commonPrefix counts equal leading code points of a and b, up to limit.
func commonPrefix(a, b []rune, limit int) int {
	n := 0
	for n < len(a) && n < len(b) && n < limit && a[n] == b[n] {
		n++
	}

	return n
}
