// SPDX-License-Identifier: MIT
// Package: lexis/similarity
//
// measures.go — Jaccard, Sørensen-Dice and Cosine over tokenized strings.

package similarity

import "math"

// Jaccard returns |A∩B| / |A∪B| over the distinct tokens of a and b,
// a score in [0,1]. Both-empty token sets score 1, a single empty set
// scores 0.
func Jaccard(a, b string, tok Tokenizer) float64 {
	setA, setB := tokenSet(a, tok), tokenSet(b, tok)
	if degenerate, score := emptyRule(len(setA), len(setB)); degenerate {
		return score
	}

	shared := intersectionSize(setA, setB)

	return float64(shared) / float64(len(setA)+len(setB)-shared)
}

// SorensenDice returns 2|A∩B| / (|A|+|B|) over the distinct tokens of a
// and b, a score in [0,1]. It weighs shared tokens more heavily than
// Jaccard: dice = 2j/(1+j).
func SorensenDice(a, b string, tok Tokenizer) float64 {
	setA, setB := tokenSet(a, tok), tokenSet(b, tok)
	if degenerate, score := emptyRule(len(setA), len(setB)); degenerate {
		return score
	}

	shared := intersectionSize(setA, setB)

	return 2.0 * float64(shared) / float64(len(setA)+len(setB))
}

// Cosine returns the cosine of the angle between the term-frequency
// vectors of a and b, a score in [0,1]. Unlike the set measures it is
// multiset-aware: repeated tokens increase the weight of their dimension.
func Cosine(a, b string, tok Tokenizer) float64 {
	freqA, freqB := tokenFreq(a, tok), tokenFreq(b, tok)
	if degenerate, score := emptyRule(len(freqA), len(freqB)); degenerate {
		return score
	}

	var dot, normA, normB float64
	for t, ca := range freqA {
		normA += float64(ca) * float64(ca)
		if cb, ok := freqB[t]; ok {
			dot += float64(ca) * float64(cb)
		}
	}
	for _, cb := range freqB {
		normB += float64(cb) * float64(cb)
	}

	// Rounding in the square roots can push the quotient a ULP above 1
	// for identical vectors; clamp so the documented range holds.
	return math.Min(1, dot/(math.Sqrt(normA)*math.Sqrt(normB)))
}

// emptyRule implements the uniform degenerate-input rule: both token sets
// empty → identical (1), exactly one empty → disjoint (0).
func emptyRule(na, nb int) (bool, float64) {
	switch {
	case na == 0 && nb == 0:
		return true, 1.0
	case na == 0 || nb == 0:
		return true, 0.0
	default:
		return false, 0
	}
}

func tokenSet(s string, tok Tokenizer) map[string]struct{} {
	tokens := tok(s)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}

	return set
}

func tokenFreq(s string, tok Tokenizer) map[string]int {
	tokens := tok(s)
	freq := make(map[string]int, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}

	return freq
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for t := range a {
		if _, ok := b[t]; ok {
			n++
		}
	}

	return n
}
