// Package similarity defines the tokenizer abstraction shared by all
// set-based measures.
package similarity

import "strings"

// Tokenizer turns a string into the tokens a measure compares.
// Implementations must be pure: same input, same tokens.
type Tokenizer func(s string) []string

// Fields tokenizes on whitespace, exactly like strings.Fields.
// Suitable for word-level comparison of natural-language text.
func Fields(s string) []string {
	return strings.Fields(s)
}

// Shingles returns a Tokenizer producing overlapping character k-grams
// over code points.
//
//	Shingles(2)("night") → ["ni", "ig", "gh", "ht"]
//
// Strings shorter than k (but non-empty) yield the whole string as a
// single token, so very short inputs still carry signal. The empty string
// yields no tokens.
//
// Panics if k < 1 (constructor validation; the returned Tokenizer itself
// never panics).
func Shingles(k int) Tokenizer {
	if k < 1 {
		panic("similarity: shingle size must be at least 1")
	}

	return func(s string) []string {
		if s == "" {
			return nil
		}
		runes := []rune(s)
		if len(runes) < k {
			return []string{s}
		}

		grams := make([]string, 0, len(runes)-k+1)
		for i := 0; i+k <= len(runes); i++ {
			grams = append(grams, string(runes[i:i+k]))
		}

		return grams
	}
}
