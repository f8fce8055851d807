// SPDX-License-Identifier: MIT
// Package: lexis/translate
//
// lookup.go — the longest-match substring table translator.

package translate

import "strings"

// LookupTranslator substitutes fixed substrings via a table, always taking
// the longest key matching at the current position. Immutable after
// construction; safe for concurrent use.
type LookupTranslator struct {
	table  map[string]string
	minKey int
	maxKey int
}

// Lookup builds a LookupTranslator from pairs (key → replacement).
//
// Panics if pairs is empty or contains an empty key (constructor
// validation; Translate itself never panics).
func Lookup(pairs map[string]string) *LookupTranslator {
	if len(pairs) == 0 {
		panic("translate: empty lookup table")
	}

	lt := &LookupTranslator{
		table:  make(map[string]string, len(pairs)),
		minKey: int(^uint(0) >> 1),
	}
	for k, v := range pairs {
		if k == "" {
			panic("translate: empty lookup key")
		}
		lt.table[k] = v
		if len(k) < lt.minKey {
			lt.minKey = len(k)
		}
		if len(k) > lt.maxKey {
			lt.maxKey = len(k)
		}
	}

	return lt
}

// Translate implements Translator: try the longest candidate key first,
// shrinking to the shortest, and consume the first hit.
func (lt *LookupTranslator) Translate(dst *strings.Builder, src string, offset int) int {
	limit := lt.maxKey
	if offset+limit > len(src) {
		limit = len(src) - offset
	}
	for n := limit; n >= lt.minKey; n-- {
		if rep, ok := lt.table[src[offset:offset+n]]; ok {
			dst.WriteString(rep)

			return n
		}
	}

	return 0
}

func (lt *LookupTranslator) maxMatchLen() int {
	return lt.maxKey
}
