// SPDX-License-Identifier: MIT
// Package: lexis/translate
//
// translator.go — the Translator contract, the whole-string driver and
// the Chain combinator.

package translate

import (
	"strings"
	"unicode/utf8"
)

// Translator is one stage of a substitution pipeline.
//
// Translate inspects src at the byte offset (always a rune boundary),
// writes any replacement to dst and returns the number of bytes consumed.
// Zero means "no match here" — the driver then copies the code point at
// offset verbatim and moves on.
//
// Implementations must be pure and must not consume past len(src).
type Translator interface {
	Translate(dst *strings.Builder, src string, offset int) (consumed int)
}

// TranslatorFunc adapts a plain function to the Translator interface.
type TranslatorFunc func(dst *strings.Builder, src string, offset int) int

// Translate calls f.
func (f TranslatorFunc) Translate(dst *strings.Builder, src string, offset int) int {
	return f(dst, src, offset)
}

// maxMatcher is implemented by translators that know the longest input
// span they can ever consume; the transform adapter uses it to size its
// lookahead.
type maxMatcher interface {
	maxMatchLen() int
}

// String runs t over all of s and returns the translated text.
// Positions t declines are copied through unchanged.
func String(t Translator, s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		if n := t.Translate(&b, s, i); n > 0 {
			i += n

			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		b.WriteString(s[i : i+size])
		i += size
	}

	return b.String()
}

// Chain combines translators into one: at each position the first stage
// that consumes wins and later stages are not consulted.
func Chain(stages ...Translator) Translator {
	return chain(stages)
}

type chain []Translator

func (c chain) Translate(dst *strings.Builder, src string, offset int) int {
	for _, t := range c {
		if n := t.Translate(dst, src, offset); n > 0 {
			return n
		}
	}

	return 0
}

func (c chain) maxMatchLen() int {
	longest := 0
	for _, t := range c {
		longest = maxInt(longest, matchLenOf(t))
	}

	return longest
}

// matchLenOf reports the longest span t can consume, falling back to a
// single code point for translators that do not say.
func matchLenOf(t Translator) int {
	if m, ok := t.(maxMatcher); ok {
		return m.maxMatchLen()
	}

	return utf8.UTFMax
}

func maxInt(a, b int) int {
	if b > a {
		return b
	}

	return a
}
