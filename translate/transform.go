// SPDX-License-Identifier: MIT
// Package: lexis/translate
//
// transform.go — adapter onto golang.org/x/text/transform, so translators
// compose with transform.NewReader, transform.NewWriter and every other
// consumer of the Transformer contract.

package translate

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer wraps t as a streaming transform.Transformer.
//
// The adapter asks for more input (transform.ErrShortSrc) whenever fewer
// bytes remain in the chunk than the translator's longest possible match,
// so table keys never straddle a buffer boundary.
func Transformer(t Translator) transform.Transformer {
	return transformer{t: t, lookahead: matchLenOf(t)}
}

type transformer struct {
	transform.NopResetter

	t         Translator
	lookahead int
}

// Transform implements transform.Transformer.
func (tr transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	s := string(src)
	for nSrc < len(s) {
		if !atEOF && len(s)-nSrc < tr.lookahead {
			return nDst, nSrc, transform.ErrShortSrc
		}

		var b strings.Builder
		consumed := tr.t.Translate(&b, s, nSrc)
		var out string
		if consumed > 0 {
			out = b.String()
		} else {
			r, size := utf8.DecodeRuneInString(s[nSrc:])
			if r == utf8.RuneError && size == 1 && !atEOF && len(s)-nSrc < utf8.UTFMax {
				return nDst, nSrc, transform.ErrShortSrc
			}
			out = s[nSrc : nSrc+size]
			consumed = size
		}

		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += consumed
	}

	return nDst, nSrc, nil
}
