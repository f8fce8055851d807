// SPDX-License-Identifier: MIT
// Package: lexis/translate
//
// tables.go — ready-made XML and JSON escape/unescape pipelines.

package translate

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// EscapeXML escapes the five predefined XML entities.
var EscapeXML Translator = Lookup(map[string]string{
	"&": "&amp;",
	"<": "&lt;",
	">": "&gt;",
	`"`: "&quot;",
	"'": "&apos;",
})

// UnescapeXML reverses EscapeXML.
var UnescapeXML Translator = Lookup(map[string]string{
	"&amp;":  "&",
	"&lt;":   "<",
	"&gt;":   ">",
	"&quot;": `"`,
	"&apos;": "'",
})

// EscapeJSON escapes a string for embedding inside a JSON string literal:
// quote, backslash, the named control escapes, and \u00XX for the
// remaining C0 control characters.
var EscapeJSON Translator = Chain(
	Lookup(map[string]string{
		`"`:  `\"`,
		`\`:  `\\`,
		"\b": `\b`,
		"\f": `\f`,
		"\n": `\n`,
		"\r": `\r`,
		"\t": `\t`,
	}),
	TranslatorFunc(escapeControl),
)

// UnescapeJSON reverses EscapeJSON, including \uXXXX sequences and
// surrogate pairs.
var UnescapeJSON Translator = Chain(
	unicodeUnescaper{},
	Lookup(map[string]string{
		`\"`: `"`,
		`\\`: `\`,
		`\/`: `/`,
		`\b`: "\b",
		`\f`: "\f",
		`\n`: "\n",
		`\r`: "\r",
		`\t`: "\t",
	}),
)

// escapeControl writes \u00XX for C0 control characters not covered by the
// named escapes.
func escapeControl(dst *strings.Builder, src string, offset int) int {
	c := src[offset]
	if c >= 0x20 {
		return 0
	}
	fmt.Fprintf(dst, `\u%04X`, c)

	return 1
}

// unicodeUnescaper consumes \uXXXX sequences, combining a high/low
// surrogate pair into one code point when both halves are present.
// Malformed sequences are declined and fall through as literals.
type unicodeUnescaper struct{}

// maxMatchLen covers a full surrogate pair: two \uXXXX sequences.
func (unicodeUnescaper) maxMatchLen() int {
	return 2 * len(`\uXXXX`)
}

func (unicodeUnescaper) Translate(dst *strings.Builder, src string, offset int) int {
	r1, n1 := parseUnicodeEscape(src, offset)
	if n1 == 0 {
		return 0
	}
	if utf16.IsSurrogate(r1) {
		if r2, n2 := parseUnicodeEscape(src, offset+n1); n2 > 0 {
			if combined := utf16.DecodeRune(r1, r2); combined != utf8.RuneError {
				dst.WriteRune(combined)

				return n1 + n2
			}
		}
		// Unpaired surrogate: emit the replacement character, as a decoder
		// of the equivalent invalid UTF-8 would.
		dst.WriteRune(utf8.RuneError)

		return n1
	}
	dst.WriteRune(r1)

	return n1
}

// parseUnicodeEscape reads one \uXXXX at offset; n is 0 when absent or
// malformed.
func parseUnicodeEscape(src string, offset int) (r rune, n int) {
	const escLen = len(`\uXXXX`)
	if offset+escLen > len(src) || src[offset] != '\\' || src[offset+1] != 'u' {
		return 0, 0
	}
	v, err := strconv.ParseUint(src[offset+2:offset+escLen], 16, 32)
	if err != nil {
		return 0, 0
	}

	return rune(v), escLen
}
