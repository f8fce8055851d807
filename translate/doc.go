// Package translate implements table-driven text substitution pipelines:
// the escaping/unescaping machinery behind XML and JSON text handling,
// built from small composable translators.
//
// 🚀 What is a translator?
//
//	A Translator inspects the input at one position and either consumes a
//	chunk (writing its replacement) or passes, letting the next stage — or
//	the literal copy — take over. Escapers, unescapers and arbitrary
//	substitution tables are all the same machine with different tables.
//
// ✨ Key features:
//   - Lookup      — longest-match substring table translator
//   - Chain       — first translator that consumes wins
//   - TranslatorFunc — plain functions as translators
//   - String      — run any translator over a whole string
//   - Transformer — adapter onto golang.org/x/text/transform, so any
//     translator streams through transform.NewReader / NewWriter
//   - Ready-made XML and JSON escape/unescape pipelines
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lexis/translate"
//
//	translate.String(translate.EscapeXML, `a < b & c`)
//	// "a &lt; b &amp; c"
//
//	r := transform.NewReader(file, translate.Transformer(translate.UnescapeJSON))
//
// Determinism: Lookup always takes the longest key matching at the current
// position; Chain always honors stage order. Translators are immutable
// after construction and safe for concurrent use.
//
// Performance: O(n·L) worst case for a table with maximum key length L;
// single pass, no backtracking.
package translate
