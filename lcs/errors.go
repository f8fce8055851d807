// SPDX-License-Identifier: MIT
// Package: lexis/lcs
//
// errors.go — sentinel errors for the lcs package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Algorithms MUST NOT panic at runtime.

package lcs

import "errors"

// ErrNilSequence indicates that one or both input sequences are nil.
// Classification: Validation error (arguments).
// An empty, non-nil sequence is a legal input and never triggers this error.
// Usage: if errors.Is(err, ErrNilSequence) { /* reject missing input */ }.
var ErrNilSequence = errors.New("lcs: nil input sequence")
