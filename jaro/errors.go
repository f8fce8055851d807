// SPDX-License-Identifier: MIT
// Package: lexis/jaro
//
// errors.go — sentinel errors for the jaro package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.

package jaro

import "errors"

// ErrBadScale indicates that Options.PrefixScale is outside [0, 0.25].
// Scales above 0.25 can push the boosted score past 1 for four-character
// prefixes, so they are rejected rather than clamped.
// Usage: if errors.Is(err, ErrBadScale) { /* reject scale */ }.
var ErrBadScale = errors.New("jaro: prefix scale out of range")

// ErrBadThreshold indicates that Options.BoostThreshold is outside [0, 1].
// Usage: if errors.Is(err, ErrBadThreshold) { /* reject threshold */ }.
var ErrBadThreshold = errors.New("jaro: boost threshold out of range")

// ErrBadPrefix indicates that Options.MaxPrefix is negative.
// Usage: if errors.Is(err, ErrBadPrefix) { /* reject prefix cap */ }.
var ErrBadPrefix = errors.New("jaro: negative prefix cap")
