// Package hamming implements the Hamming distance: the number of positions
// at which two equal-length sequences differ.
//
// 🚀 What is Hamming distance?
//
//	The simplest edit metric — only substitutions are allowed, so it is
//	defined solely for sequences of the same length. It shows up in error
//	detection, fixed-width codes and fingerprint comparison.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lexis/hamming"
//
//	d, err := hamming.Distance("karolin", "kathrin") // 3
//	d, err = hamming.DistanceOf([]byte{0x0F}, []byte{0xF0})
//
// Errors (sentinel):
//
//	– ErrLengthMismatch if the inputs differ in length (code points for
//	  strings, elements for slices).
//
// Performance: O(n) time, O(1) extra memory beyond the rune decode.
package hamming
