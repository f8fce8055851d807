// SPDX-License-Identifier: MIT
// Package: lexis/lcs
//
// hirschberg.go — the linear-space LCS machinery: the rolling-row score
// reduction and the divide-and-conquer reconstruction built on top of it.

package lcs

// finalRow computes the last row of the LCS dynamic-programming table for
// left against right. row[j] is the LCS length of all of left versus the
// first j elements of right.
//
// Only two rows are alive at any time; the buffers are swapped, never
// reallocated, on each outer iteration. Every cur[j] with j ≥ 1 is written
// before it is read, so stale values from two rows back are never observed;
// cur[0] and prev[0] stay zero for the whole run (empty right prefix).
//
// If either sequence is empty the loop bodies never run and the all-zero
// base row is returned as-is.
//
// Complexity:
//
//	Time   = O(len(left)·len(right))
//	Memory = O(len(right)) — two rows of width len(right)+1
func finalRow[T comparable](left, right []T) []int {
	prev := make([]int, len(right)+1)
	cur := make([]int, len(right)+1)

	for i := range left {
		for j := 1; j <= len(right); j++ {
			switch {
			case left[i] == right[j-1]:
				cur[j] = prev[j-1] + 1
			case cur[j-1] >= prev[j]:
				cur[j] = cur[j-1]
			default:
				cur[j] = prev[j]
			}
		}
		prev, cur = cur, prev
	}

	// prev holds the most recently completed row after the final swap.
	return prev
}

// reconstruct appends one longest common subsequence of left and right to
// out and returns the extended slice.
//
// Base cases:
//   - either side empty → nothing to append
//   - single-element left → first matching element of right, if any
//
// Recursive case: split left at its midpoint, score the first half forward
// and the second half backward, cut right at the first index k maximizing
// forward[k] + backward[n-k], then solve the two independent halves.
// The strict `>` while scanning k upward pins the tie-break to the
// smallest maximizer, which keeps the reconstructed subsequence
// deterministic when several share the maximal length.
func reconstruct[T comparable](left, right, out []T) []T {
	m, n := len(left), len(right)
	if m == 0 || n == 0 {
		return out
	}
	if m == 1 {
		for _, v := range right {
			if v == left[0] {
				return append(out, v)
			}
		}

		return out
	}

	mid := m / 2
	forward := finalRow(left[:mid], right)
	backward := finalRow(reversed(left[mid:]), reversed(right))

	split, best := 0, -1
	for k := 0; k <= n; k++ {
		if score := forward[k] + backward[n-k]; score > best {
			best, split = score, k
		}
	}

	out = reconstruct(left[:mid], right[:split], out)

	return reconstruct(left[mid:], right[split:], out)
}

// reversed returns a fresh copy of s with the elements in reverse order.
// The backward pass consumes ephemeral reversed copies; the inputs are
// small relative to the O(m·n) work done on them.
func reversed[T comparable](s []T) []T {
	r := make([]T, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}

	return r
}
