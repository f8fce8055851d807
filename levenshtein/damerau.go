// SPDX-License-Identifier: MIT
// Package: lexis/levenshtein
//
// damerau.go — the transposition-aware variants: optimal string alignment
// and unrestricted Damerau-Levenshtein (Lowrance-Wagner).

package levenshtein

// OSA returns the optimal-string-alignment distance between a and b:
// insertions, deletions, substitutions and transpositions of adjacent code
// points, with the restriction that no substring is edited more than once.
// Under that restriction OSA("ca", "abc") is 3, while the unrestricted
// Damerau distance is 2.
//
// Complexity: O(m·n) time and memory.
func OSA(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	rows, cols := len(ra)+1, len(rb)+1
	dist := make([]int, rows*cols)
	for i := 0; i < rows; i++ {
		dist[i*cols] = i
	}
	for j := 0; j < cols; j++ {
		dist[j] = j
	}

	for i := 1; i < rows; i++ {
		for j := 1; j < cols; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d := min3(
				dist[(i-1)*cols+j]+1,
				dist[i*cols+(j-1)]+1,
				dist[(i-1)*cols+(j-1)]+cost,
			)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if t := dist[(i-2)*cols+(j-2)] + 1; t < d {
					d = t
				}
			}
			dist[i*cols+j] = d
		}
	}

	return dist[rows*cols-1]
}

// Damerau returns the unrestricted Damerau-Levenshtein distance between a
// and b, following Lowrance and Wagner's Algorithm S ("An Extension of the
// String-to-String Correction Problem", JACM 1973). Unlike OSA it allows
// edits inside a previously transposed pair.
//
// Complexity: O(m·n) time and memory.
func Damerau(a, b string) int {
	sa, sb := trimCommon([]rune(a), []rune(b))

	m, n := len(sa), len(sb)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	// Upper bound used as the "infinity" sentinel of the bordered table.
	inf := 1 + m + n

	// Last seen occurrence (row index) of each rune in sa; L&W's DA.
	lastRow := make(map[rune]int, m)

	d := newBorderedTable(m, n)
	for i := 1; i <= m; i++ {
		*d.at(i, -1) = inf
		*d.at(i, 0) = i
	}
	for j := 1; j <= n; j++ {
		*d.at(-1, j) = inf
		*d.at(0, j) = j
	}

	for i := 1; i <= m; i++ {
		// Last seen occurrence (column index) of sa[i-1] in sb; L&W's DB.
		lastCol := 0

		for j := 1; j <= n; j++ {
			i1 := lastRow[sb[j-1]]
			j1 := lastCol

			substCost := 1
			if sa[i-1] == sb[j-1] {
				lastCol = j
				substCost = 0
			}

			*d.at(i, j) = min4(
				*d.at(i-1, j-1)+substCost,
				*d.at(i, j-1)+1,
				*d.at(i-1, j)+1,
				*d.at(i1-1, j1-1)+(i-i1-1)+1+(j-j1-1),
			)
		}
		lastRow[sa[i-1]] = i
	}

	return *d.at(m, n)
}

// borderedTable is a DP table with valid indexes starting at -1, as
// required by the Lowrance-Wagner recurrence.
type borderedTable struct {
	ncols int
	data  []int
}

func newBorderedTable(nrows, ncols int) borderedTable {
	return borderedTable{ncols: ncols + 2, data: make([]int, (nrows+2)*(ncols+2))}
}

func (t *borderedTable) at(i, j int) *int {
	return &t.data[(i+1)*t.ncols+(j+1)]
}

func min4(a, b, c, d int) int {
	m := min3(a, b, c)
	if d < m {
		m = d
	}

	return m
}
