package alphabet

import (
	"fmt"
	"io"
	"slices"
)

// Reverse builds one decode table from every alphabet in merge.
//
// The table is indexed by byte value and holds the position of that byte in
// its alphabet, or Unfilled. Its length is the smallest multiple of 19 that
// is greater than the largest byte seen, and zero when no bytes were seen.
//
// Alphabets are applied in order and so are the positions within each one:
// a byte assigned more than once keeps the last assignment. Collisions are
// not reported since merging case variants relies on them being silent.
func Reverse(merge ...Alphabet) []int {
	var table []int

	for _, a := range merge {
		for i := range len(a) {
			c := int(a[i])

			if c >= len(table) {
				table = growReverse(table, c)
			}

			table[c] = i
		}
	}

	return table
}

// growReverse extends table with Unfilled cells so that index c is valid,
// keeping the length a multiple of reverseCols.
//
// invariants:
//
// - c >= len(table)
func growReverse(table []int, c int) []int {
	orig := len(table)
	n := (c/reverseCols + 1) * reverseCols

	table = slices.Grow(table, n-orig)
	table = table[:n]

	for i := orig; i < n; i++ {
		table[i] = Unfilled
	}

	return table
}

// ReverseCells renders a reverse table as zero padded two digit cells, with
// "__" standing in for Unfilled.
func ReverseCells(table []int) []string {
	result := make([]string, len(table))

	for i, v := range table {
		if v < 0 {
			result[i] = unfilledCell
			continue
		}

		result[i] = fmt.Sprintf("%02d", v)
	}

	return result
}

// WriteReverse writes the merged reverse table of merge to w, nineteen cells
// per row.
func WriteReverse(w io.Writer, merge ...Alphabet) error {
	return WriteShow(w, ReverseCells(Reverse(merge...)), reverseCols)
}
