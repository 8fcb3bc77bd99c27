package alphabet

import (
	"io"
	"strconv"
)

// Forward returns the hex form of every byte in a, in order.
//
// Each entry uses the lowercase "0x" prefixed form without zero padding,
// so byte 9 is "0x9" and byte 'A' is "0x41".
func Forward(a Alphabet) []string {
	result := make([]string, len(a))

	for i := range len(a) {
		result[i] = "0x" + strconv.FormatUint(uint64(a[i]), 16)
	}

	return result
}

// WriteForward writes the forward table of a to w, eight cells per row.
func WriteForward(w io.Writer, a Alphabet) error {
	return WriteShow(w, Forward(a), forwardCols)
}
