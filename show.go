package alphabet

import (
	"io"
	"os"
)

// Show writes items to standard output in rows of n. See WriteShow.
func Show(items []string, n int) error {
	return WriteShow(os.Stdout, items, n)
}

// WriteShow writes items to w as a comma separated block.
//
// Every n-th item starts a new line indented by two spaces and each item is
// followed by ", ". The block always ends with two newlines, so an empty
// items slice writes only "\n\n".
//
// If n is not positive the items are never wrapped: they are all written on
// a single indented line.
func WriteShow(w io.Writer, items []string, n int) error {
	_, err := w.Write(AppendShow(nil, items, n))
	return err
}

// AppendShow appends the block WriteShow would write to dst and returns the
// extended slice.
func AppendShow(dst []byte, items []string, n int) []byte {
	for i, v := range items {
		if (n > 0 && i%n == 0) || (n <= 0 && i == 0) {
			dst = append(dst, "\n  "...)
		}

		dst = append(dst, v...)
		dst = append(dst, ", "...)
	}

	return append(dst, "\n\n"...)
}
