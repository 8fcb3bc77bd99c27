// Package alphabet prints lookup tables for base-N text encodings.
//
// A forward table answers "what byte does the symbol at position i encode
// to" and a reverse table answers "what value does input byte b decode to".
// Both are rendered as comma separated columns meant to be pasted into the
// source of an encoder or decoder.
package alphabet

// An Alphabet is an ordered sequence of symbol bytes. The position of a byte
// is the value it decodes to.
//
// Alphabets are not checked for duplicate bytes. When a byte repeats, the
// last position wins in a reverse table.
type Alphabet string

const (
	// Unfilled marks a reverse table cell whose byte is not part of any
	// merged alphabet.
	Unfilled = -1

	forwardCols = 8
	reverseCols = 19

	unfilledCell = "__"
)
