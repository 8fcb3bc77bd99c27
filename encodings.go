package alphabet

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

var ErrUnknownEncoding = errors.New("unknown encoding")

// An Encoding pairs an encode alphabet with the alphabets that must all
// decode to the same values, such as upper and lower case variants.
type Encoding struct {
	Name     string
	Alphabet Alphabet

	// Merge lists the alphabets folded into the reverse table. When empty
	// the reverse table is built from Alphabet alone.
	Merge []Alphabet
}

// Forward returns the forward table of the encode alphabet.
func (e Encoding) Forward() []string {
	return Forward(e.Alphabet)
}

// Reverse returns the merged reverse table.
func (e Encoding) Reverse() []int {
	if len(e.Merge) == 0 {
		return Reverse(e.Alphabet)
	}

	return Reverse(e.Merge...)
}

// WriteTables writes the labeled forward table followed by the labeled
// reverse table:
//
//	<name>:
//	  0x.., ...
//
//	<name> reversed:
//	  __, ...
func (e Encoding) WriteTables(w io.Writer) error {
	var buf []byte

	buf = append(buf, e.Name...)
	buf = append(buf, ':')
	buf = AppendShow(buf, e.Forward(), forwardCols)

	buf = append(buf, e.Name...)
	buf = append(buf, " reversed:"...)
	buf = AppendShow(buf, ReverseCells(e.Reverse()), reverseCols)

	_, err := w.Write(buf)
	return err
}

func (e Encoding) clone() Encoding {
	ce := e

	ce.Merge = slices.Clone(e.Merge)

	return ce
}

//
// registered alphabets, in the order they are listed and printed
//

var encodings = func() []Encoding {
	const (
		base32Hex  = Alphabet("0123456789ABCDEFGHIJKLMNOPQRSTUV")
		crockford  = Alphabet("0123456789ABCDEFGHJKMNPQRSTVWXYZ")
		geohash    = Alphabet("0123456789bcdefghjkmnpqrstuvwxyz")
		zBase32    = Alphabet("ybndrfg8ejkmcpqxot1uwisza345h769")
		wordSafe   = Alphabet("23456789CFGHJMPQRVWXcfghjmpqrvwx")
		base32HexL = Alphabet("0123456789abcdefghijklmnopqrstuv")
	)

	lower := func(a Alphabet) Alphabet {
		return Alphabet(strings.ToLower(string(a)))
	}

	// crockford char aliases: 'O' decodes as 0 while 'I' and 'L' decode as 1
	crockfordAliases := []Alphabet{"OI", "0L"}

	aliased := []Alphabet{crockford, lower(crockford)}
	for _, a := range crockfordAliases {
		aliased = append(aliased, a, lower(a))
	}

	return []Encoding{
		{Name: "base32hex", Alphabet: base32Hex, Merge: []Alphabet{base32Hex, base32HexL}},
		{Name: "base32hex-lowercase", Alphabet: base32HexL, Merge: []Alphabet{base32Hex, base32HexL}},
		{Name: "crockford", Alphabet: crockford},
		{Name: "crockford-aliased", Alphabet: crockford, Merge: aliased},
		{Name: "geohash", Alphabet: geohash},
		{Name: "z-base-32", Alphabet: zBase32},
		{Name: "word-safe", Alphabet: wordSafe},
	}
}()

// DefaultEncoding names the encoding printed when none is requested.
const DefaultEncoding = "word-safe"

// Encodings returns every registered encoding in registry order.
func Encodings() []Encoding {
	result := make([]Encoding, len(encodings))

	for i, e := range encodings {
		result[i] = e.clone()
	}

	return result
}

// Names returns the names of the registered encodings in registry order.
func Names() []string {
	result := make([]string, len(encodings))

	for i, e := range encodings {
		result[i] = e.Name
	}

	return result
}

// Lookup returns the registered encoding called name. The returned error
// wraps ErrUnknownEncoding when there is no such encoding.
func Lookup(name string) (Encoding, error) {
	i := slices.IndexFunc(encodings, func(e Encoding) bool {
		return e.Name == name
	})
	if i == -1 {
		return Encoding{}, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}

	return encodings[i].clone(), nil
}
