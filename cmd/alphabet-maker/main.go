// Command alphabet-maker prints forward and reverse lookup tables for
// base-N text encodings.
//
// Usage:
//
//	alphabet-maker [-encoding NAME | -all | -list] [-log-level LEVEL]
//
// With no flags it prints the tables of the word-safe alphabet.
//
// The forward table lists the hex value of the symbol at each position. The
// reverse table is indexed by input byte and gives the decoded value, or __
// for bytes outside the alphabet. Both are laid out so they can be pasted
// into the source of an encoder or decoder.
//
// With -list the registered encoding names are printed one per line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/josephcopenhaver/alphabet"
)

const (
	errorStatus = 1
	usageStatus = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).With().Timestamp().Logger()

	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		logger.Error().Err(err).Msg("invalid arguments")
		return usageStatus
	}

	logger = logger.Level(opts.logLevel)

	if err := printTables(stdout, opts, logger); err != nil {
		logger.Error().Err(err).Msg("failed to print tables")
		return errorStatus
	}

	return 0
}

func printTables(w io.Writer, opts options, logger zerolog.Logger) error {
	if opts.list {
		for _, name := range alphabet.Names() {
			if _, err := fmt.Fprintln(w, name); err != nil {
				return err
			}
		}

		return nil
	}

	var encodings []alphabet.Encoding
	if opts.all {
		encodings = alphabet.Encodings()
	} else {
		e, err := alphabet.Lookup(opts.encoding)
		if err != nil {
			return err
		}

		encodings = []alphabet.Encoding{e}
	}

	for _, e := range encodings {
		logger.Debug().
			Str("encoding", e.Name).
			Int("symbols", len(e.Alphabet)).
			Int("merged", len(e.Merge)).
			Msg("writing tables")

		if err := e.WriteTables(w); err != nil {
			return fmt.Errorf("writing %s tables: %w", e.Name, err)
		}
	}

	return nil
}
