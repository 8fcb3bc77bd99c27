package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/josephcopenhaver/alphabet"
)

type options struct {
	encoding  string
	all, list bool
	logLevel  zerolog.Level
}

func parseArgs(args []string, stderr io.Writer) (opts options, err error) {
	var logLevel string

	fs := flag.NewFlagSet("alphabet-maker", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.encoding, "encoding", alphabet.DefaultEncoding, "encoding to print tables for, see -list")
	fs.BoolVar(&opts.all, "all", false, "print tables for every registered encoding")
	fs.BoolVar(&opts.list, "list", false, "print the registered encoding names and exit")
	fs.StringVar(&logLevel, "log-level", "info", "diagnostic verbosity: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	encodingSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "encoding" {
			encodingSet = true
		}
	})
	if encodingSet && (opts.all || opts.list) {
		return opts, errors.New("do not specify -encoding with -all or -list")
	}
	if opts.all && opts.list {
		return opts, errors.New("do not specify -all with -list")
	}

	opts.logLevel, err = zerolog.ParseLevel(logLevel)
	if err != nil {
		return opts, err
	}

	return opts, nil
}
