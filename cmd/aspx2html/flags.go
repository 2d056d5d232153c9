package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across runs.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all CLI flags.
type convertFlags struct {
	common       commonFlags
	workers      int
	encoding     string
	lang         string
	defaultTitle string
	showVersion  bool
}

// parseFlags parses CLI flags and returns the positional args.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("aspx2html", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.common.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.common.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.common.verbose, "verbose", "v", false, "show detailed timing")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.encoding, "encoding", "", "source encoding: utf-8, shift_jis, euc-jp")
	fs.StringVar(&f.lang, "lang", "", "lang attribute of the generated <html> element")
	fs.StringVar(&f.defaultTitle, "default-title", "", "title used when the source has none")
	fs.BoolVar(&f.showVersion, "version", false, "show version information")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
