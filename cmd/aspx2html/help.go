package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: aspx2html [flags] <input-dir> <output-dir>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert legacy .aspx markup files to static HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input-dir     Directory containing .aspx files")
	fmt.Fprintln(w, "  output-dir    Directory for the generated .html files (created if absent)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>          Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --encoding <s>         Source encoding: utf-8, shift_jis, euc-jp")
	fmt.Fprintln(w, "      --lang <s>             lang attribute of <html> (default: ja)")
	fmt.Fprintln(w, "      --default-title <s>    Title for sources without one")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show detailed timing")
	fmt.Fprintln(w, "      --version              Show version information")
}
