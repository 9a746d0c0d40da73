package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdfsplit [flags] [files...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Split oversized PDF pages into printable sheets with splice guides,")
	fmt.Fprintln(w, "plus a map PDF showing where each sheet lands on the original page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  files    PDF files to split (omit to scan the current directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "  -s, --size <s>            Sheet size: a4, legal (default: a4)")
	fmt.Fprintln(w, "  -m, --margin <f>          Sheet margin in millimeters (default: 10)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output-dir <path>   Output directory (default: next to source)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -y, --yes                 Process discovered files without asking")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show grid details and timing")
	fmt.Fprintln(w, "      --version             Show version and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Each input name.pdf produces name.output.pdf (the sheets) and")
	fmt.Fprintln(w, "name.map.output.pdf (the assembly map).")
}
