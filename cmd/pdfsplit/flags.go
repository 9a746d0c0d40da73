package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// marginSentinel detects if --margin was explicitly set.
// Since 0 is a valid margin (edge-to-edge tiles), we use an out-of-range
// sentinel. Valid margins are >= 0; -1 is safely outside this range.
const marginSentinel = -1.0

// commonFlags holds flags shared across runs.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds sheet layout flags.
type pageFlags struct {
	size   string
	margin float64
}

// splitFlags holds all flags for the tool.
type splitFlags struct {
	common    commonFlags
	page      pageFlags
	outputDir string
	yes       bool
	version   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show grid details and timing")
}

// addPageFlags adds sheet layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "size", "s", "", "sheet size: a4, legal")
	fs.Float64VarP(&f.margin, "margin", "m", marginSentinel, "sheet margin in millimeters")
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*splitFlags, []string, error) {
	fs := flag.NewFlagSet("pdfsplit", flag.ContinueOnError)
	f := &splitFlags{}

	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "output directory")
	fs.BoolVarP(&f.yes, "yes", "y", false, "process discovered files without asking")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
