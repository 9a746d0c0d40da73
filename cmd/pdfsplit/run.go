package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	pdfsplit "github.com/avilla/pdfsplit"
	"github.com/avilla/pdfsplit/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidExtension = errors.New("file must have .pdf extension")
)

// Directory permissions for created output directories.
const dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// FileToSplit represents a single file to process.
type FileToSplit struct {
	InputPath string
	SplitPath string
	MapPath   string
}

// SplitResult holds the outcome of a single split.
type SplitResult struct {
	InputPath string
	SplitPath string
	MapPath   string
	Grid      pdfsplit.Result
	Err       error
	Duration  time.Duration
}

// run orchestrates the split process.
func run(flags *splitFlags, positionalArgs []string, deps *Dependencies) error {
	// Load configuration
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	page := &pdfsplit.PageSettings{Size: cfg.Page.Size, Margin: cfg.Page.Margin}
	if err := page.Validate(); err != nil {
		return err
	}

	style := buildStyle(cfg)
	if err := validatePrintableArea(page, style); err != nil {
		return err
	}

	// Resolve input files
	inputs, err := resolveInputs(positionalArgs, cfg, flags, deps)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		if !flags.common.quiet {
			fmt.Fprintln(deps.Stdout, "Nothing to do.")
		}
		return nil
	}

	// Prepare output directory
	outputDir := cfg.Output.DefaultDir
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	files := make([]FileToSplit, len(inputs))
	for i, in := range inputs {
		splitPath, mapPath := outputPaths(in, outputDir)
		files[i] = FileToSplit{InputPath: in, SplitPath: splitPath, MapPath: mapPath}
	}

	svc := pdfsplit.New(pdfsplit.WithStyle(style))
	results := splitFiles(context.Background(), svc, files, page)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, deps)
	if failedCount > 0 {
		return fmt.Errorf("%d file(s) failed", failedCount)
	}

	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *splitFlags, cfg *config.Config) {
	if flags.page.size != "" {
		cfg.Page.Size = flags.page.size
	}
	if flags.page.margin != marginSentinel {
		cfg.Page.Margin = flags.page.margin
	}
	if flags.outputDir != "" {
		cfg.Output.DefaultDir = flags.outputDir
	}
}

// buildStyle creates a pdfsplit.Style from config overrides.
func buildStyle(cfg *config.Config) pdfsplit.Style {
	style := pdfsplit.DefaultStyle()
	if cfg.Style.FontSize > 0 {
		style.FontSize = cfg.Style.FontSize
	}
	if cfg.Style.LineWidthMM > 0 {
		style.GuideWidthMM = cfg.Style.LineWidthMM
	}
	return style
}

// validatePrintableArea rejects margins that consume the whole sheet,
// so a bad global setting fails once instead of once per file.
func validatePrintableArea(page *pdfsplit.PageSettings, style pdfsplit.Style) error {
	sheet := pdfsplit.PaperDimensions(page.Size)
	if 2*style.MarginPts(page.Margin) >= math.Min(sheet.Width, sheet.Height) {
		return fmt.Errorf("%w: %gmm leaves no printable area on %s sheets",
			pdfsplit.ErrInvalidMargin, page.Margin, page.Size)
	}
	return nil
}

// resolveInputs determines the files to process from args or discovery.
func resolveInputs(args []string, cfg *config.Config, flags *splitFlags, deps *Dependencies) ([]string, error) {
	if len(args) > 0 {
		for _, path := range args {
			if err := validatePDFExtension(path); err != nil {
				return nil, err
			}
		}
		return args, nil
	}

	dir := cfg.Input.DefaultDir
	if dir == "" {
		dir = "."
	}
	candidates, err := discoverPDFs(dir)
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}
	if flags.yes {
		return candidates, nil
	}
	return confirmFiles(candidates, deps), nil
}

// splitFiles processes files sequentially and collects per-file results.
func splitFiles(ctx context.Context, svc *pdfsplit.Service, files []FileToSplit, page *pdfsplit.PageSettings) []SplitResult {
	results := make([]SplitResult, len(files))
	for i, f := range files {
		start := time.Now()
		res, err := svc.Process(ctx, pdfsplit.Input{
			SourcePath: f.InputPath,
			SplitPath:  f.SplitPath,
			MapPath:    f.MapPath,
			Page:       page,
		})
		results[i] = SplitResult{
			InputPath: f.InputPath,
			SplitPath: f.SplitPath,
			MapPath:   f.MapPath,
			Err:       err,
			Duration:  time.Since(start),
		}
		if res != nil {
			results[i].Grid = *res
		}
	}
	return results
}

// printResults outputs per-file results using the provided writers.
func printResults(results []SplitResult, quiet, verbose bool, deps *Dependencies) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(deps.Stdout, "%s -> %dx%d grid, %d sheets (%v)\n",
				r.InputPath, r.Grid.Cols, r.Grid.Rows, r.Grid.SheetCount, r.Duration.Round(time.Millisecond))
		}
		fmt.Fprintf(deps.Stdout, "Created %s\n", r.SplitPath)
		fmt.Fprintf(deps.Stdout, "Created %s\n", r.MapPath)
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(deps.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
