package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// discoverPDFs lists PDF files in dir, skipping previously generated outputs.
// Results are sorted for deterministic processing order.
func discoverPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.EqualFold(filepath.Ext(name), ".pdf") {
			continue
		}
		if isGeneratedOutput(name) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}

	sort.Strings(files)
	return files, nil
}

// isGeneratedOutput reports whether name looks like one of our own outputs.
func isGeneratedOutput(name string) bool {
	return strings.HasSuffix(name, ".output.pdf")
}

// outputPaths returns the split and map output paths for an input file.
// An empty outputDir places outputs next to the source.
func outputPaths(inputPath, outputDir string) (splitPath, mapPath string) {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	dir := outputDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}

	splitPath = filepath.Join(dir, base+".output.pdf")
	mapPath = filepath.Join(dir, base+".map.output.pdf")
	return splitPath, mapPath
}

// validatePDFExtension checks that the file has a .pdf extension.
func validatePDFExtension(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}
