package pdfsplit

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// Service orchestrates the split and map passes for one document at a
// time. All state is per-call; a Service is safe to reuse across files.
type Service struct {
	cfg serviceConfig
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithStyle, WithBackend).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{style: DefaultStyle()},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create the PDF backend if not injected (e.g., by tests)
	if s.cfg.backend == nil {
		s.cfg.backend = NewGofpdfBackend(s.cfg.style.FontFamily)
	}

	return s
}

// Process reads the first page of input.SourcePath and writes the split
// document and the map document. Either both outputs persist or neither:
// if the map write fails, the already-written split file is removed.
// The context is checked between the render passes.
func (s *Service) Process(ctx context.Context, input Input) (*Result, error) {
	page := input.Page
	if page == nil {
		page = DefaultPageSettings()
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	sheet := PaperDimensions(page.Size)
	marginPts := s.cfg.style.MarginPts(page.Margin)

	// A margin at or past half the sheet leaves no printable content
	// area. Reported before any output is written.
	if 2*marginPts >= math.Min(sheet.Width, sheet.Height) {
		return nil, fmt.Errorf("%w: %.2fmm leaves no content area on a %s sheet",
			ErrInvalidMargin, page.Margin, strings.ToLower(page.Size))
	}

	src, err := s.cfg.backend.OpenSource(input.SourcePath)
	if err != nil {
		return nil, err
	}

	origWidth, origHeight := src.PageSize()
	if origWidth <= 0 || origHeight <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPage, input.SourcePath)
	}

	label := input.Label
	if label == "" {
		label = sourceLabel(input.SourcePath)
	}

	geom := PageGeometry{
		SheetWidth:  sheet.Width,
		SheetHeight: sheet.Height,
		OrigWidth:   origWidth,
		OrigHeight:  origHeight,
		MarginPts:   marginPts,
	}

	// Split pass: cells at the raw sheet size.
	splitGrid := ComputeGrid(origWidth, origHeight, sheet.Width, sheet.Height)
	splitDoc := s.cfg.backend.NewDocument()
	RenderTiles(splitDoc, src, splitGrid, geom, s.cfg.style, label)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Map pass: cells at the margin-reduced sheet size, so the grid lines
	// land where the printed margin guides will.
	mapGrid := ComputeGrid(origWidth, origHeight,
		sheet.Width-2*marginPts, sheet.Height-2*marginPts)
	mapDoc := s.cfg.backend.NewDocument()
	RenderMap(mapDoc, src, mapGrid, geom, s.cfg.style, label)

	if err := splitDoc.WriteFile(input.SplitPath); err != nil {
		return nil, fmt.Errorf("writing split document: %w", err)
	}
	if err := mapDoc.WriteFile(input.MapPath); err != nil {
		// The two outputs are all-or-nothing.
		_ = os.Remove(input.SplitPath)
		return nil, fmt.Errorf("writing map document: %w", err)
	}

	return &Result{
		Rows:       splitGrid.Rows,
		Cols:       splitGrid.Cols,
		SheetCount: splitGrid.CellCount(),
		PageCount:  src.PageCount(),
	}, nil
}

// sourceLabel derives the label prefix from the source file name.
func sourceLabel(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
