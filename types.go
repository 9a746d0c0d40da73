package pdfsplit

import (
	"fmt"
	"strings"
)

// Paper size constants.
const (
	PaperSizeA4    = "a4"
	PaperSizeLegal = "legal"
)

// DefaultMargin is the margin applied to all four sides of every output
// sheet, in millimeters.
const DefaultMargin = 10.0

// Size holds page dimensions in PostScript points.
type Size struct {
	Width  float64
	Height float64
}

// paperSizes maps lowercase paper names to fixed point dimensions.
var paperSizes = map[string]Size{
	PaperSizeA4:    {Width: 595, Height: 842},  // 210 x 297 mm
	PaperSizeLegal: {Width: 612, Height: 1008}, // 8.5 x 14 in
}

// PaperDimensions resolves a paper size name to point dimensions.
// Matching is case-insensitive; unknown names fall back to A4. The silent
// fallback is the documented default, not an error.
func PaperDimensions(name string) Size {
	if s, ok := paperSizes[strings.ToLower(name)]; ok {
		return s
	}
	return paperSizes[PaperSizeA4]
}

// PageSettings configures the target sheet for the split pass.
type PageSettings struct {
	Size   string  // "a4", "legal"; unknown values normalize to a4
	Margin float64 // millimeters, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:   PaperSizeA4,
		Margin: DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults). The margin check
// against the sheet's printable area needs the mm conversion factor and
// happens in Service.Process, where the Style is known.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	if p.Margin < 0 {
		return fmt.Errorf("%w: %.2fmm (must be >= 0)", ErrInvalidMargin, p.Margin)
	}
	return nil
}

// PageGeometry fixes the dimensions shared by the tile and map renderers
// for one document: the target sheet, the source page, and the margin,
// all in points. Passed by value; immutable for the run.
type PageGeometry struct {
	SheetWidth  float64
	SheetHeight float64
	OrigWidth   float64
	OrigHeight  float64
	MarginPts   float64
}

// ContentRect returns the sheet inset by the margin on all four sides,
// the destination for copied tile content.
func (g PageGeometry) ContentRect() Rect {
	return Rect{
		X0: g.MarginPts,
		Y0: g.MarginPts,
		X1: g.SheetWidth - g.MarginPts,
		Y1: g.SheetHeight - g.MarginPts,
	}
}

// Input identifies one source document and its two output paths.
type Input struct {
	SourcePath string
	SplitPath  string        // tiled output, one sheet per grid cell
	MapPath    string        // grid overlay at the original page size
	Label      string        // label prefix; "" = source base name
	Page       *PageSettings // nil = defaults
}

// Result reports what a Process call produced.
type Result struct {
	Rows       int
	Cols       int
	SheetCount int // pages in the split document, Rows*Cols
	PageCount  int // pages in the source; only the first is used
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	backend Backend
	style   Style
}

// WithBackend sets the PDF engine. Panics if b is nil (programmer error).
func WithBackend(b Backend) Option {
	if b == nil {
		panic("pdfsplit: WithBackend requires a non-nil backend")
	}
	return func(s *Service) {
		s.cfg.backend = b
	}
}

// WithStyle replaces the default rendering constants.
func WithStyle(style Style) Option {
	return func(s *Service) {
		s.cfg.style = style
	}
}
