package pdfsplit

// Backend abstracts the PDF engine behind the narrow set of operations
// the renderers need: open a source, create documents, append pages, draw
// lines, rectangles and text, and copy a clipped region of the source
// page. An equivalent engine can substitute without touching the tiling
// logic.
type Backend interface {
	// OpenSource opens an existing PDF for inspection and region copying.
	OpenSource(path string) (Source, error)
	// NewDocument starts an empty output document.
	NewDocument() Document
}

// Source is a readable PDF whose first page supplies tile content.
type Source interface {
	// PageCount returns the number of pages in the document.
	PageCount() int
	// PageSize returns the first page's dimensions in points.
	PageSize() (w, h float64)
}

// Document is an output PDF under construction. Pages are appended in
// order and drawing calls apply to the most recently added page; later
// draws layer on top of earlier ones. Nothing is persisted until
// WriteFile.
type Document interface {
	// AddPage appends a page of w x h points.
	AddPage(w, h float64)
	// PlaceRegion draws the clip region of the source's first page scaled
	// to exactly fill dst. Aspect ratio follows from the two rectangles;
	// an empty clip or dst is a no-op.
	PlaceRegion(src Source, clip, dst Rect)
	// DrawLine draws a straight segment with the given width and color.
	DrawLine(x0, y0, x1, y1, width float64, color RGB)
	// DrawRect draws an unfilled rectangle outline.
	DrawRect(r Rect, width float64, color RGB)
	// TextWidth measures s at the given font size, in points.
	TextWidth(s string, size float64) float64
	// DrawText draws s left-aligned with its baseline at (x, y).
	DrawText(x, y float64, s string, size float64, color RGB)
	// WriteFile persists the document.
	WriteFile(path string) error
}
