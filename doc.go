// Package pdfsplit partitions the first page of an oversized PDF into a
// grid of printable sheets with splice guides, and renders a companion map
// of the grid over the original page.
//
// # Quick Start
//
// Create a service and process one source document:
//
//	svc := pdfsplit.New()
//	result, err := svc.Process(ctx, pdfsplit.Input{
//	    SourcePath: "drawing.pdf",
//	    SplitPath:  "drawing.output.pdf",
//	    MapPath:    "drawing.map.output.pdf",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d sheets (%dx%d)\n", result.SheetCount, result.Cols, result.Rows)
//
// # Pipeline
//
// Processing a document runs two passes over the same grid geometry:
//
//  1. Split pass: one output sheet per grid cell at the target paper size,
//     each carrying the matching region of the source page inside a margin
//     frame, plus a trim guide and a position label.
//  2. Map pass: one output page at the original size, overlaying numbered
//     grid lines on a 1:1 copy of the source so tiles can be located
//     before printing.
//
// Only the first page of the source is read; further pages are ignored.
//
// # Configuration
//
// Page settings travel with each Input. Rendering constants (font, the
// guide color, line widths, the mm-to-point factor) are grouped in a Style
// value injected at construction:
//
//	svc := pdfsplit.New(pdfsplit.WithStyle(style))
//
// The PDF engine itself sits behind the Backend interface; the default
// implementation uses gofpdf for drawing and pdfcpu for source inspection.
// Tests substitute a recording fake.
package pdfsplit
