package pdfsplit

import (
	"fmt"
	"strconv"
)

// RenderMap appends a single page at the original page size: a 1:1 copy
// of the source content under the tile grid, with a number at each
// line/row crossing and a summary label in the bottom-right margin.
//
// The grid here must be computed from the sheet size minus margins on
// both sides, so the lines fall where the margin guides will sit on the
// printed tiles, not on the raw tile boundaries.
func RenderMap(doc Document, src Source, grid GridSpec, geom PageGeometry, style Style, label string) {
	doc.AddPage(geom.OrigWidth, geom.OrigHeight)

	full := Rect{X0: 0, Y0: 0, X1: geom.OrigWidth, Y1: geom.OrigHeight}
	doc.PlaceRegion(src, full, full)

	lineWidth := style.GuideWidthPts()

	// Vertical guides carry the intersection numbers. The counter runs
	// down each column before moving right: column-major, the opposite of
	// the row-major tile sequence. Printed sheets in the field reference
	// both numberings, so neither side may change without the other.
	counter := 1
	for col := 0; col < grid.Cols; col++ {
		x := float64(col) * grid.CellWidth
		doc.DrawLine(x, 0, x, geom.OrigHeight, lineWidth, style.Gray)

		for row := 0; row < grid.Rows; row++ {
			y := float64(row) * grid.CellHeight
			text := strconv.Itoa(counter)
			counter++

			// Centered on the intersection.
			tx := x - doc.TextWidth(text, style.FontSize)/2
			ty := y - style.FontSize/2
			doc.DrawText(tx, ty, text, style.FontSize, style.Gray)
		}
	}
	closingX := float64(grid.Cols) * grid.CellWidth
	doc.DrawLine(closingX, 0, closingX, geom.OrigHeight, lineWidth, style.Gray)

	for row := 0; row < grid.Rows; row++ {
		y := float64(row) * grid.CellHeight
		doc.DrawLine(0, y, geom.OrigWidth, y, lineWidth, style.Gray)
	}
	closingY := float64(grid.Rows) * grid.CellHeight
	doc.DrawLine(0, closingY, geom.OrigWidth, closingY, lineWidth, style.Gray)

	summary := fmt.Sprintf("%s [%dx%d grid]", label, grid.Cols, grid.Rows)
	x := geom.OrigWidth - geom.MarginPts - doc.TextWidth(summary, style.FontSize)
	y := geom.OrigHeight - geom.MarginPts - style.FontSize
	doc.DrawText(x, y, summary, style.FontSize, style.Gray)
}
