package pdfsplit

import "fmt"

// RenderTiles appends one sheet per grid cell to doc, traversing the grid
// row-major (row outer, column inner). Each sheet carries the matching
// clipped region of the source page scaled into the margin-inset content
// rectangle, a trim guide on the margin boundary, and a position label.
//
// Edge cells clamped by the original extent stretch their partial region
// to fill the whole content rectangle; that keeps the splice markers on
// the margin boundary instead of leaving unscaled blank space. Cells
// clamped to zero area (the exact-division case) produce a sheet with
// guides and label but no content.
func RenderTiles(doc Document, src Source, grid GridSpec, geom PageGeometry, style Style, label string) {
	content := geom.ContentRect()
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			clip := grid.ClipRect(row, col, geom.OrigWidth, geom.OrigHeight)

			doc.AddPage(geom.SheetWidth, geom.SheetHeight)
			doc.PlaceRegion(src, clip, content)
			doc.DrawRect(content, style.GuideWidthPts(), style.Gray)
			drawTileLabel(doc, grid, geom, style, label, row, col)
		}
	}
}

// drawTileLabel stamps "<label> (row, col) [ seq ]" flush to the
// bottom-right corner of the content rectangle: right edge on the margin
// boundary, baseline one text-height above the bottom boundary.
func drawTileLabel(doc Document, grid GridSpec, geom PageGeometry, style Style, label string, row, col int) {
	text := fmt.Sprintf("%s %s [ %d ]",
		label,
		FormatPosition(row, col, grid.Rows, grid.Cols, style.OutOfRange),
		grid.Sequence(row, col))

	x := geom.SheetWidth - geom.MarginPts - doc.TextWidth(text, style.FontSize)
	y := geom.SheetHeight - geom.MarginPts - style.FontSize
	doc.DrawText(x, y, text, style.FontSize, style.Gray)
}
