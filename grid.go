package pdfsplit

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle in page coordinates (points, origin
// top-left, y growing downward).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Area returns the rectangle's area.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// Empty reports whether the rectangle has no positive area.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// GridSpec describes the grid needed to cover the original page at a
// given cell size. The split pass uses the raw sheet size as the cell;
// the map pass uses the sheet size minus margins on both sides.
type GridSpec struct {
	Rows       int
	Cols       int
	CellWidth  float64
	CellHeight float64
}

// ComputeGrid returns the grid covering origWidth x origHeight with cells
// of cellWidth x cellHeight.
//
// The +1 keeps a trailing partial cell even when the original divides the
// cell size exactly, so exact divisions produce one extra zero-extent
// row/column. Split and map numbering both count on that over-coverage;
// do not fold the trailing cell away.
//
// Panics on non-positive inputs; all callers derive them from validated
// configuration and a successfully opened page.
func ComputeGrid(origWidth, origHeight, cellWidth, cellHeight float64) GridSpec {
	if origWidth <= 0 || origHeight <= 0 {
		panic(fmt.Sprintf("pdfsplit: ComputeGrid original dimensions must be positive, got %gx%g", origWidth, origHeight))
	}
	if cellWidth <= 0 || cellHeight <= 0 {
		panic(fmt.Sprintf("pdfsplit: ComputeGrid cell dimensions must be positive, got %gx%g", cellWidth, cellHeight))
	}
	return GridSpec{
		Cols:       int(math.Floor(origWidth/cellWidth)) + 1,
		Rows:       int(math.Floor(origHeight/cellHeight)) + 1,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}
}

// CellCount returns the total number of grid cells.
func (g GridSpec) CellCount() int { return g.Rows * g.Cols }

// Sequence returns the 1-based row-major index of a cell. This is the
// number stamped on split sheets.
func (g GridSpec) Sequence(row, col int) int {
	return row*g.Cols + col + 1
}

// ClipRect returns the region of the original page covered by the cell at
// (row, col), clamped to the original extent. Trailing partial cells crop
// rather than overflow; in the exact-division case the last row/column
// clamps to a zero-extent rectangle.
func (g GridSpec) ClipRect(row, col int, origWidth, origHeight float64) Rect {
	return Rect{
		X0: float64(col) * g.CellWidth,
		Y0: float64(row) * g.CellHeight,
		X1: math.Min(float64(col+1)*g.CellWidth, origWidth),
		Y1: math.Min(float64(row+1)*g.CellHeight, origHeight),
	}
}

// FormatPosition renders a 1-based "(row, col)" position, or marker when
// the cell lies outside the declared grid bounds. Out-of-range cells
// cannot occur for grids built by ComputeGrid, but the formatter must not
// fail on them.
func FormatPosition(row, col, maxRows, maxCols int, marker string) string {
	if row < 0 || col < 0 || row >= maxRows || col >= maxCols {
		return marker
	}
	return fmt.Sprintf("(%d, %d)", row+1, col+1)
}
