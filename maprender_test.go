package pdfsplit

import (
	"math"
	"testing"
)

// mapSetup renders a map for a 1000x1000pt source on A4 with a 10mm
// margin, which yields a 2x2 map grid.
func mapSetup(t *testing.T) (*fakeDocument, GridSpec, PageGeometry) {
	t.Helper()

	backend := newFakeBackend()
	src := backend.addSource("plan.pdf", 1, 1000, 1000)
	doc := backend.NewDocument().(*fakeDocument)

	geom := testGeometry(1000, 1000)
	grid := ComputeGrid(geom.OrigWidth, geom.OrigHeight,
		geom.SheetWidth-2*geom.MarginPts, geom.SheetHeight-2*geom.MarginPts)
	if grid.Rows != 2 || grid.Cols != 2 {
		t.Fatalf("setup grid = %dx%d, want 2x2", grid.Rows, grid.Cols)
	}

	RenderMap(doc, src, grid, geom, DefaultStyle(), "plan")
	return doc, grid, geom
}

func TestRenderMap_SinglePageAtOriginalSize(t *testing.T) {
	doc, _, geom := mapSetup(t)

	if len(doc.pages) != 1 {
		t.Fatalf("pages = %d, want 1", len(doc.pages))
	}
	page := doc.pages[0]
	if page.W != geom.OrigWidth || page.H != geom.OrigHeight {
		t.Errorf("page size = %gx%g, want original %gx%g", page.W, page.H, geom.OrigWidth, geom.OrigHeight)
	}

	// Source content copied 1:1.
	full := Rect{X0: 0, Y0: 0, X1: geom.OrigWidth, Y1: geom.OrigHeight}
	if len(page.Regions) != 1 || page.Regions[0].Clip != full || page.Regions[0].Dst != full {
		t.Errorf("region = %+v, want full-page 1:1 copy", page.Regions)
	}
}

func TestRenderMap_GuideLines(t *testing.T) {
	doc, grid, geom := mapSetup(t)
	page := doc.pages[0]

	wantLines := (grid.Cols + 1) + (grid.Rows + 1)
	if len(page.Lines) != wantLines {
		t.Fatalf("lines = %d, want %d", len(page.Lines), wantLines)
	}

	// Vertical guides at every multiple of the margin-reduced cell width,
	// spanning the full original height.
	var verticalX []float64
	for _, l := range page.Lines {
		if l.X0 == l.X1 {
			verticalX = append(verticalX, l.X0)
			if l.Y0 != 0 || l.Y1 != geom.OrigHeight {
				t.Errorf("vertical line at x=%g spans %g..%g, want 0..%g", l.X0, l.Y0, l.Y1, geom.OrigHeight)
			}
		}
	}
	if len(verticalX) != grid.Cols+1 {
		t.Fatalf("vertical lines = %d, want %d", len(verticalX), grid.Cols+1)
	}
	for i, x := range verticalX {
		want := float64(i) * grid.CellWidth
		if math.Abs(x-want) > 1e-9 {
			t.Errorf("vertical line %d at x=%g, want %g", i, x, want)
		}
	}
}

func TestRenderMap_ColumnMajorNumbering(t *testing.T) {
	doc, grid, _ := mapSetup(t)
	page := doc.pages[0]

	// 4 intersection numbers plus the summary label.
	if len(page.Texts) != grid.CellCount()+1 {
		t.Fatalf("texts = %d, want %d", len(page.Texts), grid.CellCount()+1)
	}

	wantOrder := []string{"1", "2", "3", "4"}
	for i, want := range wantOrder {
		if page.Texts[i].S != want {
			t.Errorf("intersection %d = %q, want %q", i, page.Texts[i].S, want)
		}
	}

	// The counter runs down columns: the second number sits below the
	// first (same x, next row), not to its right.
	first, second := page.Texts[0], page.Texts[1]
	if second.Y <= first.Y {
		t.Errorf("number 2 at y=%g should be below number 1 at y=%g", second.Y, first.Y)
	}

	// Logical cell (row=1, col=0) is map number 2 but tile sequence 3.
	// The two numberings diverge on purpose and must stay that way.
	if got := grid.Sequence(1, 0); got != 3 {
		t.Errorf("tile sequence at (1,0) = %d, want 3", got)
	}
}

func TestRenderMap_SummaryLabel(t *testing.T) {
	doc, _, geom := mapSetup(t)
	page := doc.pages[0]

	style := DefaultStyle()
	summary := page.Texts[len(page.Texts)-1]
	if summary.S != "plan [2x2 grid]" {
		t.Errorf("summary = %q, want %q", summary.S, "plan [2x2 grid]")
	}

	width := doc.TextWidth(summary.S, style.FontSize)
	if got, want := summary.X+width, geom.OrigWidth-geom.MarginPts; math.Abs(got-want) > 1e-9 {
		t.Errorf("summary right edge = %g, want %g", got, want)
	}
	if got, want := summary.Y, geom.OrigHeight-geom.MarginPts-style.FontSize; math.Abs(got-want) > 1e-9 {
		t.Errorf("summary baseline = %g, want %g", got, want)
	}
}
