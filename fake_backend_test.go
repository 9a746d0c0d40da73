package pdfsplit

import (
	"fmt"
	"os"
)

// fakeBackend records every drawing call so tests can assert geometry and
// label placement without a real PDF engine.
type fakeBackend struct {
	sources map[string]*fakeSource
	docs    []*fakeDocument

	openCalls []string
	writeErrs map[string]error // output path -> forced WriteFile error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		sources:   make(map[string]*fakeSource),
		writeErrs: make(map[string]error),
	}
}

func (b *fakeBackend) addSource(path string, pages int, w, h float64) *fakeSource {
	s := &fakeSource{path: path, pages: pages, w: w, h: h}
	b.sources[path] = s
	return s
}

func (b *fakeBackend) OpenSource(path string) (Source, error) {
	b.openCalls = append(b.openCalls, path)
	s, ok := b.sources[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOpenSource, path)
	}
	return s, nil
}

func (b *fakeBackend) NewDocument() Document {
	d := &fakeDocument{backend: b}
	b.docs = append(b.docs, d)
	return d
}

type fakeSource struct {
	path  string
	pages int
	w, h  float64
}

func (s *fakeSource) PageCount() int           { return s.pages }
func (s *fakeSource) PageSize() (w, h float64) { return s.w, s.h }

type regionCall struct {
	Clip Rect
	Dst  Rect
}

type rectCall struct {
	R     Rect
	Width float64
	Color RGB
}

type lineCall struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Color          RGB
}

type textCall struct {
	X, Y  float64
	S     string
	Size  float64
	Color RGB
}

// fakePage records all draw calls issued against one page, in order.
type fakePage struct {
	W, H    float64
	Regions []regionCall
	Rects   []rectCall
	Lines   []lineCall
	Texts   []textCall
}

type fakeDocument struct {
	backend *fakeBackend
	pages   []*fakePage
	written string
}

func (d *fakeDocument) AddPage(w, h float64) {
	d.pages = append(d.pages, &fakePage{W: w, H: h})
}

func (d *fakeDocument) current() *fakePage {
	if len(d.pages) == 0 {
		panic("fakeDocument: draw call before AddPage")
	}
	return d.pages[len(d.pages)-1]
}

func (d *fakeDocument) PlaceRegion(src Source, clip, dst Rect) {
	p := d.current()
	p.Regions = append(p.Regions, regionCall{Clip: clip, Dst: dst})
}

func (d *fakeDocument) DrawLine(x0, y0, x1, y1, width float64, color RGB) {
	p := d.current()
	p.Lines = append(p.Lines, lineCall{X0: x0, Y0: y0, X1: x1, Y1: y1, Width: width, Color: color})
}

func (d *fakeDocument) DrawRect(r Rect, width float64, color RGB) {
	p := d.current()
	p.Rects = append(p.Rects, rectCall{R: r, Width: width, Color: color})
}

// TextWidth is deterministic: half the font size per character, which is
// close enough to Helvetica for positioning assertions.
func (d *fakeDocument) TextWidth(s string, size float64) float64 {
	return float64(len(s)) * size / 2
}

func (d *fakeDocument) DrawText(x, y float64, s string, size float64, color RGB) {
	p := d.current()
	p.Texts = append(p.Texts, textCall{X: x, Y: y, S: s, Size: size, Color: color})
}

func (d *fakeDocument) WriteFile(path string) error {
	if err := d.backend.writeErrs[path]; err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte("%PDF-fake"), 0o644); err != nil {
		return err
	}
	d.written = path
	return nil
}

// allTexts flattens the label calls across pages for convenience.
func (d *fakeDocument) allTexts() []string {
	var out []string
	for _, p := range d.pages {
		for _, t := range p.Texts {
			out = append(out, t.S)
		}
	}
	return out
}
