package pdfsplit

import (
	"fmt"

	gofpdf "github.com/lvillar/gofpdf"
	"github.com/lvillar/gofpdf/contrib/gofpdi"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// gofpdfBackend is the production Backend. Output documents are drawn
// with gofpdf; source regions are copied by importing the source page as
// a form XObject template via gofpdi and placing it scaled under a clip
// rectangle. Source inspection (page count, first page rectangle) goes
// through pdfcpu, which validates the file on read.
type gofpdfBackend struct {
	font string
}

// NewGofpdfBackend returns the gofpdf/pdfcpu backend. The font family is
// used for all text drawn on output documents.
func NewGofpdfBackend(font string) Backend {
	return &gofpdfBackend{font: font}
}

func (b *gofpdfBackend) OpenSource(path string) (Source, error) {
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenSource, path, err)
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPages, path)
	}
	return &gofpdfSource{
		path:      path,
		pageCount: len(dims),
		width:     dims[0].Width,
		height:    dims[0].Height,
	}, nil
}

func (b *gofpdfBackend) NewDocument() Document {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont(b.font, "", 9)
	return &gofpdfDocument{
		pdf:       pdf,
		importer:  gofpdi.NewImporter(),
		templates: make(map[string]int),
	}
}

// gofpdfSource caches the dimensions read by pdfcpu; the file itself is
// re-read by gofpdi when a region is first placed.
type gofpdfSource struct {
	path      string
	pageCount int
	width     float64
	height    float64
}

func (s *gofpdfSource) PageCount() int { return s.pageCount }

func (s *gofpdfSource) PageSize() (w, h float64) { return s.width, s.height }

type gofpdfDocument struct {
	pdf       *gofpdf.Fpdf
	importer  *gofpdi.Importer
	templates map[string]int // source path -> imported template id
}

func (d *gofpdfDocument) AddPage(w, h float64) {
	d.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
}

func (d *gofpdfDocument) PlaceRegion(src Source, clip, dst Rect) {
	if clip.Empty() || dst.Empty() {
		return
	}
	gs, ok := src.(*gofpdfSource)
	if !ok {
		d.pdf.SetErrorf("pdfsplit: source %T was not opened by this backend", src)
		return
	}

	tpl, ok := d.templates[gs.path]
	if !ok {
		tpl = d.importer.ImportPage(d.pdf, gs.path, 1, "/MediaBox")
		d.templates[gs.path] = tpl
	}

	// Scale so the clip region exactly fills dst, then clip away the rest
	// of the page. The template is the whole source page, so its origin
	// shifts left/up by the scaled clip offset.
	sx := dst.Width() / clip.Width()
	sy := dst.Height() / clip.Height()
	d.pdf.ClipRect(dst.X0, dst.Y0, dst.Width(), dst.Height(), false)
	d.importer.UseImportedTemplate(d.pdf, tpl,
		dst.X0-clip.X0*sx, dst.Y0-clip.Y0*sy,
		gs.width*sx, gs.height*sy)
	d.pdf.ClipEnd()
}

func (d *gofpdfDocument) DrawLine(x0, y0, x1, y1, width float64, color RGB) {
	d.pdf.SetLineWidth(width)
	d.pdf.SetDrawColor(color.R, color.G, color.B)
	d.pdf.Line(x0, y0, x1, y1)
}

func (d *gofpdfDocument) DrawRect(r Rect, width float64, color RGB) {
	d.pdf.SetLineWidth(width)
	d.pdf.SetDrawColor(color.R, color.G, color.B)
	d.pdf.Rect(r.X0, r.Y0, r.Width(), r.Height(), "D")
}

func (d *gofpdfDocument) TextWidth(s string, size float64) float64 {
	d.pdf.SetFontSize(size)
	return d.pdf.GetStringWidth(s)
}

func (d *gofpdfDocument) DrawText(x, y float64, s string, size float64, color RGB) {
	d.pdf.SetFontSize(size)
	d.pdf.SetTextColor(color.R, color.G, color.B)
	d.pdf.Text(x, y, s)
}

func (d *gofpdfDocument) WriteFile(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
	}
	return nil
}
