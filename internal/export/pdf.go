package export

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/jung-kurt/gofpdf"

	"PaintOverlay/internal/paint"
)

const pdfMargin = 36.0 // points

type PDFOptions struct {
	PageSize   string
	Background color.NRGBA
}

type pdfPainter struct {
	pdf *gofpdf.Fpdf
	tr  transform
}

func (p *pdfPainter) Polyline(pl paint.Polyline) {
	c := pl.Stroke.Color
	p.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.pdf.SetAlpha(float64(c.A)/255, "Normal")
	p.pdf.SetLineWidth(float64(pl.Stroke.Width) * p.tr.scale)
	for i, pt := range pl.Points {
		x, y := p.tr.apply(pt)
		if i == 0 {
			p.pdf.MoveTo(x, y)
		} else {
			p.pdf.LineTo(x, y)
		}
	}
	p.pdf.DrawPath("D")
}

// PDF writes the scene on a single page, scaled down to fit if needed.
func PDF(w io.Writer, s Scene, opts PDFOptions) error {
	bounds, ok := visibleBounds(s)
	if !ok {
		return ErrEmpty
	}

	orientation := "P"
	if bounds.Width() > bounds.Height() {
		orientation = "L"
	}
	pdf := gofpdf.New(orientation, "pt", opts.PageSize, "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pw, ph := pdf.GetPageSize()
	bg := opts.Background
	pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	pdf.Rect(0, 0, pw, ph, "F")

	scale := 1.0
	if bw := float64(bounds.Width()); bw > 0 {
		scale = min(scale, (pw-2*pdfMargin)/bw)
	}
	if bh := float64(bounds.Height()); bh > 0 {
		scale = min(scale, (ph-2*pdfMargin)/bh)
	}
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	painter := &pdfPainter{pdf: pdf, tr: transform{
		scale:  scale,
		offset: paint.Pt(pdfMargin, pdfMargin),
		min:    bounds.Min,
	}}
	s.Paint(painter, paint.Point{})

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	log.Printf("[EXPORT] PDF written (%s, scale %.2f)", opts.PageSize, scale)
	return nil
}
