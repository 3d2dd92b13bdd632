package render

import (
	"fmt"
	"image"
	"io"
	"os"

	// Decoders for intrinsic-size probing; gofpdf reads the same formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/jung-kurt/gofpdf"

	"github.com/prop-tools/report-atlas/pkg/services/layout"
)

// PDFCanvas implements Canvas over a gofpdf document in point units on A4
// portrait pages. Pagination is owned by the caller, so the automatic page
// break is disabled.
type PDFCanvas struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func NewPDFCanvas() *PDFCanvas {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(layout.Margin, layout.Margin, layout.Margin)
	pdf.SetAutoPageBreak(false, 0)
	// Core fonts take cp1252 bytes, not UTF-8; "£" and "•" garble without
	// this translation.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	return &PDFCanvas{pdf: pdf, tr: tr}
}

func (c *PDFCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *PDFCanvas) Rect(b layout.Box, st RectStyle) {
	style := ""
	if st.Fill != nil {
		c.pdf.SetFillColor(st.Fill.R, st.Fill.G, st.Fill.B)
		style = "F"
	}
	if st.Stroke != nil {
		c.pdf.SetDrawColor(st.Stroke.R, st.Stroke.G, st.Stroke.B)
		if st.LineWidth > 0 {
			c.pdf.SetLineWidth(st.LineWidth)
		}
		style += "D"
	}
	if style == "" {
		style = "D"
	}
	c.pdf.Rect(b.X, b.Y, b.W, b.H, style)
}

func (c *PDFCanvas) Line(x1, y1, x2, y2, width float64, color layout.RGB) {
	c.pdf.SetDrawColor(color.R, color.G, color.B)
	c.pdf.SetLineWidth(width)
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *PDFCanvas) Text(b layout.Box, s string, st TextStyle) {
	c.pdf.SetFont(st.Family, st.Style, st.Size)
	c.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
	s = c.tr(s)

	align := st.Align
	if align == "" {
		align = "L"
	}

	if st.Wrap {
		c.pdf.SetXY(b.X, b.Y)
		c.pdf.MultiCell(b.W, st.Size*1.2, s, "", align, false)
		return
	}

	c.pdf.SetXY(b.X, b.Y)
	c.pdf.CellFormat(b.W, b.H, s, "", 0, align, false, 0, "")
}

func (c *PDFCanvas) TextHeight(s string, width float64, st TextStyle) float64 {
	c.pdf.SetFont(st.Family, st.Style, st.Size)
	lines := c.pdf.SplitText(c.tr(s), width)
	return float64(len(lines)) * st.Size * 1.2
}

func (c *PDFCanvas) Image(path string, b layout.Box, fit FitMode) {
	w, h, format, err := probeImage(path)
	if err != nil {
		// Missing or unreadable images degrade to a flat placeholder so the
		// page keeps its geometry.
		fill := layout.Placeholder
		c.Rect(b, RectStyle{Fill: &fill})
		return
	}

	target := FitRect(w, h, b, fit)
	c.pdf.ClipRect(b.X, b.Y, b.W, b.H, false)
	// The sniffed format overrides the file extension; an upload saved with
	// the wrong suffix must not latch the document error state.
	c.pdf.ImageOptions(path, target.X, target.Y, target.W, target.H, false,
		gofpdf.ImageOptions{ImageType: format}, 0, "")
	c.pdf.ClipEnd()
}

func (c *PDFCanvas) Polygon(pts []layout.Point, fill layout.RGB) {
	c.pdf.SetFillColor(fill.R, fill.G, fill.B)
	poly := make([]gofpdf.PointType, len(pts))
	for i, p := range pts {
		poly[i] = gofpdf.PointType{X: p.X, Y: p.Y}
	}
	c.pdf.Polygon(poly, "F")
}

func (c *PDFCanvas) ImageAspect(path string) (float64, bool) {
	w, h, _, err := probeImage(path)
	if err != nil || w <= 0 {
		return 0, false
	}
	return h / w, true
}

func (c *PDFCanvas) Output(w io.Writer) error {
	if err := c.pdf.Output(w); err != nil {
		return fmt.Errorf("finalizing pdf: %w", err)
	}
	return nil
}

// probeImage reads just the header of an image file for its pixel size and
// actual format. Probing before handing the path to gofpdf keeps a bad file
// from latching the document's sticky error state.
func probeImage(path string) (w, h float64, format string, err error) {
	if path == "" {
		return 0, 0, "", os.ErrNotExist
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, "", err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, "", err
	}
	return float64(cfg.Width), float64(cfg.Height), format, nil
}
