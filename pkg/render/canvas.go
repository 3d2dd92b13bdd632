// Package render defines the drawing-primitive capability the composer
// draws against, plus its gofpdf implementation.
package render

import (
	"io"

	"github.com/prop-tools/report-atlas/pkg/services/layout"
)

// FitMode controls how an image is scaled into its target box.
type FitMode int

const (
	// FitContain scales to fit entirely within the box, no cropping.
	FitContain FitMode = iota
	// FitCover scales to fill the box, cropping overflow.
	FitCover
)

// TextStyle describes font, color and placement for a text draw.
type TextStyle struct {
	Family string
	Style  string // "", "B", "I"
	Size   float64
	Color  layout.RGB
	Align  string // fpdf alignment, e.g. "L", "C", "CM", "RM"
	Wrap   bool   // wrap to the box width with MultiCell
}

// RectStyle describes fill and stroke for a rectangle draw.
type RectStyle struct {
	Fill      *layout.RGB
	Stroke    *layout.RGB
	LineWidth float64
}

// Canvas is the capability surface the composer issues draw commands to.
// Implementations never fail a page for a bad image; only finalization
// surfaces errors.
type Canvas interface {
	// AddPage starts a new page; drawing coordinates reset.
	AddPage()
	// Rect draws a filled and/or stroked rectangle.
	Rect(b layout.Box, st RectStyle)
	// Line draws a straight line segment.
	Line(x1, y1, x2, y2, width float64, color layout.RGB)
	// Text draws s inside b. Wrapped text flows from the box top; single
	// lines honor the fpdf alignment within the box.
	Text(b layout.Box, s string, st TextStyle)
	// TextHeight measures the rendered height of s wrapped at width.
	TextHeight(s string, width float64, st TextStyle) float64
	// Image places the file at path into b with the given fit, clipped to
	// b. A missing or unreadable path draws a placeholder instead.
	Image(path string, b layout.Box, fit FitMode)
	// Polygon draws a filled polygon.
	Polygon(pts []layout.Point, fill layout.RGB)
	// ImageAspect reports the height/width ratio of an image file, if
	// probeable.
	ImageAspect(path string) (float64, bool)
	// Output finalizes the document to w. Any backend fault accumulated
	// during drawing surfaces here.
	Output(w io.Writer) error
}
