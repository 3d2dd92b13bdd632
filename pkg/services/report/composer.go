// Package report composes the multi-page property report by walking the
// fixed page sequence and issuing drawing-primitive commands to a Canvas.
package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/prop-tools/report-atlas/pkg/models/domain"
	"github.com/prop-tools/report-atlas/pkg/render"
	"github.com/prop-tools/report-atlas/pkg/services/images"
	"github.com/prop-tools/report-atlas/pkg/services/layout"
)

const fontFamily = "Helvetica"

var (
	textDark  = layout.RGB{R: 40, G: 40, B: 40}
	textGray  = layout.RGB{R: 120, G: 120, B: 120}
	textWhite = layout.RGB{R: 255, G: 255, B: 255}
	lineGray  = layout.RGB{R: 210, G: 210, B: 210}
)

// Options configure a Generator. Zero values pick sensible defaults; the
// canvas factory and clock are injectable so page composition is testable
// without a PDF backend.
type Options struct {
	Tagline        string
	DefaultLogo    string
	AssetsDir      string
	HeroPredicates []images.Predicate
	NewCanvas      func() render.Canvas
	Now            func() time.Time
}

type Generator struct {
	opts Options
}

func NewGenerator(opts Options) *Generator {
	if opts.NewCanvas == nil {
		opts.NewCanvas = func() render.Canvas { return render.NewPDFCanvas() }
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.HeroPredicates == nil {
		opts.HeroPredicates = images.DefaultHeroPredicates
	}
	if opts.Tagline == "" {
		opts.Tagline = "Property Investment Report"
	}
	return &Generator{opts: opts}
}

// Generate renders the full report for input and flushes it to w. Content
// faults (bad numbers, missing images) degrade in place; only an invalid
// destination or a backend fault is returned as an error.
func (g *Generator) Generate(ctx context.Context, input domain.ReportInput, w io.Writer) error {
	if w == nil {
		return fmt.Errorf("report: no output destination")
	}
	logger := zerolog.Ctx(ctx)

	canvas := g.opts.NewCanvas()
	logo := input.LogoPath
	if logo == "" {
		logo = g.opts.DefaultLogo
	}

	p := &pageComposer{
		canvas: canvas,
		opts:   g.opts,
		input:  input,
		logo:   logo,
	}

	p.coverPage()
	p.investmentPages()
	p.keyInfoPage()
	p.otherKeyInfoPage()
	p.floorPlanPages()
	p.galleryPages()
	p.cityMapPage()

	if err := canvas.Output(w); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	logger.Debug().Int("floor_plans", len(input.Images.FloorPlans)).
		Int("gallery", len(input.Images.Property)).
		Msg("report generated")
	return nil
}

// pageComposer threads the per-document state through the page renderers.
// The vertical cursor is always passed and returned explicitly.
type pageComposer struct {
	canvas render.Canvas
	opts   Options
	input  domain.ReportInput
	logo   string
}

// newPage starts a page, draws the shared header and returns the content
// cursor. The content-start Y always uses the estimated logo height so page
// geometry is identical with or without a readable logo file.
func (p *pageComposer) newPage() float64 {
	p.canvas.AddPage()

	logoBox := layout.LogoBox()
	if p.logo != "" {
		if aspect, ok := p.canvas.ImageAspect(p.logo); ok {
			logoBox.H = logoBox.W * aspect
		}
		p.canvas.Image(p.logo, logoBox, render.FitContain)
	}

	p.canvas.Text(layout.TaglineBox(), p.opts.Tagline, render.TextStyle{
		Family: fontFamily, Size: layout.TaglineHeight, Color: textGray,
	})

	return layout.ContentTop()
}

// title draws a page title at the cursor and returns the advanced cursor.
func (p *pageComposer) title(y float64, text string) float64 {
	box := layout.Box{X: layout.Margin, Y: y, W: layout.ContentWidth()}
	st := render.TextStyle{Family: fontFamily, Style: "B", Size: 22, Color: textDark, Wrap: true}
	h := p.canvas.TextHeight(text, box.W, st)
	p.canvas.Text(box, text, st)
	return y + h + 14
}

func (p *pageComposer) field(key string) string {
	return fieldString(p.input.Fields, key)
}

// imageOrPlaceholder draws an image box; the canvas substitutes the flat
// placeholder for unreadable paths, and an empty path short-circuits to it.
func (p *pageComposer) imageOrPlaceholder(path string, box layout.Box, fit render.FitMode) {
	if path == "" {
		fill := layout.Placeholder
		p.canvas.Rect(box, render.RectStyle{Fill: &fill})
		return
	}
	p.canvas.Image(path, box, fit)
}

// goldPanel draws a gold box with a small label over a bold value, the
// shared look of metric boxes and summary bars.
func (p *pageComposer) goldPanel(box layout.Box, label, value string) {
	gold := layout.Gold
	p.canvas.Rect(box, render.RectStyle{Fill: &gold})

	labelBox := layout.Box{X: box.X, Y: box.Y + 6, W: box.W, H: 10}
	p.canvas.Text(labelBox, label, render.TextStyle{
		Family: fontFamily, Size: 8, Color: textWhite, Align: "C",
	})

	valueBox := layout.Box{X: box.X, Y: box.Y + 16, W: box.W, H: box.H - 18}
	p.canvas.Text(valueBox, value, render.TextStyle{
		Family: fontFamily, Style: "B", Size: 14, Color: textWhite, Align: "CM",
	})
}
