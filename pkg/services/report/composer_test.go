package report

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prop-tools/report-atlas/pkg/models/domain"
	"github.com/prop-tools/report-atlas/pkg/render"
	"github.com/prop-tools/report-atlas/pkg/services/layout"
)

type drawOp struct {
	kind string
	box  layout.Box
}

// fakeCanvas records draw geometry per page, so composition is testable
// without a PDF backend.
type fakeCanvas struct {
	pages     [][]drawOp
	outputErr error
}

func (f *fakeCanvas) AddPage() { f.pages = append(f.pages, nil) }

func (f *fakeCanvas) record(kind string, b layout.Box) {
	i := len(f.pages) - 1
	f.pages[i] = append(f.pages[i], drawOp{kind: kind, box: b})
}

func (f *fakeCanvas) Rect(b layout.Box, _ render.RectStyle) { f.record("rect", b) }

func (f *fakeCanvas) Line(x1, y1, x2, y2, _ float64, _ layout.RGB) {
	f.record("line", layout.Box{X: x1, Y: y1, W: x2 - x1, H: y2 - y1})
}

func (f *fakeCanvas) Text(b layout.Box, _ string, _ render.TextStyle) { f.record("text", b) }

func (f *fakeCanvas) TextHeight(_ string, _ float64, st render.TextStyle) float64 {
	return st.Size * 1.2
}

func (f *fakeCanvas) Image(_ string, b layout.Box, _ render.FitMode) { f.record("image", b) }

func (f *fakeCanvas) Polygon(pts []layout.Point, _ layout.RGB) {
	f.record("polygon", layout.Box{X: pts[0].X, Y: pts[0].Y})
}

func (f *fakeCanvas) ImageAspect(string) (float64, bool) { return 0, false }

func (f *fakeCanvas) Output(w io.Writer) error {
	if f.outputErr != nil {
		return f.outputErr
	}
	_, err := w.Write([]byte("%PDF-fake"))
	return err
}

func newTestGenerator(fake *fakeCanvas) *Generator {
	return NewGenerator(Options{
		NewCanvas: func() render.Canvas { return fake },
		Now:       func() time.Time { return time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC) },
	})
}

func generate(t *testing.T, input domain.ReportInput) *fakeCanvas {
	t.Helper()
	fake := &fakeCanvas{}
	var buf bytes.Buffer
	require.NoError(t, newTestGenerator(fake).Generate(context.Background(), input, &buf))
	assert.NotZero(t, buf.Len())
	return fake
}

// cover + investment + key info + other key info + floor-plan placeholder +
// city map; no gallery pages without photos.
func TestPageSequenceDefault(t *testing.T) {
	fake := generate(t, domain.ReportInput{Fields: map[string]interface{}{}})
	assert.Len(t, fake.pages, 6)
}

func TestInvestmentSectionPerCalculator(t *testing.T) {
	base := generate(t, domain.ReportInput{Fields: map[string]interface{}{}})

	three := generate(t, domain.ReportInput{Fields: map[string]interface{}{
		"selected_calculators": "standard-btl, brr, flip",
	}})
	assert.Len(t, three.pages, len(base.pages)+2)
}

func TestFloorPlanPages(t *testing.T) {
	base := generate(t, domain.ReportInput{Fields: map[string]interface{}{}})

	two := generate(t, domain.ReportInput{
		Fields: map[string]interface{}{},
		Images: domain.ImageSet{FloorPlans: []string{"/nope/a.png", "/nope/b.png"}},
	})
	// Two plan pages replace the single placeholder page.
	assert.Len(t, two.pages, len(base.pages)+1)
}

func TestGalleryOverflowStartsNewPage(t *testing.T) {
	one := generate(t, domain.ReportInput{
		Fields: map[string]interface{}{},
		Images: domain.ImageSet{Property: []string{"/p/1.jpg"}},
	})

	// Three gallery boxes fit per page at the fixed box size.
	four := generate(t, domain.ReportInput{
		Fields: map[string]interface{}{},
		Images: domain.ImageSet{Property: []string{"/p/1.jpg", "/p/2.jpg", "/p/3.jpg", "/p/4.jpg"}},
	})
	assert.Len(t, four.pages, len(one.pages)+1)
}

// A missing image never aborts generation, and geometry is identical to a
// run where the slot is empty (placeholder): composition must not branch on
// path validity.
func TestMissingImageKeepsLayout(t *testing.T) {
	withBadPaths := generate(t, domain.ReportInput{
		Fields: map[string]interface{}{},
		Images: domain.ImageSet{
			Cover:      []string{"/does/not/exist.jpg"},
			Directions: []string{"/also/missing.png"},
		},
	})
	withoutImages := generate(t, domain.ReportInput{Fields: map[string]interface{}{}})

	require.Len(t, withBadPaths.pages, len(withoutImages.pages))
	for i := range withBadPaths.pages {
		require.Len(t, withBadPaths.pages[i], len(withoutImages.pages[i]), "page %d", i)
		for j, op := range withBadPaths.pages[i] {
			assert.Equal(t, withoutImages.pages[i][j].box, op.box, "page %d op %d", i, j)
		}
	}
}

func TestCoverDrawsHeroThumbsAndFooter(t *testing.T) {
	fake := generate(t, domain.ReportInput{
		Fields: map[string]interface{}{"property_address": "1 High Street"},
		Images: domain.ImageSet{Property: []string{"/p/exterior-front.jpg", "/p/b.jpg"}},
	})

	cover := fake.pages[0]
	var imageBoxes []layout.Box
	for _, op := range cover {
		if op.kind == "image" {
			imageBoxes = append(imageBoxes, op.box)
		}
	}
	// hero + one thumbnail (the other thumb slots are placeholder rects)
	require.Len(t, imageBoxes, 2)
	assert.InDelta(t, layout.HeroHeight, imageBoxes[0].H, 0.001)

	// gold footer bar reaches the page bottom edge
	var footer bool
	for _, op := range cover {
		if op.kind == "rect" && op.box.Bottom() == layout.PageHeight && op.box.W == layout.PageWidth {
			footer = true
		}
	}
	assert.True(t, footer)
}

func TestGenerateRequiresDestination(t *testing.T) {
	err := newTestGenerator(&fakeCanvas{}).Generate(context.Background(),
		domain.ReportInput{Fields: map[string]interface{}{}}, nil)
	assert.Error(t, err)
}

func TestBackendFaultSurfaces(t *testing.T) {
	fake := &fakeCanvas{outputErr: assert.AnError}
	var buf bytes.Buffer
	err := newTestGenerator(fake).Generate(context.Background(),
		domain.ReportInput{Fields: map[string]interface{}{}}, &buf)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestOrdinalDate(t *testing.T) {
	tests := []struct {
		day      int
		expected string
	}{
		{1, "1st January 2026"},
		{2, "2nd January 2026"},
		{3, "3rd January 2026"},
		{4, "4th January 2026"},
		{11, "11th January 2026"},
		{12, "12th January 2026"},
		{13, "13th January 2026"},
		{21, "21st January 2026"},
		{22, "22nd January 2026"},
		{31, "31st January 2026"},
	}
	for _, tt := range tests {
		d := time.Date(2026, 1, tt.day, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.expected, OrdinalDate(d))
	}
}
