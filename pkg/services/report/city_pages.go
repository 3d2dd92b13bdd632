package report

import (
	"path/filepath"

	"github.com/prop-tools/report-atlas/pkg/render"
	"github.com/prop-tools/report-atlas/pkg/services/layout"
)

// Fallback city copy used when the form omits the city block.
const (
	defaultCityName  = "Manchester"
	defaultCityAbout = "A major regional city with strong rental demand, sustained " +
		"regeneration investment and a large student and young professional population."
	defaultCityPopulation = "553,000"
)

func (p *pageComposer) cityMapPage() {
	y := p.newPage()

	name := p.fieldOr("city", defaultCityName)
	y = p.title(y, name)

	mapPath := ""
	if len(p.input.Images.Directions) > 0 {
		mapPath = p.input.Images.Directions[0]
	}
	mapBox := layout.CityMapBox(y)
	p.imageOrPlaceholder(mapPath, mapBox, render.FitCover)
	y = mapBox.Bottom() + 20

	about := p.fieldOr("city_about", defaultCityAbout)
	st := render.TextStyle{Family: fontFamily, Size: 10, Color: textDark, Wrap: true}
	box := layout.Box{X: layout.Margin, Y: y, W: layout.ContentWidth()}
	h := p.canvas.TextHeight(about, box.W, st)
	p.canvas.Text(box, about, st)
	y += h + 10

	population := "Population: " + p.fieldOr("city_population", defaultCityPopulation)
	p.canvas.Text(layout.Box{X: layout.Margin, Y: y, W: layout.ContentWidth(), H: 14},
		population, render.TextStyle{Family: fontFamily, Style: "B", Size: 10, Color: textDark})
	y += 14 + 16

	// Always exactly three slots: supplied city photos, then bundled
	// samples, then placeholders.
	paths := append([]string{}, p.input.Images.City...)
	for i := 1; len(paths) < 3; i++ {
		sample := ""
		if p.opts.AssetsDir != "" {
			sample = filepath.Join(p.opts.AssetsDir, sampleCityImage(i))
		}
		paths = append(paths, sample)
	}
	for i, square := range layout.CitySquares(y) {
		p.imageOrPlaceholder(paths[i], square, render.FitCover)
	}
}

func sampleCityImage(n int) string {
	switch n {
	case 1:
		return "city-sample-1.jpg"
	case 2:
		return "city-sample-2.jpg"
	default:
		return "city-sample-3.jpg"
	}
}

// floorPlanPages emits one page per plan, or a single placeholder page when
// none were supplied.
func (p *pageComposer) floorPlanPages() {
	plans := p.input.Images.FloorPlans
	if len(plans) == 0 {
		plans = []string{""}
	}

	for _, plan := range plans {
		y := p.newPage()
		y = p.title(y, "Floor Plans")
		p.imageOrPlaceholder(plan, layout.FloorPlanBox(y), render.FitContain)
	}
}

// galleryPages stacks property photos vertically, starting a fresh page
// (header and title re-drawn) whenever the next image would overflow the
// content bound. No photos means no gallery pages at all.
func (p *pageComposer) galleryPages() {
	photos := p.input.Images.Property
	if len(photos) == 0 {
		return
	}

	y := p.newPage()
	y = p.title(y, "Gallery")

	for _, photo := range photos {
		if !layout.GalleryFits(y) {
			y = p.newPage()
			y = p.title(y, "Gallery")
		}
		p.imageOrPlaceholder(photo, layout.GalleryBox(y), render.FitCover)
		y += layout.GalleryBoxHeight + layout.GalleryGap
	}
}
