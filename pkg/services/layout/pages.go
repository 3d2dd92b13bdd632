package layout

// Cover page geometry.
const (
	HeroHeight      = 4.5 * Inch
	ThumbHeight     = 110.0
	thumbGap        = 10.0
	FooterBarHeight = 40.0
)

// HeroBox spans the full content width below the title.
func HeroBox(y float64) Box {
	return Box{X: Margin, Y: y, W: ContentWidth(), H: HeroHeight}
}

// ThumbRow lays out three equal-width thumbnails with a fixed gap.
func ThumbRow(y float64) [3]Box {
	w := (ContentWidth() - 2*thumbGap) / 3
	var row [3]Box
	for i := range row {
		row[i] = Box{X: Margin + float64(i)*(w+thumbGap), Y: y, W: w, H: ThumbHeight}
	}
	return row
}

// FooterBar is the full-bleed gold band at the page bottom.
func FooterBar() Box {
	return Box{X: 0, Y: PageHeight - FooterBarHeight, W: PageWidth, H: FooterBarHeight}
}

// Investment page geometry.
const (
	MetricBoxHeight  = 0.75 * Inch
	metricGap        = 12.0
	columnGutter     = 24.0
	ColumnRowHeight  = 22.0
	SummaryBarHeight = 30.0
	summaryGap       = 10.0
)

// MetricRow lays out the three gold highlight boxes.
func MetricRow(y float64) [3]Box {
	w := (ContentWidth() - 2*metricGap) / 3
	var row [3]Box
	for i := range row {
		row[i] = Box{X: Margin + float64(i)*(w+metricGap), Y: y, W: w, H: MetricBoxHeight}
	}
	return row
}

// Columns returns the two parallel breakdown columns.
func Columns(y float64) (left, right Box) {
	w := (ContentWidth() - columnGutter) / 2
	left = Box{X: Margin, Y: y, W: w}
	right = Box{X: Margin + w + columnGutter, Y: y, W: w}
	return left, right
}

// SummaryBars stacks three centered gold label/value bars.
func SummaryBars(y float64) [3]Box {
	w := ContentWidth() * 0.6
	x := Margin + (ContentWidth()-w)/2
	var bars [3]Box
	for i := range bars {
		bars[i] = Box{X: x, Y: y + float64(i)*(SummaryBarHeight+summaryGap), W: w, H: SummaryBarHeight}
	}
	return bars
}

// Key-information page geometry.
const (
	KeyImageWidth    = 6.5 * Inch
	KeyImageHeight   = 3.5 * Inch
	MetricCellHeight = 50.0
	metricCellGap    = 10.0
)

// KeyImageBox centers the large property image.
func KeyImageBox(y float64) Box {
	return Box{X: Margin + (ContentWidth()-KeyImageWidth)/2, Y: y, W: KeyImageWidth, H: KeyImageHeight}
}

// MetricsStrip lays out the four-column metrics band.
func MetricsStrip(y float64) [4]Box {
	w := (ContentWidth() - 3*metricCellGap) / 4
	var row [4]Box
	for i := range row {
		row[i] = Box{X: Margin + float64(i)*(w+metricCellGap), Y: y, W: w, H: MetricCellHeight}
	}
	return row
}

// City-map page geometry.
const (
	cityMapAspectW = 1280.0
	cityMapAspectH = 768.0
	CitySquareSize = 2.3 * Inch
)

// CityMapBox spans the content width at the fixed 1280:768 aspect ratio.
func CityMapBox(y float64) Box {
	w := ContentWidth()
	return Box{X: Margin, Y: y, W: w, H: w * cityMapAspectH / cityMapAspectW}
}

// CitySquares spreads three fixed-size squares evenly across the content.
func CitySquares(y float64) [3]Box {
	gap := (ContentWidth() - 3*CitySquareSize) / 2
	var row [3]Box
	for i := range row {
		row[i] = Box{X: Margin + float64(i)*(CitySquareSize+gap), Y: y, W: CitySquareSize, H: CitySquareSize}
	}
	return row
}

// Gallery page geometry.
const (
	GalleryBoxWidth  = 5.4 * Inch
	GalleryBoxHeight = 2.8 * Inch
	GalleryGap       = 14.0
)

// GalleryBox centers one gallery image horizontally at the cursor.
func GalleryBox(y float64) Box {
	return Box{X: Margin + (ContentWidth()-GalleryBoxWidth)/2, Y: y, W: GalleryBoxWidth, H: GalleryBoxHeight}
}

// GalleryFits reports whether a gallery box starting at y stays inside the
// vertical content bound.
func GalleryFits(y float64) bool {
	return y+GalleryBoxHeight <= ContentBottom()
}

// FloorPlanBox fills the rest of the page from the cursor down.
func FloorPlanBox(y float64) Box {
	return Box{X: Margin, Y: y, W: ContentWidth(), H: ContentBottom() - y}
}
