package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentTop(t *testing.T) {
	// header offset + estimated logo height + the three fixed gaps
	expected := 0.45*Inch + 1.4*Inch*0.4 + 12 + 9 + 20
	assert.InDelta(t, expected, ContentTop(), 0.001)
	assert.InDelta(t, 113.72, ContentTop(), 0.01)
}

func TestContentWidth(t *testing.T) {
	assert.InDelta(t, PageWidth-108, ContentWidth(), 0.001)
}

func TestThumbRowEvenSpacing(t *testing.T) {
	row := ThumbRow(200)
	assert.InDelta(t, row[0].W, row[1].W, 0.001)
	assert.InDelta(t, row[1].W, row[2].W, 0.001)

	gap1 := row[1].X - row[0].Right()
	gap2 := row[2].X - row[1].Right()
	assert.InDelta(t, gap1, gap2, 0.001)
	assert.InDelta(t, Margin+ContentWidth(), row[2].Right(), 0.001)
}

func TestMetricRowSpansContent(t *testing.T) {
	row := MetricRow(300)
	assert.InDelta(t, Margin, row[0].X, 0.001)
	assert.InDelta(t, Margin+ContentWidth(), row[2].Right(), 0.001)
	for _, b := range row {
		assert.InDelta(t, MetricBoxHeight, b.H, 0.001)
	}
}

func TestColumnsParallel(t *testing.T) {
	left, right := Columns(300)
	assert.InDelta(t, left.W, right.W, 0.001)
	assert.Greater(t, right.X, left.Right())
	assert.InDelta(t, Margin+ContentWidth(), right.Right(), 0.001)
}

func TestSummaryBarsCentered(t *testing.T) {
	bars := SummaryBars(400)
	center := PageWidth / 2
	for _, b := range bars {
		assert.InDelta(t, center, b.X+b.W/2, 0.001)
	}
	assert.Greater(t, bars[1].Y, bars[0].Bottom())
}

func TestKeyImageBoxCentered(t *testing.T) {
	b := KeyImageBox(150)
	assert.InDelta(t, 6.5*Inch, b.W, 0.001)
	assert.InDelta(t, 3.5*Inch, b.H, 0.001)
	assert.InDelta(t, PageWidth/2, b.X+b.W/2, 0.001)
}

func TestCityMapAspect(t *testing.T) {
	b := CityMapBox(200)
	assert.InDelta(t, ContentWidth(), b.W, 0.001)
	assert.InDelta(t, 1280.0/768.0, b.W/b.H, 0.001)
}

func TestCitySquares(t *testing.T) {
	row := CitySquares(500)
	for _, b := range row {
		assert.InDelta(t, 2.3*Inch, b.W, 0.001)
		assert.InDelta(t, b.W, b.H, 0.001)
	}
	assert.InDelta(t, Margin, row[0].X, 0.001)
	assert.InDelta(t, Margin+ContentWidth(), row[2].Right(), 0.001)
}

func TestGalleryFits(t *testing.T) {
	assert.True(t, GalleryFits(ContentTop()))
	assert.True(t, GalleryFits(ContentBottom()-GalleryBoxHeight))
	assert.False(t, GalleryFits(ContentBottom()-GalleryBoxHeight+1))
}

func TestLogoGeometryStable(t *testing.T) {
	logo := LogoBox()
	assert.InDelta(t, 1.4*Inch, logo.W, 0.001)
	assert.InDelta(t, logo.W*0.4, logo.H, 0.001)

	tagline := TaglineBox()
	assert.InDelta(t, logo.Bottom()+12, tagline.Y, 0.001)
	assert.Greater(t, ContentTop(), tagline.Bottom())
}
