package layout

import "fmt"

// Band is one EPC letter grade with its score range and chart color.
type Band struct {
	Grade    string
	Min, Max int
	Color    RGB
}

// Bands runs A to G, the order the chart draws them top to bottom. The seven
// ranges partition 1-100.
var Bands = [7]Band{
	{Grade: "A", Min: 92, Max: 100, Color: RGB{R: 0, G: 134, B: 68}},
	{Grade: "B", Min: 81, Max: 91, Color: RGB{R: 43, G: 168, B: 74}},
	{Grade: "C", Min: 69, Max: 80, Color: RGB{R: 139, G: 197, B: 64}},
	{Grade: "D", Min: 55, Max: 68, Color: RGB{R: 246, G: 235, B: 0}},
	{Grade: "E", Min: 39, Max: 54, Color: RGB{R: 243, G: 177, B: 46}},
	{Grade: "F", Min: 21, Max: 38, Color: RGB{R: 237, G: 109, B: 41}},
	{Grade: "G", Min: 1, Max: 20, Color: RGB{R: 227, G: 35, B: 38}},
}

// BandFor maps a score to its band. Scores outside every range resolve to
// the lowest band rather than failing.
func BandFor(score int) Band {
	for _, b := range Bands {
		if score >= b.Min && score <= b.Max {
			return b
		}
	}
	return Bands[len(Bands)-1]
}

// Default scores used when the input omits or mangles the EPC fields.
const (
	DefaultCurrentScore   = 84
	DefaultPotentialScore = 72
)

const (
	epcRowHeight   = 24.0
	epcRowGap      = 2.0
	epcRangeWidth  = 46.0 // numeric score-range labels left of the bars
	epcValueColumn = 72.0 // each of the Current / Potential columns
	epcHeaderH     = 16.0
	epcLetterPad   = 6.0
	epcLetterWidth = 14.0
	BadgeHeight    = 16.0
	badgeTip       = 8.0
)

// Point is a polygon vertex.
type Point struct {
	X, Y float64
}

// EPCRow is the geometry for one grade band: its stepped bar, the grade
// letter just past the bar end, and the score-range label on the left.
type EPCRow struct {
	Band       Band
	Bar        Box
	LetterX    float64
	LetterY    float64
	RangeLabel string
	RangeX     float64
	RangeY     float64
}

// Badge is a pointer-shaped value tag placed in a value column at the
// vertical center of the band holding its score.
type Badge struct {
	Band   Band
	Label  string
	Points []Point
	Text   Box
}

// EPCChart is the complete energy-rating chart geometry.
type EPCChart struct {
	Frame           Box
	Rows            [7]EPCRow
	CurrentHeader   Box
	PotentialHeader Box
	CurrentBadge    Badge
	PotentialBadge  Badge
}

// Height of the whole chart block.
func (c EPCChart) Height() float64 {
	return c.Frame.H
}

// BuildEPCChart computes the chart at vertical cursor y for the given
// current and potential scores.
func BuildEPCChart(y float64, current, potential int) EPCChart {
	frame := Box{
		X: Margin,
		Y: y,
		W: ContentWidth(),
		H: epcHeaderH + 7*epcRowHeight + 6*epcRowGap,
	}

	barArea := frame.W - epcRangeWidth - 2*epcValueColumn
	barLeft := frame.X + epcRangeWidth
	rowTop := frame.Y + epcHeaderH

	chart := EPCChart{
		Frame: frame,
		CurrentHeader: Box{
			X: frame.Right() - 2*epcValueColumn, Y: frame.Y,
			W: epcValueColumn, H: epcHeaderH,
		},
		PotentialHeader: Box{
			X: frame.Right() - epcValueColumn, Y: frame.Y,
			W: epcValueColumn, H: epcHeaderH,
		},
	}

	for i, band := range Bands {
		top := rowTop + float64(i)*(epcRowHeight+epcRowGap)
		// A is the shortest bar at 1/7 of the area, G the longest at 7/7.
		barW := barArea * float64(i+1) / 7

		letterX := barLeft + barW + epcLetterPad
		if max := barLeft + barArea - epcLetterWidth; letterX > max {
			letterX = max
		}

		chart.Rows[i] = EPCRow{
			Band:       band,
			Bar:        Box{X: barLeft, Y: top, W: barW, H: epcRowHeight},
			LetterX:    letterX,
			LetterY:    top + epcRowHeight/2,
			RangeLabel: fmt.Sprintf("%d-%d", band.Min, band.Max),
			RangeX:     frame.X,
			RangeY:     top + epcRowHeight/2,
		}
	}

	chart.CurrentBadge = buildBadge(chart, current, chart.CurrentHeader.X)
	chart.PotentialBadge = buildBadge(chart, potential, chart.PotentialHeader.X)
	return chart
}

// buildBadge places a left-pointing tag in the column starting at colX, at
// the vertical center of the band row containing the score.
func buildBadge(chart EPCChart, score int, colX float64) Badge {
	band := BandFor(score)
	var center float64
	for _, row := range chart.Rows {
		if row.Band.Grade == band.Grade {
			center = row.Bar.Y + row.Bar.H/2
			break
		}
	}

	left := colX + 4
	right := colX + epcValueColumn - 8
	top := center - BadgeHeight/2
	bottom := center + BadgeHeight/2

	return Badge{
		Band:  band,
		Label: fmt.Sprintf("%d | %s", score, band.Grade),
		Points: []Point{
			{X: left, Y: center},
			{X: left + badgeTip, Y: top},
			{X: right, Y: top},
			{X: right, Y: bottom},
			{X: left + badgeTip, Y: bottom},
		},
		Text: Box{X: left + badgeTip, Y: top, W: right - left - badgeTip, H: BadgeHeight},
	}
}
