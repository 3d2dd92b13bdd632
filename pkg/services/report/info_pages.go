package report

import (
	"github.com/prop-tools/report-atlas/pkg/money"
	"github.com/prop-tools/report-atlas/pkg/render"
	"github.com/prop-tools/report-atlas/pkg/services/layout"
)

func (p *pageComposer) keyInfoPage() {
	y := p.newPage()
	y = p.title(y, "Key Information")

	p.imageOrPlaceholder(p.firstPropertyImage(), layout.KeyImageBox(y), render.FitContain)
	y += layout.KeyImageHeight + 20

	metrics := [4][2]string{
		{"Asking Price", money.FormatCurrency(money.ParseCurrency(p.input.Fields["asking_price"]))},
		{"Bedrooms", p.fieldOr("bedrooms", "-")},
		{"Size", p.fieldOr("property_size", "-")},
		{"Days on Market", p.fieldOr("days_on_market", "-")},
	}
	for i, cell := range layout.MetricsStrip(y) {
		p.metricCell(cell, metrics[i][0], metrics[i][1])
	}
	y += layout.MetricCellHeight + 24

	features := splitFeatures(p.field("key_features"))
	if len(features) == 0 {
		return
	}

	p.canvas.Text(layout.Box{X: layout.Margin, Y: y, W: layout.ContentWidth(), H: 14},
		"Key Features", render.TextStyle{Family: fontFamily, Style: "B", Size: 12, Color: textDark})
	y += 20

	st := render.TextStyle{Family: fontFamily, Size: 10, Color: textDark, Wrap: true}
	for _, feature := range features {
		text := "•  " + feature
		box := layout.Box{X: layout.Margin + 6, Y: y, W: layout.ContentWidth() - 6}
		h := p.canvas.TextHeight(text, box.W, st)
		p.canvas.Text(box, text, st)
		y += h + 4
	}
}

func (p *pageComposer) otherKeyInfoPage() {
	y := p.newPage()
	y = p.title(y, "Other Key Information")

	img := layout.Box{X: layout.Margin, Y: y, W: layout.ContentWidth(), H: 2.2 * layout.Inch}
	p.imageOrPlaceholder(p.firstPropertyImage(), img, render.FitCover)
	y += img.H + 20

	y = p.epcChart(y)
	y += 20

	details := [][2]string{
		{"Inspection date", p.field("inspection_date")},
		{"Window glazing", p.field("window_glazing")},
		{"Building age", p.field("building_age")},
	}
	for _, d := range details {
		if d[1] == "" {
			continue
		}
		rowBox := layout.Box{X: layout.Margin, Y: y, W: layout.ContentWidth(), H: layout.ColumnRowHeight}
		p.canvas.Text(rowBox, d[0], render.TextStyle{Family: fontFamily, Style: "B", Size: 10, Color: textDark})
		p.canvas.Text(rowBox, d[1], render.TextStyle{Family: fontFamily, Size: 10, Color: textDark, Align: "RM"})
		y += layout.ColumnRowHeight
	}
	y += 10

	disclaimer := "Figures are indicative and should be verified before any purchase decision."
	st := render.TextStyle{Family: fontFamily, Size: 8, Color: textGray, Wrap: true}
	box := layout.Box{X: layout.Margin, Y: y, W: layout.ContentWidth()}
	h := p.canvas.TextHeight(disclaimer, box.W, st)
	p.canvas.Text(box, disclaimer, st)
	y += h + 16

	broadband := [3][2]string{
		{"Basic", p.fieldOr("broadband_basic", "-")},
		{"Superfast", p.fieldOr("broadband_superfast", "-")},
		{"Ultrafast", p.fieldOr("broadband_ultrafast", "-")},
	}
	cells := layout.CitySquares(y) // same three-column spread
	for i, cell := range cells {
		cell.H = layout.MetricCellHeight
		p.metricCell(cell, "Broadband "+broadband[i][0], broadband[i][1])
	}
}

// epcChart draws the seven stepped grade bars plus the current/potential
// value badges, returning the cursor below the chart.
func (p *pageComposer) epcChart(y float64) float64 {
	current := p.epcScore("epc_current", layout.DefaultCurrentScore)
	potential := p.epcScore("epc_potential", layout.DefaultPotentialScore)
	chart := layout.BuildEPCChart(y, current, potential)

	headerStyle := render.TextStyle{Family: fontFamily, Style: "B", Size: 9, Color: textDark, Align: "CM"}
	p.canvas.Text(chart.CurrentHeader, "Current", headerStyle)
	p.canvas.Text(chart.PotentialHeader, "Potential", headerStyle)

	for _, row := range chart.Rows {
		color := row.Band.Color
		p.canvas.Rect(row.Bar, render.RectStyle{Fill: &color})

		p.canvas.Text(layout.Box{X: row.LetterX, Y: row.Bar.Y, W: 14, H: row.Bar.H},
			row.Band.Grade, render.TextStyle{Family: fontFamily, Style: "B", Size: 12, Color: textDark, Align: "LM"})
		p.canvas.Text(layout.Box{X: row.RangeX, Y: row.Bar.Y, W: 40, H: row.Bar.H},
			row.RangeLabel, render.TextStyle{Family: fontFamily, Size: 8, Color: textGray, Align: "LM"})
	}

	for _, badge := range [2]layout.Badge{chart.CurrentBadge, chart.PotentialBadge} {
		p.canvas.Polygon(badge.Points, badge.Band.Color)
		p.canvas.Text(badge.Text, badge.Label, render.TextStyle{
			Family: fontFamily, Style: "B", Size: 9, Color: textWhite, Align: "CM",
		})
	}

	return y + chart.Height()
}

func (p *pageComposer) epcScore(key string, def int) int {
	v, ok := money.ParseNumber(p.input.Fields[key])
	if !ok {
		return def
	}
	return int(v)
}

func (p *pageComposer) metricCell(cell layout.Box, label, value string) {
	stroke := lineGray
	p.canvas.Rect(cell, render.RectStyle{Stroke: &stroke, LineWidth: 0.75})

	p.canvas.Text(layout.Box{X: cell.X, Y: cell.Y + 8, W: cell.W, H: 10}, label,
		render.TextStyle{Family: fontFamily, Size: 8, Color: textGray, Align: "C"})
	p.canvas.Text(layout.Box{X: cell.X, Y: cell.Y + 18, W: cell.W, H: cell.H - 22}, value,
		render.TextStyle{Family: fontFamily, Style: "B", Size: 13, Color: textDark, Align: "CM"})
}

func (p *pageComposer) fieldOr(key, fallback string) string {
	if v := p.field(key); v != "" {
		return v
	}
	return fallback
}

func (p *pageComposer) firstPropertyImage() string {
	if len(p.input.Images.Property) > 0 {
		return p.input.Images.Property[0]
	}
	if len(p.input.Images.Cover) > 0 {
		return p.input.Images.Cover[0]
	}
	return ""
}
