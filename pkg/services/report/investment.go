package report

import (
	"github.com/prop-tools/report-atlas/pkg/render"
	"github.com/prop-tools/report-atlas/pkg/services/calc"
	"github.com/prop-tools/report-atlas/pkg/services/layout"
)

// investmentPages renders one section per selected calculator type, each on
// its own page.
func (p *pageComposer) investmentPages() {
	for _, typ := range calc.ResolveSelected(p.input.Fields) {
		fields := calc.MergeOverrides(p.input.Fields, typ)
		section := calc.BuildSection(typ, calc.Compute(typ, fields))
		p.investmentSection(section)
	}
}

func (p *pageComposer) investmentSection(s calc.Section) {
	y := p.newPage()
	y = p.title(y, "Investment Analysis")

	subtitle := layout.Box{X: layout.Margin, Y: y, W: layout.ContentWidth(), H: 14}
	p.canvas.Text(subtitle, s.Title, render.TextStyle{
		Family: fontFamily, Size: 12, Color: textGray,
	})
	y += 14 + 16

	for i, box := range layout.MetricRow(y) {
		p.goldPanel(box, s.Boxes[i].Label, s.Boxes[i].Value)
	}
	y += layout.MetricBoxHeight + 24

	left, right := layout.Columns(y)
	leftBottom := p.breakdownColumn(left, "Costs", s.Costs)
	rightBottom := p.breakdownColumn(right, "Expenses", s.Expenses)
	if rightBottom > leftBottom {
		y = rightBottom
	} else {
		y = leftBottom
	}
	y += 24

	for i, bar := range layout.SummaryBars(y) {
		p.summaryBar(bar, s.Summary[i].Label, s.Summary[i].Value)
	}
}

// breakdownColumn draws a heading plus label/value rows separated by thin
// rules, returning the Y below the column.
func (p *pageComposer) breakdownColumn(col layout.Box, heading string, rows []calc.Row) float64 {
	y := col.Y
	p.canvas.Text(layout.Box{X: col.X, Y: y, W: col.W, H: 14}, heading, render.TextStyle{
		Family: fontFamily, Style: "B", Size: 11, Color: textDark,
	})
	y += 20

	for i, row := range rows {
		style := render.TextStyle{Family: fontFamily, Size: 10, Color: textDark}
		if row.Bold {
			style.Style = "B"
		}

		rowBox := layout.Box{X: col.X, Y: y, W: col.W, H: layout.ColumnRowHeight}
		p.canvas.Text(rowBox, row.Label, style)
		style.Align = "RM"
		p.canvas.Text(rowBox, row.Value, style)

		if i < len(rows)-1 {
			lineY := y + layout.ColumnRowHeight - 4
			p.canvas.Line(col.X, lineY, col.X+col.W, lineY, 0.5, lineGray)
		}
		y += layout.ColumnRowHeight
	}
	return y
}

// summaryBar is a gold bar with the label on the left and the value on the
// right.
func (p *pageComposer) summaryBar(bar layout.Box, label, value string) {
	gold := layout.Gold
	p.canvas.Rect(bar, render.RectStyle{Fill: &gold})

	pad := 12.0
	inner := layout.Box{X: bar.X + pad, Y: bar.Y, W: bar.W - 2*pad, H: bar.H}
	p.canvas.Text(inner, label, render.TextStyle{
		Family: fontFamily, Size: 10, Color: textWhite, Align: "LM",
	})
	p.canvas.Text(inner, value, render.TextStyle{
		Family: fontFamily, Style: "B", Size: 12, Color: textWhite, Align: "RM",
	})
}
