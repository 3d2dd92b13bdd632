package report

import (
	"strings"

	"github.com/prop-tools/report-atlas/pkg/render"
	"github.com/prop-tools/report-atlas/pkg/services/images"
	"github.com/prop-tools/report-atlas/pkg/services/layout"
)

func (p *pageComposer) coverPage() {
	y := p.newPage()
	y = p.title(y, p.addressTitle())

	hero, rest := images.SelectHero(p.input.Images, p.opts.HeroPredicates)
	p.imageOrPlaceholder(hero, layout.HeroBox(y), render.FitCover)
	y += layout.HeroHeight + 12

	thumbs := layout.ThumbRow(y)
	for i, box := range thumbs {
		path := ""
		if i < len(rest) {
			path = rest[i]
		}
		p.imageOrPlaceholder(path, box, render.FitCover)
	}

	bar := layout.FooterBar()
	gold := layout.Gold
	p.canvas.Rect(bar, render.RectStyle{Fill: &gold})
	p.canvas.Text(bar, "Report created on "+OrdinalDate(p.opts.Now()), render.TextStyle{
		Family: fontFamily, Size: 10, Color: textWhite, Align: "CM",
	})
}

// addressTitle joins the address fields, falling back through the common
// form spellings.
func (p *pageComposer) addressTitle() string {
	if addr := p.field("property_address"); addr != "" {
		return addr
	}

	var parts []string
	for _, key := range []string{"address_line_1", "address_line_2", "city", "postcode"} {
		if v := p.field(key); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "Property Report"
	}
	return strings.Join(parts, ", ")
}
