// Package layout computes absolute page geometry for every fixed report
// region. All values are PDF points (1/72 inch) on an A4 portrait page.
// Functions here are pure: they take a vertical cursor and return boxes,
// never touching the drawing surface.
package layout

const (
	Inch = 72.0

	PageWidth  = 595.28
	PageHeight = 841.89
	Margin     = 0.75 * Inch

	LogoWidth  = 1.4 * Inch
	LogoTop    = 0.45 * Inch
	LogoAspect = 0.4 // estimated height/width when the file cannot be probed

	taglineGap    = 12.0
	TaglineHeight = 9.0
	contentGap    = 20.0
)

// Box is an ephemeral absolute-positioned rectangle.
type Box struct {
	X, Y, W, H float64
}

func (b Box) Right() float64  { return b.X + b.W }
func (b Box) Bottom() float64 { return b.Y + b.H }

// RGB is an opaque color in 0-255 channels.
type RGB struct {
	R, G, B int
}

// Gold is the accent color used for metric boxes, summary bars and the
// cover footer.
var Gold = RGB{R: 197, G: 160, B: 74}

// Placeholder is the flat fill substituted for missing images.
var Placeholder = RGB{R: 224, G: 224, B: 224}

// ContentWidth is the usable width between the side margins.
func ContentWidth() float64 { return PageWidth - 2*Margin }

// ContentBottom is the lowest Y content may occupy.
func ContentBottom() float64 { return PageHeight - Margin }

// LogoBox positions the header logo. Height uses the estimated aspect so
// content geometry stays stable whether or not the logo file is readable.
func LogoBox() Box {
	return Box{X: Margin, Y: LogoTop, W: LogoWidth, H: LogoWidth * LogoAspect}
}

// TaglineBox positions the fixed-size tagline directly beneath the logo.
func TaglineBox() Box {
	return Box{
		X: Margin,
		Y: LogoBox().Bottom() + taglineGap,
		W: ContentWidth(),
		H: TaglineHeight,
	}
}

// ContentTop is where page content begins beneath the shared header.
func ContentTop() float64 {
	return LogoTop + LogoWidth*LogoAspect + taglineGap + TaglineHeight + contentGap
}
