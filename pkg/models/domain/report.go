package domain

// ReportInput is the caller-normalized content for one report generation.
// Fields is the flat form mapping; per-calculator overrides live under
// calculator_<type> keys.
type ReportInput struct {
	Fields   map[string]interface{}
	Images   ImageSet
	LogoPath string
}

// ImageSet groups readable image file paths by their role in the report.
// Paths that do not resolve to a readable file render as placeholders; the
// engine only reads them, never deletes or mutates them.
type ImageSet struct {
	Cover      []string
	Property   []string
	FloorPlans []string
	Directions []string
	City       []string
}
