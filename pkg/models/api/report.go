package api

// GenerateReportRequest is the POST /api/v1/reports body. Image entries are
// base64 payloads (optionally data-URL prefixed) or, from the CLI, plain
// file paths.
type GenerateReportRequest struct {
	Fields map[string]interface{} `json:"fields"`
	Images ImagePayload           `json:"images"`
	Logo   string                 `json:"logo,omitempty"`
}

type ImagePayload struct {
	Cover      []string `json:"cover,omitempty"`
	Property   []string `json:"property,omitempty"`
	FloorPlans []string `json:"floor_plans,omitempty"`
	Directions []string `json:"directions,omitempty"`
	City       []string `json:"city,omitempty"`
}

type Calculator struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type Error struct {
	Error string `json:"error"`
}
