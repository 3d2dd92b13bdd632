// Package images materializes uploaded image payloads as temporary files
// and selects which images fill which report slots.
package images

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/prop-tools/report-atlas/pkg/models/api"
	"github.com/prop-tools/report-atlas/pkg/models/domain"
)

// Materialize writes every image payload in req to dir and returns the
// categorized path set plus the logo path (empty when no logo was sent).
// Entries that are already readable file paths pass through untouched, so
// the CLI can reference images on disk. Individual bad payloads are skipped,
// not fatal: a missing image renders as a placeholder downstream.
func Materialize(req api.ImagePayload, logo string, dir string) (domain.ImageSet, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.ImageSet{}, "", fmt.Errorf("creating image dir: %w", err)
	}

	set := domain.ImageSet{
		Cover:      materializeAll(req.Cover, dir),
		Property:   materializeAll(req.Property, dir),
		FloorPlans: materializeAll(req.FloorPlans, dir),
		Directions: materializeAll(req.Directions, dir),
		City:       materializeAll(req.City, dir),
	}

	var logoPath string
	if logo != "" {
		logoPath = materialize(logo, dir)
	}
	return set, logoPath, nil
}

func materializeAll(entries []string, dir string) []string {
	var out []string
	for _, e := range entries {
		if p := materialize(e, dir); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func materialize(entry, dir string) string {
	if entry == "" {
		return ""
	}
	if info, err := os.Stat(entry); err == nil && !info.IsDir() {
		return entry
	}

	data, ext, err := decodePayload(entry)
	if err != nil {
		return ""
	}

	path := filepath.Join(dir, uuid.New().String()+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ""
	}
	return path
}

// decodePayload accepts raw base64 or a data URL and returns the bytes plus
// a file extension matching the declared (or sniffed) type.
func decodePayload(entry string) ([]byte, string, error) {
	ext := ".jpg"
	payload := entry

	if strings.HasPrefix(entry, "data:") {
		semi := strings.Index(entry, ";base64,")
		if semi < 0 {
			return nil, "", fmt.Errorf("unsupported data url")
		}
		switch mime := entry[len("data:"):semi]; mime {
		case "image/png":
			ext = ".png"
		case "image/gif":
			ext = ".gif"
		case "image/jpeg", "image/jpg":
			ext = ".jpg"
		}
		payload = entry[semi+len(";base64,"):]
	}

	data, err := decodeBase64(payload)
	if err != nil {
		return nil, "", fmt.Errorf("decoding image payload: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty image payload")
	}

	// Raw base64 without a data URL: sniff the common signatures.
	if !strings.HasPrefix(entry, "data:") && len(data) > 8 {
		switch {
		case data[0] == 0x89 && data[1] == 'P' && data[2] == 'N' && data[3] == 'G':
			ext = ".png"
		case data[0] == 'G' && data[1] == 'I' && data[2] == 'F' && data[3] == '8':
			ext = ".gif"
		}
	}
	return data, ext, nil
}

// decodeBase64 tolerates the variants browsers and shell pipelines emit:
// embedded whitespace, the URL-safe alphabet, and stripped padding.
func decodeBase64(payload string) ([]byte, error) {
	payload = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, payload)

	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}
	var firstErr error
	for _, enc := range encodings {
		data, err := enc.DecodeString(payload)
		if err == nil {
			return data, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}
