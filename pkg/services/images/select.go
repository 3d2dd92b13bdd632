package images

import (
	"path/filepath"
	"strings"

	"github.com/prop-tools/report-atlas/pkg/models/domain"
)

// Predicate tests an image filename for hero-slot suitability.
type Predicate func(name string) bool

// ExteriorFront prefers a shot whose filename mentions both "exterior" and
// "front", case-insensitive. This is a best-effort heuristic, not a
// guaranteed contract.
func ExteriorFront(name string) bool {
	n := strings.ToLower(filepath.Base(name))
	return strings.Contains(n, "exterior") && strings.Contains(n, "front")
}

// DefaultHeroPredicates is the ordered selection chain; the final fallback
// to first-available is implicit in SelectHero.
var DefaultHeroPredicates = []Predicate{ExteriorFront}

// SelectHero picks the cover hero from the concatenation of the cover and
// property lists using the first matching predicate, falling back to the
// first available image. The remaining images, in original order, become
// thumbnail candidates. An empty candidate set returns "" and nil.
func SelectHero(set domain.ImageSet, preds []Predicate) (hero string, rest []string) {
	candidates := append(append([]string{}, set.Cover...), set.Property...)
	if len(candidates) == 0 {
		return "", nil
	}

	heroIdx := 0
	for _, pred := range preds {
		found := false
		for i, c := range candidates {
			if pred(c) {
				heroIdx = i
				found = true
				break
			}
		}
		if found {
			break
		}
	}

	hero = candidates[heroIdx]
	rest = make([]string, 0, len(candidates)-1)
	rest = append(rest, candidates[:heroIdx]...)
	rest = append(rest, candidates[heroIdx+1:]...)
	return hero, rest
}
