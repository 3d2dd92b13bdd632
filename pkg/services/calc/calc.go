// Package calc implements the investment calculators. Each strategy is a
// pure function from a flat field mapping to a metric mapping; dispatch is
// keyed by a closed Type with an explicit default.
package calc

import (
	"sort"
	"strings"

	"github.com/prop-tools/report-atlas/pkg/money"
)

type Type string

const (
	TypeStandardBTL    Type = "standard-btl"
	TypeBRR            Type = "brr"
	TypeFlip           Type = "flip"
	TypeHolidayLet     Type = "holiday-let"
	TypeRentToHMO      Type = "rent-to-hmo"
	TypeRentToServiced Type = "rent-to-serviced"
)

// ParseType maps a discriminator string to a calculator type. "purchase" is
// a legacy alias for the default; anything unrecognized also selects the
// default rather than failing.
func ParseType(s string) Type {
	switch Type(strings.TrimSpace(strings.ToLower(s))) {
	case TypeBRR:
		return TypeBRR
	case TypeFlip:
		return TypeFlip
	case TypeHolidayLet:
		return TypeHolidayLet
	case TypeRentToHMO:
		return TypeRentToHMO
	case TypeRentToServiced:
		return TypeRentToServiced
	default:
		return TypeStandardBTL
	}
}

// Fields is the flat, caller-normalized input mapping for one calculation.
type Fields map[string]interface{}

// Result maps metric names to finite numeric values. Percentages are
// whole-number scaled: 12.5 means 12.5%.
type Result map[string]float64

type fieldKind int

const (
	currency fieldKind = iota // symbol/separator stripping, missing -> 0
	rate                      // parseFloat prefix, missing -> per-field default
)

type fieldSpec struct {
	kind fieldKind
	def  float64
}

// specTable centralizes every field's parser and fallback default so the
// formulas below only see resolved numbers.
type specTable map[string]fieldSpec

func (t specTable) resolve(f Fields) map[string]float64 {
	out := make(map[string]float64, len(t))
	for name, spec := range t {
		raw, present := f[name]
		switch spec.kind {
		case currency:
			out[name] = money.ParseCurrency(raw)
		case rate:
			if !present {
				out[name] = spec.def
				continue
			}
			v, ok := money.ParseNumber(raw)
			if !ok {
				v = spec.def
			}
			out[name] = v
		}
	}
	return out
}

type calculator struct {
	spec    specTable
	compute func(v map[string]float64) Result
}

var calculators = map[Type]calculator{
	TypeStandardBTL:    standardBTL,
	TypeBRR:            brr,
	TypeFlip:           flip,
	TypeHolidayLet:     holidayLet,
	TypeRentToHMO:      rentToHMO,
	TypeRentToServiced: rentToServiced,
}

// Compute runs the calculator for typ over the field mapping. Unknown types
// run the default calculator. Malformed input never errors; degenerate
// values collapse to zero.
func Compute(typ Type, fields Fields) Result {
	c, ok := calculators[typ]
	if !ok {
		c = calculators[TypeStandardBTL]
	}
	return c.compute(c.spec.resolve(fields))
}

// Types lists the supported calculator types in stable order.
func Types() []Type {
	out := make([]Type, 0, len(calculators))
	for t := range calculators {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ResolveSelected normalizes the active calculator set from the input:
// a selected_calculators list, a comma-separated string, a bare
// calculator_type scalar, or the default when none is present.
func ResolveSelected(fields Fields) []Type {
	if raw, ok := fields["selected_calculators"]; ok {
		if types := normalizeSelection(raw); len(types) > 0 {
			return types
		}
	}
	if raw, ok := fields["calculator_type"]; ok {
		if s, ok := raw.(string); ok && strings.TrimSpace(s) != "" {
			return []Type{ParseType(s)}
		}
	}
	return []Type{TypeStandardBTL}
}

func normalizeSelection(raw interface{}) []Type {
	var names []string
	switch v := raw.(type) {
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}
	case []string:
		names = v
	case string:
		names = strings.Split(v, ",")
	}

	var out []Type
	seen := map[Type]bool{}
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		t := ParseType(n)
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// MergeOverrides layers the calculator_<type> sub-mapping, when present,
// over the top-level fields so per-section values win over global ones.
func MergeOverrides(fields Fields, typ Type) Fields {
	sub, ok := fields["calculator_"+string(typ)].(map[string]interface{})
	if !ok || len(sub) == 0 {
		return fields
	}
	merged := make(Fields, len(fields)+len(sub))
	for k, v := range fields {
		merged[k] = v
	}
	for k, v := range sub {
		merged[k] = v
	}
	return merged
}

// ratio returns part/basis*100, or 0 when the basis is not positive.
func ratio(part, basis float64) float64 {
	if basis <= 0 {
		return 0
	}
	return part / basis * 100
}
