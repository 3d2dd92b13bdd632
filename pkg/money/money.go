// Package money parses and formats locale-formatted currency values.
package money

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BritishEnglish)

const symbols = "£$€"

// ParseCurrency converts a currency-like value to its numeric amount.
// Currency symbols, thousands separators and whitespace are stripped before
// conversion. A missing, empty or non-numeric value parses to 0.
func ParseCurrency(v interface{}) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0
		}
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case string:
		s := strings.TrimSpace(x)
		for _, r := range symbols {
			s = strings.ReplaceAll(s, string(r), "")
		}
		s = strings.ReplaceAll(s, ",", "")
		s = strings.ReplaceAll(s, " ", "")
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ParseNumber parses a numeric value with leading-prefix semantics: "12.5%"
// parses to 12.5. It reports false when no numeric prefix exists, so callers
// can fall back to a per-field default instead of 0.
func ParseNumber(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		s := strings.TrimSpace(x)
		end := 0
		seenDigit := false
		for i, r := range s {
			if r >= '0' && r <= '9' {
				seenDigit = true
				end = i + 1
				continue
			}
			if (r == '-' || r == '+') && i == 0 {
				end = i + 1
				continue
			}
			if r == '.' {
				end = i + 1
				continue
			}
			break
		}
		if !seenDigit {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimRight(s[:end], "."), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// FormatCurrency renders an amount as a display string with the pound symbol
// and thousands grouping, rounded to whole units.
func FormatCurrency(amount float64) string {
	return printer.Sprintf("£%d", int64(math.Round(amount)))
}

// FormatPercent renders a whole-number-scaled percentage with two decimals.
func FormatPercent(pct float64) string {
	return printer.Sprintf("%.2f%%", pct)
}
