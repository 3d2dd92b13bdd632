package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected float64
	}{
		{"plain number", 150000.0, 150000},
		{"integer", 42, 42},
		{"pound string", "£200,000", 200000},
		{"euro string", "€1,250.50", 1250.50},
		{"dollar with spaces", "$ 99 000", 99000},
		{"bare numeric string", "1200", 1200},
		{"empty string", "", 0},
		{"garbage", "n/a", 0},
		{"nil", nil, 0},
		{"negative", "-500", -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCurrency(tt.input))
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected float64
		ok       bool
	}{
		{"float", 5.8, 5.8, true},
		{"string", "25", 25, true},
		{"percent suffix", "12.5%", 12.5, true},
		{"no numeric prefix", "abc", 0, false},
		{"empty", "", 0, false},
		{"negative", "-3.2", -3.2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "£200,000", FormatCurrency(200000))
	assert.Equal(t, "£1,200", FormatCurrency(1200.4))
	assert.Equal(t, "£0", FormatCurrency(0))
}

// Formatting rounds to whole units, so a parse round-trip recovers the
// rounded amount.
func TestParseFormatRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 1, 999.49, 1200, 50000, 1234567.8} {
		got := ParseCurrency(FormatCurrency(x))
		assert.InDelta(t, x, got, 0.5)
	}
}
