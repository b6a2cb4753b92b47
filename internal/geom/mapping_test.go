package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHint(t *testing.T) {
	headers := []string{"City", "Latitude", "Longitude"}
	assert.False(t, ValidateHint(headers, nil))
	assert.False(t, ValidateHint(headers, &ColumnMapping{}))
	assert.False(t, ValidateHint(headers, &ColumnMapping{LatColumn: "Latitude", LngColumn: "lon"}))
	assert.True(t, ValidateHint(headers, &ColumnMapping{LatColumn: "Latitude", LngColumn: "Longitude"}))
	// combined hint naming one existing column is valid
	assert.True(t, ValidateHint(headers, &ColumnMapping{LatColumn: "City", LngColumn: "City"}))
}

func TestResolveMappingHintWins(t *testing.T) {
	headers := []string{"a", "b", "lat", "lng"}
	hint := &ColumnMapping{LatColumn: "a", LngColumn: "b"}
	assert.Equal(t, *hint, ResolveMapping(headers, hint))
}

func TestResolveMappingBadHintFallsBack(t *testing.T) {
	headers := []string{"Latitude", "Longitude"}
	hint := &ColumnMapping{LatColumn: "nope", LngColumn: "Longitude"}
	got := ResolveMapping(headers, hint)
	assert.Equal(t, ColumnMapping{LatColumn: "Latitude", LngColumn: "Longitude"}, got)
}

func TestResolveMappingHeuristic(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		want    ColumnMapping
	}{
		{
			"lat lng words",
			[]string{"name", "latitude", "longitude"},
			ColumnMapping{LatColumn: "latitude", LngColumn: "longitude"},
		},
		{
			"x y axes",
			[]string{"City", "X", "Y"},
			ColumnMapping{LatColumn: "Y", LngColumn: "X"},
		},
		{
			"combined coordinates column",
			[]string{"name", "coordinates"},
			ColumnMapping{LatColumn: "coordinates", LngColumn: "coordinates"},
		},
		{
			"positional fallback",
			[]string{"A", "B"},
			ColumnMapping{LatColumn: "A", LngColumn: "B"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveMapping(tt.headers, nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveMappingCombined(t *testing.T) {
	got := ResolveMapping([]string{"name", "coords"}, nil)
	assert.True(t, got.Combined())
}

func TestResolveMappingShortHeaders(t *testing.T) {
	got := ResolveMapping([]string{"only"}, nil)
	assert.Equal(t, ColumnMapping{LatColumn: "only", LngColumn: ""}, got)

	got = ResolveMapping(nil, nil)
	assert.Equal(t, ColumnMapping{}, got)
}
