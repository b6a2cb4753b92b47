package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabmap/internal/geom"
	"tabmap/internal/table"
)

func highlightPoints(values ...string) []geom.Point {
	out := make([]geom.Point, len(values))
	for i, v := range values {
		out[i] = geom.Point{Source: table.Row{"Weight": v}}
	}
	return out
}

func TestDisplayValueNumericSum(t *testing.T) {
	pts := highlightPoints("10kg", "5kg", "bad")
	// case-insensitive field match, non-numeric member ignored
	assert.Equal(t, "15", DisplayValue(pts, "weight"))
}

func TestDisplayValueFractional(t *testing.T) {
	pts := highlightPoints("1.25", "1.25")
	assert.Equal(t, "2.5", DisplayValue(pts, "Weight"))
}

func TestDisplayValueCountFallback(t *testing.T) {
	// no member parses: degrade to point count
	assert.Equal(t, "3", DisplayValue(highlightPoints("a", "b", "c"), "Weight"))
	// no highlight field configured
	assert.Equal(t, "2", DisplayValue(highlightPoints("10", "20"), ""))
	// field missing from rows entirely
	assert.Equal(t, "2", DisplayValue(highlightPoints("10", "20"), "nope"))
}

func TestDisplayValueJunkStripped(t *testing.T) {
	pts := []geom.Point{
		{Source: table.Row{"amount": "$1,200"}},
		{Source: table.Row{"amount": "300 units"}},
	}
	assert.Equal(t, "1500", DisplayValue(pts, "Amount"))
}

func TestAggregatorGrouping(t *testing.T) {
	agg := NewAggregator(10)
	a := geom.Point{Lat: 1, Lng: 1}
	b := geom.Point{Lat: 2, Lng: 2}
	c := geom.Point{Lat: 3, Lng: 3}
	agg.Add(a, 2, 0)
	agg.Add(b, 2, 0)
	agg.Add(c, 5, 1)
	agg.Add(c, -1, 0) // off-grid, ignored
	agg.Add(c, 0, -2) // off-grid, ignored

	groups := agg.Groups()
	require.Len(t, groups, 2)
	// stable scan order: row-major
	assert.Equal(t, 2, groups[0].CellX)
	assert.Len(t, groups[0].Points, 2)
	assert.Equal(t, 5, groups[1].CellX)
	assert.Equal(t, 1, groups[1].CellY)
}
