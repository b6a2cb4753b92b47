package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabmap/internal/table"
)

func rows(cells ...map[string]string) []table.Row {
	out := make([]table.Row, len(cells))
	for i, c := range cells {
		out[i] = table.Row(c)
	}
	return out
}

func TestResolvePointsInertMapping(t *testing.T) {
	rs := rows(map[string]string{"lat": "40.7", "lng": "-74.0"})
	assert.Empty(t, ResolvePoints(rs, nil))
	assert.Empty(t, ResolvePoints(rs, &ColumnMapping{LatColumn: "", LngColumn: "lng"}))
	assert.Empty(t, ResolvePoints(nil, &ColumnMapping{LatColumn: "lat", LngColumn: "lng"}))
}

func TestResolvePointsDualColumn(t *testing.T) {
	m := &ColumnMapping{LatColumn: "lat", LngColumn: "lng"}
	rs := rows(
		map[string]string{"lat": "40.7", "lng": "-74.0", "name": "nyc"},
		map[string]string{"lat": "", "lng": "-74.0"},       // unparseable lat
		map[string]string{"lat": "48,85", "lng": "2.35"},   // european decimals
		map[string]string{"lat": "91", "lng": "0"},         // lat out of range
		map[string]string{"lat": "10", "lng": "181"},       // lng out of range
		map[string]string{"lat": "0", "lng": "0"},          // origin sentinel
		map[string]string{"lat": "0", "lng": "5"},          // one zero axis is fine
		map[string]string{"lat": "S33.9", "lng": "18.42"},  // hemisphere letter
	)
	pts := ResolvePoints(rs, m)
	require.Len(t, pts, 4)
	// output order matches input row order
	assert.Equal(t, 40.7, pts[0].Lat)
	assert.Equal(t, -74.0, pts[0].Lng)
	assert.Equal(t, "nyc", pts[0].Source["name"])
	assert.InDelta(t, 48.85, pts[1].Lat, 1e-9)
	assert.Equal(t, 0.0, pts[2].Lat)
	assert.Equal(t, 5.0, pts[2].Lng)
	assert.InDelta(t, -33.9, pts[3].Lat, 1e-9)
}

func TestResolvePointsCombinedColumn(t *testing.T) {
	m := &ColumnMapping{LatColumn: "coords", LngColumn: "coords"}
	require.True(t, m.Combined())
	rs := rows(
		map[string]string{"coords": "40.7;-74.0"},
		map[string]string{"coords": "48.85, 2.35"},
		map[string]string{"coords": "40.7,-74.0,extra"}, // extra parts ignored
		map[string]string{"coords": "40.7"},             // fewer than two parts
		map[string]string{"coords": ""},
	)
	pts := ResolvePoints(rs, m)
	require.Len(t, pts, 3)
	assert.Equal(t, 40.7, pts[0].Lat)
	assert.Equal(t, -74.0, pts[0].Lng)
	assert.InDelta(t, 48.85, pts[1].Lat, 1e-9)
	assert.InDelta(t, 2.35, pts[1].Lng, 1e-9)
	assert.Equal(t, 40.7, pts[2].Lat)
	assert.Equal(t, -74.0, pts[2].Lng)
}

func TestResolvePointsIdempotent(t *testing.T) {
	m := &ColumnMapping{LatColumn: "lat", LngColumn: "lng"}
	rs := rows(
		map[string]string{"lat": "40.7", "lng": "-74.0"},
		map[string]string{"lat": "bad", "lng": "1"},
		map[string]string{"lat": "51.5", "lng": "-0.12"},
	)
	first := ResolvePoints(rs, m)
	second := ResolvePoints(rs, m)
	assert.Equal(t, first, second)
}

func TestBounds(t *testing.T) {
	_, ok := Bounds(nil)
	assert.False(t, ok)

	bbox, ok := Bounds([]Point{
		{Lat: 40.7, Lng: -74.0},
		{Lat: 51.5, Lng: -0.12},
		{Lat: -33.9, Lng: 18.42},
	})
	require.True(t, ok)
	assert.Equal(t, BBox{MinX: -74.0, MinY: -33.9, MaxX: 18.42, MaxY: 51.5}, bbox)
}
