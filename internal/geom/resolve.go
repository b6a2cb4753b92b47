package geom

import (
	"strings"

	"tabmap/internal/table"
)

// ResolvePoints converts rows into validated points using mapping. Rows that
// fail to parse, fall outside valid ranges, or land exactly on the origin are
// dropped without error: dirty spreadsheets are the normal case and the loss
// is reported only through the plotted-vs-total count. A nil or partially
// empty mapping is an inert state and yields no points.
//
// Pure: no I/O, inputs untouched, output order follows input order. Safe to
// re-run on every mapping edit.
func ResolvePoints(rows []table.Row, mapping *ColumnMapping) []Point {
	if mapping == nil || mapping.LatColumn == "" || mapping.LngColumn == "" {
		return nil
	}
	var points []Point
	for _, row := range rows {
		var latRaw, lngRaw string
		if mapping.Combined() {
			parts := splitCombined(row[mapping.LatColumn])
			if len(parts) < 2 {
				continue
			}
			latRaw, lngRaw = parts[0], parts[1]
		} else {
			latRaw = row[mapping.LatColumn]
			lngRaw = row[mapping.LngColumn]
		}
		lat, ok1 := ParseCoordinate(latRaw)
		lng, ok2 := ParseCoordinate(lngRaw)
		if !ok1 || !ok2 || !validPair(lat, lng) {
			continue
		}
		points = append(points, Point{Lat: lat, Lng: lng, Source: row})
	}
	return points
}

// splitCombined splits a combined-coordinate cell on comma or semicolon.
func splitCombined(cell string) []string {
	return strings.FieldsFunc(cell, func(r rune) bool {
		return r == ',' || r == ';'
	})
}

// validPair checks the point invariants: coordinate ranges plus rejection of
// the exact origin, the most common sentinel for missing data.
func validPair(lat, lng float64) bool {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return false
	}
	if lat == 0 && lng == 0 {
		return false
	}
	return true
}
