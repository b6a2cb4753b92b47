package geom

import "tabmap/internal/table"

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Point is one validated map location together with the row it came from.
type Point struct {
	Lat    float64
	Lng    float64
	Source table.Row
}

// ColumnMapping names the dataset columns holding the coordinates. Equal
// names signal combined mode: both values live in one delimiter-separated
// cell.
type ColumnMapping struct {
	LatColumn string
	LngColumn string
}

func (m ColumnMapping) Combined() bool {
	return m.LatColumn == m.LngColumn
}

// Bounds returns the bounding box of points; ok is false when empty.
func Bounds(points []Point) (bbox BBox, ok bool) {
	for i, p := range points {
		if i == 0 {
			bbox = BBox{MinX: p.Lng, MinY: p.Lat, MaxX: p.Lng, MaxY: p.Lat}
			continue
		}
		if p.Lng < bbox.MinX {
			bbox.MinX = p.Lng
		}
		if p.Lat < bbox.MinY {
			bbox.MinY = p.Lat
		}
		if p.Lng > bbox.MaxX {
			bbox.MaxX = p.Lng
		}
		if p.Lat > bbox.MaxY {
			bbox.MaxY = p.Lat
		}
	}
	return bbox, len(points) > 0
}
