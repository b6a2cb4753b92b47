package table

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ParseGeoJSON flattens Point/MultiPoint features into a Dataset: property
// keys become columns (unioned in first-seen order) and coordinates land in
// "lat"/"lng" columns, so downstream treats GeoJSON like any spreadsheet.
func ParseGeoJSON(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var features []any
	switch t, _ := raw["type"].(string); t {
	case "FeatureCollection":
		features, _ = raw["features"].([]any)
	case "Feature":
		features = []any{raw}
	default:
		return nil, errors.New("geojson: not a feature or feature collection")
	}

	parsePoint := func(v any) (pt [2]float64, ok bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			lon, lok := a[0].(float64)
			lat, aok := a[1].(float64)
			if lok && aok {
				return [2]float64{lon, lat}, true
			}
		}
		return [2]float64{}, false
	}

	// union property keys across features, first occurrence wins the order
	order := []string{}
	seen := map[string]bool{}
	type feat struct {
		props map[string]any
		pts   [][2]float64
	}
	var feats []feat
	for _, f := range features {
		fm, ok := f.(map[string]any)
		if !ok {
			continue
		}
		g, _ := fm["geometry"].(map[string]any)
		if g == nil {
			continue
		}
		var pts [][2]float64
		switch gt, _ := g["type"].(string); gt {
		case "Point":
			if pt, ok := parsePoint(g["coordinates"]); ok {
				pts = append(pts, pt)
			}
		case "MultiPoint":
			if arr, ok := g["coordinates"].([]any); ok {
				for _, el := range arr {
					if pt, ok := parsePoint(el); ok {
						pts = append(pts, pt)
					}
				}
			}
		}
		if len(pts) == 0 {
			continue
		}
		pm, _ := fm["properties"].(map[string]any)
		if pm == nil {
			pm = map[string]any{}
		}
		for k := range pm {
			if !seen[k] {
				seen[k] = true
				order = append(order, k)
			}
		}
		feats = append(feats, feat{props: pm, pts: pts})
	}
	if len(feats) == 0 {
		return nil, errors.New("geojson: no point features found")
	}

	headers := append([]string{"lat", "lng"}, order...)
	d := &Dataset{Headers: headers}
	for _, f := range feats {
		for _, pt := range f.pts {
			row := make(Row, len(headers))
			row["lat"] = strconv.FormatFloat(pt[1], 'f', -1, 64)
			row["lng"] = strconv.FormatFloat(pt[0], 'f', -1, 64)
			for _, k := range order {
				row[k] = stringifyCell(f.props[k])
			}
			d.Rows = append(d.Rows, row)
		}
	}
	return d, nil
}

func stringifyCell(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		bs, _ := json.Marshal(t)
		return string(bs)
	}
}
