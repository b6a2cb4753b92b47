package cluster

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"tabmap/internal/geom"
)

// Group is a render-time bucket of nearby points. Grouping is screen-space:
// the renderer projects each point and feeds the resulting cell to an
// Aggregator, so what counts as "nearby" follows zoom and pan for free.
type Group struct {
	CellX  int
	CellY  int
	Points []geom.Point
}

// Aggregator collects projected points into grid cells. It is rebuilt on
// every render pass; nothing here persists across frames.
type Aggregator struct {
	cols  int
	cells map[int]*Group
}

func NewAggregator(cols int) *Aggregator {
	return &Aggregator{cols: cols, cells: make(map[int]*Group)}
}

// Add files a point under its grid cell. Cells outside the grid (negative
// coordinates from panning) are ignored.
func (a *Aggregator) Add(p geom.Point, cellX, cellY int) {
	if cellX < 0 || cellY < 0 || cellX >= a.cols {
		return
	}
	key := cellY*a.cols + cellX
	g, ok := a.cells[key]
	if !ok {
		g = &Group{CellX: cellX, CellY: cellY}
		a.cells[key] = g
	}
	g.Points = append(g.Points, p)
}

// Groups returns the non-empty cells in a stable scan order.
func (a *Aggregator) Groups() []*Group {
	keys := make([]int, 0, len(a.cells))
	for k := range a.cells {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([]*Group, 0, len(keys))
	for _, k := range keys {
		out = append(out, a.cells[k])
	}
	return out
}

// DisplayValue computes the glyph label for a group of points. Each member's
// highlight field (matched case-insensitively) is stripped to its numeric
// content; if any member parses, the label is the sum — integral sums print
// without a fraction, others with one decimal. With no numeric members the
// label degrades to the member count.
func DisplayValue(points []geom.Point, highlight string) string {
	sum := 0.0
	numeric := false
	if highlight != "" {
		for _, p := range points {
			raw, ok := p.Source.Lookup(highlight)
			if !ok {
				continue
			}
			if v, ok := numericValue(raw); ok {
				sum += v
				numeric = true
			}
		}
	}
	if !numeric {
		return strconv.Itoa(len(points))
	}
	if sum == float64(int64(sum)) {
		return strconv.FormatInt(int64(sum), 10)
	}
	return fmt.Sprintf("%.1f", sum)
}

// numericValue extracts a number from a cell like "10kg" or "$1,200".
func numericValue(raw string) (float64, bool) {
	var b strings.Builder
	for _, ch := range raw {
		if (ch >= '0' && ch <= '9') || ch == '.' || ch == '-' {
			b.WriteRune(ch)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
