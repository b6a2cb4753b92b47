package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tabmap/internal/cluster"
)

// cluster grid block size in character cells
const (
	clusterBlockW = 6
	clusterBlockH = 3
)

// overlay is a styled string spliced into the plain rune grid after the base
// pass, so ANSI sequences never disturb cell arithmetic.
type overlay struct {
	x, y int
	text string
	sty  lipgloss.Style
}

func (m Model) renderMap(w, h int) string {
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		lines[y] = strings.Repeat(" ", w)
	}
	if len(m.points) == 0 || !m.hasBBox {
		return strings.Join(lines, "\n")
	}

	var overlays []overlay
	switch {
	case m.clusterMode:
		overlays = m.renderClusters(w, h)
	case m.styleRule != nil:
		// styled markers need per-cell color, so plot on the cell grid
		for _, p := range m.points {
			sx, sy, ok := m.screenXY(p.Lng, p.Lat, w, h)
			if !ok || sx < 0 || sx >= w || sy < 0 || sy >= h {
				continue
			}
			c := m.styleRule.Color(p.Source)
			overlays = append(overlays, overlay{
				x: sx, y: sy, text: "●",
				sty: lipgloss.NewStyle().Foreground(c),
			})
		}
	default:
		// unstyled points render on the braille microgrid for density
		br := newBrailleBuf(w, h)
		for _, p := range m.points {
			mx, my, ok := m.screenXYMicro(p.Lng, p.Lat, w, h)
			if !ok {
				continue
			}
			br.setPixel(mx, my)
		}
		braLines := br.toLines()
		for y := 0; y < h && y < len(braLines); y++ {
			base := []rune(lines[y])
			over := []rune(braLines[y])
			for x := 0; x < len(base) && x < len(over); x++ {
				if over[x] != ' ' {
					base[x] = over[x]
				}
			}
			lines[y] = string(base)
		}
	}

	return strings.Join(applyOverlays(lines, overlays), "\n")
}

// renderClusters buckets projected points into character blocks and draws
// each group's aggregate display value at the block's centroid cell.
func (m Model) renderClusters(w, h int) []overlay {
	cols := w/clusterBlockW + 1
	agg := cluster.NewAggregator(cols)
	for _, p := range m.points {
		sx, sy, ok := m.screenXY(p.Lng, p.Lat, w, h)
		if !ok || sx < 0 || sx >= w || sy < 0 || sy >= h {
			continue
		}
		agg.Add(p, sx/clusterBlockW, sy/clusterBlockH)
	}
	var overlays []overlay
	for _, g := range agg.Groups() {
		label := cluster.DisplayValue(g.Points, m.highlight)
		if len(g.Points) == 1 {
			// singletons keep their plain marker
			c := m.styleRule.Color(g.Points[0].Source)
			overlays = append(overlays, overlay{
				x: g.CellX * clusterBlockW, y: g.CellY * clusterBlockH, text: "●",
				sty: lipgloss.NewStyle().Foreground(c),
			})
			continue
		}
		text := "(" + label + ")"
		x := g.CellX*clusterBlockW + (clusterBlockW-len(text))/2
		if x < 0 {
			x = 0
		}
		y := g.CellY*clusterBlockH + clusterBlockH/2
		overlays = append(overlays, overlay{x: x, y: y, text: text, sty: m.sty.cluster})
	}
	return overlays
}

// applyOverlays splices styled text into plain lines. Overlays on one row
// are applied left to right against the original rune positions; overlapping
// ones are dropped rather than garbled.
func applyOverlays(lines []string, overlays []overlay) []string {
	if len(overlays) == 0 {
		return lines
	}
	byRow := make(map[int][]overlay)
	for _, ov := range overlays {
		if ov.y < 0 || ov.y >= len(lines) {
			continue
		}
		byRow[ov.y] = append(byRow[ov.y], ov)
	}
	out := make([]string, len(lines))
	copy(out, lines)
	for y, ovs := range byRow {
		sort.Slice(ovs, func(i, j int) bool { return ovs[i].x < ovs[j].x })
		base := []rune(lines[y])
		var b strings.Builder
		cursor := 0
		for _, ov := range ovs {
			n := len([]rune(ov.text))
			if ov.x < cursor || ov.x+n > len(base) {
				continue
			}
			b.WriteString(string(base[cursor:ov.x]))
			b.WriteString(ov.sty.Render(ov.text))
			cursor = ov.x + n
		}
		if cursor < len(base) {
			b.WriteString(string(base[cursor:]))
		}
		out[y] = b.String()
	}
	return out
}

// norm maps lng/lat into [0,1] viewport space. A degenerate bbox axis (all
// points sharing one coordinate) pins that axis to the center instead of
// hiding the points.
func (m Model) norm(lng, lat float64) (nx, ny float64, ok bool) {
	if !m.hasBBox {
		return 0, 0, false
	}
	nx, ny = 0.5, 0.5
	if m.bbox.MaxX > m.bbox.MinX {
		nx = (lng - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	}
	if m.bbox.MaxY > m.bbox.MinY {
		ny = (lat - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	}
	return nx, ny, true
}

// screenXY maps lng/lat to current screen integer coordinates considering zoom and pan.
func (m Model) screenXY(lng, lat float64, w, h int) (int, int, bool) {
	nx, ny, ok := m.norm(lng, lat)
	if !ok {
		return 0, 0, false
	}
	// Apply zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

// screenXYMicro maps lng/lat into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(lng, lat float64, w, h int) (int, int, bool) {
	nx, ny, ok := m.norm(lng, lat)
	if !ok {
		return 0, 0, false
	}
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// cellToLonLat converts a map cell coordinate back to lng/lat using bbox, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lng := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	lat := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return lng, lat, true
}
