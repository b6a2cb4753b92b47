package tui

import (
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"tabmap/internal/geom"
	"tabmap/internal/infer"
	"tabmap/internal/style"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; refined in View
		}

	case datasetMsg:
		m.dataset = msg.d
		m.styleRule = nil
		m.summary = infer.PlaceholderSummary
		mapping := geom.ResolveMapping(msg.d.Headers, nil)
		m.mapping = &mapping
		m.refreshPoints()
		m.resetViewport()
		m.refreshColumns()
		src := msg.d.Source
		if msg.fromCache {
			src += " (cached)"
		}
		m.status = fmt.Sprintf("loaded: %s  pts=%d/%d", src, len(m.points), m.totalRows())
		if m.showAttrs {
			m.refreshAttrs()
		}
		return m, tea.Batch(m.inferCmd(msg.d), m.summaryCmd(msg.d))

	case loadErrMsg:
		m.status = "load error: " + msg.err.Error()
		return m, nil

	case hintMsg:
		// advisory: apply only when it survives revalidation
		if m.dataset != nil && geom.ValidateHint(m.dataset.Headers, msg.hint) {
			m.mapping = msg.hint
			m.refreshPoints()
			m.refreshColumns()
			m.status = fmt.Sprintf("columns inferred: lat=%s lng=%s  pts=%d/%d",
				msg.hint.LatColumn, msg.hint.LngColumn, len(m.points), m.totalRows())
		}
		return m, nil

	case summaryMsg:
		m.summary = msg.text
		return m, nil

	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.urlMode {
			switch msg.String() {
			case "esc":
				m.urlMode = false
				m.ti.Blur()
				return m, nil
			case "enter":
				src := strings.TrimSpace(m.ti.Value())
				if src == "" {
					m.status = "url: empty"
					return m, nil
				}
				m.urlMode = false
				m.ti.Blur()
				m.status = "loading: " + src
				return m, m.loadCmd(src)
			}
			var cmd tea.Cmd
			m.ti, cmd = m.ti.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshColumns()
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			} else {
				m.pick = pickNone
			}
		case "u":
			m.urlMode = true
			m.ti.SetValue("")
			m.ti.Focus()
			m.status = "enter source url or path"
		case "m":
			m.pick = pickLat
			m.showSidebar = true
			m.refreshColumns()
			m.l.SetSize(sidebarWidth-2, m.height-1-2)
			m.status = "pick latitude column (Enter)"
		case "s":
			m.pick = pickStyle
			m.showSidebar = true
			m.refreshColumns()
			m.l.SetSize(sidebarWidth-2, m.height-1-2)
			m.status = "pick style column (Enter; none clears)"
		case "f":
			m.pick = pickHighlight
			m.showSidebar = true
			m.refreshColumns()
			m.l.SetSize(sidebarWidth-2, m.height-1-2)
			m.status = "pick highlight field (Enter; none clears)"
		case "x":
			if m.mapping != nil {
				m.mapping.LatColumn, m.mapping.LngColumn = m.mapping.LngColumn, m.mapping.LatColumn
				m.refreshPoints()
				m.refreshColumns()
				m.status = fmt.Sprintf("swapped: lat=%s lng=%s  pts=%d/%d",
					m.mapping.LatColumn, m.mapping.LngColumn, len(m.points), m.totalRows())
			}
		case "c":
			m.clusterMode = !m.clusterMode
			m.status = fmt.Sprintf("clusters: %v", m.clusterMode)
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "i":
			m.inspectToggle()
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(colItem); ok {
					m.applyPick(it)
				}
			}
		case "esc":
			m.inspectPopup = ""
			if m.pick != pickNone {
				m.pick = pickNone
				m.status = "pick cancelled"
			}
		case "up":
			if !m.showSidebar && !m.showAttrs {
				m.offsetY -= 1
			}
		case "down":
			if !m.showSidebar && !m.showAttrs {
				m.offsetY += 1
			}
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}

	case tea.MouseMsg:
		m.trackHover(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.showAttrs {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyPick assigns the selected column to whatever the pending pick targets.
// Mapping edits re-resolve points immediately over the already loaded rows.
func (m *Model) applyPick(it colItem) {
	name := it.name
	switch m.pick {
	case pickLat:
		if name == "" {
			m.status = "pick latitude column (Enter)"
			return
		}
		if m.mapping == nil {
			m.mapping = &geom.ColumnMapping{}
		}
		m.mapping.LatColumn = name
		m.pick = pickLng
		m.refreshPoints()
		m.refreshColumns()
		m.status = "pick longitude column (Enter; same column = combined)"
	case pickLng:
		if name == "" {
			m.status = "pick longitude column (Enter)"
			return
		}
		if m.mapping == nil {
			m.mapping = &geom.ColumnMapping{}
		}
		m.mapping.LngColumn = name
		m.pick = pickNone
		m.refreshPoints()
		m.refreshColumns()
		m.status = fmt.Sprintf("mapping: lat=%s lng=%s  pts=%d/%d",
			m.mapping.LatColumn, m.mapping.LngColumn, len(m.points), m.totalRows())
	case pickStyle:
		m.pick = pickNone
		if name == "" || m.dataset == nil {
			m.styleRule = nil
			m.status = "style cleared"
		} else {
			m.styleRule = style.Assign(m.dataset.Rows, name, style.Palette)
			m.status = fmt.Sprintf("styled by %s (%d values)", name, len(m.styleRule.Colors))
		}
		m.refreshColumns()
	case pickHighlight:
		m.pick = pickNone
		m.highlight = name
		if name == "" {
			m.status = "highlight cleared"
		} else {
			m.status = "highlight field: " + name
		}
		m.refreshColumns()
	}
}

func (m *Model) inspectToggle() {
	if m.inspectPopup != "" {
		m.inspectPopup = ""
		return
	}
	if m.dataset == nil {
		m.status = "no dataset loaded"
		return
	}
	mapping := "unset"
	if m.mapping != nil {
		mapping = fmt.Sprintf("lat=%s lng=%s", m.mapping.LatColumn, m.mapping.LngColumn)
	}
	meta := []string{
		"source: " + m.dataset.Source,
		fmt.Sprintf("rows: %d  plotted: %d", m.totalRows(), len(m.points)),
		"mapping: " + mapping,
		fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", m.bbox.MinX, m.bbox.MinY, m.bbox.MaxX, m.bbox.MaxY),
		"summary: " + m.summary,
	}
	if m.styleRule != nil {
		meta = append(meta, "style: "+m.styleRule.Column)
	}
	if m.highlight != "" {
		meta = append(meta, "highlight: "+m.highlight)
	}
	m.inspectPopup = strings.Join(meta, "\n")
	m.status = "inspect popup"
}

// trackHover records the lon/lat under the mouse for the footer readout.
func (m *Model) trackHover(msg tea.MouseMsg) {
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)
	mapWidth := contentWidth - sw - 1
	if mapWidth < 10 {
		mapWidth = 10
	}
	mapOriginX := sw
	if m.showSidebar {
		mapOriginX++
	}
	mapOriginY := headerHeight
	cx, cy := msg.X, msg.Y
	if cx >= mapOriginX && cx < mapOriginX+mapWidth && cy >= mapOriginY && cy < mapOriginY+contentHeight {
		if lon, lat, ok := m.cellToLonLat(cx-mapOriginX, cy-mapOriginY, mapWidth, contentHeight); ok {
			m.hoverHasGeo = true
			m.hoverLon = lon
			m.hoverLat = lat
		} else {
			m.hoverHasGeo = false
		}
	} else {
		m.hoverHasGeo = false
	}
}
