package tui

import (
	"strings"

	list "github.com/charmbracelet/bubbles/list"
)

// colItem is one dataset column in the sidebar. The description shows the
// roles currently assigned to it. The empty name is the "(none)" entry used
// to clear the style or highlight selection.
type colItem struct {
	name  string
	roles string
}

func (c colItem) Title() string {
	if c.name == "" {
		return "(none)"
	}
	return c.name
}
func (c colItem) Description() string { return c.roles }
func (c colItem) FilterValue() string { return c.name }

func (m *Model) refreshColumns() {
	if m.dataset == nil {
		m.l.SetItems(nil)
		return
	}
	items := make([]list.Item, 0, len(m.dataset.Headers)+1)
	if m.pick == pickStyle || m.pick == pickHighlight {
		items = append(items, colItem{})
	}
	for _, h := range m.dataset.Headers {
		var roles []string
		if m.mapping != nil {
			if m.mapping.Combined() && h == m.mapping.LatColumn {
				roles = append(roles, "lat+lng")
			} else {
				if h == m.mapping.LatColumn {
					roles = append(roles, "lat")
				}
				if h == m.mapping.LngColumn {
					roles = append(roles, "lng")
				}
			}
		}
		if m.styleRule != nil && h == m.styleRule.Column {
			roles = append(roles, "style")
		}
		if m.highlight != "" && strings.EqualFold(h, m.highlight) {
			roles = append(roles, "highlight")
		}
		items = append(items, colItem{name: h, roles: strings.Join(roles, ", ")})
	}
	m.l.SetItems(items)
}
