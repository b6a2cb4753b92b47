package tui

import (
	"fmt"

	btable "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the attribute table from the in-memory dataset.
func (m *Model) refreshAttrs() {
	if m.dataset == nil || len(m.dataset.Headers) == 0 || len(m.dataset.Rows) == 0 {
		m.showAttrs = false
		m.status = "no attributes for current dataset"
		return
	}
	tcols := make([]btable.Column, 0, len(m.dataset.Headers)+1)
	tcols = append(tcols, btable.Column{Title: "#", Width: 4})
	maxColW := 24
	for _, h := range m.dataset.Headers {
		w := len(h) + 2
		if w > maxColW {
			w = maxColW
		}
		tcols = append(tcols, btable.Column{Title: h, Width: w})
	}
	trows := make([]btable.Row, 0, len(m.dataset.Rows))
	for i, row := range m.dataset.Rows {
		cells := make([]string, 0, len(m.dataset.Headers)+1)
		cells = append(cells, fmt.Sprintf("%d", i+1))
		for _, h := range m.dataset.Headers {
			cells = append(cells, row[h])
		}
		trows = append(trows, btable.Row(cells))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}
