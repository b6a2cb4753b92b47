package style

import (
	"github.com/charmbracelet/lipgloss"

	"tabmap/internal/table"
)

// Palette is the fixed marker palette. Distinct category values beyond its
// length cycle back to the start, so two categories can share a color.
var Palette = []lipgloss.Color{
	lipgloss.Color("#E11D48"),
	lipgloss.Color("#2563EB"),
	lipgloss.Color("#16A34A"),
	lipgloss.Color("#D97706"),
	lipgloss.Color("#7C3AED"),
	lipgloss.Color("#0891B2"),
	lipgloss.Color("#DB2777"),
	lipgloss.Color("#65A30D"),
	lipgloss.Color("#9333EA"),
	lipgloss.Color("#EA580C"),
}

// DefaultColor is used for every marker when no rule is active.
var DefaultColor = lipgloss.Color("#7C3AED")

// Rule maps each distinct value of one column to a palette color. The
// mapping is stable for the rule's lifetime; a rebuild over different rows
// may assign differently since order of first appearance decides.
type Rule struct {
	Column string
	Colors map[string]lipgloss.Color
}

// Assign partitions rows by the distinct values of column, handing out
// palette entries round-robin in first-seen order. An empty column name
// clears the rule.
func Assign(rows []table.Row, column string, palette []lipgloss.Color) *Rule {
	if column == "" || len(palette) == 0 {
		return nil
	}
	rule := &Rule{Column: column, Colors: make(map[string]lipgloss.Color)}
	n := 0
	for _, row := range rows {
		v := row[column]
		if _, ok := rule.Colors[v]; ok {
			continue
		}
		rule.Colors[v] = palette[n%len(palette)]
		n++
	}
	return rule
}

// Color returns the marker color for a row, falling back to DefaultColor
// when no rule is active or the value was not seen at assignment time.
func (r *Rule) Color(row table.Row) lipgloss.Color {
	if r == nil {
		return DefaultColor
	}
	if c, ok := r.Colors[row[r.Column]]; ok {
		return c
	}
	return DefaultColor
}
