package tui

import "github.com/charmbracelet/lipgloss"

const sidebarWidth = 28

// styles holds the shell's look. Built once from the configured theme and
// carried on the model instead of package globals.
type styles struct {
	app     lipgloss.Style
	box     lipgloss.Style
	title   lipgloss.Style
	dim     lipgloss.Style
	cluster lipgloss.Style
}

func newStyles(theme string) styles {
	var (
		baseFg    = lipgloss.Color("#E6E6E6")
		dimFg     = lipgloss.Color("#6B7280")
		accentFg  = lipgloss.Color("#7C3AED")
		borderCol = lipgloss.Color("#243141")
	)
	if theme == "light" {
		baseFg = lipgloss.Color("#1F2937")
		dimFg = lipgloss.Color("#9CA3AF")
		borderCol = lipgloss.Color("#D1D5DB")
	}
	return styles{
		app:     lipgloss.NewStyle().Foreground(baseFg),
		box:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1),
		title:   lipgloss.NewStyle().Foreground(accentFg).Bold(true),
		dim:     lipgloss.NewStyle().Foreground(dimFg),
		cluster: lipgloss.NewStyle().Foreground(accentFg).Bold(true),
	}
}
