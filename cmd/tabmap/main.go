package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tabmap/internal/config"
	"tabmap/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if len(os.Args) > 1 {
		cfg.Source = os.Args[1]
	}
	m := tui.New(*cfg)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
