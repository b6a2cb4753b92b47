package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tabmap/internal/geom"
	"tabmap/internal/table"
)

type datasetMsg struct {
	d         *table.Dataset
	fromCache bool
}

type loadErrMsg struct{ err error }

type hintMsg struct{ hint *geom.ColumnMapping }

type summaryMsg struct{ text string }

const fetchTimeout = 30 * time.Second

// loadCmd fetches a source off the main loop. On fetch failure it tries the
// snapshot cache before giving up, so a previously seen URL still opens
// offline.
func (m Model) loadCmd(source string) tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		d, err := table.Fetch(ctx, source)
		if err != nil {
			if cfg.Cache.Enabled {
				if snap, serr := table.LoadSnapshot(cfg.Cache.Dir, source); serr == nil {
					return datasetMsg{d: snap, fromCache: true}
				}
			}
			return loadErrMsg{err}
		}
		if cfg.Cache.Enabled {
			_ = table.SaveSnapshot(cfg.Cache.Dir, d) // cache miss next time is fine
		}
		return datasetMsg{d: d}
	}
}

// inferCmd asks the external service for a column hint. Any failure comes
// back as a nil hint: the heuristic mapping already in place stays.
func (m Model) inferCmd(d *table.Dataset) tea.Cmd {
	cl := m.inference
	if cl == nil {
		return nil
	}
	timeout := time.Duration(m.cfg.Infer.TimeoutMS) * time.Millisecond
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		hint, err := cl.GuessColumns(ctx, d)
		if err != nil {
			return hintMsg{}
		}
		return hintMsg{hint: hint}
	}
}

func (m Model) summaryCmd(d *table.Dataset) tea.Cmd {
	cl := m.inference
	if cl == nil {
		return nil
	}
	timeout := time.Duration(m.cfg.Infer.TimeoutMS) * time.Millisecond
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return summaryMsg{text: cl.Summarize(ctx, d)}
	}
}
