package tui

import (
	"time"

	list "github.com/charmbracelet/bubbles/list"
	btable "github.com/charmbracelet/bubbles/table"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tabmap/internal/config"
	"tabmap/internal/geom"
	"tabmap/internal/infer"
	"tabmap/internal/style"
	"tabmap/internal/table"
)

// pickTarget says what the next sidebar selection assigns.
type pickTarget int

const (
	pickNone pickTarget = iota
	pickLat
	pickLng
	pickStyle
	pickHighlight
)

type Model struct {
	width  int
	height int

	cfg       config.Config
	inference *infer.Client
	sty       styles

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Data
	dataset   *table.Dataset
	mapping   *geom.ColumnMapping
	points    []geom.Point
	bbox      geom.BBox
	hasBBox   bool
	styleRule *style.Rule
	highlight string
	summary   string

	clusterMode bool

	// last rendered map size (for inspect)
	mapW int
	mapH int

	// column picker sidebar
	l    list.Model
	pick pickTarget

	// URL entry mode
	urlMode bool
	ti      textinput.Model

	// inspect popup
	inspectPopup string

	// attributes table
	showAttrs bool
	tbl       btable.Model

	// hover state
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64
}

func New(cfg config.Config) Model {
	m := Model{
		cfg:         cfg,
		sty:         newStyles(cfg.Theme),
		helpVisible: true,
		zoom:        1.0,
		status:      "tabmap ready",
		highlight:   cfg.Highlight,
		summary:     infer.PlaceholderSummary,
	}
	m.inference = infer.New(cfg.Infer.Endpoint, time.Duration(cfg.Infer.TimeoutMS)*time.Millisecond)
	// column list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Columns"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// URL input setup
	m.ti = textinput.New()
	m.ti.Placeholder = "https://example.com/data.csv  (Enter to load; Esc to cancel)"
	m.ti.CharLimit = 0
	m.ti.Width = 60
	// attributes table setup (columns inferred per dataset)
	m.tbl = btable.New(btable.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

func (m Model) Init() tea.Cmd {
	if m.cfg.Source != "" {
		return m.loadCmd(m.cfg.Source)
	}
	return nil
}

// refreshPoints re-runs point resolution over the loaded rows. Cheap enough
// at this data scale to do from scratch on every mapping edit.
func (m *Model) refreshPoints() {
	if m.dataset == nil {
		m.points = nil
		m.hasBBox = false
		return
	}
	m.points = geom.ResolvePoints(m.dataset.Rows, m.mapping)
	m.bbox, m.hasBBox = geom.Bounds(m.points)
}

func (m *Model) resetViewport() {
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
}

func (m *Model) totalRows() int {
	if m.dataset == nil {
		return 0
	}
	return len(m.dataset.Rows)
}
