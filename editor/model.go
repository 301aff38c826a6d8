package editor

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/taskgraph/graph"
	"github.com/iw2rmb/taskgraph/render"
)

// Model is a Bubble Tea component that renders and edits a graph.
//
// The last row of the component is the status line; every row above it is
// canvas.
type Model struct {
	cfg Config
	g   *graph.Graph
	log *zap.Logger

	focused bool

	width, height int
	cells         *render.Cells
	help          help.Model

	dragging bool
	dragNode *graph.Node

	click  clickState
	prompt promptState

	result string
	status string
	errMsg string

	lastVersion uint64
}

type clickState struct {
	pressed            bool
	pressCol, pressRow int

	hasLast          bool
	lastAt           time.Time
	lastCol, lastRow int
}

type promptState struct {
	active bool
	node   *graph.Node
	input  textinput.Model
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	g := cfg.Graph
	if g == nil {
		g = graph.New(graph.Options{Radius: cfg.Radius, Rand: cfg.Rand})
	}
	m := Model{
		cfg:     cfg,
		g:       g,
		log:     cfg.Logger,
		focused: true,
		cells:   render.NewCells(0, 0, cfg.Scale),
		help:    help.New(),
	}
	m.lastVersion = g.Version()
	m.redraw()
	return m
}

func (m Model) Graph() *graph.Graph { return m.g }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.help.Width = width
	m.cells = render.NewCells(width, m.canvasRows(), m.cfg.Scale)
	m.redraw()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur stops the model from reacting to keys and mouse input. Drag state is
// dropped.
func (m Model) Blur() Model {
	m.focused = false
	m.dragging = false
	m.dragNode = nil
	m.click = clickState{}
	return m
}

func (m Model) Focused() bool { return m.focused }

// CanvasSize returns the canvas dimensions used to place new nodes.
func (m Model) CanvasSize() (width, height float64) {
	width, height = m.cfg.CanvasWidth, m.cfg.CanvasHeight
	if width <= 0 {
		width = float64(m.width) * m.cfg.Scale.X
	}
	if height <= 0 {
		height = float64(m.canvasRows()) * m.cfg.Scale.Y
	}
	return width, height
}

// Result returns the text of the last calculation, or "" before the first.
func (m Model) Result() string { return m.result }

// Prompting reports whether the rename prompt is open.
func (m Model) Prompting() bool { return m.prompt.active }

// Dragging returns the node being dragged, if any.
func (m Model) Dragging() (*graph.Node, bool) {
	return m.dragNode, m.dragging && m.dragNode != nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	default:
		if m.prompt.active {
			m.prompt.input, cmd = m.prompt.input.Update(msg)
		}
	}
	// Picks up host mutations made outside of the editor as well.
	m.syncFromGraph()
	return m, cmd
}

// AddNode places a new node at a random position on the canvas.
func (m Model) AddNode() Model {
	w, h := m.CanvasSize()
	n := m.g.AddNode(w, h)
	m.log.Debug("node added", zap.Int("id", n.ID), zap.Float64("x", n.X), zap.Float64("y", n.Y))
	m.syncFromGraph()
	return m
}

// DeleteSelected removes the selected node and its edges. Without a
// selection it does nothing.
func (m Model) DeleteSelected() Model {
	n, ok := m.g.Selected()
	if !ok {
		return m
	}
	if m.dragNode == n {
		m.dragging = false
		m.dragNode = nil
	}
	m.g.DeleteSelectedNode()
	m.log.Debug("node deleted", zap.Int("id", n.ID))
	m.syncFromGraph()
	return m
}

// Calculate updates the result display with the placeholder pass count.
func (m Model) Calculate() Model {
	n := graph.MinimalPassCount(m.g)
	m.result = FormatResult(n)
	m.log.Info("pass count calculated", zap.Int("count", n))
	return m
}

// FormatResult formats a pass count for display.
func FormatResult(n int) string {
	return fmt.Sprintf("Minimale Durchlaufanzahl: %d", n)
}

func (m *Model) syncFromGraph() {
	ver := m.g.Version()
	if ver == m.lastVersion {
		return
	}
	m.lastVersion = ver
	m.redraw()

	ev := buildChangeEvent(m.g)
	m.log.Debug("graph changed",
		zap.Stringer("change", ev.Change.Kind),
		zap.Uint64("version", ev.Version),
		zap.Int("nodes", ev.NodeCount),
		zap.Int("edges", ev.EdgeCount),
	)
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(ev)
	}
}

func (m *Model) redraw() {
	render.Draw(m.cells, m.g)
}

func (m Model) canvasRows() int {
	if m.height <= 1 {
		return 0
	}
	return m.height - 1
}
