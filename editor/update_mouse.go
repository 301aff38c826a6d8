package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused || m.prompt.active {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if !m.mouseInCanvas(msg.X, msg.Y) {
			return m, nil
		}
		x, y := m.cellToCanvas(msg.X, msg.Y)

		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonLeft:
			m.click.pressed = true
			m.click.pressCol, m.click.pressRow = msg.X, msg.Y
			m.pointerDown(x, y)
		case tea.MouseButtonRight:
			m.click.pressed = false
			m.pointerDown(x, y)
			m.contextMenu(x, y)
		}

	case tea.MouseActionMotion:
		if !m.dragging || m.dragNode == nil {
			return m, nil
		}
		col, row := m.clampMouseToCanvas(msg.X, msg.Y)
		x, y := m.cellToCanvas(col, row)
		m.g.MoveNode(m.dragNode, x, y)

	case tea.MouseActionRelease:
		m.pointerUp()
		if m.releaseCompletesDoubleClick(msg.X, msg.Y) {
			x, y := m.cellToCanvas(msg.X, msg.Y)
			return m, m.doubleClick(x, y)
		}
	}

	return m, nil
}

func (m *Model) pointerDown(x, y float64) {
	n, ok := m.g.FindNode(x, y)
	if !ok {
		return
	}
	m.dragging = true
	m.dragNode = n
}

// pointerUp ends any drag, whether or not one was in progress.
func (m *Model) pointerUp() {
	m.dragging = false
	m.dragNode = nil
}

func (m *Model) contextMenu(x, y float64) {
	e, ok := m.g.FindEdgeMode(x, y, m.cfg.EdgeHit)
	if !ok {
		return
	}
	m.g.RemoveEdge(e)
	m.log.Debug("edge removed", zap.Int("from", e.From.ID), zap.Int("to", e.To.ID))
}

// releaseCompletesDoubleClick records a click when the release lands on the
// cell of the preceding left press, and reports whether it is the second
// click on that cell within the double-click interval.
func (m *Model) releaseCompletesDoubleClick(col, row int) bool {
	c := &m.click
	if !c.pressed {
		return false
	}
	c.pressed = false
	if col != c.pressCol || row != c.pressRow {
		c.hasLast = false
		return false
	}

	now := m.cfg.Now()
	if c.hasLast && c.lastCol == col && c.lastRow == row && now.Sub(c.lastAt) <= m.cfg.DoubleClickInterval {
		c.hasLast = false
		return true
	}
	c.hasLast = true
	c.lastAt = now
	c.lastCol, c.lastRow = col, row
	return false
}
