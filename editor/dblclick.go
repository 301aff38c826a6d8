package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m *Model) doubleClick(x, y float64) tea.Cmd {
	n, hit := m.g.FindNode(x, y)
	sel, hasSel := m.g.Selected()

	switch {
	case !hit:
		m.g.ClearSelection()
		return nil
	case !hasSel:
		m.g.Select(n)
	case sel != n:
		if e := m.g.ConnectSelected(n); e != nil {
			m.log.Debug("edge connected", zap.Int("from", sel.ID), zap.Int("to", n.ID))
		}
	case m.cfg.DoubleClick == DoubleClickSingle:
		return m.openRename(n)
	}

	if m.cfg.DoubleClick == DoubleClickCompat {
		return m.openRename(n)
	}
	return nil
}
