package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if m.prompt.active {
		return m.updatePrompt(msg)
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.AddNode):
		m = m.AddNode()
	case key.Matches(msg, km.Delete):
		m = m.DeleteSelected()
	case key.Matches(msg, km.Calculate):
		m = m.Calculate()
	case key.Matches(msg, km.Export):
		m = m.exportToConfiguredPath()
	}
	return m, nil
}
