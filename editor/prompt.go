package editor

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/iw2rmb/taskgraph/graph"
)

const (
	renamePrompt        = "Text für den Kreis eingeben: "
	promptInputMaxWidth = 32
	// Border and padding columns around the prompt box.
	promptBoxFrame = 4
)

// openRename asks for a new label for n. A configured Prompt answers
// synchronously; otherwise the modal text input opens and the rename is
// applied when it is confirmed.
func (m *Model) openRename(n *graph.Node) tea.Cmd {
	m.pointerUp()
	m.click = clickState{}

	if m.cfg.Prompt != nil {
		text, ok := m.cfg.Prompt(n.Text)
		if ok {
			m.rename(n, text)
		}
		return nil
	}

	in := textinput.New()
	in.Prompt = renamePrompt
	in.SetValue(n.Text)
	in.CursorEnd()
	if m.width > 0 {
		in.Width = clampInt(m.width-len([]rune(renamePrompt))-promptBoxFrame-1, 1, promptInputMaxWidth)
	}
	m.prompt = promptState{active: true, node: n, input: in}
	return m.prompt.input.Focus()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Confirm):
		n, text := m.prompt.node, m.prompt.input.Value()
		m.closePrompt()
		m.rename(n, text)
		return m, nil
	case key.Matches(msg, km.Cancel):
		m.closePrompt()
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompt.input.Blur()
	m.prompt = promptState{}
}

// rename applies text as the new label of n. Empty text keeps the label.
func (m *Model) rename(n *graph.Node, text string) {
	if m.g.RenameNode(n, text) {
		m.log.Debug("node renamed", zap.Int("id", n.ID), zap.String("text", text))
	}
}
