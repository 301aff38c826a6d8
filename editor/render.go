package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

func (m Model) View() string {
	if m.height <= 0 {
		return ""
	}

	var sb strings.Builder
	if m.canvasRows() > 0 {
		sel, _ := m.g.Selected()
		canvas := m.cells.Render(m.cfg.Style.Canvas, sel)
		if box, ok := m.promptBox(); ok {
			canvas = overlay.Composite(box, canvas, overlay.Center, overlay.Center, 0, 0)
		}
		sb.WriteString(canvas)
		sb.WriteByte('\n')
	}
	sb.WriteString(m.statusLine())
	return sb.String()
}

// promptBox renders the open rename prompt as a framed box, if it fits on
// the canvas.
func (m Model) promptBox() (string, bool) {
	if !m.prompt.active {
		return "", false
	}
	box := m.cfg.Style.PromptBox.Render(m.cfg.Style.Prompt.Render(m.prompt.input.View()))
	if lipgloss.Height(box) > m.canvasRows() || lipgloss.Width(box) > m.width {
		return "", false
	}
	return box, true
}

// statusLine renders the prompt while it is open, otherwise the result and
// the last export message, falling back to key help.
func (m Model) statusLine() string {
	st := m.cfg.Style
	km := m.cfg.KeyMap
	var line string
	switch {
	case m.prompt.active:
		if _, ok := m.promptBox(); ok {
			line = m.help.ShortHelpView([]key.Binding{km.Confirm, km.Cancel})
		} else {
			line = st.Prompt.Render(m.prompt.input.View())
		}
	default:
		var parts []string
		if m.result != "" {
			parts = append(parts, st.Result.Render(m.result))
		}
		if m.errMsg != "" {
			parts = append(parts, st.Error.Render(m.errMsg))
		} else if m.status != "" {
			parts = append(parts, st.Status.Render(m.status))
		}
		if len(parts) == 0 {
			line = m.help.ShortHelpView(m.cfg.KeyMap.ShortHelp())
		} else {
			line = strings.Join(parts, st.Status.Render("  ·  "))
		}
	}
	if m.width <= 0 {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(1).Render(line)
}
