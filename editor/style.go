package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/taskgraph/render"
)

// Style controls the editor's rendering.
type Style struct {
	Canvas render.CellStyle

	Status lipgloss.Style
	Result lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
	// PromptBox frames the rename prompt drawn over the canvas.
	PromptBox lipgloss.Style
}

func DefaultStyle() Style {
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Canvas: render.CellStyle{
			Empty:    lipgloss.NewStyle(),
			Edge:     subtle,
			Node:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		},
		Status: subtle,
		Result: lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Prompt: lipgloss.NewStyle(),
		PromptBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("214")).
			Padding(0, 1),
	}
}
