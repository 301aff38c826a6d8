package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/taskgraph/editor"
)

// app hosts the editor component full screen.
type app struct {
	editor editor.Model
}

func newApp(ed editor.Model) app {
	return app{editor: ed}
}

func (a app) Init() tea.Cmd { return a.editor.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.editor = a.editor.SetSize(msg.Width, msg.Height)
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if msg.String() == "q" && !a.editor.Prompting() {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.editor.View() }
