package editor

import (
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/taskgraph/graph"
)

var clock0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return clock0 }

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func rightClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func click(m Model, x, y int) Model {
	return send(m, press(x, y), release(x, y))
}

func doubleClick(m Model, x, y int) Model {
	return send(m, press(x, y), release(x, y), press(x, y), release(x, y))
}

// threeNodes returns an 80x21 editor over a graph with nodes centered on the
// cells (10,5), (30,5) and (50,5).
func threeNodes(cfg Config) (Model, []*graph.Node) {
	g := graph.New(graph.Options{})
	nodes := []*graph.Node{
		g.AddNodeAt(105, 110),
		g.AddNodeAt(305, 110),
		g.AddNodeAt(505, 110),
	}
	cfg.Graph = g
	if cfg.Now == nil {
		cfg.Now = fixedNow
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewPCG(1, 1))
	}
	m := New(cfg).SetSize(80, 21)
	return m, nodes
}
