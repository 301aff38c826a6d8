package editor

import "github.com/iw2rmb/taskgraph/graph"

// ChangeEvent reports the graph state after an update that changed it.
// Change is the last mutation of that update.
type ChangeEvent struct {
	Version   uint64
	Change    graph.Change
	NodeCount int
	EdgeCount int
	Selected  *graph.Node
}

func buildChangeEvent(g *graph.Graph) ChangeEvent {
	ev := ChangeEvent{
		Version:   g.Version(),
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
	}
	ev.Change, _ = g.LastChange()
	ev.Selected, _ = g.Selected()
	return ev
}
