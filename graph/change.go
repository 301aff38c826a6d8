package graph

import "slices"

// ChangeKind identifies the mutation recorded in a Change.
type ChangeKind uint8

const (
	ChangeAddNode ChangeKind = iota
	ChangeDeleteNode
	ChangeConnect
	ChangeRemoveEdge
	ChangeRenameNode
	ChangeMoveNode
	ChangeSelect
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAddNode:
		return "add-node"
	case ChangeDeleteNode:
		return "delete-node"
	case ChangeConnect:
		return "connect"
	case ChangeRemoveEdge:
		return "remove-edge"
	case ChangeRenameNode:
		return "rename-node"
	case ChangeMoveNode:
		return "move-node"
	case ChangeSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Change is a versioned mutation payload.
//
// Node is the node the change targets (nil for edge changes and for
// clearing the selection). RemovedEdges lists edges dropped together with a
// deleted node.
type Change struct {
	Kind          ChangeKind
	VersionBefore uint64
	VersionAfter  uint64

	Node         *Node
	Edge         *Edge
	RemovedEdges []*Edge

	SelectedBefore *Node
	SelectedAfter  *Node
}

type changeBuilder struct {
	kind           ChangeKind
	versionBefore  uint64
	selectedBefore *Node

	node         *Node
	edge         *Edge
	removedEdges []*Edge
}

// LastChange returns the most recent effective change.
func (g *Graph) LastChange() (Change, bool) {
	if !g.hasLastChange {
		return Change{}, false
	}
	return cloneChange(g.lastChange), true
}

func cloneChange(in Change) Change {
	out := in
	out.RemovedEdges = slices.Clone(in.RemovedEdges)
	return out
}

func (g *Graph) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:           kind,
		versionBefore:  g.version,
		selectedBefore: g.selected,
	}
}

func (g *Graph) commitChange(cb changeBuilder) {
	if g.version == cb.versionBefore {
		return
	}
	g.lastChange = Change{
		Kind:           cb.kind,
		VersionBefore:  cb.versionBefore,
		VersionAfter:   g.version,
		Node:           cb.node,
		Edge:           cb.edge,
		RemovedEdges:   slices.Clone(cb.removedEdges),
		SelectedBefore: cb.selectedBefore,
		SelectedAfter:  g.selected,
	}
	g.hasLastChange = true
}
