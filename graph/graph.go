package graph

import (
	"math/rand/v2"
	"slices"
)

type Options struct {
	Radius float64    // default: NodeRadius
	Rand   *rand.Rand // default: the global math/rand/v2 source
}

// Graph is the editable diagram state: nodes, edges and the selected node.
//
// Graph is not safe for concurrent use.
type Graph struct {
	nodes []*Node
	edges []*Edge

	selected *Node
	version  uint64

	opt Options

	lastChange    Change
	hasLastChange bool
}

func New(opt Options) *Graph {
	if opt.Radius <= 0 {
		opt.Radius = NodeRadius
	}
	return &Graph{opt: opt}
}

func (g *Graph) Radius() float64 { return g.opt.Radius }

func (g *Graph) Version() uint64 { return g.version }

// Nodes returns the nodes in insertion order. The slice is a copy; the nodes
// are shared.
func (g *Graph) Nodes() []*Node { return slices.Clone(g.nodes) }

// Edges returns the edges in insertion order. The slice is a copy; the edges
// are shared.
func (g *Graph) Edges() []*Edge { return slices.Clone(g.edges) }

func (g *Graph) NodeCount() int { return len(g.nodes) }

func (g *Graph) EdgeCount() int { return len(g.edges) }

// Contains reports whether n belongs to g.
func (g *Graph) Contains(n *Node) bool {
	return n != nil && slices.Contains(g.nodes, n)
}

func (g *Graph) Selected() (*Node, bool) {
	return g.selected, g.selected != nil
}

// AddNode appends a node at a uniformly random position that keeps the
// whole circle inside a width x height canvas.
//
// Canvases smaller than two radii are not guarded; positions are then
// outside the canvas.
func (g *Graph) AddNode(width, height float64) *Node {
	r := g.opt.Radius
	x := g.randFloat()*(width-2*r) + r
	y := g.randFloat()*(height-2*r) + r
	return g.AddNodeAt(x, y)
}

// AddNodeAt appends a node at (x, y) with the default label.
func (g *Graph) AddNodeAt(x, y float64) *Node {
	change := g.beginChange(ChangeAddNode)

	id := len(g.nodes) + 1
	n := &Node{ID: id, X: x, Y: y, Text: DefaultLabel(id)}
	g.nodes = append(g.nodes, n)
	g.version++

	change.node = n
	g.commitChange(change)
	return n
}

// DeleteSelectedNode removes the selected node together with every edge
// incident to it and clears the selection. It reports false when nothing is
// selected.
func (g *Graph) DeleteSelectedNode() bool {
	if g.selected == nil {
		return false
	}
	return g.DeleteNode(g.selected)
}

// DeleteNode removes n and its incident edges. If n is selected the
// selection is cleared.
func (g *Graph) DeleteNode(n *Node) bool {
	i := slices.Index(g.nodes, n)
	if n == nil || i < 0 {
		return false
	}

	change := g.beginChange(ChangeDeleteNode)
	change.node = n

	g.nodes = slices.Delete(g.nodes, i, i+1)
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.Incident(n) {
			change.removedEdges = append(change.removedEdges, e)
			continue
		}
		kept = append(kept, e)
	}
	clear(g.edges[len(kept):])
	g.edges = kept

	if g.selected == n {
		g.selected = nil
	}
	g.version++
	g.commitChange(change)
	return true
}

// Connect appends the edge a->b. It returns nil when a == b or either node
// does not belong to g. Parallel edges are allowed.
func (g *Graph) Connect(a, b *Node) *Edge {
	if a == nil || b == nil || a == b {
		return nil
	}
	if !g.Contains(a) || !g.Contains(b) {
		return nil
	}

	change := g.beginChange(ChangeConnect)
	e := &Edge{From: a, To: b}
	g.edges = append(g.edges, e)
	g.version++

	change.edge = e
	g.commitChange(change)
	return e
}

// ConnectSelected appends the edge selected->b and clears the selection,
// recorded as a single connect change. It returns nil and leaves the
// selection alone when nothing is selected or b cannot be connected.
func (g *Graph) ConnectSelected(b *Node) *Edge {
	a := g.selected
	if a == nil || b == nil || a == b || !g.Contains(b) {
		return nil
	}

	change := g.beginChange(ChangeConnect)
	e := &Edge{From: a, To: b}
	g.edges = append(g.edges, e)
	g.selected = nil
	g.version++

	change.node = b
	change.edge = e
	g.commitChange(change)
	return e
}

// RemoveEdge removes e if present.
func (g *Graph) RemoveEdge(e *Edge) bool {
	i := slices.Index(g.edges, e)
	if e == nil || i < 0 {
		return false
	}

	change := g.beginChange(ChangeRemoveEdge)
	g.edges = slices.Delete(g.edges, i, i+1)
	g.version++

	change.edge = e
	g.commitChange(change)
	return true
}

// RenameNode sets the label of n. Empty text leaves the label unchanged.
func (g *Graph) RenameNode(n *Node, text string) bool {
	if text == "" || !g.Contains(n) || n.Text == text {
		return false
	}

	change := g.beginChange(ChangeRenameNode)
	n.Text = text
	g.version++

	change.node = n
	g.commitChange(change)
	return true
}

// MoveNode sets the center of n.
func (g *Graph) MoveNode(n *Node, x, y float64) bool {
	if !g.Contains(n) || (n.X == x && n.Y == y) {
		return false
	}

	change := g.beginChange(ChangeMoveNode)
	n.X, n.Y = x, y
	g.version++

	change.node = n
	g.commitChange(change)
	return true
}

// Select marks n as the selected node. Nodes outside g are ignored.
func (g *Graph) Select(n *Node) {
	if n == g.selected || !g.Contains(n) {
		return
	}

	change := g.beginChange(ChangeSelect)
	g.selected = n
	g.version++

	change.node = n
	g.commitChange(change)
}

func (g *Graph) ClearSelection() {
	if g.selected == nil {
		return
	}

	change := g.beginChange(ChangeSelect)
	g.selected = nil
	g.version++
	g.commitChange(change)
}

func (g *Graph) randFloat() float64 {
	if g.opt.Rand != nil {
		return g.opt.Rand.Float64()
	}
	return rand.Float64()
}
