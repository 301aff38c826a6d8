package graph

import (
	"fmt"
	"math"
)

const (
	// NodeRadius is the default circle radius of a node.
	NodeRadius = 40.0
	// EdgeHitTolerance is the maximum distance from an edge that still hits it.
	EdgeHitTolerance = 5.0
)

// Node is a labeled circle on the canvas.
type Node struct {
	ID   int
	X, Y float64
	Text string
}

// Edge is a directed connection between two distinct nodes.
// From and To point into the owning Graph's node list.
type Edge struct {
	From *Node
	To   *Node
}

// Point is a canvas coordinate.
type Point struct {
	X, Y float64
}

func (n *Node) Pos() Point { return Point{X: n.X, Y: n.Y} }

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("#%d %q (%.1f,%.1f)", n.ID, n.Text, n.X, n.Y)
}

// Incident reports whether n is one of the edge's endpoints.
func (e *Edge) Incident(n *Node) bool {
	return e.From == n || e.To == n
}

// DefaultLabel returns the label a freshly added node gets.
func DefaultLabel(id int) string {
	return fmt.Sprintf("Task %d", id)
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
