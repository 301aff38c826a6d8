package graph

import "math"

// EdgeHitMode selects the geometry used by FindEdgeMode.
type EdgeHitMode uint8

const (
	// HitLine measures the distance to the infinite line through the edge's
	// endpoints, so points past either endpoint can still hit.
	HitLine EdgeHitMode = iota
	// HitSegment clamps the projection onto the segment between the
	// endpoints.
	HitSegment
)

// FindNode returns the first node, in insertion order, whose center is
// strictly closer than the radius to (x, y).
func (g *Graph) FindNode(x, y float64) (*Node, bool) {
	p := Point{X: x, Y: y}
	for _, n := range g.nodes {
		if dist(n.Pos(), p) < g.opt.Radius {
			return n, true
		}
	}
	return nil, false
}

// FindEdge is FindEdgeMode with HitLine.
func (g *Graph) FindEdge(x, y float64) (*Edge, bool) {
	return g.FindEdgeMode(x, y, HitLine)
}

// FindEdgeMode returns the first edge, in insertion order, strictly closer
// than EdgeHitTolerance to (x, y). Edges whose endpoints coincide never hit.
func (g *Graph) FindEdgeMode(x, y float64, mode EdgeHitMode) (*Edge, bool) {
	p := Point{X: x, Y: y}
	for _, e := range g.edges {
		d, ok := edgeDistance(e, p, mode)
		if ok && d < EdgeHitTolerance {
			return e, true
		}
	}
	return nil, false
}

func edgeDistance(e *Edge, p Point, mode EdgeHitMode) (float64, bool) {
	a, b := e.From.Pos(), e.To.Pos()
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0, false
	}

	if mode == HitSegment {
		t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (length * length)
		t = math.Max(0, math.Min(1, t))
		return dist(p, Point{X: a.X + t*dx, Y: a.Y + t*dy}), true
	}

	cross := (p.Y-a.Y)*dx - (p.X-a.X)*dy
	return math.Abs(cross) / length, true
}
