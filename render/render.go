package render

import "github.com/iw2rmb/taskgraph/graph"

const (
	EdgeWidth   = 2.0
	StrokeWidth = 2.0
	FontSize    = 14.0
)

// Surface is a 2D drawing target in canvas units. All strokes are black;
// circles are never filled.
type Surface interface {
	Clear()
	Line(x1, y1, x2, y2, width float64)
	Circle(cx, cy, r, width float64)
	// Text draws s centered horizontally and vertically on (cx, cy).
	Text(s string, cx, cy, size float64)
}

// Tagger is implemented by surfaces that track which node the following
// primitives belong to. Draw tags nil while drawing edges.
type Tagger interface {
	Tag(n *graph.Node)
}

// Draw clears s and paints g onto it.
func Draw(s Surface, g *graph.Graph) {
	s.Clear()
	if g == nil {
		return
	}

	tagger, _ := s.(Tagger)
	tag := func(n *graph.Node) {
		if tagger != nil {
			tagger.Tag(n)
		}
	}

	tag(nil)
	for _, e := range g.Edges() {
		s.Line(e.From.X, e.From.Y, e.To.X, e.To.Y, EdgeWidth)
	}

	r := g.Radius()
	for _, n := range g.Nodes() {
		tag(n)
		s.Circle(n.X, n.Y, r, StrokeWidth)
		s.Text(n.Text, n.X, n.Y, FontSize)
	}
	tag(nil)
}
