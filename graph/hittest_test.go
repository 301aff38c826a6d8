package graph

import "testing"

func TestFindNode_StrictRadius(t *testing.T) {
	g := New(Options{})
	n := g.AddNodeAt(100, 100)

	cases := []struct {
		name string
		x, y float64
		hit  bool
	}{
		{name: "center", x: 100, y: 100, hit: true},
		{name: "inside", x: 139.9, y: 100, hit: true},
		{name: "on radius", x: 140, y: 100, hit: false},
		{name: "diagonal outside", x: 130, y: 130, hit: false},
		{name: "far", x: 400, y: 400, hit: false},
	}
	for _, tc := range cases {
		got, ok := g.FindNode(tc.x, tc.y)
		if ok != tc.hit {
			t.Fatalf("%s: hit got %v, want %v", tc.name, ok, tc.hit)
		}
		if ok && got != n {
			t.Fatalf("%s: got node %v, want %v", tc.name, got, n)
		}
	}
}

func TestFindNode_FirstInsertedWinsOverlap(t *testing.T) {
	g := New(Options{})
	first := g.AddNodeAt(100, 100)
	g.AddNodeAt(150, 100)

	got, ok := g.FindNode(125, 100)
	if !ok || got != first {
		t.Fatalf("overlap hit: got %v, want %v", got, first)
	}
}

func TestFindNode_CustomRadius(t *testing.T) {
	g := New(Options{Radius: 10})
	g.AddNodeAt(100, 100)

	if _, ok := g.FindNode(115, 100); ok {
		t.Fatalf("expected miss outside custom radius")
	}
	if _, ok := g.FindNode(105, 100); !ok {
		t.Fatalf("expected hit inside custom radius")
	}
}

func TestFindEdge_LineIncludesPointsPastEndpoints(t *testing.T) {
	g := New(Options{})
	a := g.AddNodeAt(100, 100)
	b := g.AddNodeAt(200, 100)
	e := g.Connect(a, b)

	cases := []struct {
		name string
		x, y float64
		hit  bool
	}{
		{name: "on segment", x: 150, y: 100, hit: true},
		{name: "near segment", x: 150, y: 104.9, hit: true},
		{name: "tolerance edge", x: 150, y: 105, hit: false},
		{name: "past endpoint on line", x: 400, y: 102, hit: true},
		{name: "before start on line", x: -50, y: 98, hit: true},
		{name: "off line", x: 150, y: 120, hit: false},
	}
	for _, tc := range cases {
		got, ok := g.FindEdge(tc.x, tc.y)
		if ok != tc.hit {
			t.Fatalf("%s: hit got %v, want %v", tc.name, ok, tc.hit)
		}
		if ok && got != e {
			t.Fatalf("%s: got wrong edge", tc.name)
		}
	}
}

func TestFindEdgeMode_SegmentClampsToEndpoints(t *testing.T) {
	g := New(Options{})
	a := g.AddNodeAt(100, 100)
	b := g.AddNodeAt(200, 100)
	g.Connect(a, b)

	if _, ok := g.FindEdgeMode(400, 102, HitSegment); ok {
		t.Fatalf("segment mode must reject points past the endpoint")
	}
	if _, ok := g.FindEdgeMode(203, 102, HitSegment); !ok {
		t.Fatalf("segment mode must accept points near the endpoint")
	}
	if _, ok := g.FindEdgeMode(150, 97, HitSegment); !ok {
		t.Fatalf("segment mode must accept points near the segment")
	}
}

func TestFindEdge_DegenerateEdgeNeverHits(t *testing.T) {
	g := New(Options{})
	a := g.AddNodeAt(100, 100)
	b := g.AddNodeAt(300, 300)
	g.Connect(a, b)
	g.MoveNode(b, 100, 100)

	if _, ok := g.FindEdge(100, 100); ok {
		t.Fatalf("zero-length edge must not hit in line mode")
	}
	if _, ok := g.FindEdgeMode(100, 100, HitSegment); ok {
		t.Fatalf("zero-length edge must not hit in segment mode")
	}
}

func TestFindEdge_FirstInsertedWins(t *testing.T) {
	g := New(Options{})
	a := g.AddNodeAt(100, 100)
	b := g.AddNodeAt(200, 100)
	first := g.Connect(a, b)
	g.Connect(b, a)

	if got, ok := g.FindEdge(150, 100); !ok || got != first {
		t.Fatalf("expected first edge to win")
	}
}
