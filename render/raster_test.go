package render

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/iw2rmb/taskgraph/graph"
)

func isDark(r *Raster, x, y int) bool {
	cr, _, _, _ := r.Image().At(x, y).RGBA()
	return cr < 0x8000
}

func TestRaster_DrawsOutlineEdgeAndClearInterior(t *testing.T) {
	g := graph.New(graph.Options{})
	a := g.AddNodeAt(100, 100)
	b := g.AddNodeAt(300, 100)
	g.Connect(a, b)

	r, err := NewRaster(400, 200)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	Draw(r, g)

	if !isDark(r, 140, 100) {
		t.Fatalf("expected circle outline at (140,100)")
	}
	if !isDark(r, 200, 100) {
		t.Fatalf("expected edge stroke at (200,100)")
	}
	if isDark(r, 100, 72) {
		t.Fatalf("expected transparent circle interior at (100,72)")
	}
	if isDark(r, 10, 190) {
		t.Fatalf("expected cleared background at (10,190)")
	}
}

func TestRaster_ClearRepaintsBackground(t *testing.T) {
	r, err := NewRaster(50, 50)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	r.Line(0, 25, 50, 25, EdgeWidth)
	if !isDark(r, 25, 25) {
		t.Fatalf("expected stroke before clear")
	}
	r.Clear()
	if isDark(r, 25, 25) {
		t.Fatalf("expected white after clear")
	}
}

func TestRaster_EncodeAndSavePNG(t *testing.T) {
	r, err := NewRaster(64, 32)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Fatalf("bounds: got %v, want 64x32", b)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := r.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}

func TestNewRaster_RejectsEmptySize(t *testing.T) {
	if _, err := NewRaster(0, 10); err == nil {
		t.Fatalf("expected error for zero width")
	}
}
