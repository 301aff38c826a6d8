package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Raster is a Surface backed by an RGBA image. One canvas unit is one pixel.
type Raster struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[float64]font.Face
}

func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster size %dx%d must be positive", width, height)
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	r := &Raster{
		dc:    gg.NewContext(width, height),
		font:  f,
		faces: make(map[float64]font.Face),
	}
	r.Clear()
	return r, nil
}

func (r *Raster) Width() int  { return r.dc.Width() }
func (r *Raster) Height() int { return r.dc.Height() }

func (r *Raster) Clear() {
	r.dc.SetColor(color.White)
	r.dc.Clear()
}

func (r *Raster) Line(x1, y1, x2, y2, width float64) {
	r.dc.SetColor(color.Black)
	r.dc.SetLineWidth(width)
	r.dc.DrawLine(x1, y1, x2, y2)
	r.dc.Stroke()
}

func (r *Raster) Circle(cx, cy, radius, width float64) {
	r.dc.SetColor(color.Black)
	r.dc.SetLineWidth(width)
	r.dc.DrawCircle(cx, cy, radius)
	r.dc.Stroke()
}

func (r *Raster) Text(s string, cx, cy, size float64) {
	r.dc.SetFontFace(r.face(size))
	r.dc.SetColor(color.Black)
	r.dc.DrawStringAnchored(s, cx, cy, 0.5, 0.5)
}

func (r *Raster) Image() image.Image { return r.dc.Image() }

func (r *Raster) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

func (r *Raster) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

func (r *Raster) face(size float64) font.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(r.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	r.faces[size] = f
	return f
}
