package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/taskgraph/graph"
	"github.com/iw2rmb/taskgraph/internal/label"
)

// Layer tells which primitive last painted a cell.
type Layer uint8

const (
	LayerEmpty Layer = iota
	LayerEdge
	LayerNode
	LayerLabel
)

// Scale is the number of canvas units covered by one terminal cell.
type Scale struct {
	X, Y float64
}

func DefaultScale() Scale { return Scale{X: 10, Y: 20} }

// ToCanvas maps a cell to the canvas coordinate of its center.
func (s Scale) ToCanvas(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.X, (float64(row) + 0.5) * s.Y
}

// ToCell maps a canvas coordinate to the cell containing it.
func (s Scale) ToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / s.X)), int(math.Floor(y / s.Y))
}

// Cell is one terminal character position.
type Cell struct {
	Text  string
	Layer Layer
	Node  *graph.Node

	// cont marks the right half of a double-width cluster.
	cont bool
}

// Cells is a Surface that rasterizes onto a grid of terminal cells.
//
// Stroke widths and font sizes are ignored: a stroke is one cell wide and
// labels use the terminal font. Labels are cut to fit inside the circle drawn
// just before them.
type Cells struct {
	cols, rows int
	scale      Scale
	grid       []Cell

	tag *graph.Node
	fit int
}

func NewCells(cols, rows int, scale Scale) *Cells {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if scale.X <= 0 || scale.Y <= 0 {
		scale = DefaultScale()
	}
	return &Cells{
		cols:  cols,
		rows:  rows,
		scale: scale,
		grid:  make([]Cell, cols*rows),
	}
}

func (c *Cells) Size() (cols, rows int) { return c.cols, c.rows }

func (c *Cells) Scale() Scale { return c.scale }

// At returns the cell at (col, row); out-of-range positions are empty.
func (c *Cells) At(col, row int) Cell {
	if !c.inBounds(col, row) {
		return Cell{}
	}
	return c.grid[row*c.cols+col]
}

func (c *Cells) Tag(n *graph.Node) { c.tag = n }

func (c *Cells) Clear() {
	clear(c.grid)
	c.fit = 0
}

func (c *Cells) Line(x1, y1, x2, y2, _ float64) {
	glyph := strokeGlyph(x2-x1, y2-y1)

	fx1, fy1 := x1/c.scale.X, y1/c.scale.Y
	fx2, fy2 := x2/c.scale.X, y2/c.scale.Y
	dx, dy := fx2-fx1, fy2-fy1
	steps := int(math.Ceil(2 * math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		c.plot(fx1, fy1, glyph, LayerEdge)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.plot(fx1+t*dx, fy1+t*dy, glyph, LayerEdge)
	}
}

func (c *Cells) Circle(cx, cy, r, _ float64) {
	c.fit = max(int(2*r/c.scale.X)-1, 1)

	n := max(int(math.Ceil(4*math.Pi*r/math.Min(c.scale.X, c.scale.Y))), 8)
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		sin, cos := math.Sincos(th)
		x, y := cx+r*cos, cy+r*sin
		c.plot(x/c.scale.X, y/c.scale.Y, strokeGlyph(-sin, cos), LayerNode)
	}
}

func (c *Cells) Text(s string, cx, cy, _ float64) {
	fit := c.fit
	if fit <= 0 {
		fit = c.cols
	}
	s = label.Fit(s, fit)
	w := label.Width(s)

	row := int(math.Floor(cy / c.scale.Y))
	col := int(math.Round(cx/c.scale.X - float64(w)/2))
	for _, cl := range label.Split(s) {
		if cl.Width == 0 {
			continue
		}
		c.set(col, row, cl.Text, LayerLabel)
		for k := 1; k < cl.Width; k++ {
			c.setCont(col+k, row)
		}
		col += cl.Width
	}
}

// Rows returns the grid as plain text, one string per row.
func (c *Cells) Rows() []string {
	out := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var sb strings.Builder
		for col := 0; col < c.cols; col++ {
			cell := c.grid[row*c.cols+col]
			switch {
			case cell.cont:
			case cell.Text == "":
				sb.WriteByte(' ')
			default:
				sb.WriteString(cell.Text)
			}
		}
		out[row] = sb.String()
	}
	return out
}

// CellStyle styles the cells of a Cells surface by layer.
type CellStyle struct {
	Empty lipgloss.Style
	Edge  lipgloss.Style
	Node  lipgloss.Style
	Label lipgloss.Style

	// Selected replaces Node and Label for the selected node's cells.
	Selected lipgloss.Style
}

// Render returns the grid with st applied. Cells owned by selected use
// st.Selected.
func (c *Cells) Render(st CellStyle, selected *graph.Node) string {
	lines := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var (
			sb     strings.Builder
			run    strings.Builder
			runSt  lipgloss.Style
			hasRun bool
		)
		flush := func() {
			if hasRun {
				sb.WriteString(runSt.Render(run.String()))
				run.Reset()
			}
		}
		var prevKey styleKey
		for col := 0; col < c.cols; col++ {
			cell := c.grid[row*c.cols+col]
			if cell.cont {
				continue
			}
			key := styleKey{layer: cell.Layer, selected: selected != nil && cell.Node == selected && cell.Layer >= LayerNode}
			if !hasRun || key != prevKey {
				flush()
				runSt = st.forKey(key)
				prevKey = key
				hasRun = true
			}
			if cell.Text == "" {
				run.WriteByte(' ')
			} else {
				run.WriteString(cell.Text)
			}
		}
		flush()
		lines[row] = sb.String()
	}
	return strings.Join(lines, "\n")
}

type styleKey struct {
	layer    Layer
	selected bool
}

func (st CellStyle) forKey(k styleKey) lipgloss.Style {
	if k.selected {
		return st.Selected
	}
	switch k.layer {
	case LayerEdge:
		return st.Edge
	case LayerNode:
		return st.Node
	case LayerLabel:
		return st.Label
	default:
		return st.Empty
	}
}

func (c *Cells) inBounds(col, row int) bool {
	return col >= 0 && col < c.cols && row >= 0 && row < c.rows
}

func (c *Cells) plot(fx, fy float64, glyph string, layer Layer) {
	c.set(int(math.Floor(fx)), int(math.Floor(fy)), glyph, layer)
}

func (c *Cells) set(col, row int, text string, layer Layer) {
	if !c.inBounds(col, row) {
		return
	}
	c.breakWide(col, row)
	c.grid[row*c.cols+col] = Cell{Text: text, Layer: layer, Node: c.tag}
}

func (c *Cells) setCont(col, row int) {
	if !c.inBounds(col, row) {
		return
	}
	c.breakWide(col, row)
	c.grid[row*c.cols+col] = Cell{Layer: LayerLabel, Node: c.tag, cont: true}
}

// breakWide blanks the other half of a double-width cluster that overlaps
// (col, row) before the cell is overwritten.
func (c *Cells) breakWide(col, row int) {
	i := row*c.cols + col
	if c.grid[i].cont && col > 0 {
		c.grid[i-1] = Cell{}
	}
	if col+1 < c.cols && c.grid[i+1].cont {
		c.grid[i+1] = Cell{}
	}
}

func strokeGlyph(dx, dy float64) string {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ax == 0 && ay == 0:
		return "·"
	case ax >= 2.4*ay:
		return "─"
	case ay >= 2.4*ax:
		return "│"
	case (dx > 0) == (dy > 0):
		return "╲"
	default:
		return "╱"
	}
}
