package editor

// cellToCanvas maps component-local mouse coordinates to the canvas
// coordinate at the center of the cell.
func (m *Model) cellToCanvas(col, row int) (x, y float64) {
	return m.cfg.Scale.ToCanvas(col, row)
}

func (m *Model) mouseInCanvas(col, row int) bool {
	rows := m.canvasRows()
	if m.width <= 0 || rows <= 0 {
		return false
	}
	return col >= 0 && col < m.width && row >= 0 && row < rows
}

func (m *Model) clampMouseToCanvas(col, row int) (int, int) {
	return clampInt(col, 0, m.width-1), clampInt(row, 0, m.canvasRows()-1)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
