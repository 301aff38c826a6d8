package editor

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/iw2rmb/taskgraph/render"
)

// Export draws the graph onto a raster of the canvas size and writes it to
// path as PNG.
func (m Model) Export(path string) error {
	w, h := m.CanvasSize()
	r, err := render.NewRaster(int(math.Ceil(w)), int(math.Ceil(h)))
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	render.Draw(r, m.g)
	if err := r.SavePNG(path); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

func (m Model) exportToConfiguredPath() Model {
	path := m.cfg.ExportPath
	if err := m.Export(path); err != nil {
		m.log.Error("export failed", zap.String("path", path), zap.Error(err))
		m.errMsg = err.Error()
		m.status = ""
		return m
	}
	m.log.Info("exported", zap.String("path", path))
	m.errMsg = ""
	m.status = "exported " + path
	return m
}
