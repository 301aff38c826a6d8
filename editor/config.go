package editor

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/iw2rmb/taskgraph/graph"
	"github.com/iw2rmb/taskgraph/render"
)

// DoubleClickMode selects what a double-click on a node does.
type DoubleClickMode uint8

const (
	// DoubleClickSingle performs exactly one action per double-click:
	// select, connect, or rename when the selected node is hit again.
	DoubleClickSingle DoubleClickMode = iota
	// DoubleClickCompat runs selection/connection first and then always
	// opens the rename prompt for the hit node.
	DoubleClickCompat
)

const (
	DefaultDoubleClickInterval = 400 * time.Millisecond
	DefaultExportPath          = "taskgraph.png"
)

// Config configures the editor Model.
type Config struct {
	// Graph to edit. New creates an empty graph when nil.
	Graph *graph.Graph

	// Canvas size in canvas units. Zero derives it from the component size
	// and Scale.
	CanvasWidth  float64
	CanvasHeight float64
	Scale        render.Scale

	// Forwarded to graph.Options when Graph is nil.
	Radius float64
	Rand   *rand.Rand

	DoubleClick         DoubleClickMode
	DoubleClickInterval time.Duration
	EdgeHit             graph.EdgeHitMode

	// Prompt replaces the built-in rename prompt. It receives the current
	// label and returns the replacement; ok=false means cancelled.
	Prompt func(current string) (text string, ok bool)

	ExportPath string

	KeyMap KeyMap
	Style  Style

	Logger *zap.Logger

	// OnChange is called once per update that changed the graph.
	OnChange func(ChangeEvent)

	// Now is the clock used for double-click detection.
	Now func() time.Time
}

func normalizeConfig(cfg Config) Config {
	if cfg.Scale.X <= 0 || cfg.Scale.Y <= 0 {
		cfg.Scale = render.DefaultScale()
	}
	if cfg.DoubleClick != DoubleClickSingle && cfg.DoubleClick != DoubleClickCompat {
		cfg.DoubleClick = DoubleClickSingle
	}
	if cfg.DoubleClickInterval <= 0 {
		cfg.DoubleClickInterval = DefaultDoubleClickInterval
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = DefaultExportPath
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return cfg
}
