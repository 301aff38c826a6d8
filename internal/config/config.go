// Package config loads taskgraph settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/iw2rmb/taskgraph/editor"
	"github.com/iw2rmb/taskgraph/graph"
	"github.com/iw2rmb/taskgraph/render"
)

// Config holds taskgraph configuration.
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Editor EditorConfig `toml:"editor"`
	Log    LogConfig    `toml:"log"`
}

// CanvasConfig sizes the canvas. Zero width or height is derived from the
// terminal size.
type CanvasConfig struct {
	Width      float64 `toml:"width" validate:"gte=0,lte=20000"`
	Height     float64 `toml:"height" validate:"gte=0,lte=20000"`
	CellWidth  float64 `toml:"cell_width" validate:"gt=0,lte=1000"`
	CellHeight float64 `toml:"cell_height" validate:"gt=0,lte=1000"`
}

// EditorConfig controls interaction.
type EditorConfig struct {
	DoubleClick   string `toml:"double_click" validate:"oneof=single compat"`
	DoubleClickMS int    `toml:"double_click_ms" validate:"gt=0,lte=5000"`
	EdgeHit       string `toml:"edge_hit" validate:"oneof=line segment"`
	ExportPath    string `toml:"export_path" validate:"required"`
}

// LogConfig controls the debug log. An empty file disables logging.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{CellWidth: 10, CellHeight: 20},
		Editor: EditorConfig{
			DoubleClick:   "single",
			DoubleClickMS: int(editor.DefaultDoubleClickInterval / time.Millisecond),
			EdgeHit:       "line",
			ExportPath:    editor.DefaultExportPath,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Dir returns the taskgraph config directory path.
func Dir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "taskgraph")
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at path over the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg *Config) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close config: %w", cerr)
		}
	}()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

var validate = validator.New()

// Validate checks cfg against its field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ToEditor converts the file settings into an editor configuration.
func (c *Config) ToEditor(logger *zap.Logger) editor.Config {
	cfg := editor.Config{
		CanvasWidth:         c.Canvas.Width,
		CanvasHeight:        c.Canvas.Height,
		Scale:               render.Scale{X: c.Canvas.CellWidth, Y: c.Canvas.CellHeight},
		DoubleClickInterval: time.Duration(c.Editor.DoubleClickMS) * time.Millisecond,
		ExportPath:          c.Editor.ExportPath,
		KeyMap:              editor.DefaultKeyMap(),
		Style:               editor.DefaultStyle(),
		Logger:              logger,
	}
	if c.Editor.DoubleClick == "compat" {
		cfg.DoubleClick = editor.DoubleClickCompat
	}
	if c.Editor.EdgeHit == "segment" {
		cfg.EdgeHit = graph.HitSegment
	}
	return cfg
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
