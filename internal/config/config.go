// Package config loads the hmibuilder settings file.
//
// The file is TOML and lives at $XDG_CONFIG_HOME/hmibuilder/config.toml,
// falling back to ~/.config/hmibuilder/config.toml. A missing file is not an
// error; every setting has a default.
//
//	[canvas]
//	width = 800
//	height = 480
//
//	[grid]
//	unit = 4
//
//	[guides]
//	threshold = 40
//
//	[nudge]
//	step = 4
//	big_step = 40
//	paste_offset = 12
//
//	[server]
//	addr = "127.0.0.1:8080"
//
//	[tui]
//	cell_width = 8
//	cell_height = 16
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hmibuilder/pkg/drag"
	"github.com/matzehuels/hmibuilder/pkg/editor"
	"github.com/matzehuels/hmibuilder/pkg/geom"
)

const (
	appName  = "hmibuilder"
	fileName = "config.toml"
)

// Defaults.
const (
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 480
	DefaultAddr         = "127.0.0.1:8080"
	DefaultCellWidth    = 8
	DefaultCellHeight   = 16
)

// Config is the parsed settings file.
type Config struct {
	Canvas Canvas `toml:"canvas"`
	Grid   Grid   `toml:"grid"`
	Guides Guides `toml:"guides"`
	Nudge  Nudge  `toml:"nudge"`
	Server Server `toml:"server"`
	TUI    TUI    `toml:"tui"`
}

// Canvas is the size of new layouts.
type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Grid is the pointer drag snapping unit.
type Grid struct {
	Unit float64 `toml:"unit"`
}

// Guides tunes snap guides.
type Guides struct {
	Threshold float64 `toml:"threshold"`
}

// Nudge tunes keyboard moves and element insertion.
type Nudge struct {
	Step        float64 `toml:"step"`
	BigStep     float64 `toml:"big_step"`
	PasteOffset float64 `toml:"paste_offset"`
}

// Server configures the HTTP shell.
type Server struct {
	Addr string `toml:"addr"`
}

// TUI maps terminal cells to canvas pixels.
type TUI struct {
	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	c := Config{}
	c.SetDefaults()
	return c
}

// SetDefaults fills every zero setting.
func (c *Config) SetDefaults() {
	if c.Canvas.Width == 0 {
		c.Canvas.Width = DefaultCanvasWidth
	}
	if c.Canvas.Height == 0 {
		c.Canvas.Height = DefaultCanvasHeight
	}
	if c.Grid.Unit == 0 {
		c.Grid.Unit = float64(drag.DefaultGrid)
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.TUI.CellWidth == 0 {
		c.TUI.CellWidth = DefaultCellWidth
	}
	if c.TUI.CellHeight == 0 {
		c.TUI.CellHeight = DefaultCellHeight
	}
}

// Validate rejects sizes that cannot describe a canvas or a terminal cell.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Grid.Unit < 0 {
		return fmt.Errorf("grid unit must not be negative, got %g", c.Grid.Unit)
	}
	if c.TUI.CellWidth <= 0 || c.TUI.CellHeight <= 0 {
		return fmt.Errorf("tui cell size must be positive, got %gx%g", c.TUI.CellWidth, c.TUI.CellHeight)
	}
	opts := c.EditorOptions()
	return opts.ValidateAndSetDefaults()
}

// CanvasSize returns the configured canvas size.
func (c Config) CanvasSize() geom.Size {
	return geom.Size{W: c.Canvas.Width, H: c.Canvas.Height}
}

// EditorOptions returns the editor tuning. Zero values select the editor's
// own defaults.
func (c Config) EditorOptions() editor.Options {
	return editor.Options{
		Grid:           drag.Grid(c.Grid.Unit),
		GuideThreshold: c.Guides.Threshold,
		NudgeStep:      c.Nudge.Step,
		BigNudgeStep:   c.Nudge.BigStep,
		PasteOffset:    c.Nudge.PasteOffset,
	}
}

// =============================================================================
// Loading
// =============================================================================

// Path returns the default settings file location.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the settings file at path. An empty path selects [Path]. A
// missing file yields the defaults, but an explicitly named file must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}
