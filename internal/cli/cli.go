// Package cli implements the hmibuilder command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hmibuilder/internal/config"
	"github.com/matzehuels/hmibuilder/pkg/editor"
	"github.com/matzehuels/hmibuilder/pkg/errors"
	"github.com/matzehuels/hmibuilder/pkg/layout"
	"github.com/matzehuels/hmibuilder/pkg/scene"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completion scripts.
const appName = "hmibuilder"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
}

// New creates a CLI writing logs to w. The configuration starts at the
// defaults and is loaded from disk before any command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the settings file named by --config, or the default one.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("config loaded", "canvas", fmt.Sprintf("%gx%g", cfg.Canvas.Width, cfg.Canvas.Height), "grid", cfg.Grid.Unit)
	return nil
}

// =============================================================================
// Documents
// =============================================================================

// newEditor wraps store in an editor tuned by the configuration. Bells are
// reported as warnings unless opts replace the callback.
func (c *CLI) newEditor(store *layout.Store, opts ...editor.Option) *editor.Editor {
	base := []editor.Option{
		editor.WithOptions(c.Config.EditorOptions()),
		editor.WithLogger(c.Logger),
		editor.WithBell(func(op string) { printWarning("%s had no effect", op) }),
	}
	return editor.New(store, append(base, opts...)...)
}

// loadStore reads the layout at path. With create set, a missing file yields
// an empty canvas of the configured size.
func (c *CLI) loadStore(path string, create bool) (*layout.Store, error) {
	store, err := scene.Load(path)
	if create && errors.Is(err, errors.ErrCodeFileNotFound) {
		c.Logger.Debug("starting new document", "path", path)
		return layout.NewStore(c.Config.CanvasSize()), nil
	}
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("document loaded", "path", path, "elements", store.Len())
	return store, nil
}

// openDocument loads the layout at path.
func (c *CLI) openDocument(path string) (*editor.Editor, error) {
	store, err := c.loadStore(path, false)
	if err != nil {
		return nil, err
	}
	return c.newEditor(store), nil
}

func (c *CLI) saveDocument(path string, ed *editor.Editor) error {
	if err := scene.Save(path, ed.Store()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	c.Logger.Debug("document saved", "path", path, "elements", ed.Store().Len())
	return nil
}

// editElement loads path, resolves ref and runs fn on it. The document is
// saved afterwards unless fn fails.
func (c *CLI) editElement(path, ref string, fn func(*editor.Editor, *layout.Element) error) error {
	ed, err := c.openDocument(path)
	if err != nil {
		return err
	}
	el, err := ed.Store().Lookup(ref)
	if err != nil {
		return err
	}
	ed.Select(el)
	if err := fn(ed, el); err != nil {
		return err
	}
	return c.saveDocument(path, ed)
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
