// Package cli implements the drawshop command-line interface.
//
// Drawings are kept in the configured store (a directory of .draw files by
// default) and addressed by id. Every command loads the drawing, applies
// one change and saves it back, so a sequence of commands builds a picture:
//
//	drawshop new sketch --style handdrawn
//	drawshop add rect sketch 10 10 120 80
//	drawshop add circle sketch 200 60 40 --color steelblue
//	drawshop mirror sketch -V
//	drawshop export sketch -f svg,png
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging through
// charmbracelet/log; user-facing results are printed with lipgloss styles.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/drawshop/pkg/buildinfo"
	"github.com/matzehuels/drawshop/pkg/cache"
	"github.com/matzehuels/drawshop/pkg/config"
	"github.com/matzehuels/drawshop/pkg/pipeline"
	"github.com/matzehuels/drawshop/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "drawshop"

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

	configPath string
	storeName  string
	storeDir   string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Drawshop edits perfect and hand-drawn vector drawings",
		Long:         `Drawshop is a CLI tool for composing drawings from circles, rectangles and lines in a perfect or hand-drawn style, and exporting them as SVG, PNG, PDF or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&c.storeName, "store", "", "store backend: "+strings.Join(store.Backends, ", "))
	root.PersistentFlags().StringVar(&c.storeDir, "store-dir", "", "directory of the file store")

	// Register all subcommands
	root.AddCommand(c.newCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.removeCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.mirrorCommand())
	root.AddCommand(c.standardizeCommand())
	root.AddCommand(c.areaCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.deleteCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// loadConfig reads the config file and applies the persistent flags.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if c.storeName != "" {
		cfg.Store.Backend = c.storeName
	}
	if c.storeDir != "" {
		cfg.Store.Dir = c.storeDir
	}
	return cfg, cfg.Validate()
}

// newRunner opens the configured store and creates a pipeline runner for
// CLI use. The caller must Close the runner.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, config.Config, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}
	st, err := store.Open(ctx, cfg.StoreConfig())
	if err != nil {
		return nil, config.Config{}, err
	}
	c.Logger.Debug("opened store", "backend", st.Backend().Name())
	return pipeline.NewRunner(st, newCache(noCache), nil, c.Logger), cfg, nil
}

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/drawshop/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
