// Package config loads drawshop settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/drawshop/config.toml (falling back to
// ~/.config/drawshop/config.toml) unless a path is given explicitly. A
// missing file is not an error: every field has a default.
//
// Example:
//
//	[canvas]
//	width = 1024
//	height = 768
//	style = "handdrawn"
//	color = "#1e1e1e"
//
//	[store]
//	backend = "sqlite"
//	dsn = "/home/me/drawings.db"
//
//	[export]
//	scale = 2.0
//
//	[server]
//	addr = ":8080"
//
// The environment variables DRAWSHOP_STORE and DRAWSHOP_STORE_DIR override
// store.backend and store.dir.
package config

import (
	"image/color"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/render"
	"github.com/matzehuels/drawshop/pkg/shape"
	"github.com/matzehuels/drawshop/pkg/store"
)

const appName = "drawshop"

// Environment overrides.
const (
	EnvStore    = "DRAWSHOP_STORE"
	EnvStoreDir = "DRAWSHOP_STORE_DIR"
)

// Config is the full configuration file.
type Config struct {
	Canvas Canvas `toml:"canvas"`
	Store  Store  `toml:"store"`
	Export Export `toml:"export"`
	Server Server `toml:"server"`
}

// Canvas holds defaults for new drawings and shapes.
type Canvas struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Style  string `toml:"style"`
	Color  string `toml:"color"`
}

// Store selects and configures the persistence backend.
type Store struct {
	Backend    string `toml:"backend"`
	Dir        string `toml:"dir"`
	DSN        string `toml:"dsn"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	Prefix     string `toml:"prefix"`
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Export holds render defaults.
type Export struct {
	Scale       float64 `toml:"scale"`
	StrokeWidth float64 `toml:"stroke_width"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 800, Height: 600, Style: shape.StylePerfect.String(), Color: "#000000"},
		Store: Store{
			Backend: store.BackendFile,
			Dir:     filepath.Join(dataHome(), appName),
			DSN:     filepath.Join(dataHome(), appName, "drawings.db"),
		},
		Export: Export{Scale: 1, StrokeWidth: 1},
		Server: Server{Addr: ":8080"},
	}
}

// DefaultPath returns the config file location using the XDG standard.
func DefaultPath() string {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(appName, "config.toml")
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

func dataHome() string {
	if home := os.Getenv("XDG_DATA_HOME"); home != "" {
		return home
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// Load reads the file at path over the defaults, applies environment
// overrides and validates the result. An empty path means [DefaultPath];
// a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	_, err := toml.DecodeFile(path, &cfg)
	switch {
	case err == nil:
	case os.IsNotExist(err) && !explicit:
	case os.IsNotExist(err):
		return Config{}, errors.Wrap(errors.ErrCodeNotFound, err, "config file %s", path)
	default:
		return Config{}, errors.Wrap(errors.ErrCodeInvalidArgument, err, "parse config %s", path)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults without touching the
// environment.
func Parse(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidArgument, err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvStore); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv(EnvStoreDir); v != "" {
		c.Store.Dir = v
	}
}

// Validate checks field values.
func (c Config) Validate() error {
	if !shape.ValidCanvas(c.Canvas.Width, c.Canvas.Height) {
		return errors.New(errors.ErrCodeInvalidArgument, "canvas size must be within 1..%d, got %dx%d",
			shape.MaxCanvasSize, c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := shape.ParseStyle(c.Canvas.Style); err != nil {
		return err
	}
	if _, err := shape.ParseColor(c.Canvas.Color); err != nil {
		return err
	}
	if err := errors.ValidateBounded("export scale", c.Export.Scale, render.MaxScale); err != nil {
		return err
	}
	if err := errors.ValidateBounded("stroke width", c.Export.StrokeWidth, render.MaxStrokeWidth); err != nil {
		return err
	}
	if !slices.Contains(store.Backends, c.Store.Backend) {
		return errors.New(errors.ErrCodeInvalidArgument, "unknown store backend %q", c.Store.Backend)
	}
	return nil
}

// Style returns the parsed canvas style.
func (c Config) Style() shape.Style {
	s, _ := shape.ParseStyle(c.Canvas.Style)
	return s
}

// Color returns the parsed default shape color.
func (c Config) Color() color.RGBA {
	col, err := shape.ParseColor(c.Canvas.Color)
	if err != nil {
		return shape.Black
	}
	return col
}

// StoreConfig maps the [store] section onto store.Config.
func (c Config) StoreConfig() store.Config {
	return store.Config{
		Backend: c.Store.Backend,
		Dir:     c.Store.Dir,
		DSN:     c.Store.DSN,
		Redis: store.RedisConfig{
			Addr:     c.Store.Addr,
			Password: c.Store.Password,
			DB:       c.Store.DB,
			Prefix:   c.Store.Prefix,
		},
		Mongo: store.MongoConfig{
			URI:        c.Store.URI,
			Database:   c.Store.Database,
			Collection: c.Store.Collection,
		},
	}
}
