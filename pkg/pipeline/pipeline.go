// Package pipeline provides the operations shared by the CLI and the HTTP
// API: load a drawing, transform it, save it, and render it with caching.
//
// By centralizing this logic both entry points behave identically: the same
// formats, the same cache keys, the same error codes.
//
// # Architecture
//
// A [Runner] owns a [store.Store], an artifact [cache.Cache] and a logger.
// Editing operations ([Runner.Update], [Runner.Mirror],
// [Runner.Standardize]) load a drawing, apply a change and save it back.
// Rendering ([Runner.Render], [Runner.Tree]) never modifies the drawing; its
// outputs are cached under the hash of the encoded document, so any edit
// produces fresh keys.
//
// # Usage
//
//	runner := pipeline.NewRunner(st, c, nil, logger)
//	d, err := runner.Load(ctx, "sketch")
//	res, err := runner.Render(ctx, d, pipeline.Options{Formats: []string{"svg", "png"}})
//	svg := res.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/drawshop/pkg/cache"
	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultScale is the PNG scale factor.
	DefaultScale = 1.0

	// DefaultStrokeWidth is the outline width in canvas units.
	DefaultStrokeWidth = 1.0

	// DefaultWidth is the canvas width of new drawings.
	DefaultWidth = 800

	// DefaultHeight is the canvas height of new drawings.
	DefaultHeight = 600
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// Formats lists the supported export formats in display order.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

// TreeFormats lists the formats supported by [Runner.Tree].
var TreeFormats = []string{FormatSVG, FormatPNG, FormatPDF, "dot"}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return errors.ValidateFormat(format, Formats)
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Extension returns the file extension for a format, including the dot.
func Extension(format string) string {
	return "." + format
}

// =============================================================================
// Options - Render Configuration
// =============================================================================

// Options configures [Runner.Render] and [Runner.Export].
// This struct supports JSON serialization for API requests.
type Options struct {
	Formats     []string `json:"formats,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	StrokeWidth float64  `json:"stroke_width,omitempty"`
	Title       string   `json:"title,omitempty"`

	// Standardize renders the perfect version of the drawing. The stored
	// drawing is not modified.
	Standardize bool `json:"standardize,omitempty"`

	// RSVG rasterizes PNG output through rsvg-convert instead of the
	// built-in rasterizer.
	RSVG bool `json:"rsvg,omitempty"`

	// Refresh skips cache reads; results are still written to the cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// Calling it more than once has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if err := errors.ValidateBounded("scale", o.Scale, render.MaxScale); err != nil {
		return err
	}
	if o.StrokeWidth == 0 {
		o.StrokeWidth = DefaultStrokeWidth
	}
	if err := errors.ValidateBounded("stroke width", o.StrokeWidth, render.MaxStrokeWidth); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ArtifactKeyOpts returns cache key options for one rendered format. Every
// option that changes the format's bytes is part of the key.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format, Standardize: o.Standardize}
	if format == FormatJSON {
		return opts
	}
	opts.StrokeWidth = o.StrokeWidth
	opts.Title = o.Title
	if format == FormatPNG {
		opts.Scale = o.Scale
		opts.RSVG = o.RSVG
	}
	return opts
}

// Result contains the outputs of a render.
type Result struct {
	// DocHash is the content hash of the rendered document.
	DocHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// CacheHit reports whether every artifact came from the cache.
	CacheHit bool

	// Paths holds the files written by [Runner.Export], keyed by format.
	Paths map[string]string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains render statistics.
type Stats struct {
	ShapeCount int
	RenderTime time.Duration
}

// TreeOptions configures [Runner.Tree].
type TreeOptions struct {
	// Format is one of [TreeFormats]; "dot" returns the Graphviz source.
	Format string `json:"format,omitempty"`

	// Detailed adds centre, bounds and color to node labels.
	Detailed bool `json:"detailed,omitempty"`

	// Scale applies to PNG output.
	Scale float64 `json:"scale,omitempty"`
}
