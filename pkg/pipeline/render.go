package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/drawshop/pkg/cache"
	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/observability"
	"github.com/matzehuels/drawshop/pkg/render"
	"github.com/matzehuels/drawshop/pkg/render/nodelink"
	"github.com/matzehuels/drawshop/pkg/render/sink"
	"github.com/matzehuels/drawshop/pkg/shape"
	"github.com/matzehuels/drawshop/pkg/store"
)

// Render generates artifacts for every requested format. Formats missing
// from the cache are rendered concurrently; the drawing is only read.
func (r *Runner) Render(ctx context.Context, d *shape.Drawing, opts Options) (res *Result, err error) {
	if d == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "drawing must not be nil")
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	shapes := shape.Count(d)
	total := 0
	for _, n := range shapes {
		total += n
	}
	observability.Render().OnRenderStart(ctx, opts.Formats, total)
	defer func() {
		observability.Render().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	target := d
	if opts.Standardize {
		target = d.Standardize()
	}

	doc, err := store.Encode(d)
	if err != nil {
		return nil, err
	}
	docHash := cache.Hash(doc)

	artifacts := make([][]byte, len(opts.Formats))
	hits := make([]bool, len(opts.Formats))

	g, gctx := errgroup.WithContext(ctx)
	for i, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(docHash, opts.ArtifactKeyOpts(format))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				artifacts[i], hits[i] = data, true
				continue
			}
		}
		g.Go(func() error {
			data, err := renderFormat(gctx, target, format, opts)
			if err != nil {
				code := errors.GetCode(err)
				if code == "" {
					code = errors.ErrCodeInternal
				}
				return errors.Wrap(code, err, "render %s", format)
			}
			artifacts[i] = data
			_ = r.Cache.Set(gctx, key, data, cache.TTLArtifact)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res = &Result{
		DocHash:   docHash,
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		CacheHit:  true,
		Stats:     Stats{ShapeCount: total, RenderTime: time.Since(start)},
	}
	for i, format := range opts.Formats {
		res.Artifacts[format] = artifacts[i]
		res.CacheHit = res.CacheHit && hits[i]
	}

	opts.Logger.Info("rendered drawing",
		"formats", opts.Formats,
		"shapes", total,
		"cached", res.CacheHit,
		"duration", res.Stats.RenderTime)
	return res, nil
}

func renderFormat(ctx context.Context, d *shape.Drawing, format string, opts Options) ([]byte, error) {
	svgOpts := []sink.SVGOption{sink.WithStrokeWidth(opts.StrokeWidth)}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}

	switch format {
	case FormatSVG:
		return sink.RenderSVG(d, svgOpts...)
	case FormatPNG:
		pngOpts := []sink.PNGOption{
			sink.WithScale(opts.Scale),
			sink.WithPNGStrokeWidth(opts.StrokeWidth),
			sink.WithPNGSVGOptions(svgOpts...),
		}
		if opts.RSVG {
			pngOpts = append(pngOpts, sink.WithRSVG())
		}
		return sink.RenderPNG(ctx, d, pngOpts...)
	case FormatPDF:
		return sink.RenderPDF(ctx, d, sink.WithPDFSVGOptions(svgOpts...))
	case FormatJSON:
		return sink.RenderJSON(d)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

// Export renders d and writes one file per format. base is the output path
// without extension; the written paths are recorded in the result's Paths.
func (r *Runner) Export(ctx context.Context, d *shape.Drawing, base string, opts Options) (*Result, error) {
	res, err := r.Render(ctx, d, opts)
	if err != nil {
		return nil, err
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(errors.ErrCodeWriteError, err, "create %s", dir)
		}
	}

	res.Paths = make(map[string]string, len(res.Artifacts))
	for format, data := range res.Artifacts {
		path := base + Extension(format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, errors.Wrap(errors.ErrCodeWriteError, err, "write %s", path)
		}
		res.Paths[format] = path
	}
	return res, nil
}

// Tree renders the composition tree of d as a node-link diagram.
func (r *Runner) Tree(ctx context.Context, d *shape.Drawing, opts TreeOptions) ([]byte, error) {
	if d == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "drawing must not be nil")
	}
	if opts.Format == "" {
		opts.Format = FormatSVG
	}
	if err := errors.ValidateFormat(opts.Format, TreeFormats); err != nil {
		return nil, err
	}
	if opts.Scale == 0 {
		opts.Scale = 2.0
	}
	if err := errors.ValidateBounded("scale", opts.Scale, render.MaxScale); err != nil {
		return nil, err
	}

	dot := nodelink.ToDOT(d, nodelink.Options{Detailed: opts.Detailed})
	if opts.Format == "dot" {
		return []byte(dot), nil
	}

	// Scale is part of the key so PNG trees at different scales do not collide.
	docHash := cache.Hash([]byte(dot + "\x00" + strconv.FormatFloat(opts.Scale, 'g', -1, 64)))
	key := r.Keyer.TreeKey(docHash, cache.TreeKeyOpts{Format: opts.Format, Detail: opts.Detailed})
	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		return data, nil
	}

	var data []byte
	var err error
	switch opts.Format {
	case FormatSVG:
		data, err = nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		data, err = nodelink.RenderPNG(ctx, dot, opts.Scale)
	case FormatPDF:
		data, err = nodelink.RenderPDF(ctx, dot)
	}
	if err != nil {
		return nil, err
	}
	_ = r.Cache.Set(ctx, key, data, cache.TTLTree)
	r.Logger.Debug("rendered tree", "format", opts.Format, "bytes", len(data))
	return data, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
