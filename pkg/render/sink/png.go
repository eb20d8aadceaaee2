package sink

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/render"
	"github.com/matzehuels/drawshop/pkg/shape"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts     []SVGOption
	scale       float64
	strokeWidth float64
	background  color.RGBA
	viaSVG      bool
}

// WithPNGSVGOptions passes options through to the SVG renderer used by
// [WithRSVG].
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 1.0).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGStrokeWidth sets the outline width in canvas units (default 1).
func WithPNGStrokeWidth(w float64) PNGOption {
	return func(r *pngRenderer) { r.strokeWidth = w }
}

// WithRSVG renders through SVG and rsvg-convert instead of the built-in
// rasterizer.
func WithRSVG() PNGOption {
	return func(r *pngRenderer) { r.viaSVG = true }
}

// RenderPNG rasterizes d on a white canvas of d's size times the scale.
func RenderPNG(ctx context.Context, d *shape.Drawing, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1, strokeWidth: 1, background: White}
	for _, opt := range opts {
		opt(&r)
	}
	if r.viaSVG {
		if _, _, err := rasterSize(d, r.scale); err != nil {
			return nil, err
		}
		svg, err := RenderSVG(d, r.svgOpts...)
		if err != nil {
			return nil, err
		}
		return render.ToPNG(ctx, svg, r.scale)
	}

	dc, err := rasterize(d, r.scale, r.strokeWidth, r.background)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// Rasterize paints d into an in-memory image. Images larger than
// [render.MaxPixels] fail with INVALID_ARGUMENT.
func Rasterize(d *shape.Drawing, scale, strokeWidth float64, background color.RGBA) (image.Image, error) {
	dc, err := rasterize(d, scale, strokeWidth, background)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func rasterize(d *shape.Drawing, scale, strokeWidth float64, background color.RGBA) (*gg.Context, error) {
	w, h, err := rasterSize(d, scale)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(background)
	dc.Clear()
	dc.Scale(scale, scale)
	dc.SetLineWidth(strokeWidth)

	err = shape.Accept(d, func(s shape.Shape) error {
		return paintRaster(dc, s)
	})
	if err != nil {
		return nil, err
	}
	return dc, nil
}

// rasterSize returns the pixel size of d at scale, enforcing
// [render.MaxPixels].
func rasterSize(d *shape.Drawing, scale float64) (int, int, error) {
	if d == nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidArgument, "drawing must not be nil")
	}
	if math.IsInf(scale, 0) || !(scale > 0) {
		return 0, 0, errors.New(errors.ErrCodeInvalidArgument, "scale must be positive, got %v", scale)
	}
	w := math.Max(1, math.Ceil(float64(d.Width())*scale))
	h := math.Max(1, math.Ceil(float64(d.Height())*scale))
	if w*h > render.MaxPixels {
		return 0, 0, errors.New(errors.ErrCodeInvalidArgument,
			"image of %.0fx%.0f pixels exceeds the %d pixel limit", w, h, render.MaxPixels)
	}
	return int(w), int(h), nil
}

func paintRaster(dc *gg.Context, s shape.Shape) error {
	switch v := s.(type) {
	case *shape.PerfectCircle:
		dc.DrawEllipse(v.CenterX(), v.CenterY(), v.Radius(), v.Radius())
	case *shape.HanddrawnCircle:
		b := v.PaintBox()
		rx, ry := (b.URx-b.LLx)/2, (b.URy-b.LLy)/2
		dc.DrawEllipse(b.LLx+rx, b.LLy+ry, math.Abs(rx), math.Abs(ry))
	case *shape.PerfectRectangle:
		x0, y0, x1, y1 := shape.NormalizeBox(v.X0(), v.Y0(), v.X1(), v.Y1())
		dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	case *shape.HanddrawnRectangle:
		c, m := v.Corners(), v.Mids()
		dc.MoveTo(c[0].X, c[0].Y)
		for i := range 4 {
			next := c[(i+1)%4]
			dc.QuadraticTo(m[i].X, m[i].Y, next.X, next.Y)
		}
		dc.ClosePath()
	case *shape.PerfectLine:
		dc.DrawLine(v.X0(), v.Y0(), v.X1(), v.Y1())
	case *shape.HanddrawnLine:
		dc.MoveTo(v.X0(), v.Y0())
		dc.QuadraticTo(v.MidX(), v.MidY(), v.X1(), v.Y1())
	default:
		return errors.New(errors.ErrCodeUnsupported, "png: cannot paint %T", s)
	}
	dc.SetColor(s.(shape.Colored).Color())
	dc.Stroke()
	return nil
}
