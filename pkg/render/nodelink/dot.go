package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/render"
	"github.com/matzehuels/drawshop/pkg/shape"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes centre, bounds and color in node labels.
	// When false, only the shape kind is shown.
	Detailed bool
}

// ToDOT converts the composition tree of a drawing to Graphviz DOT format.
// Groups and drawings become nodes whose children are their members, in
// insertion order. The resulting DOT string can be rendered using
// [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Composite nodes are rendered with dashed outlines and grey fill to
// distinguish them from leaf shapes.
func ToDOT(d *shape.Drawing, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	if d == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	w := treeWriter{buf: &buf, detailed: opts.Detailed}
	w.node(d, "")

	if len(w.edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range w.edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e[0], e[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

type treeWriter struct {
	buf      *bytes.Buffer
	detailed bool
	next     int
	edges    [][2]string
}

func (w *treeWriter) node(s shape.Shape, parent string) {
	id := "n" + strconv.Itoa(w.next)
	w.next++

	label := fmtLabel(s, w.detailed)
	attrs := fmtAttrs(s, label)
	fmt.Fprintf(w.buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	if parent != "" {
		w.edges = append(w.edges, [2]string{parent, id})
	}

	var members []shape.Shape
	switch v := s.(type) {
	case *shape.Drawing:
		members = v.Shapes()
	case *shape.Group:
		members = v.Shapes()
	}
	for _, m := range members {
		w.node(m, id)
	}
}

func fmtLabel(s shape.Shape, detailed bool) string {
	name := s.Kind().String()
	if d, ok := s.(*shape.Drawing); ok {
		name = fmt.Sprintf("%s %dx%d", d.Style().DisplayName(), d.Width(), d.Height())
	}
	if !detailed {
		return name
	}

	parts := []string{"centre: " + fmtPoint(s.CenterX(), s.CenterY())}
	if b := s.Bounds(); b.URx >= b.LLx {
		parts = append(parts, fmt.Sprintf("bounds: %s - %s", fmtPoint(b.LLx, b.LLy), fmtPoint(b.URx, b.URy)))
	}
	if c, ok := s.(shape.Colored); ok {
		parts = append(parts, "color: "+shape.FormatColor(c.Color()))
	}
	return name + "\n" + strings.Join(parts, "\n")
}

func fmtPoint(x, y float64) string {
	if math.IsNaN(x) || math.IsNaN(y) {
		return "(none)"
	}
	return fmt.Sprintf("(%.1f, %.1f)", x, y)
}

func fmtAttrs(s shape.Shape, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if s.Kind().IsComposite() {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidArgument, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
