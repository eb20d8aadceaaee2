// Package nodelink renders the composition tree of a drawing as a node-link
// diagram.
//
// # Overview
//
// The drawing is the root node. Every group and leaf shape is a child of
// the composite that holds it, and siblings keep their insertion order. The
// diagram is produced with Graphviz and is useful for inspecting deeply
// nested groups that are hard to tell apart on the canvas itself.
//
// # Usage
//
// Convert a drawing to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(d, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Options
//
//   - Detailed: When true, node labels include centre, bounds and color.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
