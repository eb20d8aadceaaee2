// Package sink provides output format renderers for drawings.
//
// # Overview
//
// A "sink" paints a [shape.Drawing] into a final output format:
//
//   - SVG: vector output, one element per shape
//   - PNG: raster output from the built-in rasterizer (or rsvg-convert)
//   - PDF: print-ready output (requires rsvg-convert)
//   - JSON: the persisted document, loadable by any store
//
// Every sink starts from a background rectangle at canvas size, white by
// default, and then visits the drawing's leaves in insertion order. Each leaf
// is painted by an exhaustive type switch over the six concrete shapes:
//
//   - circles as ellipses; a hand-drawn circle uses its jittered extents
//   - perfect rectangles and lines as straight outlines
//   - hand-drawn lines as one quadratic curve bent by the jittered midpoint
//   - hand-drawn rectangles as four quadratic curves, one per edge
//
// Rendering never modifies the drawing.
//
// Basic usage:
//
//	svg, err := sink.RenderSVG(d, sink.WithStrokeWidth(2))
//	png, err := sink.RenderPNG(ctx, d, sink.WithScale(2))
package sink
