// Package render turns drawings into files.
//
// # Overview
//
// This package holds the generic format conversion shared by the renderers
// in its subpackages:
//
//   - [sink]: SVG, PNG, PDF and JSON output of a drawing
//   - [nodelink]: a Graphviz diagram of a drawing's composition tree
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(d)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// PNG output does not need librsvg: [sink.RenderPNG] rasterizes directly.
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the group structure of a drawing as a
// tree of boxes using Graphviz.
//
//	dot := nodelink.ToDOT(d, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
package render
