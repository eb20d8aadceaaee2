// Package pkg provides the core libraries for drawshop.
//
// # Overview
//
// Drawshop composes drawings from circles, rectangles and lines. Every shape
// exists in a perfect variant and a hand-drawn variant whose coordinates are
// jittered once at construction. The pkg directory is organized into these
// areas:
//
//  1. [shape] - Domain model (shapes, groups, drawings, factories, visitors)
//  2. [store] - Persistence of drawings (file, SQLite, Redis, MongoDB)
//  3. [render] - Output (SVG, PNG, PDF, JSON, composition trees)
//  4. [pipeline] - Orchestration (load, edit, render, cache)
//  5. [server] - HTTP API over the pipeline
//
// # Architecture
//
// The typical data flow through drawshop:
//
//	CLI command / HTTP request
//	         ↓
//	    [pipeline] Runner (load drawing from [store])
//	         ↓
//	    [shape] operations (add, move, mirror, standardize)
//	         ↓
//	    [render/sink] (SVG, PNG, PDF, JSON) with [cache]
//
// # Quick Start
//
// Build a hand-drawn drawing and render it:
//
//	import (
//	    "github.com/matzehuels/drawshop/pkg/render/sink"
//	    "github.com/matzehuels/drawshop/pkg/shape"
//	)
//
//	d := shape.NewDrawing(400, 300, shape.StyleHanddrawn)
//	d.Add(d.Rectangle(50, 50, 350, 250, shape.Black))
//	d.Add(d.Circle(200, 150, 60, shape.Black))
//
//	svg, _ := sink.RenderSVG(d)
//	std := d.Standardize() // perfect copy, d is unchanged
//
// # Main Packages
//
// [noise] - The jitter source hand-drawn shapes sample from. Seeded and
// scripted sources make hand-drawn output reproducible in tests.
//
// [errors] - Structured errors with stable codes shared by the CLI and the
// HTTP API.
//
// [config] - TOML configuration for canvas defaults, the store backend and
// the HTTP server.
//
// [cache] - Content-addressed cache for rendered artifacts.
//
// [observability] - Hooks for store, render, cache and HTTP events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/shape/...    # Specific package
//	go test -run Example       # Examples only
package pkg
