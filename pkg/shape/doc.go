// Package shape implements the drawing model: primitive shapes in two
// rendering styles, composite groups, and the geometry transforms that act
// on them.
//
// # Variants
//
// There are six leaf variants, one per (style, primitive) pair:
//
//   - [PerfectCircle], [PerfectRectangle], [PerfectLine]: exact geometry
//   - [HanddrawnCircle], [HanddrawnRectangle], [HanddrawnLine]: geometry
//     offset once at construction by samples from [noise.Source]
//
// plus two composites, [Group] and [Drawing]. Every variant satisfies
// [Shape]; the [Circle], [Rectangle] and [Line] interfaces hide whether a
// primitive is perfect or hand-drawn.
//
// # Construction
//
// [NewCircle], [NewRectangle] and [NewLine] pick the variant from a [Style]:
//
//	d := shape.NewDrawing(400, 300, shape.StyleHanddrawn)
//	d.Add(shape.NewRectangle(d.Style(), 10, 10, 50, 50, color.RGBA{A: 255}))
//
// Hand-drawn jitter is sampled exactly once and stored. Decoders rebuild
// hand-drawn shapes with the Restore* functions so that reloading never
// resamples.
//
// # Transforms
//
// Move, MirrorX and MirrorY mutate a shape in place. Mirroring reflects every
// stored coordinate c to axis + (axis - c); composites reflect all members
// about the same axis. [HanddrawnRectangle] additionally permutes its corner
// and edge-midpoint slots after a reflection, see [HanddrawnRectangle.MirrorX].
//
// ToStandard never mutates its receiver. It returns a tree containing only
// perfect shapes: perfect leaves are returned as-is, hand-drawn leaves are
// collapsed to their perfect equivalent, and composites are rebuilt.
//
// # Traversal
//
// [Accept] walks a shape tree in insertion order and calls a [VisitFunc] for
// every leaf. Renderers switch on the concrete leaf type; the set of leaf
// types is closed.
//
// # Ownership
//
// Shapes are plain mutable values owned by whoever holds them. A shape should
// belong to at most one composite at a time. Nothing in this package is safe
// for concurrent mutation.
package shape
