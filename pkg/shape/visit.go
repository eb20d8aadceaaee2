package shape

import "github.com/matzehuels/drawshop/pkg/errors"

// VisitFunc receives each leaf shape during [Accept]. Implementations switch
// on the concrete type to select the per-variant behaviour.
type VisitFunc func(Shape) error

// Accept calls fn for s, or for every leaf below s when s is a group or a
// drawing, in insertion order. It stops at the first error fn returns.
func Accept(s Shape, fn VisitFunc) error {
	if fn == nil {
		return errors.New(errors.ErrCodeInvalidArgument, "visitor must not be nil")
	}
	if s == nil {
		return errors.New(errors.ErrCodeInvalidArgument, "shape must not be nil")
	}
	switch c := s.(type) {
	case *Group:
		return c.Leaves(fn)
	case *Drawing:
		return c.Leaves(fn)
	}
	return fn(s)
}

// Count returns the number of leaf shapes below s per kind.
func Count(s Shape) map[Kind]int {
	counts := make(map[Kind]int)
	_ = Accept(s, func(leaf Shape) error {
		counts[leaf.Kind()]++
		return nil
	})
	return counts
}
