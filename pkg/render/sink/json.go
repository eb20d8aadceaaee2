package sink

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/shape"
	"github.com/matzehuels/drawshop/pkg/store"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact bool
}

// WithJSONCompact drops indentation from the output.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// RenderJSON exports the drawing as its persisted document, so the output
// can be loaded again by any store.
func RenderJSON(d *shape.Drawing, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	data, err := store.Encode(d)
	if err != nil {
		return nil, err
	}
	if !r.compact {
		return data, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "compact json")
	}
	return buf.Bytes(), nil
}
