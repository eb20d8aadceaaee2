package store

import (
	"bytes"
	"encoding/json"
	"image/color"

	"seehuhn.de/go/geom/vec"

	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/shape"
)

// FormatVersion is the document version written by [Encode]. [Decode]
// rejects any other version with INCOMPATIBLE_VERSION.
const FormatVersion = 1

// Document is the persisted form of a [shape.Drawing].
type Document struct {
	FormatVersion int        `json:"format_version"`
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	Style         string     `json:"style"`
	Shapes        []ShapeDoc `json:"shapes"`
}

// ShapeDoc is the persisted form of one shape. Which fields are meaningful
// depends on Kind; hand-drawn shapes carry their sampled jitter so that a
// reload reproduces them exactly.
type ShapeDoc struct {
	Kind  string `json:"kind"`
	Color string `json:"color,omitempty"`

	// Circles.
	CX     float64 `json:"cx,omitempty"`
	CY     float64 `json:"cy,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Rectangles and lines.
	X0 float64 `json:"x0,omitempty"`
	Y0 float64 `json:"y0,omitempty"`
	X1 float64 `json:"x1,omitempty"`
	Y1 float64 `json:"y1,omitempty"`
	MX float64 `json:"mx,omitempty"`
	MY float64 `json:"my,omitempty"`

	// Hand-drawn rectangles, in corner slot order.
	Xs    []float64 `json:"xs,omitempty"`
	Ys    []float64 `json:"ys,omitempty"`
	MidXs []float64 `json:"midxs,omitempty"`
	MidYs []float64 `json:"midys,omitempty"`

	// Groups and nested drawings.
	CanvasWidth  int        `json:"canvas_width,omitempty"`
	CanvasHeight int        `json:"canvas_height,omitempty"`
	Style        string     `json:"style,omitempty"`
	Shapes       []ShapeDoc `json:"shapes,omitempty"`
}

// Encode serializes d as an indented JSON document.
func Encode(d *shape.Drawing) ([]byte, error) {
	if d == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "drawing must not be nil")
	}
	doc := Document{
		FormatVersion: FormatVersion,
		Width:         d.Width(),
		Height:        d.Height(),
		Style:         d.Style().String(),
	}
	shapes, err := encodeShapes(d.Shapes())
	if err != nil {
		return nil, err
	}
	doc.Shapes = shapes
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeWriteError, err, "encode drawing")
	}
	return data, nil
}

func encodeShapes(shapes []shape.Shape) ([]ShapeDoc, error) {
	out := make([]ShapeDoc, 0, len(shapes))
	for _, s := range shapes {
		sd, err := encodeShape(s)
		if err != nil {
			return nil, err
		}
		out = append(out, sd)
	}
	return out, nil
}

func encodeShape(s shape.Shape) (ShapeDoc, error) {
	sd := ShapeDoc{Kind: s.Kind().String()}
	if c, ok := s.(shape.Colored); ok {
		sd.Color = shape.FormatColor(c.Color())
	}

	switch v := s.(type) {
	case *shape.PerfectCircle:
		sd.CX, sd.CY, sd.Radius = v.CenterX(), v.CenterY(), v.Radius()
	case *shape.HanddrawnCircle:
		sd.CX, sd.CY, sd.Radius = v.CenterX(), v.CenterY(), v.Radius()
		sd.Width, sd.Height = v.Width(), v.Height()
	case *shape.PerfectRectangle:
		sd.X0, sd.Y0, sd.X1, sd.Y1 = v.X0(), v.Y0(), v.X1(), v.Y1()
	case *shape.PerfectLine:
		sd.X0, sd.Y0, sd.X1, sd.Y1 = v.X0(), v.Y0(), v.X1(), v.Y1()
	case *shape.HanddrawnLine:
		sd.X0, sd.Y0, sd.X1, sd.Y1 = v.X0(), v.Y0(), v.X1(), v.Y1()
		sd.MX, sd.MY = v.MidX(), v.MidY()
	case *shape.HanddrawnRectangle:
		corners, mids := v.Corners(), v.Mids()
		sd.Xs, sd.Ys = make([]float64, 4), make([]float64, 4)
		sd.MidXs, sd.MidYs = make([]float64, 4), make([]float64, 4)
		for i := range 4 {
			sd.Xs[i], sd.Ys[i] = corners[i].X, corners[i].Y
			sd.MidXs[i], sd.MidYs[i] = mids[i].X, mids[i].Y
		}
	case *shape.Group:
		shapes, err := encodeShapes(v.Shapes())
		if err != nil {
			return sd, err
		}
		sd.Shapes = shapes
	case *shape.Drawing:
		shapes, err := encodeShapes(v.Shapes())
		if err != nil {
			return sd, err
		}
		sd.CanvasWidth, sd.CanvasHeight = v.Width(), v.Height()
		sd.Style = v.Style().String()
		sd.Shapes = shapes
	default:
		return sd, errors.New(errors.ErrCodeInvalidKind, "cannot encode shape of type %T", s)
	}
	return sd, nil
}

// Decode parses a document produced by [Encode]. Malformed input fails with
// CORRUPT and any format version other than [FormatVersion] with
// INCOMPATIBLE_VERSION.
func Decode(data []byte) (*shape.Drawing, error) {
	var header struct {
		FormatVersion int `json:"format_version"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCorrupt, err, "parse document")
	}
	if header.FormatVersion != FormatVersion {
		return nil, errors.New(errors.ErrCodeIncompatibleVersion,
			"document format version %d is not supported (want %d)", header.FormatVersion, FormatVersion)
	}

	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCorrupt, err, "parse document")
	}
	if !shape.ValidCanvas(doc.Width, doc.Height) {
		return nil, errors.New(errors.ErrCodeCorrupt, "canvas size %dx%d outside 1..%d", doc.Width, doc.Height, shape.MaxCanvasSize)
	}
	style, err := shape.ParseStyle(doc.Style)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCorrupt, err, "document style")
	}
	shapes, err := decodeShapes(doc.Shapes)
	if err != nil {
		return nil, err
	}
	return shape.NewDrawing(doc.Width, doc.Height, style, shapes...), nil
}

func decodeShapes(docs []ShapeDoc) ([]shape.Shape, error) {
	out := make([]shape.Shape, 0, len(docs))
	for i, sd := range docs {
		s, err := decodeShape(sd)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCorrupt, err, "shape %d", i)
		}
		out = append(out, s)
	}
	return out, nil
}

func decodeShape(sd ShapeDoc) (shape.Shape, error) {
	kind, err := shape.ParseKind(sd.Kind)
	if err != nil {
		return nil, err
	}

	var c color.RGBA
	if !kind.IsComposite() {
		if c, err = shape.ParseColor(sd.Color); err != nil {
			return nil, err
		}
	}

	switch kind {
	case shape.KindPerfectCircle:
		return shape.NewPerfectCircle(sd.CX, sd.CY, sd.Radius, c), nil
	case shape.KindHanddrawnCircle:
		return shape.RestoreHanddrawnCircle(sd.CX, sd.CY, sd.Width, sd.Height, sd.Radius, c), nil
	case shape.KindPerfectRectangle:
		return shape.NewPerfectRectangle(sd.X0, sd.Y0, sd.X1, sd.Y1, c), nil
	case shape.KindPerfectLine:
		return shape.NewPerfectLine(sd.X0, sd.Y0, sd.X1, sd.Y1, c), nil
	case shape.KindHanddrawnLine:
		return shape.RestoreHanddrawnLine(sd.X0, sd.Y0, sd.X1, sd.Y1, sd.MX, sd.MY, c), nil
	case shape.KindHanddrawnRectangle:
		corners, err := points(sd.Xs, sd.Ys)
		if err != nil {
			return nil, err
		}
		mids, err := points(sd.MidXs, sd.MidYs)
		if err != nil {
			return nil, err
		}
		return shape.RestoreHanddrawnRectangle(corners, mids, c), nil
	case shape.KindGroup:
		members, err := decodeShapes(sd.Shapes)
		if err != nil {
			return nil, err
		}
		return shape.NewGroup(members...), nil
	case shape.KindDrawing:
		style, err := shape.ParseStyle(sd.Style)
		if err != nil {
			return nil, err
		}
		members, err := decodeShapes(sd.Shapes)
		if err != nil {
			return nil, err
		}
		return shape.NewDrawing(sd.CanvasWidth, sd.CanvasHeight, style, members...), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidKind, "unhandled kind %s", kind)
}

func points(xs, ys []float64) ([4]vec.Vec2, error) {
	var out [4]vec.Vec2
	if len(xs) != 4 || len(ys) != 4 {
		return out, errors.New(errors.ErrCodeCorrupt, "hand-drawn rectangle needs 4 coordinates per axis, got %d and %d", len(xs), len(ys))
	}
	for i := range out {
		out[i] = vec.Vec2{X: xs[i], Y: ys[i]}
	}
	return out, nil
}
