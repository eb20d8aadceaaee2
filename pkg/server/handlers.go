package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/drawshop/pkg/buildinfo"
	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/pipeline"
	"github.com/matzehuels/drawshop/pkg/shape"
	"github.com/matzehuels/drawshop/pkg/store"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
	"dot":               "text/vnd.graphviz",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.runner.Store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"ids": ids})
}

type createRequest struct {
	ID     string `json:"id,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Style  string `json:"style,omitempty"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			s.writeError(w, err)
			return
		}
	}
	if req.Width == 0 {
		req.Width = s.defaults.Width
	}
	if req.Height == 0 {
		req.Height = s.defaults.Height
	}
	style := s.defaults.Style
	if req.Style != "" {
		var err error
		if style, err = shape.ParseStyle(req.Style); err != nil {
			s.writeError(w, err)
			return
		}
	}
	id, d, err := s.runner.Create(r.Context(), req.ID, req.Width, req.Height, style)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Location", "/drawings/"+id)
	writeJSON(w, http.StatusCreated, summarize(id, d))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	d, err := s.runner.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeDocument(w, http.StatusOK, d)
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidArgument, err, "read body"))
		return
	}
	d, err := store.Decode(data)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.runner.Save(r.Context(), chi.URLParam(r, "id"), d); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.runner.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// shapeRequest adds one shape. Circles use cx, cy and radius; rectangles
// and lines use x0, y0, x1 and y1.
type shapeRequest struct {
	Type   string  `json:"type"`
	CX     float64 `json:"cx"`
	CY     float64 `json:"cy"`
	Radius float64 `json:"radius"`
	X0     float64 `json:"x0"`
	Y0     float64 `json:"y0"`
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	Color  string  `json:"color,omitempty"`
}

func (s *Server) handleAddShape(w http.ResponseWriter, r *http.Request) {
	var req shapeRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	c := shape.Black
	if req.Color != "" {
		var err error
		if c, err = shape.ParseColor(req.Color); err != nil {
			s.writeError(w, err)
			return
		}
	}

	id := chi.URLParam(r, "id")
	d, err := s.runner.Update(r.Context(), id, func(d *shape.Drawing) error {
		switch req.Type {
		case "circle":
			if req.Radius < 0 {
				return errors.New(errors.ErrCodeInvalidArgument, "radius must not be negative")
			}
			d.Add(d.Circle(req.CX, req.CY, req.Radius, c))
		case "rectangle", "rect":
			x0, y0, x1, y1 := shape.NormalizeBox(req.X0, req.Y0, req.X1, req.Y1)
			d.Add(d.Rectangle(x0, y0, x1, y1, c))
		case "line":
			d.Add(d.Line(req.X0, req.Y0, req.X1, req.Y1, c))
		default:
			return errors.New(errors.ErrCodeInvalidKind, "unknown shape type %q (must be circle, rectangle or line)", req.Type)
		}
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, summarize(id, d))
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	dx, err1 := intParam(r, "dx")
	dy, err2 := intParam(r, "dy")
	if err := firstErr(err1, err2); err != nil {
		s.writeError(w, err)
		return
	}
	id := chi.URLParam(r, "id")
	d, err := s.runner.Update(r.Context(), id, func(d *shape.Drawing) error {
		d.Move(dx, dy)
		return nil
	})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summarize(id, d))
}

func (s *Server) handleMirror(w http.ResponseWriter, r *http.Request) {
	var vertical bool
	switch axis := r.URL.Query().Get("axis"); axis {
	case "vertical", "v", "x":
		vertical = true
	case "", "horizontal", "h", "y":
	default:
		s.writeError(w, errors.New(errors.ErrCodeInvalidArgument, "unknown mirror axis %q", axis))
		return
	}
	id := chi.URLParam(r, "id")
	d, err := s.runner.Mirror(r.Context(), id, vertical)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summarize(id, d))
}

func (s *Server) handleStandardize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	target := r.URL.Query().Get("target")
	d, err := s.runner.Standardize(r.Context(), id, target)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if target == "" {
		target = id
	}
	writeJSON(w, http.StatusOK, summarize(target, d))
}

func (s *Server) handleArea(w http.ResponseWriter, r *http.Request) {
	area, err := s.runner.Area(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"area": area})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, err)
		return
	}
	opts := pipeline.Options{Formats: []string{format}, Scale: s.defaults.Scale}
	if v := r.URL.Query().Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.writeError(w, errors.New(errors.ErrCodeInvalidArgument, "invalid scale %q", v))
			return
		}
		opts.Scale = scale
	}
	opts.Standardize = r.URL.Query().Get("standardize") == "true"

	d, err := s.runner.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	res, err := s.runner.Render(r.Context(), d, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("ETag", strconv.Quote(res.DocHash))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	opts := pipeline.TreeOptions{
		Format:   r.URL.Query().Get("format"),
		Detailed: r.URL.Query().Get("detailed") == "true",
	}
	d, err := s.runner.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	data, err := s.runner.Tree(r.Context(), d, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if opts.Format == "" {
		opts.Format = pipeline.FormatSVG
	}
	w.Header().Set("Content-Type", contentTypes[opts.Format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// =============================================================================
// Helpers
// =============================================================================

type summary struct {
	ID     string         `json:"id"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Style  string         `json:"style"`
	Shapes int            `json:"shapes"`
	Kinds  map[string]int `json:"kinds,omitempty"`
}

func summarize(id string, d *shape.Drawing) summary {
	kinds := make(map[string]int)
	for k, n := range shape.Count(d) {
		kinds[k.String()] = n
	}
	return summary{ID: id, Width: d.Width(), Height: d.Height(), Style: d.Style().String(), Shapes: d.Len(), Kinds: kinds}
}

func (s *Server) writeDocument(w http.ResponseWriter, status int, d *shape.Drawing) {
	data, err := store.Encode(d)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidArgument, err, "invalid request body")
	}
	return nil
}

func intParam(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidArgument, "%s must be an integer, got %q", name, v)
	}
	return n, nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidArgument, errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidKind,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidID, errors.ErrCodeIndexOutOfRange:
		return http.StatusBadRequest
	case errors.ErrCodeCorrupt, errors.ErrCodeIncompatibleVersion:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusFor(code)
	if status >= 500 {
		s.logger.Error("request failed", "code", code, "err", err)
	}
	writeJSON(w, status, map[string]errorBody{"error": {Code: code, Message: errors.UserMessage(err)}})
}
