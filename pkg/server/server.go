// Package server exposes drawings over an HTTP API.
//
// Routes:
//
//	GET    /healthz
//	GET    /drawings                         list ids
//	POST   /drawings                         create an empty drawing
//	GET    /drawings/{id}                    persisted document
//	PUT    /drawings/{id}                    replace with a document
//	DELETE /drawings/{id}
//	POST   /drawings/{id}/shapes             add a shape in the drawing's style
//	POST   /drawings/{id}/move?dx=&dy=       translate every shape
//	POST   /drawings/{id}/mirror?axis=       axis is "vertical" or "horizontal"
//	POST   /drawings/{id}/standardize?target=
//	GET    /drawings/{id}/area
//	GET    /drawings/{id}/export/{format}    svg, png, pdf or json
//	GET    /drawings/{id}/tree?format=&detailed=
//
// Errors are returned as {"error": {"code": "...", "message": "..."}} with a
// status derived from the error code.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/drawshop/pkg/buildinfo"
	"github.com/matzehuels/drawshop/pkg/observability"
	"github.com/matzehuels/drawshop/pkg/pipeline"
	"github.com/matzehuels/drawshop/pkg/shape"
)

// maxBodyBytes bounds request bodies (documents and shape requests).
const maxBodyBytes = 8 << 20

// Defaults are applied to requests that omit a value.
type Defaults struct {
	Width  int
	Height int
	Style  shape.Style
	Scale  float64
}

// Server serves the drawing API.
type Server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	defaults Defaults
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithDefaults overrides the defaults for new drawings and exports.
func WithDefaults(d Defaults) Option {
	return func(s *Server) { s.defaults = d }
}

// New creates a server over the runner's store and cache.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
		defaults: Defaults{
			Width:  pipeline.DefaultWidth,
			Height: pipeline.DefaultHeight,
			Style:  shape.StylePerfect,
			Scale:  pipeline.DefaultScale,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxBodyBytes))
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/drawings", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Post("/", s.handleCreate)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGet)
			r.Put("/", s.handlePut)
			r.Delete("/", s.handleDelete)
			r.Post("/shapes", s.handleAddShape)
			r.Post("/move", s.handleMove)
			r.Post("/mirror", s.handleMirror)
			r.Post("/standardize", s.handleStandardize)
			r.Get("/area", s.handleArea)
			r.Get("/export/{format}", s.handleExport)
			r.Get("/tree", s.handleTree)
		})
	})
	return r
}

// observe reports every request to the HTTP hooks and the logger.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()
		observability.HTTP().OnRequest(ctx, r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("Server", buildinfo.ServerHeader())
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		dur := time.Since(start)
		observability.HTTP().OnResponse(ctx, r.Method, r.URL.Path, status, dur)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", dur,
			"request_id", middleware.GetReqID(ctx))
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
