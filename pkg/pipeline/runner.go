package pipeline

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/drawshop/pkg/cache"
	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/shape"
	"github.com/matzehuels/drawshop/pkg/store"
)

// Runner encapsulates drawing operations with caching.
// Both CLI and API use this to avoid duplicating editing and caching logic.
//
// The Runner is stateless except for its store, cache and logger; it does
// not hold on to drawings. Multiple goroutines can safely use the same
// Runner, but concurrent edits of the same drawing are last-writer-wins.
type Runner struct {
	Store  *store.Store
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner over the given store.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(s *store.Store, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Store:  s,
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Load reads the drawing stored under id.
func (r *Runner) Load(ctx context.Context, id string) (*shape.Drawing, error) {
	d, err := r.Store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("loaded drawing", "id", id, "shapes", d.Len(), "style", d.Style())
	return d, nil
}

// Save writes d under id, replacing any previous document.
func (r *Runner) Save(ctx context.Context, id string, d *shape.Drawing) error {
	if err := r.Store.Save(ctx, id, d); err != nil {
		return err
	}
	r.Logger.Debug("saved drawing", "id", id, "shapes", d.Len())
	return nil
}

// Create saves a new empty drawing. An empty id is replaced by a generated
// one, which is returned. Create never replaces a stored drawing: an id
// that is already taken fails with INVALID_ID, even under concurrent calls.
func (r *Runner) Create(ctx context.Context, id string, width, height int, style shape.Style) (string, *shape.Drawing, error) {
	d, err := NewCanvas(width, height, style)
	if err != nil {
		return "", nil, err
	}
	if id == "" {
		id = store.NewID()
	}
	if err := r.Store.Insert(ctx, id, d); err != nil {
		return "", nil, err
	}
	r.Logger.Info("created drawing", "id", id, "width", width, "height", height, "style", style)
	return id, d, nil
}

// NewCanvas returns an empty drawing after checking the canvas size.
func NewCanvas(width, height int, style shape.Style) (*shape.Drawing, error) {
	if !shape.ValidCanvas(width, height) {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			"canvas size must be within 1..%d, got %dx%d", shape.MaxCanvasSize, width, height)
	}
	return shape.NewDrawing(width, height, style), nil
}

// Update loads the drawing under id, applies fn and saves the result.
// Nothing is written when fn fails.
func (r *Runner) Update(ctx context.Context, id string, fn func(*shape.Drawing) error) (*shape.Drawing, error) {
	d, err := r.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	if err := r.Save(ctx, id, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Mirror flips the stored drawing about its own centre and saves it.
// Vertical mirrors across the vertical axis through the centre.
func (r *Runner) Mirror(ctx context.Context, id string, vertical bool) (*shape.Drawing, error) {
	return r.Update(ctx, id, func(d *shape.Drawing) error {
		MirrorDrawing(d, vertical)
		r.Logger.Debug("mirrored drawing", "id", id, "vertical", vertical)
		return nil
	})
}

// MirrorDrawing flips every shape of d about the canvas centre.
// Vertical mirrors x coordinates; otherwise y coordinates are mirrored.
func MirrorDrawing(d *shape.Drawing, vertical bool) {
	if vertical {
		d.MirrorX(d.CenterX())
		return
	}
	d.MirrorY(d.CenterY())
}

// Standardize converts the drawing under id to its perfect version and
// saves it under target, or over the original when target is empty.
func (r *Runner) Standardize(ctx context.Context, id, target string) (*shape.Drawing, error) {
	d, err := r.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	std := d.Standardize()
	if target == "" {
		target = id
	}
	if err := r.Save(ctx, target, std); err != nil {
		return nil, err
	}
	r.Logger.Info("standardized drawing", "id", id, "target", target, "shapes", std.Len())
	return std, nil
}

// Area returns the total area of the perfect drawing under id.
func (r *Runner) Area(ctx context.Context, id string) (float64, error) {
	d, err := r.Load(ctx, id)
	if err != nil {
		return 0, err
	}
	return shape.Area(d)
}

// Close releases resources held by the runner.
func (r *Runner) Close() error {
	var errs []error
	if r.Cache != nil {
		if err := r.Cache.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if r.Store != nil {
		if err := r.Store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
