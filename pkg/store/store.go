package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/observability"
	"github.com/matzehuels/drawshop/pkg/shape"
)

// Backend stores encoded documents by identifier.
//
// Read fails with NOT_FOUND for an unknown identifier. Write replaces any
// existing document and fails with WRITE_ERROR; a failed write must leave
// the previous document intact. Insert stores data only when id is free,
// as one atomic step, and fails with INVALID_ID when it is taken.
type Backend interface {
	Name() string
	Read(ctx context.Context, id string) ([]byte, error)
	Write(ctx context.Context, id string, data []byte) error
	Insert(ctx context.Context, id string, data []byte) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
	Close() error
}

// Store loads and saves drawings through a [Backend].
type Store struct {
	backend Backend
}

// New wraps backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Backend returns the underlying backend.
func (s *Store) Backend() Backend { return s.backend }

// Load reads and decodes the drawing stored under id. It fails with
// NOT_FOUND, CORRUPT or INCOMPATIBLE_VERSION.
func (s *Store) Load(ctx context.Context, id string) (d *shape.Drawing, err error) {
	start := time.Now()
	defer func() {
		observability.Store().OnLoad(ctx, s.backend.Name(), id, time.Since(start), err)
	}()

	data, err := s.backend.Read(ctx, id)
	if err != nil {
		return nil, err
	}
	d, err = Decode(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "load %s", id)
	}
	return d, nil
}

// Save encodes d and stores it under id, replacing any previous version.
// It fails with WRITE_ERROR; d is never modified.
func (s *Store) Save(ctx context.Context, id string, d *shape.Drawing) (err error) {
	start := time.Now()
	size := 0
	defer func() {
		observability.Store().OnSave(ctx, s.backend.Name(), id, size, time.Since(start), err)
	}()

	data, err := Encode(d)
	if err != nil {
		return err
	}
	size = len(data)
	return s.backend.Write(ctx, id, data)
}

// Insert is [Store.Save] for a new drawing: it fails with INVALID_ID when
// id is already taken and never replaces a stored document.
func (s *Store) Insert(ctx context.Context, id string, d *shape.Drawing) (err error) {
	start := time.Now()
	size := 0
	defer func() {
		observability.Store().OnSave(ctx, s.backend.Name(), id, size, time.Since(start), err)
	}()

	data, err := Encode(d)
	if err != nil {
		return err
	}
	size = len(data)
	return s.backend.Insert(ctx, id, data)
}

// Exists reports whether a document is stored under id.
func (s *Store) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.backend.Read(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errors.ErrCodeNotFound):
		return false, nil
	}
	return false, err
}

// List returns the stored identifiers in ascending order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	return s.backend.List(ctx)
}

// Delete removes the document stored under id. Deleting an unknown id fails
// with NOT_FOUND.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.backend.Delete(ctx, id)
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// NewID returns a fresh random drawing identifier.
func NewID() string {
	return uuid.NewString()
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "drawing %q not found", id)
}

func alreadyExists(id string) error {
	return errors.New(errors.ErrCodeInvalidID, "drawing %q already exists", id)
}

func writeError(err error, id string) error {
	return errors.Wrap(errors.ErrCodeWriteError, err, "save %s", id)
}
