package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/drawshop/pkg/errors"
)

// Extension is the file extension of stored drawings.
const Extension = ".draw"

// FileBackend stores one document per file.
//
// When rooted in a directory, identifiers are bare names and map to
// <dir>/<id>.draw. With an empty directory, identifiers are file paths and
// are used as given, with [Extension] appended when missing.
type FileBackend struct {
	mu  sync.RWMutex
	dir string
}

// NewFileBackend creates a file backend rooted in dir, creating it if
// needed. An empty dir selects path mode.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	return &FileBackend{dir: dir}, nil
}

func (f *FileBackend) Name() string { return "file" }

// Dir returns the root directory, or "" in path mode.
func (f *FileBackend) Dir() string { return f.dir }

// Path returns the file that holds id.
func (f *FileBackend) Path(id string) (string, error) {
	if f.dir == "" {
		if id == "" {
			return "", errors.New(errors.ErrCodeInvalidID, "drawing path cannot be empty")
		}
		if filepath.Ext(id) == "" {
			id += Extension
		}
		return id, nil
	}
	if err := errors.ValidateDrawingID(id); err != nil {
		return "", err
	}
	return filepath.Join(f.dir, strings.TrimSuffix(id, Extension)+Extension), nil
}

func (f *FileBackend) Read(_ context.Context, id string) ([]byte, error) {
	path, err := f.Path(id)
	if err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, notFound(id)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return data, nil
}

// Write replaces the file atomically: data goes to a temporary file in the
// same directory which is then renamed over the target.
func (f *FileBackend) Write(_ context.Context, id string, data []byte) error {
	path, err := f.Path(id)
	if err != nil {
		return writeError(err, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := writeTemp(path, data)
	if err != nil {
		return writeError(err, id)
	}
	defer os.Remove(tmp)
	if err := os.Rename(tmp, path); err != nil {
		return writeError(err, id)
	}
	return nil
}

// Insert links a fully written temporary file into place. The link fails
// when the target exists, so other processes sharing the directory cannot
// race the check either.
func (f *FileBackend) Insert(_ context.Context, id string, data []byte) error {
	path, err := f.Path(id)
	if err != nil {
		return writeError(err, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := writeTemp(path, data)
	if err != nil {
		return writeError(err, id)
	}
	defer os.Remove(tmp)
	if err := os.Link(tmp, path); err != nil {
		if os.IsExist(err) {
			return alreadyExists(id)
		}
		return writeError(err, id)
	}
	return nil
}

// writeTemp writes data to a synced temporary file next to path and
// returns its name.
func writeTemp(path string, data []byte) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func (f *FileBackend) Delete(_ context.Context, id string) error {
	path, err := f.Path(id)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return notFound(id)
		}
		return errors.Wrap(errors.ErrCodeWriteError, err, "remove %s", path)
	}
	return nil
}

// List returns the names of the .draw files in the root directory, without
// extension. In path mode it lists the current directory.
func (f *FileBackend) List(context.Context) ([]string, error) {
	dir := f.dir
	if dir == "" {
		dir = "."
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read store dir")
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != Extension {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), Extension))
	}
	slices.Sort(ids)
	return ids, nil
}

func (f *FileBackend) Close() error { return nil }
