package store

import (
	"context"
	"slices"
	"sync"

	"github.com/matzehuels/drawshop/pkg/errors"
)

// MemoryBackend keeps documents in process memory. It is safe for
// concurrent use and is intended for tests and the HTTP server's scratch
// mode.
type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

func (m *MemoryBackend) Name() string { return "memory" }

func (m *MemoryBackend) Read(_ context.Context, id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.docs[id]
	if !ok {
		return nil, notFound(id)
	}
	return slices.Clone(data), nil
}

func (m *MemoryBackend) Write(_ context.Context, id string, data []byte) error {
	if err := errors.ValidateDrawingID(id); err != nil {
		return writeError(err, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[id] = slices.Clone(data)
	return nil
}

func (m *MemoryBackend) Insert(_ context.Context, id string, data []byte) error {
	if err := errors.ValidateDrawingID(id); err != nil {
		return writeError(err, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; ok {
		return alreadyExists(id)
	}
	m.docs[id] = slices.Clone(data)
	return nil
}

func (m *MemoryBackend) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[id]; !ok {
		return notFound(id)
	}
	delete(m.docs, id)
	return nil
}

func (m *MemoryBackend) List(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.docs))
	for id := range m.docs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func (m *MemoryBackend) Close() error { return nil }
