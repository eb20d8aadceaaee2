// Package cache stores rendered artifacts so repeated exports of an
// unchanged drawing skip rendering.
//
// Keys are derived from the SHA-256 hash of the encoded drawing document
// plus the render options, so any edit to a drawing produces new keys and
// stale entries simply age out. Two implementations are provided:
//   - [FileCache]: entries as files under a directory, for the CLI
//   - [NullCache]: caches nothing, used when caching is disabled
//
// # Usage
//
//	c, _ := cache.NewFileCache(cache.DefaultDir())
//	key := cache.NewDefaultKeyer().ArtifactKey(cache.Hash(doc), cache.ArtifactKeyOpts{Format: "png"})
//	if data, hit, _ := c.Get(ctx, key); hit {
//	    return data
//	}
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Default time-to-live values by entry type.
const (
	// TTLArtifact applies to rendered SVG/PNG/PDF/JSON outputs.
	TTLArtifact = 7 * 24 * time.Hour

	// TTLTree applies to composition-tree diagrams.
	TTLTree = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources.
	Close() error
}

// DefaultDir returns the per-user cache directory, falling back to the
// system temp directory when no user cache directory is available.
func DefaultDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "drawshop")
	}
	return filepath.Join(os.TempDir(), "drawshop-cache")
}
