package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/drawshop/pkg/observability"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if _, hit, err := c.Get(ctx, "artifact:abc"); hit || err != nil {
		t.Fatalf("Get on empty cache = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, "artifact:abc", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "artifact:abc")
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Fatalf("Get = %q, %v, %v; want <svg/>, true, nil", data, hit, err)
	}

	if err := c.Delete(ctx, "artifact:abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "artifact:abc"); hit {
		t.Error("entry still present after Delete")
	}
	if err := c.Delete(ctx, "artifact:abc"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(2 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry returned as hit")
	}

	if err := c.Set(ctx, "forever", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without TTL should not expire")
	}
}

func TestFileCacheClearAndStats(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(strings.Repeat("x", 10)), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, size, err := c.Stats()
	if err != nil || n != 3 || size == 0 {
		t.Errorf("Stats = %d entries, %d bytes, %v; want 3 entries", n, size, err)
	}
	removed, err := c.Clear()
	if err != nil || removed != 3 {
		t.Errorf("Clear = %d, %v; want 3, nil", removed, err)
	}
	if n, _, _ := c.Stats(); n != 0 {
		t.Errorf("Stats after Clear = %d entries, want 0", n)
	}
}

type countingHooks struct {
	observability.NoopCacheHooks
	hits, misses, sets int
	types              []string
}

func (h *countingHooks) OnCacheHit(_ context.Context, keyType string) {
	h.hits++
	h.types = append(h.types, keyType)
}
func (h *countingHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *countingHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestNullCacheReportsMisses(t *testing.T) {
	h := &countingHooks{}
	observability.SetCacheHooks(h)
	defer observability.Reset()

	c := NewNullCache()
	key := NewDefaultKeyer().TreeKey("doc", TreeKeyOpts{Format: "svg"})
	_ = c.Set(context.Background(), key, []byte("x"), 0)
	_, _, _ = c.Get(context.Background(), key)
	if h.misses != 1 || h.sets != 0 || h.hits != 0 {
		t.Errorf("hooks = %d misses, %d sets, %d hits; want 1 miss only", h.misses, h.sets, h.hits)
	}
}

func TestFileCacheHooks(t *testing.T) {
	h := &countingHooks{}
	observability.SetCacheHooks(h)
	defer observability.Reset()

	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	key := NewScopedKeyer(nil, "api:").ArtifactKey("doc", ArtifactKeyOpts{Format: "svg"})

	_, _, _ = c.Get(ctx, key)
	_ = c.Set(ctx, key, []byte("x"), 0)
	_, _, _ = c.Get(ctx, key)

	if h.misses != 1 || h.sets != 1 || h.hits != 1 {
		t.Errorf("hooks = %d misses, %d sets, %d hits; want 1 each", h.misses, h.sets, h.hits)
	}
	if len(h.types) != 1 || h.types[0] != "artifact" {
		t.Errorf("hit key types = %v, want [artifact]", h.types)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	ak1 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "png"})
	ak3 := k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg", Standardize: true})
	if ak1 == ak2 || ak1 == ak3 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(ak1, "artifact:") {
		t.Errorf("ArtifactKey should be prefixed: %s", ak1)
	}
	if k.ArtifactKey("hash123", ArtifactKeyOpts{Format: "svg"}) != ak1 {
		t.Error("ArtifactKey should be deterministic")
	}

	tk1 := k.TreeKey("hash123", TreeKeyOpts{Format: "svg"})
	tk2 := k.TreeKey("hash456", TreeKeyOpts{Format: "svg"})
	if tk1 == tk2 || !strings.HasPrefix(tk1, "tree:") {
		t.Errorf("TreeKey unexpected: %s, %s", tk1, tk2)
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "api:")
	key := scoped.ArtifactKey("h", ArtifactKeyOpts{Format: "svg"})
	if !strings.HasPrefix(key, "api:artifact:") {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", key)
	}

	// Should use DefaultKeyer when inner is nil
	nilInner := NewScopedKeyer(nil, "api:")
	if nilInner.TreeKey("h", TreeKeyOpts{}) != "api:"+NewDefaultKeyer().TreeKey("h", TreeKeyOpts{}) {
		t.Error("nil inner keyer should fall back to DefaultKeyer")
	}
}
