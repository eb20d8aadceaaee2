package store

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/observability"
	"github.com/matzehuels/drawshop/pkg/shape"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()
	ctx := context.Background()

	fb, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	sb, err := OpenSQLite(ctx, filepath.Join(t.TempDir(), "drawings.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { sb.Close() })

	return map[string]Backend{
		"memory": NewMemoryBackend(),
		"file":   fb,
		"sqlite": sb,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := New(b)
			want := fixture()

			if err := s.Save(ctx, "sketch", want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := s.Load(ctx, "sketch")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if diff := cmp.Diff(want, got, allowShapes); diff != "" {
				t.Errorf("round trip (-want +got):\n%s", diff)
			}

			// Saving again replaces the document.
			want.Add(shape.NewPerfectCircle(1, 1, 1, shape.Black))
			if err := s.Save(ctx, "sketch", want); err != nil {
				t.Fatalf("second Save: %v", err)
			}
			got, err = s.Load(ctx, "sketch")
			if err != nil {
				t.Fatalf("second Load: %v", err)
			}
			if got.Len() != want.Len() {
				t.Errorf("Len() after replace = %d, want %d", got.Len(), want.Len())
			}
		})
	}
}

func TestStoreNotFound(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := New(b)
			if _, err := s.Load(ctx, "missing"); !errors.Is(err, errors.ErrCodeNotFound) {
				t.Errorf("Load error = %v, want NOT_FOUND", err)
			}
			if err := s.Delete(ctx, "missing"); !errors.Is(err, errors.ErrCodeNotFound) {
				t.Errorf("Delete error = %v, want NOT_FOUND", err)
			}
			ok, err := s.Exists(ctx, "missing")
			if err != nil || ok {
				t.Errorf("Exists = %v, %v; want false, nil", ok, err)
			}
		})
	}
}

func TestStoreInsert(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := New(b)
			if err := s.Insert(ctx, "fresh", fixture()); err != nil {
				t.Fatalf("Insert: %v", err)
			}
			other := shape.NewDrawing(10, 10, shape.StylePerfect)
			if err := s.Insert(ctx, "fresh", other); !errors.Is(err, errors.ErrCodeInvalidID) {
				t.Errorf("second Insert error = %v, want INVALID_ID", err)
			}
			got, err := s.Load(ctx, "fresh")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got.Width() != 320 {
				t.Errorf("Width() = %d, want 320 (first insert kept)", got.Width())
			}
		})
	}
}

func TestStoreInsertConcurrent(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := New(b)
			const n = 8
			var (
				wg   sync.WaitGroup
				mu   sync.Mutex
				wins int
			)
			for range n {
				wg.Add(1)
				go func() {
					defer wg.Done()
					err := s.Insert(ctx, "race", shape.NewDrawing(10, 10, shape.StylePerfect))
					switch {
					case err == nil:
						mu.Lock()
						wins++
						mu.Unlock()
					case !errors.Is(err, errors.ErrCodeInvalidID):
						t.Errorf("Insert error = %v", err)
					}
				}()
			}
			wg.Wait()
			if wins != 1 {
				t.Errorf("%d inserts succeeded, want 1", wins)
			}
		})
	}
}

func TestStoreListDelete(t *testing.T) {
	ctx := context.Background()
	d := shape.NewDrawing(10, 10, shape.StylePerfect)
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			s := New(b)
			for _, id := range []string{"b", "a", "c"} {
				if err := s.Save(ctx, id, d); err != nil {
					t.Fatalf("Save(%s): %v", id, err)
				}
			}
			if err := s.Delete(ctx, "b"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			ids, err := s.List(ctx)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if diff := cmp.Diff([]string{"a", "c"}, ids); diff != "" {
				t.Errorf("List (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStoreRejectsUnsafeIDs(t *testing.T) {
	ctx := context.Background()
	d := shape.NewDrawing(10, 10, shape.StylePerfect)
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, id := range []string{"", "../escape", "a/b", "nul\x00"} {
				if err := New(b).Save(ctx, id, d); !errors.Is(err, errors.ErrCodeWriteError) {
					t.Errorf("Save(%q) error = %v, want WRITE_ERROR", id, err)
				}
			}
		})
	}
}

func TestLoadCorruptAndIncompatible(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBackend()
	s := New(b)

	_ = b.Write(ctx, "garbage", []byte("not a drawing"))
	if _, err := s.Load(ctx, "garbage"); !errors.Is(err, errors.ErrCodeCorrupt) {
		t.Errorf("Load(garbage) error = %v, want CORRUPT", err)
	}

	_ = b.Write(ctx, "future", []byte(`{"format_version":99}`))
	if _, err := s.Load(ctx, "future"); !errors.Is(err, errors.ErrCodeIncompatibleVersion) {
		t.Errorf("Load(future) error = %v, want INCOMPATIBLE_VERSION", err)
	}
}

func TestFileBackendPathMode(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	b, err := NewFileBackend("")
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	s := New(b)

	id := filepath.Join(dir, "nested", "..", "picture")
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, id, shape.NewDrawing(5, 5, shape.StylePerfect)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "picture.draw")); err != nil {
		t.Errorf("expected picture.draw to exist: %v", err)
	}
	if _, err := s.Load(ctx, filepath.Join(dir, "picture.draw")); err != nil {
		t.Errorf("Load with explicit extension: %v", err)
	}
}

func TestFileBackendWriteFailureKeepsOldDocument(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Write(ctx, "keep", []byte("v1")); err != nil {
		t.Fatal(err)
	}

	// A directory in place of the target makes the final rename fail.
	if err := b.Write(ctx, "blocked", []byte("x")); err != nil {
		t.Fatal(err)
	}
	path, _ := b.Path("blocked")
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(path, "child"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := b.Write(ctx, "blocked", []byte("y")); !errors.Is(err, errors.ErrCodeWriteError) {
		t.Errorf("Write over directory error = %v, want WRITE_ERROR", err)
	}

	data, err := b.Read(ctx, "keep")
	if err != nil || string(data) != "v1" {
		t.Errorf("Read(keep) = %q, %v; want v1", data, err)
	}
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temporary file %s left behind", e.Name())
		}
	}
}

func TestRedisBackendValidatesBeforeNetwork(t *testing.T) {
	// Nothing listens on this address; validation must fail first.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
	b := NewRedisBackendFromClient(client, "")
	defer b.Close()

	if b.key("x") != DefaultRedisPrefix+"x" {
		t.Errorf("key = %q", b.key("x"))
	}
	if err := b.Write(context.Background(), "../x", nil); !errors.Is(err, errors.ErrCodeWriteError) {
		t.Errorf("Write error = %v, want WRITE_ERROR", err)
	}
	if err := b.Insert(context.Background(), "../x", nil); !errors.Is(err, errors.ErrCodeWriteError) {
		t.Errorf("Insert error = %v, want WRITE_ERROR", err)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, Config{Backend: BackendFile, Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("Open(file): %v", err)
	}
	if s.Backend().Name() != "file" {
		t.Errorf("backend = %s, want file", s.Backend().Name())
	}
	s.Close()

	s, err = Open(ctx, Config{Backend: BackendSQLite, DSN: ":memory:"})
	if err != nil {
		t.Fatalf("Open(sqlite): %v", err)
	}
	s.Close()

	if _, err := Open(ctx, Config{Backend: "tape"}); err == nil {
		t.Error("Open(tape) succeeded, want error")
	}
}

type recordingHooks struct {
	observability.NoopStoreHooks
	loads, saves int
	lastErr      error
}

func (r *recordingHooks) OnLoad(_ context.Context, _, _ string, _ time.Duration, err error) {
	r.loads++
	r.lastErr = err
}

func (r *recordingHooks) OnSave(context.Context, string, string, int, time.Duration, error) {
	r.saves++
}

func TestStoreHooks(t *testing.T) {
	h := &recordingHooks{}
	observability.SetStoreHooks(h)
	defer observability.Reset()

	ctx := context.Background()
	s := New(NewMemoryBackend())
	_ = s.Save(ctx, "a", shape.NewDrawing(1, 1, shape.StylePerfect))
	_, _ = s.Load(ctx, "missing")

	if h.saves != 1 || h.loads != 1 {
		t.Errorf("hooks saw %d saves and %d loads, want 1 and 1", h.saves, h.loads)
	}
	if !errors.Is(h.lastErr, errors.ErrCodeNotFound) {
		t.Errorf("OnLoad error = %v, want NOT_FOUND", h.lastErr)
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if a == b || len(a) != 36 {
		t.Errorf("NewID() = %q, %q", a, b)
	}
	if err := errors.ValidateDrawingID(a); err != nil {
		t.Errorf("NewID() not a valid id: %v", err)
	}
}
