// Package store persists drawings.
//
// A [Store] encodes a [shape.Drawing] into a versioned JSON [Document] and
// hands the bytes to a [Backend]. Backends only move bytes; all format
// knowledge lives in [Encode] and [Decode], so every backend round-trips the
// same document, including the jitter already sampled for hand-drawn shapes.
//
// # Backends
//
//   - [FileBackend]: one .draw file per drawing, written atomically
//   - [SQLiteBackend]: a single table, pure-Go SQLite driver
//   - [RedisBackend]: one string key per drawing
//   - [MongoBackend]: one record per drawing
//   - [MemoryBackend]: process memory, for tests and scratch servers
//
// # Errors
//
// Load fails with NOT_FOUND, CORRUPT or INCOMPATIBLE_VERSION; Save fails
// with WRITE_ERROR. Errors are never retried, and a failed operation leaves
// both the stored document and the in-memory drawing unchanged.
//
// # Usage
//
//	s, err := store.Open(ctx, store.Config{Backend: "sqlite", DSN: "drawings.db"})
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	if err := s.Save(ctx, "sketch", d); err != nil {
//	    return err
//	}
//	d, err = s.Load(ctx, "sketch")
package store
