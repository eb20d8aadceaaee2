package store

import (
	"context"
	"fmt"
)

// Backend names accepted by [Open].
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Backends lists every backend name in the order they are documented.
var Backends = []string{BackendFile, BackendSQLite, BackendRedis, BackendMongo, BackendMemory}

// Config selects and configures a backend.
type Config struct {
	Backend string

	// Dir is the root directory of the file backend. Empty selects path mode.
	Dir string

	// DSN is the sqlite database path.
	DSN string

	Redis RedisConfig
	Mongo MongoConfig
}

// Open creates the configured backend and wraps it in a [Store]. An empty
// backend name selects the file backend.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	var (
		b   Backend
		err error
	)
	switch cfg.Backend {
	case "", BackendFile:
		b, err = NewFileBackend(cfg.Dir)
	case BackendSQLite:
		b, err = OpenSQLite(ctx, cfg.DSN)
	case BackendRedis:
		b, err = NewRedisBackend(ctx, cfg.Redis)
	case BackendMongo:
		b, err = NewMongoBackend(ctx, cfg.Mongo)
	case BackendMemory:
		b = NewMemoryBackend()
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	return New(b), nil
}
