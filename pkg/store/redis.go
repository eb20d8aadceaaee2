package store

import (
	"context"
	stderrors "errors"
	"fmt"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/drawshop/pkg/errors"
)

// DefaultRedisPrefix namespaces drawing keys in a shared Redis database.
const DefaultRedisPrefix = "drawshop:drawing:"

// RedisBackend stores each document as a plain string value.
type RedisBackend struct {
	client *redis.Client
	prefix string
}

// RedisConfig configures [NewRedisBackend].
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// NewRedisBackend connects to Redis and verifies the connection.
func NewRedisBackend(ctx context.Context, cfg RedisConfig) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	err := retry(ctx, connectAttempts, connectDelay, func() error {
		if err := client.Ping(ctx).Err(); err != nil {
			return &transientError{err}
		}
		return nil
	})
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	return NewRedisBackendFromClient(client, cfg.Prefix), nil
}

// NewRedisBackendFromClient wraps an existing client. An empty prefix uses
// [DefaultRedisPrefix].
func NewRedisBackendFromClient(client *redis.Client, prefix string) *RedisBackend {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisBackend{client: client, prefix: prefix}
}

func (r *RedisBackend) Name() string { return "redis" }

func (r *RedisBackend) key(id string) string { return r.prefix + id }

func (r *RedisBackend) Read(ctx context.Context, id string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "redis get %s", id)
	}
	return data, nil
}

func (r *RedisBackend) Write(ctx context.Context, id string, data []byte) error {
	if err := errors.ValidateDrawingID(id); err != nil {
		return writeError(err, id)
	}
	if err := r.client.Set(ctx, r.key(id), data, 0).Err(); err != nil {
		return writeError(err, id)
	}
	return nil
}

// Insert uses SETNX so the existence check and the write are one command.
func (r *RedisBackend) Insert(ctx context.Context, id string, data []byte) error {
	if err := errors.ValidateDrawingID(id); err != nil {
		return writeError(err, id)
	}
	ok, err := r.client.SetNX(ctx, r.key(id), data, 0).Result()
	if err != nil {
		return writeError(err, id)
	}
	if !ok {
		return alreadyExists(id)
	}
	return nil
}

func (r *RedisBackend) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteError, err, "redis del %s", id)
	}
	if n == 0 {
		return notFound(id)
	}
	return nil
}

// List walks the key space with SCAN so large databases are not blocked.
func (r *RedisBackend) List(ctx context.Context) ([]string, error) {
	var ids []string
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), r.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "redis scan")
	}
	slices.Sort(ids)
	return ids, nil
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}
