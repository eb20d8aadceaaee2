package store

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/matzehuels/drawshop/pkg/errors"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS drawings (
	id         TEXT PRIMARY KEY,
	doc        BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteBackend stores documents in a single SQLite table.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if needed) the database at path. The
// special path ":memory:" opens a private in-memory database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteBackend, error) {
	dsn := ":memory:"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir db dir: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?mode=rwc&_pragma=busy_timeout(5000)", path)
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

func (s *SQLiteBackend) Name() string { return "sqlite" }

func (s *SQLiteBackend) Read(ctx context.Context, id string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM drawings WHERE id = ?`, id).Scan(&data)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "query %s", id)
	}
	return data, nil
}

func (s *SQLiteBackend) Write(ctx context.Context, id string, data []byte) error {
	if err := errors.ValidateDrawingID(id); err != nil {
		return writeError(err, id)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO drawings (id, doc, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at`,
		id, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return writeError(err, id)
	}
	return nil
}

func (s *SQLiteBackend) Insert(ctx context.Context, id string, data []byte) error {
	if err := errors.ValidateDrawingID(id); err != nil {
		return writeError(err, id)
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO drawings (id, doc, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING`,
		id, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return writeError(err, id)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return alreadyExists(id)
	}
	return nil
}

func (s *SQLiteBackend) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM drawings WHERE id = ?`, id)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteError, err, "delete %s", id)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return notFound(id)
	}
	return nil
}

func (s *SQLiteBackend) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM drawings ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list drawings")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "scan id")
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *SQLiteBackend) Close() error {
	return s.db.Close()
}
