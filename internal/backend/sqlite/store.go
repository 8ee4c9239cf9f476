// Package sqlite implements the storage.Store interface on a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"tasklist/internal/storage"
)

const (
	// DriverName is the database/sql driver registered by go-sqlite3.
	DriverName = "sqlite3"

	// BusyTimeout is how long a writer waits on a locked database.
	BusyTimeout = 5 * time.Second

	// OpenTimeout bounds the ping and migration steps of Open.
	OpenTimeout = 10 * time.Second

	taskColumns = "id, title, created_at, updated_at"
)

// Store implements storage.Store using a SQLite database file.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database at path and applies
// pending schema migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	db, err := sql.Open(DriverName, dsn(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	ctx, cancel := context.WithTimeout(ctx, OpenTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	// SQLite has a single writer; one connection keeps that explicit.
	db.SetMaxOpenConns(1)

	return &Store{db: db, path: path}, nil
}

func dsn(path string) string {
	return fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=%d&_foreign_keys=on",
		path, BusyTimeout.Milliseconds())
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// FetchAll implements storage.Store. Tasks are returned in insertion order.
func (s *Store) FetchAll(ctx context.Context) ([]storage.Task, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+taskColumns+" FROM tasks ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var list []storage.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return list, nil
}

// Insert implements storage.Store.
func (s *Store) Insert(ctx context.Context, title string) (storage.Task, error) {
	if err := storage.ValidateTitle(title); err != nil {
		return storage.Task{}, err
	}

	now := time.Now().UTC()
	t := storage.Task{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO tasks (id, title, created_at, updated_at) VALUES (?, ?, ?, ?)",
			t.ID, t.Title, t.CreatedAt.UnixNano(), t.UpdatedAt.UnixNano())
		return err
	})
	if err != nil {
		return storage.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return t, nil
}

// Update implements storage.Store.
func (s *Store) Update(ctx context.Context, id uuid.UUID, title string) (storage.Task, error) {
	if err := storage.ValidateTitle(title); err != nil {
		return storage.Task{}, err
	}

	var t storage.Task
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			"UPDATE tasks SET title = ?, updated_at = ? WHERE id = ? RETURNING "+taskColumns,
			title, time.Now().UTC().UnixNano(), id)
		var err error
		t, err = scanTask(row)
		return err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Task{}, storage.ErrNotFound
		}
		return storage.Task{}, fmt.Errorf("update task %s: %w", id, err)
	}
	return t, nil
}

// Delete implements storage.Store.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) (storage.Task, error) {
	var t storage.Task
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, "DELETE FROM tasks WHERE id = ? RETURNING "+taskColumns, id)
		var err error
		t, err = scanTask(row)
		return err
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Task{}, storage.ErrNotFound
		}
		return storage.Task{}, fmt.Errorf("delete task %s: %w", id, err)
	}
	return t, nil
}

// Flush implements storage.Store by checkpointing the write-ahead log.
func (s *Store) Flush(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("checkpoint: %w", err)
	}
	return nil
}

// Close implements storage.Store.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), OpenTimeout)
	defer cancel()

	flushErr := s.Flush(ctx)
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}
	return flushErr
}

// inTx runs fn in a transaction and commits it, rolling back on error.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(sc scanner) (storage.Task, error) {
	var (
		t                storage.Task
		created, updated int64
	)
	if err := sc.Scan(&t.ID, &t.Title, &created, &updated); err != nil {
		return storage.Task{}, err
	}
	t.CreatedAt = time.Unix(0, created).UTC()
	t.UpdatedAt = time.Unix(0, updated).UTC()
	return t, nil
}
