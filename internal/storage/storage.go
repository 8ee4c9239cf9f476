// Package storage defines the backend-agnostic interface for task persistence.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no record has the requested ID.
	ErrNotFound = errors.New("task not found")

	// ErrEmptyTitle is returned when a title is empty or whitespace only.
	ErrEmptyTitle = errors.New("title required")
)

// Store defines the interface for task persistence.
// Every mutating call is committed to durable storage before it returns.
// The UI and commands never import a database driver directly.
type Store interface {
	// FetchAll returns all persisted tasks in storage order.
	FetchAll(ctx context.Context) ([]Task, error)

	// Insert creates and persists a new task.
	Insert(ctx context.Context, title string) (Task, error)

	// Update replaces the title of the task with the given ID.
	// Returns ErrNotFound if no such task exists.
	Update(ctx context.Context, id uuid.UUID, title string) (Task, error)

	// Delete removes the task with the given ID and returns the removed record.
	// Returns ErrNotFound if no such task exists.
	Delete(ctx context.Context, id uuid.UUID) (Task, error)

	// Flush moves any buffered writes into the main database file.
	Flush(ctx context.Context) error

	// Close flushes and releases the store.
	Close() error
}
