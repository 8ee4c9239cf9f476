// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"tasklist/internal/storage"
)

// FakeStore is an in-memory implementation of storage.Store for testing.
type FakeStore struct {
	mu    sync.RWMutex
	tasks []storage.Task
	now   time.Time

	// Error injection for testing
	FetchAllErr error
	InsertErr   error
	UpdateErr   error
	DeleteErr   error
	FlushErr    error
	CloseErr    error

	// Call counters
	Inserts int
	Updates int
	Deletes int
	Flushes int
	Closed  bool
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{
		now: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

// AddTask seeds a task without counting as an Insert.
func (f *FakeStore) AddTask(title string) storage.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.newTask(title)
	f.tasks = append(f.tasks, t)
	return t
}

// Titles returns the stored titles in order.
func (f *FakeStore) Titles() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, len(f.tasks))
	for i, t := range f.tasks {
		out[i] = t.Title
	}
	return out
}

// Calls returns the number of mutating calls received.
func (f *FakeStore) Calls() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.Inserts + f.Updates + f.Deletes
}

// newTask builds a task with a fresh ID; the clock ticks one second per task.
func (f *FakeStore) newTask(title string) storage.Task {
	f.now = f.now.Add(time.Second)
	return storage.Task{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: f.now,
		UpdatedAt: f.now,
	}
}

// FetchAll implements storage.Store.
func (f *FakeStore) FetchAll(ctx context.Context) ([]storage.Task, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.FetchAllErr != nil {
		return nil, f.FetchAllErr
	}
	result := make([]storage.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// Insert implements storage.Store.
func (f *FakeStore) Insert(ctx context.Context, title string) (storage.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Inserts++

	if f.InsertErr != nil {
		return storage.Task{}, f.InsertErr
	}
	if err := storage.ValidateTitle(title); err != nil {
		return storage.Task{}, err
	}
	t := f.newTask(title)
	f.tasks = append(f.tasks, t)
	return t, nil
}

// Update implements storage.Store.
func (f *FakeStore) Update(ctx context.Context, id uuid.UUID, title string) (storage.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Updates++

	if f.UpdateErr != nil {
		return storage.Task{}, f.UpdateErr
	}
	if err := storage.ValidateTitle(title); err != nil {
		return storage.Task{}, err
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.now = f.now.Add(time.Second)
			f.tasks[i].Title = title
			f.tasks[i].UpdatedAt = f.now
			return f.tasks[i], nil
		}
	}
	return storage.Task{}, storage.ErrNotFound
}

// Delete implements storage.Store.
func (f *FakeStore) Delete(ctx context.Context, id uuid.UUID) (storage.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Deletes++

	if f.DeleteErr != nil {
		return storage.Task{}, f.DeleteErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return t, nil
		}
	}
	return storage.Task{}, storage.ErrNotFound
}

// Flush implements storage.Store.
func (f *FakeStore) Flush(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Flushes++
	return f.FlushErr
}

// Close implements storage.Store.
func (f *FakeStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Closed = true
	return f.CloseErr
}
