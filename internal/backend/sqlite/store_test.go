package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/backend/sqlite"
	"tasklist/internal/storage"
)

func openStore(t *testing.T) (*sqlite.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "tasklist.db")
	s, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func titles(tasks []storage.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestOpen_CreatesSchema(t *testing.T) {
	s, path := openStore(t)
	ctx := context.Background()

	assert.Equal(t, path, s.Path())
	assert.FileExists(t, path)

	v, err := s.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	tasks, err := s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestInsert_FetchAllIncludesTask(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	for _, title := range []string{"Buy milk", "Call mom", "  padded  ", "émoji ✓"} {
		created, err := s.Insert(ctx, title)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, title, created.Title)
		assert.False(t, created.CreatedAt.IsZero())

		tasks, err := s.FetchAll(ctx)
		require.NoError(t, err)
		assert.Contains(t, tasks, created)
	}
}

func TestInsert_EmptyTitle(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	for _, title := range []string{"", "   ", "\t"} {
		_, err := s.Insert(ctx, title)
		assert.ErrorIs(t, err, storage.ErrEmptyTitle)
	}

	tasks, err := s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestFetchAll_InsertionOrder(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		_, err := s.Insert(ctx, title)
		require.NoError(t, err)
	}

	tasks, err := s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, titles(tasks))
}

func TestFetchAll_Idempotent(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	for _, title := range []string{"a", "b"} {
		_, err := s.Insert(ctx, title)
		require.NoError(t, err)
	}

	first, err := s.FetchAll(ctx)
	require.NoError(t, err)
	second, err := s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUpdate(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	created, err := s.Insert(ctx, "Buy milk")
	require.NoError(t, err)
	other, err := s.Insert(ctx, "Other")
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, "Buy oat milk")
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Buy oat milk", updated.Title)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	tasks, err := s.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, []string{"Buy oat milk", "Other"}, titles(tasks))
	assert.Equal(t, other, tasks[1])
}

func TestUpdate_Errors(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	created, err := s.Insert(ctx, "Buy milk")
	require.NoError(t, err)

	_, err = s.Update(ctx, uuid.New(), "x")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.Update(ctx, created.ID, " ")
	assert.ErrorIs(t, err, storage.ErrEmptyTitle)

	tasks, err := s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Buy milk"}, titles(tasks))
}

func TestDelete(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	keep, err := s.Insert(ctx, "keep")
	require.NoError(t, err)
	gone, err := s.Insert(ctx, "gone")
	require.NoError(t, err)

	removed, err := s.Delete(ctx, gone.ID)
	require.NoError(t, err)
	assert.Equal(t, gone, removed)

	tasks, err := s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []storage.Task{keep}, tasks)

	_, err = s.Delete(ctx, gone.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestReopen_PersistsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklist.db")
	ctx := context.Background()

	s, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	a, err := s.Insert(ctx, "Buy milk")
	require.NoError(t, err)
	b, err := s.Insert(ctx, "Walk dog")
	require.NoError(t, err)
	_, err = s.Update(ctx, a.ID, "Buy oat milk")
	require.NoError(t, err)
	_, err = s.Delete(ctx, b.ID)
	require.NoError(t, err)
	require.NoError(t, s.Flush(ctx))
	require.NoError(t, s.Close())

	s, err = sqlite.Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	tasks, err := s.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, a.ID, tasks[0].ID)
	assert.Equal(t, "Buy oat milk", tasks[0].Title)
}

func TestScenario_AddEditDelete(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	created, err := s.Insert(ctx, "Buy milk")
	require.NoError(t, err)
	tasks, err := s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Buy milk"}, titles(tasks))

	_, err = s.Update(ctx, created.ID, "Buy oat milk")
	require.NoError(t, err)
	tasks, err = s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Buy oat milk"}, titles(tasks))

	_, err = s.Delete(ctx, created.ID)
	require.NoError(t, err)
	tasks, err = s.FetchAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestOperationsAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklist.db")
	ctx := context.Background()

	s, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.Insert(ctx, "late")
	assert.Error(t, err)
	_, err = s.FetchAll(ctx)
	assert.Error(t, err)
}
