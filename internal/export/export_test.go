package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/export"
	"tasklist/internal/storage"
)

func sampleTasks() []storage.Task {
	created := time.Date(2026, 1, 19, 10, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 1, 19, 14, 0, 0, 0, time.UTC)
	return []storage.Task{
		{ID: uuid.MustParse("6f1c2b1e-0d0a-4c3b-9a66-1d2f3e4a5b6c"), Title: "Buy milk", CreatedAt: created, UpdatedAt: updated},
		{ID: uuid.MustParse("0b7e8f9a-1c2d-4e3f-8a9b-0c1d2e3f4a5b"), Title: "Café, then \"gym\"", CreatedAt: created, UpdatedAt: created},
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, "json", sampleTasks()))

	var got []storage.Task
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "Buy milk", got[0].Title)
	assert.Contains(t, buf.String(), `"created_at": "2026-01-19T10:00:00Z"`)
}

func TestWrite_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, "JSON", nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, "csv", sampleTasks()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"id", "title", "created_at", "updated_at"}, records[0])
	assert.Equal(t, []string{
		"6f1c2b1e-0d0a-4c3b-9a66-1d2f3e4a5b6c", "Buy milk",
		"2026-01-19T10:00:00Z", "2026-01-19T14:00:00Z",
	}, records[1])
	assert.Equal(t, "Café, then \"gym\"", records[2][1])
}

func TestWrite_PDF(t *testing.T) {
	for _, tasks := range [][]storage.Task{sampleTasks(), nil} {
		var buf bytes.Buffer
		require.NoError(t, export.Write(&buf, "pdf", tasks))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "missing PDF header")
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := export.Write(&buf, "xml", sampleTasks())
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
	assert.Zero(t, buf.Len())
}
