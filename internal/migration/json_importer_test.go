package migration

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"serverless-todos-api/internal/models"
	"serverless-todos-api/internal/repositories/memory"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todos.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const seed = `[
  {"id": "1", "title": "Buy milk", "completed": false},
  {"id": "2", "title": "Walk dog", "completed": true},
  {"id": "3", "title": "No completed flag"}
]`

func TestLoad(t *testing.T) {
	importer := NewJSONImporter(nil, writeSeed(t, seed), quietLogger())

	todos, warnings, err := importer.Load()
	require.NoError(t, err)
	assert.Equal(t, []models.ToDo{
		{ID: "1", Title: "Buy milk"},
		{ID: "2", Title: "Walk dog", Completed: true},
	}, todos)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "entry 2")
	assert.Contains(t, warnings[0], "completed")
}

func TestLoadErrors(t *testing.T) {
	_, _, err := NewJSONImporter(nil, writeSeed(t, `{"id":"1"}`), quietLogger()).Load()
	assert.ErrorIs(t, err, ErrNotArray)

	_, _, err = NewJSONImporter(nil, filepath.Join(t.TempDir(), "missing.json"), quietLogger()).Load()
	assert.Error(t, err)
}

func TestImportAndValidate(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	importer := NewJSONImporter(repo, writeSeed(t, seed), quietLogger())

	result, err := importer.Import(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Skipped)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 2, repo.Len())

	require.NoError(t, importer.Validate(ctx))

	_, err = repo.CreateTodo(ctx, models.ToDo{ID: "2", Title: "changed"})
	require.NoError(t, err)
	err = importer.Validate(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 todos differ")
}

func TestImportWithoutRepository(t *testing.T) {
	_, err := NewJSONImporter(nil, writeSeed(t, seed), quietLogger()).Import(context.Background())
	assert.Error(t, err)
}

func TestValidateRepeatedIDs(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	importer := NewJSONImporter(repo, writeSeed(t, `[
  {"id": "1", "title": "first draft", "completed": false},
  {"id": "2", "title": "Walk dog", "completed": false},
  {"id": "1", "title": "final", "completed": true}
]`), quietLogger())

	result, err := importer.Import(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 2, repo.Len())

	require.NoError(t, importer.Validate(ctx))
}

func TestLastByID(t *testing.T) {
	got := lastByID([]models.ToDo{
		{ID: "a", Title: "1"},
		{ID: "b", Title: "2"},
		{ID: "a", Title: "3"},
	})
	assert.Equal(t, []models.ToDo{{ID: "b", Title: "2"}, {ID: "a", Title: "3"}}, got)
}
