package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"serverless-todos-api/internal/database"
	"serverless-todos-api/internal/models"
	"serverless-todos-api/internal/repositories"
	"serverless-todos-api/internal/repositories/repotest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	cm := database.NewConnectionManager(&database.ConnectionConfig{
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
		AutoMigrate:  true,
		Logger:       logger,
	})
	require.NoError(t, cm.Connect())
	t.Cleanup(func() { cm.Close() })

	return cm.GetDB()
}

func TestTodoRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTodoRepository(db, nil)

	repotest.Run(t, func(*testing.T) repositories.TodoRepository { return repo })
}

func TestTodoRepository_RowInsertedOutsideRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTodoRepository(db, nil)

	_, err := db.Exec(`INSERT INTO todos (id, title, completed) VALUES ('legacy', '', 0)`)
	require.NoError(t, err)

	resp, err := repo.ReadTodo(context.Background(), "legacy")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"legacy","title":"","completed":false}`, resp.Body)
}

func TestTodoRepository_StorageError(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTodoRepository(db, nil)
	require.NoError(t, db.Close())

	_, err := repo.CreateTodo(context.Background(), models.ToDo{ID: "1"})
	assert.True(t, repositories.IsStorage(err))

	_, err = repo.ReadTodo(context.Background(), "1")
	assert.True(t, repositories.IsStorage(err))

	assert.True(t, repositories.IsConnection(repo.HealthCheck(context.Background())))
}
