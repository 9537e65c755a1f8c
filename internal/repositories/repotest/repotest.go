// Package repotest holds behaviour tests shared by every
// repositories.TodoRepository implementation.
package repotest

import (
	"context"
	"net/http"
	"testing"

	"serverless-todos-api/internal/models"
	"serverless-todos-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// Factory returns a repository to test. It may return the same store for
// every subtest; ids are unique per subtest.
type Factory func(t *testing.T) repositories.TodoRepository

// Run executes the shared behaviour suite against the store built by newRepo.
func Run(t *testing.T, newRepo Factory) {
	t.Run("create then read", func(t *testing.T) {
		testCreateThenRead(t, newRepo(t))
	})
	t.Run("create replaces existing item", func(t *testing.T) {
		testCreateReplaces(t, newRepo(t))
	})
	t.Run("read unknown id", func(t *testing.T) {
		testReadUnknown(t, newRepo(t))
	})
	t.Run("update existing item", func(t *testing.T) {
		testUpdateExisting(t, newRepo(t))
	})
	t.Run("update unknown id", func(t *testing.T) {
		testUpdateUnknown(t, newRepo(t))
	})
	t.Run("delete unknown id", func(t *testing.T) {
		testDeleteUnknown(t, newRepo(t))
	})
	t.Run("delete then read", func(t *testing.T) {
		testDeleteThenRead(t, newRepo(t))
	})
	t.Run("full lifecycle", func(t *testing.T) {
		testLifecycle(t, newRepo(t))
	})
}

func newID() string {
	return uuid.NewString()
}

func testCreateThenRead(t *testing.T, repo repositories.TodoRepository) {
	ctx := context.Background()
	todo := models.ToDo{ID: newID(), Title: "Buy milk", Completed: false}

	created, err := repo.CreateTodo(ctx, todo)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, created.StatusCode)
	assert.Equal(t, todo.JSON(), created.Body)

	read, err := repo.ReadTodo(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, read.StatusCode)
	assert.Equal(t, todo.JSON(), read.Body)
}

func testCreateReplaces(t *testing.T, repo repositories.TodoRepository) {
	ctx := context.Background()
	id := newID()

	_, err := repo.CreateTodo(ctx, models.ToDo{ID: id, Title: "first", Completed: true})
	require.NoError(t, err)
	_, err = repo.CreateTodo(ctx, models.ToDo{ID: id, Title: "second"})
	require.NoError(t, err)

	read, err := repo.ReadTodo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "second", gjson.Get(read.Body, "title").String())
	assert.False(t, gjson.Get(read.Body, "completed").Bool())
}

func testReadUnknown(t *testing.T, repo repositories.TodoRepository) {
	resp, err := repo.ReadTodo(context.Background(), newID())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, models.NotFoundBody, resp.Body)
}

func testUpdateExisting(t *testing.T, repo repositories.TodoRepository) {
	ctx := context.Background()
	id := newID()

	_, err := repo.CreateTodo(ctx, models.ToDo{ID: id, Title: "Walk dog"})
	require.NoError(t, err)

	updated, err := repo.UpdateTodo(ctx, models.ToDo{ID: id, Title: "Walk the dog", Completed: true})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, updated.StatusCode)
	assert.Equal(t, id, gjson.Get(updated.Body, "id").String())
	assert.Equal(t, "Walk the dog", gjson.Get(updated.Body, "title").String())
	assert.True(t, gjson.Get(updated.Body, "completed").Bool())

	read, err := repo.ReadTodo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, updated.Body, read.Body)
}

func testUpdateUnknown(t *testing.T, repo repositories.TodoRepository) {
	ctx := context.Background()
	id := newID()

	resp, err := repo.UpdateTodo(ctx, models.ToDo{ID: id, Title: "ghost"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Todo not found", resp.Body)

	// the failed update must not leave an item behind
	read, err := repo.ReadTodo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, read.StatusCode)
}

func testDeleteUnknown(t *testing.T, repo repositories.TodoRepository) {
	resp, err := repo.DeleteTodo(context.Background(), newID())
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, `{"message":"Todo not found"}`, resp.Body)
}

func testDeleteThenRead(t *testing.T, repo repositories.TodoRepository) {
	ctx := context.Background()
	id := newID()

	_, err := repo.CreateTodo(ctx, models.ToDo{ID: id, Title: "temp"})
	require.NoError(t, err)

	deleted, err := repo.DeleteTodo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, deleted.StatusCode)
	assert.Equal(t, `{"message":"Todo deleted!"}`, deleted.Body)

	read, err := repo.ReadTodo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, read.StatusCode)

	again, err := repo.DeleteTodo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, again.StatusCode)
}

func testLifecycle(t *testing.T, repo repositories.TodoRepository) {
	ctx := context.Background()
	id := newID()

	created, err := repo.CreateTodo(ctx, models.ToDo{ID: id, Title: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, `{"id":"`+id+`","title":"Buy milk","completed":false}`, created.Body)

	updated, err := repo.UpdateTodo(ctx, models.ToDo{ID: id, Title: "Buy milk", Completed: true})
	require.NoError(t, err)
	assert.Equal(t, `{"id":"`+id+`","title":"Buy milk","completed":true}`, updated.Body)

	deleted, err := repo.DeleteTodo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, deleted.StatusCode)

	read, err := repo.ReadTodo(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, read.StatusCode)
}
