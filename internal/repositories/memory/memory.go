// Package memory is an in-process TodoRepository used by tests and by the
// dev server when STORAGE_TYPE=memory. Data is lost when the process exits.
package memory

import (
	"context"
	"sync"

	"serverless-todos-api/internal/models"
	"serverless-todos-api/internal/repositories"
)

// Repository stores todos in a map guarded by a RWMutex
type Repository struct {
	mu    sync.RWMutex
	items map[string]models.ToDo
}

var (
	_ repositories.TodoRepository = (*Repository)(nil)
	_ repositories.HealthChecker  = (*Repository)(nil)
)

// New returns an empty repository
func New() *Repository {
	return &Repository{items: make(map[string]models.ToDo)}
}

func (r *Repository) CreateTodo(_ context.Context, todo models.ToDo) (*models.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[todo.ID] = todo
	return models.NewItemResponse(todo), nil
}

func (r *Repository) UpdateTodo(_ context.Context, todo models.ToDo) (*models.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[todo.ID]; !ok {
		return models.NewNotFoundResponse(), nil
	}
	r.items[todo.ID] = todo
	return models.NewItemResponse(todo), nil
}

func (r *Repository) ReadTodo(_ context.Context, id string) (*models.Response, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.items[id]
	if !ok {
		return models.NewNotFoundResponse(), nil
	}
	return models.NewItemResponse(todo), nil
}

func (r *Repository) DeleteTodo(_ context.Context, id string) (*models.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return models.NewDeleteNotFoundResponse(), nil
	}
	delete(r.items, id)
	return models.NewDeletedResponse(), nil
}

// HealthCheck always succeeds
func (r *Repository) HealthCheck(context.Context) error {
	return nil
}

// Len returns the number of stored todos
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
