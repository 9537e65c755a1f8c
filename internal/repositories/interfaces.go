package repositories

import (
	"context"

	"serverless-todos-api/internal/models"
)

// TodoRepository is the storage gateway behind every handler. Each method
// performs exactly one store operation and reports absence through the
// returned envelope, never through the error. An error means the store
// itself failed.
type TodoRepository interface {
	// CreateTodo writes the item unconditionally, replacing any item with the same id
	CreateTodo(ctx context.Context, todo models.ToDo) (*models.Response, error)

	// UpdateTodo sets title and completed on an existing item
	UpdateTodo(ctx context.Context, todo models.ToDo) (*models.Response, error)

	// ReadTodo fetches a single item by id
	ReadTodo(ctx context.Context, id string) (*models.Response, error)

	// DeleteTodo removes a single item by id
	DeleteTodo(ctx context.Context, id string) (*models.Response, error)
}

// HealthChecker is implemented by stores that can verify their backing service
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Operation names used in RepositoryError and log fields
const (
	OpCreate = "create"
	OpRead   = "read"
	OpUpdate = "update"
	OpDelete = "delete"
)

// EntityTodo is the entity name used in RepositoryError
const EntityTodo = "todo"
