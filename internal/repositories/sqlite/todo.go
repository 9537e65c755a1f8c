package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"serverless-todos-api/internal/models"
	"serverless-todos-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// TodoRepository implements repositories.TodoRepository on the todos table
// created by the embedded migrations.
type TodoRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

var (
	_ repositories.TodoRepository = (*TodoRepository)(nil)
	_ repositories.HealthChecker  = (*TodoRepository)(nil)
)

// NewTodoRepository creates a new SQLite todo repository
func NewTodoRepository(db *sql.DB, logger *logrus.Logger) *TodoRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &TodoRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTodo inserts the todo or replaces the row with the same id
func (r *TodoRepository) CreateTodo(ctx context.Context, todo models.ToDo) (*models.Response, error) {
	query := `
		INSERT INTO todos (id, title, completed) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title = excluded.title, completed = excluded.completed`

	if _, err := r.db.ExecContext(ctx, query, todo.ID, todo.Title, todo.Completed); err != nil {
		return nil, repositories.StorageError(repositories.OpCreate, todo.ID, err)
	}

	r.logger.WithField("todo_id", todo.ID).Debug("Todo written")
	return models.NewItemResponse(todo), nil
}

// UpdateTodo sets title and completed on an existing row
func (r *TodoRepository) UpdateTodo(ctx context.Context, todo models.ToDo) (*models.Response, error) {
	query := `UPDATE todos SET completed = ?, title = ? WHERE id = ? RETURNING id, title, completed`

	updated, err := scanTodo(r.db.QueryRowContext(ctx, query, todo.Completed, todo.Title, todo.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NewNotFoundResponse(), nil
		}
		return nil, repositories.StorageError(repositories.OpUpdate, todo.ID, err)
	}

	return models.NewItemResponse(updated), nil
}

// ReadTodo fetches a single row by id
func (r *TodoRepository) ReadTodo(ctx context.Context, id string) (*models.Response, error) {
	query := `SELECT id, title, completed FROM todos WHERE id = ?`

	todo, err := scanTodo(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NewNotFoundResponse(), nil
		}
		return nil, repositories.StorageError(repositories.OpRead, id, err)
	}

	return models.NewItemResponse(todo), nil
}

// DeleteTodo removes a single row by id
func (r *TodoRepository) DeleteTodo(ctx context.Context, id string) (*models.Response, error) {
	query := `DELETE FROM todos WHERE id = ? RETURNING id, title, completed`

	if _, err := scanTodo(r.db.QueryRowContext(ctx, query, id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.NewDeleteNotFoundResponse(), nil
		}
		return nil, repositories.StorageError(repositories.OpDelete, id, err)
	}

	return models.NewDeletedResponse(), nil
}

// HealthCheck pings the database
func (r *TodoRepository) HealthCheck(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return repositories.ConnectionError(err)
	}
	return nil
}

// scanTodo reads a row leniently: NULL columns become zero values.
func scanTodo(row *sql.Row) (models.ToDo, error) {
	var (
		id        sql.NullString
		title     sql.NullString
		completed sql.NullBool
	)
	if err := row.Scan(&id, &title, &completed); err != nil {
		return models.ToDo{}, err
	}

	return models.ToDo{
		ID:        id.String,
		Title:     title.String,
		Completed: completed.Bool,
	}, nil
}
