package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrConnection is returned when the backing store cannot be reached
	ErrConnection = errors.New("database connection error")

	// ErrStorage is returned when the backing store rejects an operation
	ErrStorage = errors.New("storage error")

	// ErrSchema is returned when the table does not have the expected layout
	ErrSchema = errors.New("schema mismatch")
)

// RepositoryError represents a repository-specific error with additional context
type RepositoryError struct {
	Op     string // Operation that failed
	Entity string // Entity type
	ID     string // Entity ID (if applicable)
	Err    error  // Underlying error
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s operation failed for ID %s: %v", e.Entity, e.Op, e.ID, e.Err)
	}

	return fmt.Sprintf("%s %s operation failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		ID:     id,
		Err:    err,
	}
}

// StorageError wraps a failure from the backing store for a todo operation
func StorageError(op, id string, err error) *RepositoryError {
	return NewRepositoryError(op, EntityTodo, id, fmt.Errorf("%w: %w", ErrStorage, err))
}

// ConnectionError creates a "connection" repository error
func ConnectionError(err error) *RepositoryError {
	return &RepositoryError{
		Op:     "connect",
		Entity: "database",
		Err:    fmt.Errorf("%w: %w", ErrConnection, err),
	}
}

// IsStorage checks if an error came from the backing store
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

// IsConnection checks if an error is a "connection" error
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}
