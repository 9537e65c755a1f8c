package repositories

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageError(t *testing.T) {
	cause := errors.New("throttled")
	err := StorageError(OpCreate, "42", cause)

	assert.True(t, IsStorage(err))
	assert.False(t, IsConnection(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "todo create operation failed for ID 42: storage error: throttled", err.Error())

	var repoErr *RepositoryError
	assert.True(t, errors.As(err, &repoErr))
	assert.Equal(t, OpCreate, repoErr.Op)
}

func TestConnectionError(t *testing.T) {
	err := ConnectionError(errors.New("no route to host"))

	assert.True(t, IsConnection(err))
	assert.Equal(t, "database connect operation failed: database connection error: no route to host", err.Error())
}
