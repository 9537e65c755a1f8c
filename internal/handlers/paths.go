package handlers

import (
	"errors"
	"strings"
)

// todoSegment is the resource segment every todo path must carry
const todoSegment = "todo"

// ErrInvalidPath is returned for paths that do not address a single todo
var ErrInvalidPath = errors.New("invalid todo path")

// ParseTodoPath extracts the id from /todo/{id}. A leading stage segment,
// as in /prod/todo/{id}, is accepted too. Anything else is rejected.
func ParseTodoPath(path string) (string, error) {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")

	var id string
	switch {
	case len(parts) == 2 && parts[0] == todoSegment:
		id = parts[1]
	case len(parts) == 3 && parts[1] == todoSegment:
		id = parts[2]
	default:
		return "", ErrInvalidPath
	}

	if id == "" {
		return "", ErrInvalidPath
	}
	return id, nil
}

// lastSegment returns the text after the final slash, or "" for a trailing slash
func lastSegment(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
