package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrEmptyBody is returned when a create or update request carries no body
	ErrEmptyBody = errors.New("request body is empty")

	// ErrInvalidUTF8 is returned for bodies that are not valid UTF-8
	ErrInvalidUTF8 = errors.New("request body is not valid UTF-8")
)

// ToDo is a single todo item addressed by its client supplied id
type ToDo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TodoPayload is the wire shape of a create or update request. Pointer
// fields let validation tell an absent field from its zero value.
type TodoPayload struct {
	ID        *string `json:"id" validate:"required,min=1"`
	Title     *string `json:"title" validate:"required"`
	Completed *bool   `json:"completed" validate:"required"`
}

// ToDo converts a validated payload into a ToDo
func (p TodoPayload) ToDo() ToDo {
	var todo ToDo
	if p.ID != nil {
		todo.ID = *p.ID
	}
	if p.Title != nil {
		todo.Title = *p.Title
	}
	if p.Completed != nil {
		todo.Completed = *p.Completed
	}
	return todo
}

// ParseTodo decodes and validates a request body. Every field must be
// present and id must be non-empty; unknown fields are ignored.
func ParseTodo(body []byte) (ToDo, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return ToDo{}, ErrEmptyBody
	}
	if !utf8.Valid(body) {
		return ToDo{}, ErrInvalidUTF8
	}

	var payload TodoPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return ToDo{}, fmt.Errorf("invalid JSON: %w", err)
	}

	if err := ValidateStruct(&payload); err != nil {
		return ToDo{}, err
	}

	return payload.ToDo(), nil
}

// JSON returns the canonical {"id","title","completed"} encoding
func (t ToDo) JSON() string {
	return mustMarshal(t)
}
