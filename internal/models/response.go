package models

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
)

// Bodies shared by every store implementation. Read and update report a
// missing item as a bare string while delete uses a JSON message.
const (
	NotFoundBody       = "Todo not found"
	DeletedMessage     = "Todo deleted!"
	NotFoundMessage    = "Todo not found"
	InvalidPathMessage = "Invalid path format. Expected '/todo/{id}'."
)

// Response is the envelope a store returns for every operation
type Response struct {
	StatusCode int    `json:"status_code"`
	Body       string `json:"body"`
}

// MessageBody is the {"message": ...} payload used by delete
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorBody is the {"error": ...} payload returned by handlers
type ErrorBody struct {
	Error string `json:"error"`
}

// NewItemResponse returns 200 with the item encoded as JSON
func NewItemResponse(todo ToDo) *Response {
	return &Response{StatusCode: http.StatusOK, Body: todo.JSON()}
}

// NewNotFoundResponse returns the plain text 404 used by read and update
func NewNotFoundResponse() *Response {
	return &Response{StatusCode: http.StatusNotFound, Body: NotFoundBody}
}

// NewDeletedResponse returns 200 {"message":"Todo deleted!"}
func NewDeletedResponse() *Response {
	return &Response{StatusCode: http.StatusOK, Body: mustMarshal(MessageBody{Message: DeletedMessage})}
}

// NewDeleteNotFoundResponse returns 404 {"message":"Todo not found"}
func NewDeleteNotFoundResponse() *Response {
	return &Response{StatusCode: http.StatusNotFound, Body: mustMarshal(MessageBody{Message: NotFoundMessage})}
}

// ErrorJSON encodes msg as {"error": msg}
func ErrorJSON(msg string) string {
	return mustMarshal(ErrorBody{Error: msg})
}

// JSON encodes the envelope itself, used when delete results are wrapped
func (r *Response) JSON() string {
	return mustMarshal(r)
}

// mustMarshal encodes v without HTML escaping, so titles such as "a<b & c>"
// round-trip unchanged.
func mustMarshal(v interface{}) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
