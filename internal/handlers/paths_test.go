package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTodoPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "/todo/abc123", want: "abc123"},
		{path: "todo/abc123", want: "abc123"},
		{path: "/prod/todo/abc123", want: "abc123"},
		{path: "/foo/abc123", wantErr: true},
		{path: "/todo", wantErr: true},
		{path: "/todo/", wantErr: true},
		{path: "/prod/todo/", wantErr: true},
		{path: "/a/b/c/d", wantErr: true},
		{path: "/todo/abc/extra", wantErr: true},
		{path: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ParseTodoPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPath)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLastSegment(t *testing.T) {
	assert.Equal(t, "abc", lastSegment("/todo/abc"))
	assert.Equal(t, "abc", lastSegment("/prod/todo/abc"))
	assert.Equal(t, "", lastSegment("/todo/"))
	assert.Equal(t, "abc", lastSegment("abc"))
}
