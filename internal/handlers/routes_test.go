package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

type failingHealth struct{}

func (failingHealth) HealthCheck(context.Context) error { return errors.New("table unreachable") }

func newTestRouter(config *RouterConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, config)
	return router
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRoutes_Scenario(t *testing.T) {
	h, _ := newTestHandler()
	router := newTestRouter(&RouterConfig{TodoHandler: h, ServiceName: "todos"})

	w := serve(router, http.MethodPost, "/todo", `{"id":"1","title":"Buy milk","completed":false}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, `{"id":"1","title":"Buy milk","completed":false}`, w.Body.String())

	w = serve(router, http.MethodPut, "/todo/1", `{"id":"1","title":"Buy milk","completed":true}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gjson.Get(w.Body.String(), "completed").Bool())

	w = serve(router, http.MethodGet, "/todo/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"id":"1","title":"Buy milk","completed":true}`, w.Body.String())

	w = serve(router, http.MethodDelete, "/todo/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodGet, "/todo/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Todo not found", w.Body.String())
}

func TestRoutes_DeleteBadPath(t *testing.T) {
	h, _ := newTestHandler()
	router := newTestRouter(&RouterConfig{TodoHandler: h})

	w := serve(router, http.MethodDelete, "/foo/abc123", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid path format. Expected '/todo/{id}'.", gjson.Get(w.Body.String(), "error").String())
}

func TestRoutes_Health(t *testing.T) {
	h, _ := newTestHandler()

	router := newTestRouter(&RouterConfig{TodoHandler: h, ServiceName: "todos", Version: "1.0.0"})
	w := serve(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", gjson.Get(w.Body.String(), "status").String())

	router = newTestRouter(&RouterConfig{TodoHandler: h, HealthChecker: failingHealth{}})
	w = serve(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "table unreachable", gjson.Get(w.Body.String(), "error").String())
}
