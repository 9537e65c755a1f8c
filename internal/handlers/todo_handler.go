package handlers

import (
	"context"
	"net/http"

	"serverless-todos-api/internal/models"
	"serverless-todos-api/internal/repositories"
	"serverless-todos-api/pkg/lambda"

	"github.com/sirupsen/logrus"
)

// TodoHandler serves the four todo operations on top of a TodoRepository.
// The same methods back the Lambda functions and the local gin server.
type TodoHandler struct {
	repo                 repositories.TodoRepository
	logger               *logrus.Logger
	legacyDeleteEnvelope bool
}

// TodoHandlerOption configures a TodoHandler
type TodoHandlerOption func(*TodoHandler)

// WithLogger sets the logger used for per-request log lines
func WithLogger(logger *logrus.Logger) TodoHandlerOption {
	return func(h *TodoHandler) {
		h.logger = logger
	}
}

// WithLegacyDeleteEnvelope controls whether delete responses are wrapped in
// a {"status_code", "body"} object. Enabled by default.
func WithLegacyDeleteEnvelope(enabled bool) TodoHandlerOption {
	return func(h *TodoHandler) {
		h.legacyDeleteEnvelope = enabled
	}
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(repo repositories.TodoRepository, opts ...TodoHandlerOption) *TodoHandler {
	h := &TodoHandler{
		repo:                 repo,
		logger:               logrus.StandardLogger(),
		legacyDeleteEnvelope: true,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleCreate creates or replaces a todo from the JSON body
// @Summary Create a todo
// @Description Writes the todo unconditionally. An existing todo with the same id is replaced.
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body models.TodoPayload true "Todo to create"
// @Success 200 {object} models.ToDo
// @Failure 400 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /todo [post]
func (h *TodoHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	todo, err := models.ParseTodo(req.Body)
	if err != nil {
		h.log(req, repositories.OpCreate, "").WithError(err).Warn("Invalid create request")
		return invalidBody(err), nil
	}

	resp, err := h.repo.CreateTodo(ctx, todo)
	if err != nil {
		h.log(req, repositories.OpCreate, todo.ID).WithFields(errorFields(err)).Error("Failed to create todo")
		return storageFailure(repositories.OpCreate, err), nil
	}

	return h.respond(req, repositories.OpCreate, todo.ID, resp), nil
}

// HandleRead returns the todo addressed by the last path segment
// @Summary Read a todo
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} models.ToDo
// @Failure 404 {string} string "Todo not found"
// @Failure 500 {object} models.ErrorBody
// @Router /todo/{id} [get]
func (h *TodoHandler) HandleRead(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := lastSegment(req.Path)
	if id == "" {
		id = req.PathParams["id"]
	}
	if id == "" {
		h.log(req, repositories.OpRead, "").Warn("Read request without id")
		return badRequest("Missing todo id in path"), nil
	}

	resp, err := h.repo.ReadTodo(ctx, id)
	if err != nil {
		h.log(req, repositories.OpRead, id).WithFields(errorFields(err)).Error("Failed to read todo")
		return storageFailure(repositories.OpRead, err), nil
	}

	return h.respond(req, repositories.OpRead, id, resp), nil
}

// HandleUpdate sets title and completed on the todo named in the JSON body
// @Summary Update a todo
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body models.TodoPayload true "New todo values"
// @Success 200 {object} models.ToDo
// @Failure 400 {object} models.ErrorBody
// @Failure 404 {string} string "Todo not found"
// @Failure 500 {object} models.ErrorBody
// @Router /todo [put]
func (h *TodoHandler) HandleUpdate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	todo, err := models.ParseTodo(req.Body)
	if err != nil {
		h.log(req, repositories.OpUpdate, "").WithError(err).Warn("Invalid update request")
		return invalidBody(err), nil
	}

	resp, err := h.repo.UpdateTodo(ctx, todo)
	if err != nil {
		h.log(req, repositories.OpUpdate, todo.ID).WithFields(errorFields(err)).Error("Failed to update todo")
		return storageFailure(repositories.OpUpdate, err), nil
	}

	return h.respond(req, repositories.OpUpdate, todo.ID, resp), nil
}

// HandleDelete removes the todo addressed by /todo/{id}
// @Summary Delete a todo
// @Description The result is wrapped as {"status_code", "body"} unless LEGACY_DELETE_ENVELOPE=false.
// @Tags todos
// @Produce json
// @Param id path string true "Todo ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorBody
// @Failure 404 {object} models.Response
// @Failure 500 {object} models.ErrorBody
// @Router /todo/{id} [delete]
func (h *TodoHandler) HandleDelete(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id, err := ParseTodoPath(req.Path)
	if err != nil {
		h.log(req, repositories.OpDelete, "").Warn("Rejected delete path")
		return badRequest(models.InvalidPathMessage), nil
	}

	resp, err := h.repo.DeleteTodo(ctx, id)
	if err != nil {
		h.log(req, repositories.OpDelete, id).WithFields(errorFields(err)).Error("Failed to delete todo")
		return storageFailure(repositories.OpDelete, err), nil
	}

	if h.legacyDeleteEnvelope {
		resp = &models.Response{StatusCode: resp.StatusCode, Body: resp.JSON()}
	}

	return h.respond(req, repositories.OpDelete, id, resp), nil
}

func (h *TodoHandler) respond(req *lambda.Request, op, id string, resp *models.Response) *lambda.Response {
	entry := h.log(req, op, id).WithField("status_code", resp.StatusCode)
	if resp.StatusCode == http.StatusNotFound {
		entry.Info("Todo not found")
	} else {
		entry.Debug("Todo operation completed")
	}

	return lambda.JSONResponse(resp.StatusCode, resp.Body)
}

func (h *TodoHandler) log(req *lambda.Request, op, id string) *logrus.Entry {
	fields := logrus.Fields{"operation": op}
	if id != "" {
		fields["todo_id"] = id
	}
	if req.RequestID != "" {
		fields["request_id"] = req.RequestID
	}
	return h.logger.WithFields(fields)
}
