package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"serverless-todos-api/internal/models"
	"serverless-todos-api/internal/repositories"
	"serverless-todos-api/pkg/lambda"

	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// verbs used in "Error <verb> todo" messages
var operationVerbs = map[string]string{
	repositories.OpCreate: "creating",
	repositories.OpRead:   "reading",
	repositories.OpUpdate: "updating",
	repositories.OpDelete: "deleting",
}

func errorResponse(status int, msg string) *lambda.Response {
	return lambda.JSONResponse(status, models.ErrorJSON(msg))
}

func badRequest(msg string) *lambda.Response {
	return errorResponse(http.StatusBadRequest, msg)
}

func invalidBody(err error) *lambda.Response {
	return badRequest(fmt.Sprintf("Invalid request body: %v", err))
}

// storageFailure maps a store error to 500 {"error": "Error <verb> todo: <cause>"}
func storageFailure(op string, err error) *lambda.Response {
	return errorResponse(http.StatusInternalServerError, fmt.Sprintf("Error %s todo: %v", operationVerbs[op], err))
}

// errorFields returns log fields describing err, including the AWS error
// code when the failure came from an AWS API.
func errorFields(err error) logrus.Fields {
	fields := logrus.Fields{logrus.ErrorKey: err}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fields["error_code"] = apiErr.ErrorCode()
		fields["error_fault"] = apiErr.ErrorFault().String()
	}

	var repoErr *repositories.RepositoryError
	if errors.As(err, &repoErr) {
		fields["operation"] = repoErr.Op
	}

	return fields
}
