package lambda

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

// internalErrorBody is returned when a handler fails without producing a response
const internalErrorBody = `{"error": "Internal server error"}`

// FromAPIGatewayProxyRequest converts an API Gateway REST proxy event into
// a Request. Base64 encoded bodies are decoded.
func FromAPIGatewayProxyRequest(event events.APIGatewayProxyRequest) (*Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded && event.Body != "" {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 body: %w", err)
		}
		body = decoded
	}

	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        body,
		PathParams:  event.PathParameters,
		RequestID:   event.RequestContext.RequestID,
	}, nil
}

// ToAPIGatewayProxyResponse converts a Response into the proxy integration shape
func ToAPIGatewayProxyResponse(resp *Response) events.APIGatewayProxyResponse {
	headers := make(map[string]string, len(resp.Headers)+1)
	for k, v := range resp.Headers {
		headers[k] = v
	}
	if _, ok := headers["Content-Type"]; !ok {
		headers["Content-Type"] = "application/json"
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       string(resp.Body),
	}
}

// APIGatewayProxyHandler adapts h to the signature expected by lambda.Start.
// Errors returned by h become a 500 response so that API Gateway never sees a
// failed invocation.
func APIGatewayProxyHandler(h HandlerFunc, logger *logrus.Logger) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		start := time.Now()

		fields := logrus.Fields{
			"method": event.HTTPMethod,
			"path":   event.Path,
		}
		if lc, ok := lambdacontext.FromContext(ctx); ok {
			fields["aws_request_id"] = lc.AwsRequestID
		}
		if event.RequestContext.RequestID != "" {
			fields["request_id"] = event.RequestContext.RequestID
		}
		entry := logger.WithFields(fields)

		req, err := FromAPIGatewayProxyRequest(event)
		if err != nil {
			entry.WithError(err).Warn("Rejected malformed event")
			return ToAPIGatewayProxyResponse(JSONResponse(http.StatusBadRequest, fmt.Sprintf(`{"error": %q}`, err.Error()))), nil
		}

		resp, err := h(ctx, req)
		if err != nil || resp == nil {
			entry.WithError(err).Error("Handler failed")
			resp = JSONResponse(http.StatusInternalServerError, internalErrorBody)
		}

		entry.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"latency_ms":  float64(time.Since(start).Nanoseconds()) / 1000000,
		}).Info("Request completed")

		return ToAPIGatewayProxyResponse(resp), nil
	}
}
