package handlers

import (
	"io"
	"net/http"

	"serverless-todos-api/internal/middleware"
	"serverless-todos-api/pkg/lambda"

	"github.com/gin-gonic/gin"
)

// Gin adapts a lambda.HandlerFunc so the dev server runs the exact code
// path the Lambda functions run.
func Gin(h lambda.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read request body"})
			return
		}

		req := &lambda.Request{
			Method:      c.Request.Method,
			Path:        c.Request.URL.Path,
			Headers:     flattenHeaders(c.Request.Header),
			QueryParams: flattenHeaders(c.Request.URL.Query()),
			Body:        body,
			PathParams:  make(map[string]string, len(c.Params)),
			RequestID:   c.GetString(middleware.RequestIDKey),
		}
		for _, p := range c.Params {
			req.PathParams[p.Key] = p.Value
		}

		resp, err := h(c.Request.Context(), req)
		if err != nil || resp == nil {
			if err != nil {
				_ = c.Error(err)
			}
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		contentType := "application/json"
		for k, v := range resp.Headers {
			if http.CanonicalHeaderKey(k) == "Content-Type" {
				contentType = v
				continue
			}
			c.Header(k, v)
		}
		c.Data(resp.StatusCode, contentType, resp.Body)
	}
}

func flattenHeaders(values map[string][]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			out[k] = v[0]
		}
	}
	return out
}
