package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ErrorResponse is the body written by middleware that rejects a request
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// RateLimiter implements rate limiting middleware. A non-positive rate
// disables limiting.
func RateLimiter(requestsPerSecond float64, burstSize int, logger *logrus.Logger) gin.HandlerFunc {
	if requestsPerSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			logger.WithFields(logrus.Fields{
				"client_ip":  c.ClientIP(),
				"path":       c.Request.URL.Path,
				"request_id": c.GetString(RequestIDKey),
			}).Warn("Rate limit exceeded")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
				Error:     "Rate limit exceeded",
				Message:   fmt.Sprintf("Too many requests. Limit: %.1f requests per second", requestsPerSecond),
				RequestID: c.GetString(RequestIDKey),
				Timestamp: time.Now().Format(time.RFC3339),
			})
			return
		}
		c.Next()
	}
}
