package handlers

import (
	"context"
	"net/http"
	"time"

	"serverless-todos-api/internal/repositories"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	TodoHandler   *TodoHandler
	HealthChecker repositories.HealthChecker
	ServiceName   string
	Version       string
}

// SetupRoutes registers the todo endpoints plus health and swagger routes.
// Delete is a catch-all so malformed paths reach the handler and get the
// same 400 the Lambda function returns.
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", healthHandler(config))

	h := config.TodoHandler

	todos := router.Group("/todo")
	{
		todos.POST("", Gin(h.HandleCreate))
		todos.PUT("", Gin(h.HandleUpdate))
		todos.PUT("/:id", Gin(h.HandleUpdate))
		todos.GET("/:id", Gin(h.HandleRead))
	}

	router.DELETE("/*path", Gin(h.HandleDelete))
}

// healthHandler godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthHandler(config *RouterConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		body := gin.H{
			"status":  "healthy",
			"service": config.ServiceName,
			"version": config.Version,
		}

		if config.HealthChecker != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := config.HealthChecker.HealthCheck(ctx); err != nil {
				status = http.StatusServiceUnavailable
				body["status"] = "unhealthy"
				body["error"] = err.Error()
			}
		}

		c.JSON(status, body)
	}
}
