// Command server runs the todo API as a long-lived HTTP server for local
// development. It serves the same handlers the Lambda functions use.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "serverless-todos-api/docs"
	"serverless-todos-api/internal/config"
	"serverless-todos-api/internal/handlers"
	"serverless-todos-api/internal/logging"
	"serverless-todos-api/internal/middleware"
	"serverless-todos-api/pkg/server"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := logging.New(cfg.Log)

	// Initialize dependencies
	container, err := server.NewContainer(context.Background(), cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize container")
	}
	defer container.Close()

	// Setup Gin router
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, logger))

	handlers.SetupRoutes(router, &handlers.RouterConfig{
		TodoHandler:   container.TodoHandler,
		HealthChecker: container.HealthChecker,
		ServiceName:   "serverless-todos-api",
		Version:       version,
	})

	// Start server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	logger.WithFields(logrus.Fields{
		"port":         cfg.Port,
		"storage_type": cfg.Storage.Type,
		"environment":  cfg.Environment,
	}).Info("Server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server exited")
}
