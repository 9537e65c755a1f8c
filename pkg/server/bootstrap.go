package server

import (
	"context"
	"fmt"

	"serverless-todos-api/internal/config"
	"serverless-todos-api/internal/logging"
)

// Bootstrap loads the deployment-mode configuration, builds the logger and
// returns a ready container. Lambda entry points call it once per cold start.
func Bootstrap(ctx context.Context) (*Container, error) {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(cfg.Log)

	container, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize container: %w", err)
	}

	return container, nil
}
