package server

import (
	"context"
	"fmt"

	"serverless-todos-api/internal/config"
	"serverless-todos-api/internal/database"
	"serverless-todos-api/internal/handlers"
	"serverless-todos-api/internal/repositories"
	"serverless-todos-api/internal/repositories/dynamodb"
	"serverless-todos-api/internal/repositories/memory"
	"serverless-todos-api/internal/repositories/sqlite"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies. It is built once per
// process and shared read-only by every invocation.
type Container struct {
	Config        *config.Config
	Logger        *logrus.Logger
	Repository    repositories.TodoRepository
	HealthChecker repositories.HealthChecker
	TodoHandler   *handlers.TodoHandler

	// Internal dependencies
	db *database.ConnectionManager
}

// ContainerOption customises NewContainer
type ContainerOption func(*containerOptions)

type containerOptions struct {
	dynamoDBOptions []dynamodb.Option
}

// WithDynamoDBOptions passes extra options to the DynamoDB client, e.g.
// dynamodb.WithAPI in tests.
func WithDynamoDBOptions(opts ...dynamodb.Option) ContainerOption {
	return func(o *containerOptions) {
		o.dynamoDBOptions = append(o.dynamoDBOptions, opts...)
	}
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *logrus.Logger, opts ...ContainerOption) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	options := &containerOptions{}
	for _, o := range opts {
		o(options)
	}

	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	switch cfg.Storage.Type {
	case config.StorageDynamoDB:
		client, err := newDynamoDBClient(ctx, cfg, options.dynamoDBOptions)
		if err != nil {
			return nil, err
		}
		container.Repository = client
		container.HealthChecker = client

	case config.StorageSQLite:
		cm := database.NewConnectionManager(&database.ConnectionConfig{
			DatabasePath: cfg.SQLite.Path,
			AutoMigrate:  true,
			Logger:       logger,
		})
		if err := cm.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect to sqlite: %w", err)
		}
		repo := sqlite.NewTodoRepository(cm.GetDB(), logger)
		container.db = cm
		container.Repository = repo
		container.HealthChecker = repo

	case config.StorageMemory:
		repo := memory.New()
		container.Repository = repo
		container.HealthChecker = repo
	}

	container.TodoHandler = handlers.NewTodoHandler(
		container.Repository,
		handlers.WithLogger(logger),
		handlers.WithLegacyDeleteEnvelope(cfg.LegacyDeleteEnvelope),
	)

	fields := logrus.Fields{
		"storage_type":    cfg.Storage.Type,
		"deployment_mode": config.GetDeploymentMode(),
	}
	if serverless := config.GetServerlessConfig(); serverless.IsLambda {
		fields["function_name"] = serverless.FunctionName
	}
	logger.WithFields(fields).Debug("Container initialized")

	return container, nil
}

func newDynamoDBClient(ctx context.Context, cfg *config.Config, extra []dynamodb.Option) (*dynamodb.Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.DynamoDB.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.DynamoDB.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	opts := []dynamodb.Option{dynamodb.WithEndpoint(cfg.DynamoDB.Endpoint)}
	opts = append(opts, extra...)

	client := dynamodb.New(&awsCfg, cfg.DynamoDB.TableName, opts...)
	if err := client.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to DynamoDB: %w", err)
	}

	if err := client.Init(ctx, !cfg.DynamoDB.ValidateTable); err != nil {
		return nil, fmt.Errorf("table validation failed: %w", err)
	}

	return client, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
