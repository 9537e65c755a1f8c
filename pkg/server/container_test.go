package server

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"serverless-todos-api/internal/config"
	"serverless-todos-api/internal/models"
	"serverless-todos-api/internal/repositories/dynamodb"
	"serverless-todos-api/internal/repositories/memory"
	"serverless-todos-api/internal/repositories/sqlite"

	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// stubAPI satisfies dynamodb.API; DescribeTable fails so validation can be observed
type stubAPI struct {
	dynamodb.API
}

func (stubAPI) DescribeTable(context.Context, *awsdynamodb.DescribeTableInput, ...func(*awsdynamodb.Options)) (*awsdynamodb.DescribeTableOutput, error) {
	return nil, errors.New("describe failed")
}

// TestNewContainerMemory verifies the in-memory store is wired end to end
func TestNewContainerMemory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Type: config.StorageMemory}, LegacyDeleteEnvelope: true}

	container, err := NewContainer(context.Background(), cfg, quietLogger())
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	defer container.Close()

	if _, ok := container.Repository.(*memory.Repository); !ok {
		t.Errorf("Expected memory repository, got %T", container.Repository)
	}
	if container.TodoHandler == nil {
		t.Fatal("TodoHandler is nil")
	}

	resp, err := container.Repository.CreateTodo(context.Background(), models.ToDo{ID: "1", Title: "x"})
	if err != nil || resp.StatusCode != 200 {
		t.Errorf("CreateTodo() = %+v, %v", resp, err)
	}
}

func TestNewContainerSQLite(t *testing.T) {
	cfg := &config.Config{
		Storage: config.StorageConfig{Type: config.StorageSQLite},
		SQLite:  config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "todos.db")},
	}

	container, err := NewContainer(context.Background(), cfg, quietLogger())
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}

	if _, ok := container.Repository.(*sqlite.TodoRepository); !ok {
		t.Errorf("Expected sqlite repository, got %T", container.Repository)
	}
	if err := container.HealthChecker.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}

	if err := container.Close(); err != nil {
		t.Errorf("Failed to close container: %v", err)
	}
}

func TestNewContainerDynamoDB(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")

	cfg := &config.Config{
		Storage:  config.StorageConfig{Type: config.StorageDynamoDB},
		DynamoDB: config.DynamoDBConfig{TableName: "todos"},
	}

	container, err := NewContainer(context.Background(), cfg, quietLogger(), WithDynamoDBOptions(dynamodb.WithAPI(stubAPI{})))
	if err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}
	if _, ok := container.Repository.(*dynamodb.Client); !ok {
		t.Errorf("Expected dynamodb client, got %T", container.Repository)
	}

	cfg.DynamoDB.ValidateTable = true
	if _, err := NewContainer(context.Background(), cfg, quietLogger(), WithDynamoDBOptions(dynamodb.WithAPI(stubAPI{}))); err == nil {
		t.Error("Expected table validation error")
	}
}

func TestNewContainerInvalidConfig(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Type: config.StorageDynamoDB}}

	if _, err := NewContainer(context.Background(), cfg, quietLogger()); !errors.Is(err, config.ErrMissingTableName) {
		t.Errorf("Expected ErrMissingTableName, got %v", err)
	}
}

func TestNewContainerLogsFunctionName(t *testing.T) {
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "todos-read")

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	cfg := &config.Config{Storage: config.StorageConfig{Type: config.StorageMemory}}
	if _, err := NewContainer(context.Background(), cfg, logger); err != nil {
		t.Fatalf("Failed to create container: %v", err)
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("Expected a log entry")
	}
	if entry.Data["function_name"] != "todos-read" {
		t.Errorf("Expected function_name todos-read, got %v", entry.Data["function_name"])
	}
	if entry.Data["deployment_mode"] != "serverless" {
		t.Errorf("Expected serverless deployment mode, got %v", entry.Data["deployment_mode"])
	}
}
