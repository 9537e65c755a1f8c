package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends understood by the container.
const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
)

var (
	ErrMissingTableName   = errors.New("TABLE_NAME must be set")
	ErrUnknownStorageType = errors.New("unknown storage type")
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Storage     StorageConfig
	DynamoDB    DynamoDBConfig
	SQLite      SQLiteConfig
	Log         LogConfig
	RateLimit   RateLimitConfig

	// LegacyDeleteEnvelope wraps delete responses in a {status_code, body}
	// JSON object, which existing clients expect.
	LegacyDeleteEnvelope bool
}

// StorageConfig selects the todo store
type StorageConfig struct {
	Type string // "dynamodb", "memory" or "sqlite"
}

// DynamoDBConfig holds DynamoDB configuration
type DynamoDBConfig struct {
	TableName     string
	Region        string
	Endpoint      string
	ValidateTable bool
}

// SQLiteConfig holds configuration for the local SQLite store
type SQLiteConfig struct {
	Path string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

// RateLimitConfig holds the dev server rate limiter settings
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("STORAGE_TYPE", StorageDynamoDB)
	v.SetDefault("DYNAMODB_VALIDATE_TABLE", false)
	v.SetDefault("SQLITE_PATH", "./data/todos.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LEGACY_DELETE_ENVELOPE", true)
	v.SetDefault("RATE_LIMIT_RPS", 50)
	v.SetDefault("RATE_LIMIT_BURST", 100)

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		Storage: StorageConfig{
			Type: strings.ToLower(v.GetString("STORAGE_TYPE")),
		},
		DynamoDB: DynamoDBConfig{
			TableName:     v.GetString("TABLE_NAME"),
			Region:        v.GetString("AWS_REGION"),
			Endpoint:      v.GetString("DYNAMODB_ENDPOINT"),
			ValidateTable: v.GetBool("DYNAMODB_VALIDATE_TABLE"),
		},
		SQLite: SQLiteConfig{
			Path: v.GetString("SQLITE_PATH"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetFloat64("RATE_LIMIT_RPS"),
			Burst: v.GetInt("RATE_LIMIT_BURST"),
		},
		LegacyDeleteEnvelope: v.GetBool("LEGACY_DELETE_ENVELOPE"),
	}

	return config, nil
}

// Validate checks that the selected storage backend has what it needs
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case StorageDynamoDB:
		if c.DynamoDB.TableName == "" {
			return ErrMissingTableName
		}
	case StorageSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("SQLITE_PATH must be set for storage type %q", c.Storage.Type)
		}
	case StorageMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageType, c.Storage.Type)
	}
	return nil
}

// IsDevelopment reports whether the app runs in the development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
