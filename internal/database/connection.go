package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// ConnectionConfig holds database connection configuration
type ConnectionConfig struct {
	DatabasePath    string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	Logger          *logrus.Logger
}

// DefaultConnectionConfig returns a default configuration
func DefaultConnectionConfig() *ConnectionConfig {
	return &ConnectionConfig{
		DatabasePath:    "./data/todos.db",
		MaxOpenConns:    1, // SQLite works best with single connection
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		AutoMigrate:     true,
		Logger:          logrus.New(),
	}
}

// ConnectionManager manages the SQLite connection used by the local store
type ConnectionManager struct {
	config *ConnectionConfig
	db     *sql.DB
}

// NewConnectionManager creates a new connection manager. Zero values in
// config are filled from DefaultConnectionConfig.
func NewConnectionManager(config *ConnectionConfig) *ConnectionManager {
	defaults := DefaultConnectionConfig()
	if config.DatabasePath == "" {
		config.DatabasePath = defaults.DatabasePath
	}
	if config.MaxOpenConns == 0 {
		config.MaxOpenConns = defaults.MaxOpenConns
	}
	if config.MaxIdleConns == 0 {
		config.MaxIdleConns = defaults.MaxIdleConns
	}
	if config.ConnMaxLifetime == 0 {
		config.ConnMaxLifetime = defaults.ConnMaxLifetime
	}
	if config.Logger == nil {
		config.Logger = defaults.Logger
	}

	return &ConnectionManager{
		config: config,
	}
}

// Connect opens the database and, when AutoMigrate is set, applies pending migrations
func (cm *ConnectionManager) Connect() error {
	if cm.db != nil {
		return fmt.Errorf("database connection already established")
	}

	dbPath, err := filepath.Abs(cm.config.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute database path: %w", err)
	}

	db, err := Open(dbPath)
	if err != nil {
		return err
	}

	db.SetMaxOpenConns(cm.config.MaxOpenConns)
	db.SetMaxIdleConns(cm.config.MaxIdleConns)
	db.SetConnMaxLifetime(cm.config.ConnMaxLifetime)

	cm.db = db

	if cm.config.AutoMigrate {
		if err := cm.GetMigrationManager().RunMigrations(); err != nil {
			cm.db = nil
			db.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	cm.config.Logger.WithField("db_path", dbPath).Info("Database connection established")
	return nil
}

// Open creates the parent directory of dbPath and opens a WAL-mode SQLite database
func Open(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// GetDB returns the database connection
func (cm *ConnectionManager) GetDB() *sql.DB {
	return cm.db
}

// Close closes the database connection
func (cm *ConnectionManager) Close() error {
	if cm.db == nil {
		return nil
	}

	err := cm.db.Close()
	cm.db = nil

	if err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	cm.config.Logger.Info("Database connection closed")
	return nil
}

// Ping tests the database connection
func (cm *ConnectionManager) Ping() error {
	if cm.db == nil {
		return fmt.Errorf("database connection not established")
	}

	if err := cm.db.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// GetMigrationManager returns a migration manager for this connection
func (cm *ConnectionManager) GetMigrationManager() *MigrationManager {
	if cm.db == nil {
		return nil
	}

	return NewMigrationManager(cm.db, cm.config.Logger)
}
