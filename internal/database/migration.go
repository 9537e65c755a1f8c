package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// TodosTable is the table created by the first migration
const TodosTable = "todos"

// MigrationManager handles database migrations
type MigrationManager struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *sql.DB, logger *logrus.Logger) *MigrationManager {
	if logger == nil {
		logger = logrus.New()
	}
	return &MigrationManager{
		db:     db,
		logger: logger,
	}
}

// MigrationInfo contains information about a migration
type MigrationInfo struct {
	Version   uint
	Dirty     bool
	Applied   bool
	Timestamp time.Time
}

// RunMigrations executes all pending migrations
func (m *MigrationManager) RunMigrations() error {
	m.logger.Debug("Starting database migrations")

	mg, err := m.initMigrate()
	if err != nil {
		return fmt.Errorf("failed to initialize migrate: %w", err)
	}

	currentVersion, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	if dirty {
		m.logger.Warn("Database is in dirty state, attempting to force version")
		if err := mg.Force(int(currentVersion)); err != nil {
			return fmt.Errorf("failed to force migration version: %w", err)
		}
	}

	if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	newVersion, _, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}

	m.logger.WithFields(logrus.Fields{
		"previous_version": currentVersion,
		"current_version":  newVersion,
	}).Info("Migrations completed successfully")
	return nil
}

// RollbackMigration rolls back the last migration
func (m *MigrationManager) RollbackMigration() error {
	mg, err := m.initMigrate()
	if err != nil {
		return fmt.Errorf("failed to initialize migrate: %w", err)
	}

	currentVersion, _, err := mg.Version()
	if err != nil {
		if errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("no migrations to rollback")
		}
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	m.logger.WithField("current_version", currentVersion).Info("Rolling back from version")

	if err := mg.Steps(-1); err != nil {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}

	m.logger.Info("Rollback completed successfully")
	return nil
}

// GetMigrationStatus returns the current migration status
func (m *MigrationManager) GetMigrationStatus() (*MigrationInfo, error) {
	mg, err := m.initMigrate()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize migrate: %w", err)
	}

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return nil, fmt.Errorf("failed to get migration version: %w", err)
	}

	return &MigrationInfo{
		Version:   version,
		Dirty:     dirty,
		Applied:   err == nil,
		Timestamp: time.Now(),
	}, nil
}

// TableStatus describes the todos table as it exists in the database
type TableStatus struct {
	Table   string
	Exists  bool
	Columns []string
	Rows    int
}

// requiredColumns are the todos columns every store query relies on
var requiredColumns = []string{"id", "title", "completed"}

// GetTableStatus inspects the todos table: existence, columns in
// declaration order and row count.
func (m *MigrationManager) GetTableStatus() (*TableStatus, error) {
	status := &TableStatus{Table: TodosTable}

	var count int
	query := `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`
	if err := m.db.QueryRow(query, TodosTable).Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to check table %s: %w", TodosTable, err)
	}
	if count == 0 {
		return status, nil
	}
	status.Exists = true

	rows, err := m.db.Query(fmt.Sprintf("PRAGMA table_info(%s)", TodosTable))
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", TodosTable, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column info: %w", err)
		}
		status.Columns = append(status.Columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := m.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", TodosTable)).Scan(&status.Rows); err != nil {
		return nil, fmt.Errorf("failed to count rows of %s: %w", TodosTable, err)
	}

	return status, nil
}

// ValidateSchema checks that the todos table exists with the expected columns
func (m *MigrationManager) ValidateSchema() error {
	status, err := m.GetTableStatus()
	if err != nil {
		return err
	}
	if !status.Exists {
		return fmt.Errorf("expected table %s not found", TodosTable)
	}

	present := make(map[string]bool, len(status.Columns))
	for _, col := range status.Columns {
		present[col] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return fmt.Errorf("table %s is missing column %s", TodosTable, col)
		}
	}

	return nil
}

// initMigrate builds a migrate instance over the embedded migrations. The
// instance is never closed: closing it would close the shared *sql.DB.
func (m *MigrationManager) initMigrate() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}

	driver, err := sqlite3.WithInstance(m.db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create database driver: %w", err)
	}

	mg, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return mg, nil
}
