// Command migrate manages the SQLite schema behind STORAGE_TYPE=sqlite.
//
//	migrate -action up        apply pending migrations
//	migrate -action down      roll back the last migration
//	migrate -action status    print the schema version and the todos table
//	migrate -action validate  fail unless the todos table has every column
package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"serverless-todos-api/internal/config"
	"serverless-todos-api/internal/database"

	"github.com/sirupsen/logrus"
)

var actions = map[string]func(*database.MigrationManager) error{
	"up":       applyMigrations,
	"down":     rollbackMigration,
	"status":   printStatus,
	"validate": validateTodosTable,
}

func main() {
	var (
		dbPath  = flag.String("db", config.GetEnv("SQLITE_PATH", "./data/todos.db"), "SQLite todo store path")
		action  = flag.String("action", "up", "Migration action: up, down, status, validate")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	logger := logrus.New()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	run, ok := actions[*action]
	if !ok {
		logger.WithField("action", *action).Fatal("Unknown action. Use: up, down, status, validate")
	}

	absDBPath, err := filepath.Abs(*dbPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to resolve todo store path")
	}

	entry := logger.WithFields(logrus.Fields{
		"db_path": absDBPath,
		"table":   database.TodosTable,
		"action":  *action,
	})
	entry.Debug("Opening todo store")

	// migrations are applied explicitly by the actions, never on connect
	cm := database.NewConnectionManager(&database.ConnectionConfig{
		DatabasePath: absDBPath,
		Logger:       logger,
	})
	if err := cm.Connect(); err != nil {
		entry.WithError(err).Fatal("Failed to open todo store")
	}

	err = run(cm.GetMigrationManager())
	cm.Close()
	if err != nil {
		entry.WithError(err).Fatal("Migration action failed")
	}

	entry.Info("Migration action completed")
}

func applyMigrations(mm *database.MigrationManager) error {
	if err := mm.RunMigrations(); err != nil {
		return err
	}
	return printStatus(mm)
}

func rollbackMigration(mm *database.MigrationManager) error {
	if err := mm.RollbackMigration(); err != nil {
		return err
	}
	return printStatus(mm)
}

func printStatus(mm *database.MigrationManager) error {
	migration, err := mm.GetMigrationStatus()
	if err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	table, err := mm.GetTableStatus()
	if err != nil {
		return err
	}

	fmt.Printf("Schema version: %d (applied: %t, dirty: %t)\n", migration.Version, migration.Applied, migration.Dirty)
	if !table.Exists {
		fmt.Printf("Table %s: not created\n", table.Table)
		return nil
	}
	fmt.Printf("Table %s: %d todos, columns %s\n", table.Table, table.Rows, strings.Join(table.Columns, ", "))
	return nil
}

func validateTodosTable(mm *database.MigrationManager) error {
	if err := mm.ValidateSchema(); err != nil {
		return err
	}
	fmt.Printf("Table %s matches the todo schema\n", database.TodosTable)
	return nil
}
