package database

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestManager(t *testing.T, autoMigrate bool) *ConnectionManager {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	cm := NewConnectionManager(&ConnectionConfig{
		DatabasePath: filepath.Join(t.TempDir(), "nested", "todos.db"),
		AutoMigrate:  autoMigrate,
		Logger:       logger,
	})
	if err := cm.Connect(); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	t.Cleanup(func() { cm.Close() })
	return cm
}

func TestConnectionManager_ConnectMigrates(t *testing.T) {
	cm := newTestManager(t, true)

	if err := cm.Ping(); err != nil {
		t.Errorf("Ping() error = %v", err)
	}

	mm := cm.GetMigrationManager()
	if err := mm.ValidateSchema(); err != nil {
		t.Errorf("ValidateSchema() error = %v", err)
	}

	status, err := mm.GetMigrationStatus()
	if err != nil {
		t.Fatalf("GetMigrationStatus() error = %v", err)
	}
	if status.Version != 1 || status.Dirty || !status.Applied {
		t.Errorf("Unexpected status %+v", status)
	}

	// applying again is a no-op
	if err := mm.RunMigrations(); err != nil {
		t.Errorf("second RunMigrations() error = %v", err)
	}
}

func TestMigrationManager_TableStatus(t *testing.T) {
	cm := newTestManager(t, false)
	mm := cm.GetMigrationManager()

	status, err := mm.GetTableStatus()
	if err != nil {
		t.Fatalf("GetTableStatus() error = %v", err)
	}
	if status.Exists || status.Table != TodosTable {
		t.Errorf("Expected missing %s table, got %+v", TodosTable, status)
	}

	if err := mm.RunMigrations(); err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}
	if _, err := cm.GetDB().Exec(`INSERT INTO todos (id, title, completed) VALUES ('1', 'Buy milk', 0)`); err != nil {
		t.Fatalf("insert error = %v", err)
	}

	status, err = mm.GetTableStatus()
	if err != nil {
		t.Fatalf("GetTableStatus() error = %v", err)
	}
	if !status.Exists || status.Rows != 1 {
		t.Errorf("Expected one row in existing table, got %+v", status)
	}
	if got := strings.Join(status.Columns, ","); got != "id,title,completed" {
		t.Errorf("Columns = %s, want id,title,completed", got)
	}
}

func TestConnectionManager_ConnectTwice(t *testing.T) {
	cm := newTestManager(t, false)
	if err := cm.Connect(); err == nil {
		t.Error("Expected error on second Connect()")
	}
}

func TestMigrationManager_Rollback(t *testing.T) {
	cm := newTestManager(t, false)
	mm := cm.GetMigrationManager()

	if err := mm.RollbackMigration(); err == nil {
		t.Error("Expected error rolling back an empty database")
	}

	status, err := mm.GetMigrationStatus()
	if err != nil {
		t.Fatalf("GetMigrationStatus() error = %v", err)
	}
	if status.Applied {
		t.Errorf("Expected no migrations applied, got %+v", status)
	}

	if err := mm.RunMigrations(); err != nil {
		t.Fatalf("RunMigrations() error = %v", err)
	}
	if err := mm.RollbackMigration(); err != nil {
		t.Fatalf("RollbackMigration() error = %v", err)
	}
	if err := mm.ValidateSchema(); err == nil {
		t.Error("Expected schema validation to fail after rollback")
	}

	// the shared connection must survive the migrate instance
	if err := cm.Ping(); err != nil {
		t.Errorf("Ping() after rollback error = %v", err)
	}
}

func TestClosedManager(t *testing.T) {
	cm := NewConnectionManager(&ConnectionConfig{})
	if cm.GetMigrationManager() != nil {
		t.Error("Expected nil migration manager before Connect()")
	}
	if err := cm.Ping(); err == nil {
		t.Error("Expected Ping() to fail before Connect()")
	}
	if err := cm.Close(); err != nil {
		t.Errorf("Close() on unconnected manager error = %v", err)
	}
}
