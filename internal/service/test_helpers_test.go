package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/chiawen/mealtrack/internal/db"
	"github.com/chiawen/mealtrack/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mealtrack.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func newTestUser(t *testing.T, sqldb *sql.DB) string {
	t.Helper()
	id := uuid.NewString()
	if err := service.SeedDefaults(sqldb, id); err != nil {
		t.Fatalf("seed defaults: %v", err)
	}
	return id
}
