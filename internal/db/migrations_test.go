package db_test

import (
	"path/filepath"
	"testing"

	"github.com/chiawen/mealtrack/internal/db"
)

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "mealtrack.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()

	for i := 0; i < 2; i++ {
		if err := db.ApplyMigrations(sqldb); err != nil {
			t.Fatalf("apply migrations run %d: %v", i+1, err)
		}
	}

	for _, table := range []string{"profiles", "targets", "budgets", "food_logs", "body_logs", "workout_logs", "app_config"} {
		var name string
		err := sqldb.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("expected table %s to exist: %v", table, err)
		}
	}
}

func TestSchemaRejectsOutOfRangeRows(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "mealtrack.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer sqldb.Close()
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	_, err = sqldb.Exec(`
INSERT INTO profiles(user_id, height_cm, weight_kg, age_years, sex, activity_factor, goal_type)
VALUES('u1', 175, 70, 25, 'male', 3.0, 'recomp')
`)
	if err == nil {
		t.Fatalf("expected activity factor check constraint to fire")
	}
}
