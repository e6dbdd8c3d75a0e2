package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/chiawen/mealtrack/internal/service"
)

func TestAddAndListBodyLogs(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	userID := newTestUser(t, db)

	fat := 18.5
	at := time.Date(2026, 7, 1, 7, 30, 0, 0, time.Local)
	id, err := service.AddBodyLog(db, service.AddBodyLogInput{
		UserID: userID, WeightKg: 70.2, BodyFatPct: &fat, LoggedAt: at, Notes: "morning",
	})
	if err != nil {
		t.Fatalf("add body log: %v", err)
	}

	logs, err := service.ListBodyLogs(db, userID, 10)
	if err != nil {
		t.Fatalf("list body logs: %v", err)
	}
	if len(logs) != 1 || logs[0].ID != id {
		t.Fatalf("expected one log with id %d, got %+v", id, logs)
	}
	if logs[0].BodyFatPct == nil || *logs[0].BodyFatPct != 18.5 {
		t.Fatalf("expected body fat 18.5, got %+v", logs[0].BodyFatPct)
	}

	if err := service.DeleteBodyLog(db, userID, id); err != nil {
		t.Fatalf("delete body log: %v", err)
	}
	if err := service.DeleteBodyLog(db, userID, id); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestAddBodyLogValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	userID := newTestUser(t, db)

	if _, err := service.AddBodyLog(db, service.AddBodyLogInput{UserID: userID, WeightKg: 0}); err == nil {
		t.Fatalf("expected zero weight to fail")
	}
	fat := 130.0
	if _, err := service.AddBodyLog(db, service.AddBodyLogInput{UserID: userID, WeightKg: 70, BodyFatPct: &fat}); err == nil {
		t.Fatalf("expected out-of-range body fat to fail")
	}
}
