package service_test

import (
	"testing"
	"time"

	"github.com/chiawen/mealtrack/internal/model"
	"github.com/chiawen/mealtrack/internal/service"
)

func TestComputeProgressRemainingValues(t *testing.T) {
	t.Parallel()
	stats := model.DailyStats{Calories: 1800, ProteinG: 120, CarbsG: 200, FatG: 50, SpentBudget: 220}
	targets := model.Targets{Calories: 2490, ProteinG: 174, CarbsG: 311, FatG: 61}
	budget := model.Budget{DailyTotal: 300}

	got := service.ComputeProgress(stats, targets, budget)
	if got.RemainingCalories != 690 {
		t.Fatalf("expected 690 kcal remaining, got %d", got.RemainingCalories)
	}
	if got.RemainingProteinG != 54 || got.RemainingCarbsG != 111 || got.RemainingFatG != 11 {
		t.Fatalf("unexpected remaining macros: P %.1f C %.1f F %.1f", got.RemainingProteinG, got.RemainingCarbsG, got.RemainingFatG)
	}
	if got.RemainingBudget != 80 {
		t.Fatalf("expected 80 budget remaining, got %.2f", got.RemainingBudget)
	}
	if len(got.Warnings) != 0 {
		t.Fatalf("expected no warnings under target, got %v", got.Warnings)
	}
}

func TestComputeProgressWarnings(t *testing.T) {
	t.Parallel()
	targets := model.Targets{Calories: 2000, ProteinG: 150, CarbsG: 200, FatG: 60}
	budget := model.Budget{DailyTotal: 300}

	cases := []struct {
		name  string
		stats model.DailyStats
		want  string
	}{
		{"calorie overrun", model.DailyStats{Calories: 2100, ProteinG: 160}, "calorie target exceeded"},
		{"fat overrun", model.DailyStats{Calories: 1500, FatG: 75}, "fat target exceeded"},
		{"protein shortfall at calorie limit", model.DailyStats{Calories: 2000, ProteinG: 90}, "calorie target reached with protein still short"},
		{"budget overrun", model.DailyStats{SpentBudget: 320}, "daily budget exceeded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := service.ComputeProgress(tc.stats, targets, budget)
			found := false
			for _, w := range got.Warnings {
				if w == tc.want {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected warning %q, got %v", tc.want, got.Warnings)
			}
		})
	}
}

func TestDayProgressForCombinesStateAndStats(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	userID := newTestUser(t, db)

	at := time.Date(2026, 6, 10, 9, 0, 0, 0, time.Local)
	if _, _, err := service.CreateFoodLog(db, service.CreateFoodLogInput{
		UserID: userID, Name: "egg pancake", Calories: 400, ProteinG: 18, Price: 55, Slot: model.SlotBreakfast, LoggedAt: at,
	}); err != nil {
		t.Fatalf("create food log: %v", err)
	}

	progress, err := service.DayProgressFor(db, userID, at)
	if err != nil {
		t.Fatalf("day progress: %v", err)
	}
	if progress.Date != "2026-06-10" {
		t.Fatalf("expected date 2026-06-10, got %s", progress.Date)
	}
	if progress.Stats.Calories != 400 {
		t.Fatalf("expected 400 consumed, got %d", progress.Stats.Calories)
	}
	// Seeded defaults: 2500 kcal target, 300 budget.
	if progress.RemainingCalories != 2100 {
		t.Fatalf("expected 2100 kcal remaining, got %d", progress.RemainingCalories)
	}
	if progress.RemainingBudget != 245 {
		t.Fatalf("expected 245 budget remaining, got %.2f", progress.RemainingBudget)
	}
	if progress.TrainingMode != model.ModeRest {
		t.Fatalf("expected rest mode, got %s", progress.TrainingMode)
	}
}
