package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/chiawen/mealtrack/internal/model"
	"github.com/chiawen/mealtrack/internal/service"
)

func TestLoadStateUnknownUserIsNotFound(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	_, err := service.LoadState(db, uuid.NewString())
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSeedDefaultsWritesOnboardingValues(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	userID := uuid.NewString()
	if err := service.SeedDefaults(db, userID); err != nil {
		t.Fatalf("seed defaults: %v", err)
	}

	state, err := service.LoadState(db, userID)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	p := state.Profile
	if p.HeightCm != 175 || p.WeightKg != 70 || p.AgeYears != 25 || p.Sex != model.SexMale ||
		p.ActivityFactor != 1.55 || p.GoalType != model.GoalRecomp {
		t.Fatalf("unexpected default profile: %+v", p)
	}
	if state.TrainingMode != model.ModeRest {
		t.Fatalf("expected rest mode, got %s", state.TrainingMode)
	}
	tg := state.Targets
	if tg.Calories != 2500 || tg.ProteinG != 175 || tg.CarbsG != 313 || tg.FatG != 62 {
		t.Fatalf("unexpected default targets: %+v", tg)
	}
	b := state.Budget
	if b.DailyTotal != 300 || b.Custom {
		t.Fatalf("unexpected default budget: %+v", b)
	}
	want := model.BudgetBreakdown{Breakfast: 60, Lunch: 105, Dinner: 105, Snack: 30}
	if b.Breakdown != want {
		t.Fatalf("expected default breakdown %+v, got %+v", want, b.Breakdown)
	}
	if len(state.FoodLogs) != 0 || len(state.BodyLogs) != 0 || len(state.WorkoutLogs) != 0 {
		t.Fatalf("expected empty logs for a fresh user")
	}
}

func TestSeedDefaultsDoesNotOverwriteEditedProfile(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	userID := newTestUser(t, db)

	p := referenceProfile()
	p.UserID = userID
	p.WeightKg = 82
	if _, err := service.SaveProfile(db, p); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if err := service.SeedDefaults(db, userID); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	got, err := service.GetProfile(db, userID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if got.WeightKg != 82 {
		t.Fatalf("expected edited weight to survive reseed, got %.1f", got.WeightKg)
	}
}

func TestEnsureDefaultUserIsStable(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	first, err := service.EnsureDefaultUser(db)
	if err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	second, err := service.EnsureDefaultUser(db)
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if first == "" || first != second {
		t.Fatalf("expected stable default user id, got %q then %q", first, second)
	}
}

func TestLoadStateIncludesLogs(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()
	userID := newTestUser(t, db)

	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.Local)
	if _, _, err := service.CreateFoodLog(db, service.CreateFoodLogInput{
		UserID: userID, Name: "salad", Calories: 200, Slot: model.SlotLunch, LoggedAt: at,
	}); err != nil {
		t.Fatalf("create food log: %v", err)
	}
	if _, err := service.AddBodyLog(db, service.AddBodyLogInput{UserID: userID, WeightKg: 70.5, LoggedAt: at}); err != nil {
		t.Fatalf("add body log: %v", err)
	}
	if _, err := service.AddWorkoutLog(db, service.AddWorkoutLogInput{UserID: userID, Activity: "squat", Source: "import", LoggedAt: at}); err != nil {
		t.Fatalf("add workout log: %v", err)
	}

	state, err := service.LoadState(db, userID)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	if len(state.FoodLogs) != 1 || len(state.BodyLogs) != 1 || len(state.WorkoutLogs) != 1 {
		t.Fatalf("expected one log of each kind, got %d/%d/%d",
			len(state.FoodLogs), len(state.BodyLogs), len(state.WorkoutLogs))
	}
	if state.WorkoutLogs[0].Source != "import" {
		t.Fatalf("expected workout source preserved, got %q", state.WorkoutLogs[0].Source)
	}
}
