package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/chiawen/mealtrack/internal/model"
)

// State is the full-state snapshot the store contract exposes: every load
// returns the whole picture, every save replaces the fields being updated.
type State struct {
	Profile      model.Profile
	Targets      model.Targets
	TrainingMode model.TrainingMode
	Budget       model.Budget
	FoodLogs     []model.FoodLog
	BodyLogs     []model.BodyLog
	WorkoutLogs  []model.WorkoutLog
}

// Onboarding defaults, pending the user's first profile edit.
var (
	defaultProfile = model.Profile{
		HeightCm:       175,
		WeightKg:       70,
		AgeYears:       25,
		Sex:            model.SexMale,
		ActivityFactor: 1.55,
		GoalType:       model.GoalRecomp,
		TrainingMode:   model.ModeRest,
	}
	defaultTargets = model.Targets{Calories: 2500, ProteinG: 175, CarbsG: 313, FatG: 62}
	defaultBudget  = model.Budget{
		DailyTotal: 300,
		Breakdown:  model.BudgetBreakdown{Breakfast: 60, Lunch: 105, Dinner: 105, Snack: 30},
	}
)

// LoadState returns the user's full state or ErrNotFound when the user has
// no profile yet.
func LoadState(db *sql.DB, userID string) (*State, error) {
	profile, err := GetProfile(db, userID)
	if err != nil {
		return nil, err
	}
	targets, err := GetTargets(db, userID)
	if err != nil {
		return nil, err
	}
	budget, err := GetBudget(db, userID)
	if err != nil {
		return nil, err
	}
	foodLogs, err := ListFoodLogs(db, FoodLogFilter{UserID: userID})
	if err != nil {
		return nil, err
	}
	bodyLogs, err := ListBodyLogs(db, userID, 0)
	if err != nil {
		return nil, err
	}
	workoutLogs, err := ListWorkoutLogs(db, userID, 0)
	if err != nil {
		return nil, err
	}
	return &State{
		Profile:      *profile,
		Targets:      *targets,
		TrainingMode: profile.TrainingMode,
		Budget:       *budget,
		FoodLogs:     foodLogs,
		BodyLogs:     bodyLogs,
		WorkoutLogs:  workoutLogs,
	}, nil
}

// SeedDefaults writes the onboarding defaults for a new user: the default
// profile, the seeded target values, and the default budget in auto mode.
// The targets are the seeded onboarding values, not a fresh computation —
// they are replaced on the first profile edit.
func SeedDefaults(db *sql.DB, userID string) error {
	p := defaultProfile
	p.UserID = userID
	_, err := db.Exec(`
INSERT INTO profiles(user_id, height_cm, weight_kg, age_years, sex, activity_factor, goal_type, training_mode)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(user_id) DO NOTHING
`, p.UserID, p.HeightCm, p.WeightKg, p.AgeYears, p.Sex, p.ActivityFactor, p.GoalType, p.TrainingMode)
	if err != nil {
		return fmt.Errorf("seed default profile: %w", err)
	}
	if err := saveTargets(db, userID, defaultTargets); err != nil {
		return err
	}
	if _, err := saveBudget(db, userID, defaultBudget.DailyTotal, defaultBudget.Breakdown, false); err != nil {
		return err
	}
	return nil
}

// EnsureDefaultUser resolves the local single-user id, creating and seeding
// it on first run.
func EnsureDefaultUser(db *sql.DB) (string, error) {
	id, ok, err := GetConfig(db, ConfigDefaultUser)
	if err != nil {
		return "", err
	}
	if ok && id != "" {
		if _, err := GetProfile(db, id); err == nil {
			return id, nil
		} else if !errors.Is(err, ErrNotFound) {
			return "", err
		}
		// Config points at a missing profile; reseed below.
	} else {
		id = uuid.NewString()
	}
	if err := SeedDefaults(db, id); err != nil {
		return "", err
	}
	if err := SetConfig(db, ConfigDefaultUser, id); err != nil {
		return "", err
	}
	return id, nil
}
