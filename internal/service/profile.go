package service

import (
	"database/sql"
	"fmt"

	"github.com/chiawen/mealtrack/internal/model"
)

const (
	minActivityFactor = 1.2
	maxActivityFactor = 1.9
)

// ValidateProfile rejects out-of-range anthropometric data before any
// arithmetic runs. ComputeTDEE assumes a profile that passed this check.
func ValidateProfile(p model.Profile) error {
	if p.HeightCm <= 0 {
		return invalid("height", "must be > 0 cm")
	}
	if p.WeightKg <= 0 {
		return invalid("weight", "must be > 0 kg")
	}
	if p.AgeYears <= 0 {
		return invalid("age", "must be > 0 years")
	}
	if p.Sex != model.SexMale && p.Sex != model.SexFemale {
		return invalid("sex", fmt.Sprintf("unknown sex %q", p.Sex))
	}
	if p.ActivityFactor < minActivityFactor || p.ActivityFactor > maxActivityFactor {
		return invalid("activity factor", fmt.Sprintf("must be between %.1f and %.1f", minActivityFactor, maxActivityFactor))
	}
	if _, ok := goalPlans[p.GoalType]; !ok {
		return invalid("goal type", fmt.Sprintf("unknown goal type %q", p.GoalType))
	}
	return nil
}

func GetProfile(db *sql.DB, userID string) (*model.Profile, error) {
	var p model.Profile
	err := db.QueryRow(`
SELECT user_id, height_cm, weight_kg, age_years, sex, activity_factor, goal_type, training_mode, created_at, updated_at
FROM profiles
WHERE user_id = ?
`, userID).Scan(&p.UserID, &p.HeightCm, &p.WeightKg, &p.AgeYears, &p.Sex, &p.ActivityFactor, &p.GoalType, &p.TrainingMode, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("profile for user %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &p, nil
}

// SaveProfile validates and upserts the profile, then synchronously
// recomputes and caches the daily targets under the user's current training
// mode. The returned targets are what the caller should display.
func SaveProfile(db *sql.DB, p model.Profile) (model.Targets, error) {
	if err := ValidateProfile(p); err != nil {
		return model.Targets{}, err
	}
	if p.TrainingMode == "" {
		p.TrainingMode = model.ModeRest
	}
	if err := validateTrainingMode(p.TrainingMode); err != nil {
		return model.Targets{}, err
	}

	_, err := db.Exec(`
INSERT INTO profiles(user_id, height_cm, weight_kg, age_years, sex, activity_factor, goal_type, training_mode, updated_at)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(user_id) DO UPDATE SET
  height_cm=excluded.height_cm,
  weight_kg=excluded.weight_kg,
  age_years=excluded.age_years,
  sex=excluded.sex,
  activity_factor=excluded.activity_factor,
  goal_type=excluded.goal_type,
  training_mode=excluded.training_mode,
  updated_at=excluded.updated_at
`, p.UserID, p.HeightCm, p.WeightKg, p.AgeYears, p.Sex, p.ActivityFactor, p.GoalType, p.TrainingMode)
	if err != nil {
		return model.Targets{}, fmt.Errorf("save profile: %w", err)
	}

	targets := TargetsFor(p, p.TrainingMode)
	if err := saveTargets(db, p.UserID, targets); err != nil {
		return model.Targets{}, err
	}
	return targets, nil
}

func GetTargets(db *sql.DB, userID string) (*model.Targets, error) {
	var t model.Targets
	err := db.QueryRow(`
SELECT calories, protein_g, carbs_g, fat_g, updated_at
FROM targets
WHERE user_id = ?
`, userID).Scan(&t.Calories, &t.ProteinG, &t.CarbsG, &t.FatG, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("targets for user %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load targets: %w", err)
	}
	return &t, nil
}

func saveTargets(db *sql.DB, userID string, t model.Targets) error {
	_, err := db.Exec(`
INSERT INTO targets(user_id, calories, protein_g, carbs_g, fat_g, updated_at)
VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(user_id) DO UPDATE SET
  calories=excluded.calories,
  protein_g=excluded.protein_g,
  carbs_g=excluded.carbs_g,
  fat_g=excluded.fat_g,
  updated_at=excluded.updated_at
`, userID, t.Calories, t.ProteinG, t.CarbsG, t.FatG)
	if err != nil {
		return fmt.Errorf("save targets: %w", err)
	}
	return nil
}
