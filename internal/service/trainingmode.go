package service

import (
	"database/sql"
	"fmt"

	"github.com/chiawen/mealtrack/internal/model"
)

// SetTrainingMode records the day's training mode and recomputes the cached
// targets from the profile from scratch. It never patches the previously
// cached targets, so a profile edit between mode selections is always
// reflected.
func SetTrainingMode(db *sql.DB, userID string, mode model.TrainingMode) (model.Targets, error) {
	if err := validateTrainingMode(mode); err != nil {
		return model.Targets{}, err
	}
	profile, err := GetProfile(db, userID)
	if err != nil {
		return model.Targets{}, err
	}

	if _, err := db.Exec(`
UPDATE profiles SET training_mode = ?, updated_at = CURRENT_TIMESTAMP WHERE user_id = ?
`, mode, userID); err != nil {
		return model.Targets{}, fmt.Errorf("save training mode: %w", err)
	}

	targets := TargetsFor(*profile, mode)
	if err := saveTargets(db, userID, targets); err != nil {
		return model.Targets{}, err
	}
	return targets, nil
}
