package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/chiawen/mealtrack/internal/model"
)

// sameLocalDay reports whether two instants fall on the same calendar day in
// local time. "Today" is a user-facing, timezone-sensitive concept, so the
// boundary is deliberately the local midnight, not UTC.
func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// ComputeDailyStats folds the food logs that share ref's local calendar day
// into a consumption snapshot. Pure and deterministic: it is recomputed in
// full after every log mutation instead of maintained incrementally, which
// trades an O(n) walk for immunity to add/subtract drift on deletes.
func ComputeDailyStats(entries []model.FoodLog, ref time.Time) model.DailyStats {
	var s model.DailyStats
	for _, e := range entries {
		if !sameLocalDay(e.LoggedAt, ref) {
			continue
		}
		s.Calories += e.Calories
		s.ProteinG += e.ProteinG
		s.CarbsG += e.CarbsG
		s.FatG += e.FatG
		s.SpentBudget += e.Price
	}
	return s
}

// DayStats loads the user's food logs around ref's local day and folds them
// with ComputeDailyStats.
func DayStats(db *sql.DB, userID string, ref time.Time) (model.DailyStats, error) {
	entries, err := foodLogsBetween(db, userID, beginningOfDay(ref), nextMidnight(ref))
	if err != nil {
		return model.DailyStats{}, err
	}
	return ComputeDailyStats(entries, ref), nil
}

// foodLogsBetween compares logged_at lexicographically, which is only sound
// because every timestamp is stored in UTC.
func foodLogsBetween(db *sql.DB, userID string, from, to time.Time) ([]model.FoodLog, error) {
	rows, err := db.Query(`
SELECT id, user_id, name, calories, protein_g, carbs_g, fat_g, price, meal_slot, logged_at
FROM food_logs
WHERE user_id = ? AND logged_at >= ? AND logged_at < ?
ORDER BY logged_at ASC
`, userID, from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("query food logs: %w", err)
	}
	defer rows.Close()
	return scanFoodLogs(rows)
}
