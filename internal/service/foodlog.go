package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/chiawen/mealtrack/internal/model"
)

type CreateFoodLogInput struct {
	UserID   string
	Name     string
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
	Price    float64
	Slot     model.MealSlot
	LoggedAt time.Time
}

type UpdateFoodLogInput struct {
	ID       int64
	UserID   string
	Name     string
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
	Price    float64
	Slot     model.MealSlot
	LoggedAt time.Time
}

type FoodLogFilter struct {
	UserID string
	Date   string
	Slot   model.MealSlot
	Limit  int
}

func validateFoodNumbers(calories int, protein, carbs, fat, price float64) error {
	if err := validateNonNegativeInt("calories", calories); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("protein", protein); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("carbs", carbs); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("fat", fat); err != nil {
		return err
	}
	return validateNonNegativeFloat("price", price)
}

// CreateFoodLog inserts a food log and returns the freshly recomputed stats
// for the entry's local day. The caller always observes the post-mutation
// snapshot; there is no eventual-consistency window.
func CreateFoodLog(db *sql.DB, in CreateFoodLogInput) (int64, model.DailyStats, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, model.DailyStats{}, invalid("food name", "is required")
	}
	if err := validateFoodNumbers(in.Calories, in.ProteinG, in.CarbsG, in.FatG, in.Price); err != nil {
		return 0, model.DailyStats{}, err
	}
	if err := validateMealSlot(in.Slot); err != nil {
		return 0, model.DailyStats{}, err
	}
	if in.LoggedAt.IsZero() {
		in.LoggedAt = time.Now()
	}

	res, err := db.Exec(`
INSERT INTO food_logs(user_id, name, calories, protein_g, carbs_g, fat_g, price, meal_slot, logged_at)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
`, in.UserID, in.Name, in.Calories, in.ProteinG, in.CarbsG, in.FatG, in.Price, in.Slot, in.LoggedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, model.DailyStats{}, fmt.Errorf("insert food log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, model.DailyStats{}, fmt.Errorf("resolve inserted food log id: %w", err)
	}
	stats, err := DayStats(db, in.UserID, in.LoggedAt)
	if err != nil {
		return 0, model.DailyStats{}, err
	}
	return id, stats, nil
}

// LogEstimate records an entry from the external nutrition estimator. Only
// the shape of the estimate is checked; its accuracy is the estimator's
// problem.
func LogEstimate(db *sql.DB, userID string, est model.FoodEstimate, slot model.MealSlot, at time.Time) (int64, model.DailyStats, error) {
	return CreateFoodLog(db, CreateFoodLogInput{
		UserID:   userID,
		Name:     est.FoodName,
		Calories: est.Calories,
		ProteinG: est.ProteinG,
		CarbsG:   est.CarbsG,
		FatG:     est.FatG,
		Price:    est.Price,
		Slot:     slot,
		LoggedAt: at,
	})
}

func UpdateFoodLog(db *sql.DB, in UpdateFoodLogInput) (model.DailyStats, error) {
	if in.ID <= 0 {
		return model.DailyStats{}, invalid("food log id", "must be > 0")
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return model.DailyStats{}, invalid("food name", "is required")
	}
	if err := validateFoodNumbers(in.Calories, in.ProteinG, in.CarbsG, in.FatG, in.Price); err != nil {
		return model.DailyStats{}, err
	}
	if err := validateMealSlot(in.Slot); err != nil {
		return model.DailyStats{}, err
	}
	if in.LoggedAt.IsZero() {
		return model.DailyStats{}, invalid("logged time", "is required")
	}

	res, err := db.Exec(`
UPDATE food_logs
SET name = ?, calories = ?, protein_g = ?, carbs_g = ?, fat_g = ?, price = ?, meal_slot = ?, logged_at = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND user_id = ?
`, in.Name, in.Calories, in.ProteinG, in.CarbsG, in.FatG, in.Price, in.Slot, in.LoggedAt.UTC().Format(time.RFC3339), in.ID, in.UserID)
	if err != nil {
		return model.DailyStats{}, fmt.Errorf("update food log %d: %w", in.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return model.DailyStats{}, fmt.Errorf("read rows affected for food log %d: %w", in.ID, err)
	}
	if affected == 0 {
		return model.DailyStats{}, fmt.Errorf("food log %d: %w", in.ID, ErrNotFound)
	}
	return DayStats(db, in.UserID, in.LoggedAt)
}

func DeleteFoodLog(db *sql.DB, userID string, id int64) (model.DailyStats, error) {
	if id <= 0 {
		return model.DailyStats{}, invalid("food log id", "must be > 0")
	}
	// Single-statement delete so the returned snapshot is computed for the
	// row that was actually removed.
	var loggedAtRaw string
	err := db.QueryRow(`DELETE FROM food_logs WHERE id = ? AND user_id = ? RETURNING logged_at`, id, userID).Scan(&loggedAtRaw)
	if err == sql.ErrNoRows {
		return model.DailyStats{}, fmt.Errorf("food log %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.DailyStats{}, fmt.Errorf("delete food log %d: %w", id, err)
	}
	loggedAt, err := time.Parse(time.RFC3339, loggedAtRaw)
	if err != nil {
		return model.DailyStats{}, fmt.Errorf("parse logged_at for food log %d: %w", id, err)
	}
	return DayStats(db, userID, loggedAt)
}

func ListFoodLogs(db *sql.DB, f FoodLogFilter) ([]model.FoodLog, error) {
	query := `
SELECT id, user_id, name, calories, protein_g, carbs_g, fat_g, price, meal_slot, logged_at
FROM food_logs
WHERE user_id = ?`
	args := []any{f.UserID}

	if strings.TrimSpace(f.Date) != "" {
		day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(f.Date), time.Local)
		if err != nil {
			return nil, invalid("date", fmt.Sprintf("%q is not YYYY-MM-DD", f.Date))
		}
		query += ` AND logged_at >= ? AND logged_at < ?`
		args = append(args, day.UTC().Format(time.RFC3339), nextMidnight(day).UTC().Format(time.RFC3339))
	}
	if f.Slot != "" {
		if err := validateMealSlot(f.Slot); err != nil {
			return nil, err
		}
		query += ` AND meal_slot = ?`
		args = append(args, f.Slot)
	}
	query += ` ORDER BY logged_at DESC`
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list food logs: %w", err)
	}
	defer rows.Close()
	return scanFoodLogs(rows)
}

func scanFoodLogs(rows *sql.Rows) ([]model.FoodLog, error) {
	entries := make([]model.FoodLog, 0)
	for rows.Next() {
		var e model.FoodLog
		var loggedAtRaw string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Name, &e.Calories, &e.ProteinG, &e.CarbsG, &e.FatG, &e.Price, &e.Slot, &loggedAtRaw); err != nil {
			return nil, fmt.Errorf("scan food log: %w", err)
		}
		loggedAt, err := time.Parse(time.RFC3339, loggedAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse logged_at for food log %d: %w", e.ID, err)
		}
		e.LoggedAt = loggedAt
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food logs: %w", err)
	}
	return entries, nil
}
