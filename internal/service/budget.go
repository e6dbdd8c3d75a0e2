package service

import (
	"database/sql"
	"fmt"
	"math"

	"github.com/chiawen/mealtrack/internal/model"
)

// Fixed slot shares used whenever the aggregate budget is edited in auto
// mode: 20% breakfast, 35% lunch, 35% dinner, 10% snack.
const (
	breakfastShare = 0.20
	lunchShare     = 0.35
	dinnerShare    = 0.35
	snackShare     = 0.10
)

// AllocateFromTotal splits a daily total across the four meal slots by the
// fixed percentage split. Each slot is rounded independently, so the slots
// can drift from the total by a couple of units.
func AllocateFromTotal(total float64) (model.BudgetBreakdown, error) {
	if err := validateNonNegativeFloat("budget total", total); err != nil {
		return model.BudgetBreakdown{}, err
	}
	return model.BudgetBreakdown{
		Breakfast: math.Round(total * breakfastShare),
		Lunch:     math.Round(total * lunchShare),
		Dinner:    math.Round(total * dinnerShare),
		Snack:     math.Round(total * snackShare),
	}, nil
}

// TotalFromBreakdown derives the daily total as the sum of the four slots.
// In custom mode this is the only way the total changes.
func TotalFromBreakdown(b model.BudgetBreakdown) float64 {
	return b.Breakfast + b.Lunch + b.Dinner + b.Snack
}

func GetBudget(db *sql.DB, userID string) (*model.Budget, error) {
	var b model.Budget
	err := db.QueryRow(`
SELECT daily_total, breakfast, lunch, dinner, snack, custom, updated_at
FROM budgets
WHERE user_id = ?
`, userID).Scan(&b.DailyTotal, &b.Breakdown.Breakfast, &b.Breakdown.Lunch, &b.Breakdown.Dinner, &b.Breakdown.Snack, &b.Custom, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("budget for user %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load budget: %w", err)
	}
	return &b, nil
}

// SetBudgetTotal replaces the daily total and redistributes the slots by the
// fixed split. Only valid in auto mode, where the total is authoritative.
func SetBudgetTotal(db *sql.DB, userID string, total float64) (*model.Budget, error) {
	current, err := GetBudget(db, userID)
	if err != nil {
		return nil, err
	}
	if current.Custom {
		return nil, invalid("budget total", "budget is in custom mode; edit slots or switch to auto mode")
	}
	breakdown, err := AllocateFromTotal(total)
	if err != nil {
		return nil, err
	}
	return saveBudget(db, userID, total, breakdown, false)
}

// SetBudgetSlot replaces one slot value and derives the total as the sum of
// the slots. Only valid in custom mode, where the slots are authoritative.
func SetBudgetSlot(db *sql.DB, userID string, slot model.MealSlot, amount float64) (*model.Budget, error) {
	if err := validateMealSlot(slot); err != nil {
		return nil, err
	}
	if err := validateNonNegativeFloat("slot amount", amount); err != nil {
		return nil, err
	}
	current, err := GetBudget(db, userID)
	if err != nil {
		return nil, err
	}
	if !current.Custom {
		return nil, invalid("budget slot", "budget is in auto mode; edit the total or switch to custom mode")
	}
	breakdown := current.Breakdown
	switch slot {
	case model.SlotBreakfast:
		breakdown.Breakfast = amount
	case model.SlotLunch:
		breakdown.Lunch = amount
	case model.SlotDinner:
		breakdown.Dinner = amount
	case model.SlotSnack:
		breakdown.Snack = amount
	}
	return saveBudget(db, userID, TotalFromBreakdown(breakdown), breakdown, true)
}

// SetBudgetMode toggles which edit direction is authoritative. Switching
// modes never mutates the stored values, only how future edits flow.
func SetBudgetMode(db *sql.DB, userID string, custom bool) (*model.Budget, error) {
	current, err := GetBudget(db, userID)
	if err != nil {
		return nil, err
	}
	if current.Custom == custom {
		return current, nil
	}
	return saveBudget(db, userID, current.DailyTotal, current.Breakdown, custom)
}

func saveBudget(db *sql.DB, userID string, total float64, b model.BudgetBreakdown, custom bool) (*model.Budget, error) {
	_, err := db.Exec(`
INSERT INTO budgets(user_id, daily_total, breakfast, lunch, dinner, snack, custom, updated_at)
VALUES(?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(user_id) DO UPDATE SET
  daily_total=excluded.daily_total,
  breakfast=excluded.breakfast,
  lunch=excluded.lunch,
  dinner=excluded.dinner,
  snack=excluded.snack,
  custom=excluded.custom,
  updated_at=excluded.updated_at
`, userID, total, b.Breakfast, b.Lunch, b.Dinner, b.Snack, custom)
	if err != nil {
		return nil, fmt.Errorf("save budget: %w", err)
	}
	return GetBudget(db, userID)
}
