package service

import (
	"database/sql"
	"time"

	"github.com/chiawen/mealtrack/internal/model"
)

// Progress holds the remaining headroom against targets and budget plus the
// threshold warnings the UI layer turns into alerts.
type Progress struct {
	RemainingCalories int      `json:"remaining_calories"`
	RemainingProteinG float64  `json:"remaining_protein_g"`
	RemainingCarbsG   float64  `json:"remaining_carbs_g"`
	RemainingFatG     float64  `json:"remaining_fat_g"`
	RemainingBudget   float64  `json:"remaining_budget"`
	Warnings          []string `json:"warnings"`
}

type DayProgress struct {
	Date         string             `json:"date"`
	Stats        model.DailyStats   `json:"stats"`
	Targets      model.Targets      `json:"targets"`
	Budget       model.Budget       `json:"budget"`
	TrainingMode model.TrainingMode `json:"training_mode"`
	Progress
}

// ComputeProgress is the pure comparison step between a day's consumption
// and the cached targets and budget.
func ComputeProgress(stats model.DailyStats, targets model.Targets, budget model.Budget) Progress {
	p := Progress{
		RemainingCalories: targets.Calories - stats.Calories,
		RemainingProteinG: float64(targets.ProteinG) - stats.ProteinG,
		RemainingCarbsG:   float64(targets.CarbsG) - stats.CarbsG,
		RemainingFatG:     float64(targets.FatG) - stats.FatG,
		RemainingBudget:   budget.DailyTotal - stats.SpentBudget,
		Warnings:          make([]string, 0),
	}
	if stats.Calories > targets.Calories {
		p.Warnings = append(p.Warnings, "calorie target exceeded")
	}
	if stats.FatG > float64(targets.FatG) {
		p.Warnings = append(p.Warnings, "fat target exceeded")
	}
	if stats.Calories >= targets.Calories && stats.ProteinG < float64(targets.ProteinG) {
		p.Warnings = append(p.Warnings, "calorie target reached with protein still short")
	}
	if stats.SpentBudget > budget.DailyTotal {
		p.Warnings = append(p.Warnings, "daily budget exceeded")
	}
	return p
}

// DayProgressFor assembles the {targets, todayStats} pair the UI renders:
// the day's consumption snapshot against the cached targets and budget.
func DayProgressFor(db *sql.DB, userID string, ref time.Time) (*DayProgress, error) {
	stats, err := DayStats(db, userID, ref)
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
	profile, err := GetProfile(db, userID)
	if err != nil {
		return nil, err
	}

	return &DayProgress{
		Date:         beginningOfDay(ref).Format("2006-01-02"),
		Stats:        stats,
		Targets:      *targets,
		Budget:       *budget,
		TrainingMode: profile.TrainingMode,
		Progress:     ComputeProgress(stats, *targets, *budget),
	}, nil
}
