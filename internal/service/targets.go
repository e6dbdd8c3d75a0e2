package service

import (
	"math"

	"github.com/chiawen/mealtrack/internal/model"
)

// macroPlan holds the calorie multiplier and macro calorie shares for one
// goal type. Shares are of target calories, converted to grams at 4 kcal/g
// for protein and carbs, 9 kcal/g for fat.
type macroPlan struct {
	calorieMult float64
	proteinPct  float64
	fatPct      float64
	carbPct     float64
}

var goalPlans = map[model.GoalType]macroPlan{
	model.GoalLoseFat:     {calorieMult: 0.80, proteinPct: 0.35, fatPct: 0.30, carbPct: 0.35},
	model.GoalBuildMuscle: {calorieMult: 1.10, proteinPct: 0.25, fatPct: 0.25, carbPct: 0.50},
	model.GoalRecomp:      {calorieMult: 0.96, proteinPct: 0.28, fatPct: 0.22, carbPct: 0.50},
	model.GoalMaintain:    {calorieMult: 1.00, proteinPct: 0.30, fatPct: 0.30, carbPct: 0.40},
}

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// ComputeTDEE estimates total daily energy expenditure from a validated
// profile using the Mifflin-St Jeor equation. Callers must validate the
// profile first; this is pure arithmetic with no error paths.
func ComputeTDEE(p model.Profile) int {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.AgeYears)
	if p.Sex == model.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr * p.ActivityFactor))
}

// ComputeTargets derives calorie and macro gram targets from a TDEE and goal
// type. Unknown goal types fall back to the maintain plan. Each gram target
// is rounded independently, so macro calories may drift from the calorie
// target by a few kcal; that drift is defined behavior, not reconciled.
func ComputeTargets(tdee int, goal model.GoalType) model.Targets {
	plan, ok := goalPlans[goal]
	if !ok {
		plan = goalPlans[model.GoalMaintain]
	}
	calories := int(math.Round(float64(tdee) * plan.calorieMult))
	return model.Targets{
		Calories: calories,
		ProteinG: int(math.Round(float64(calories) * plan.proteinPct / kcalPerGramProtein)),
		CarbsG:   int(math.Round(float64(calories) * plan.carbPct / kcalPerGramCarbs)),
		FatG:     int(math.Round(float64(calories) * plan.fatPct / kcalPerGramFat)),
	}
}

// ApplyTrainingMode shifts targets for a declared leg day: extra calories
// and carbs, slightly less fat with a 30 g floor, protein untouched. All
// other modes are identity.
func ApplyTrainingMode(t model.Targets, mode model.TrainingMode) model.Targets {
	if mode != model.ModeLeg {
		return t
	}
	t.Calories += 300
	t.CarbsG += 60
	t.FatG -= 10
	if t.FatG < 30 {
		t.FatG = 30
	}
	return t
}

// TargetsFor recomputes targets from scratch for a profile and training
// mode. Never patches a previously cached value, so a profile edit between
// mode selections can't leave stale targets behind.
func TargetsFor(p model.Profile, mode model.TrainingMode) model.Targets {
	return ApplyTrainingMode(ComputeTargets(ComputeTDEE(p), p.GoalType), mode)
}
