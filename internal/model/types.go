package model

import "time"

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type GoalType string

const (
	GoalLoseFat     GoalType = "lose_fat"
	GoalMaintain    GoalType = "maintain"
	GoalBuildMuscle GoalType = "build_muscle"
	GoalRecomp      GoalType = "recomp"
)

type TrainingMode string

const (
	ModeRest     TrainingMode = "rest"
	ModePushPull TrainingMode = "push_pull"
	ModeLeg      TrainingMode = "leg"
)

type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
	SlotSnack     MealSlot = "snack"
)

type Profile struct {
	UserID         string
	HeightCm       float64
	WeightKg       float64
	AgeYears       int
	Sex            Sex
	ActivityFactor float64
	GoalType       GoalType
	TrainingMode   TrainingMode
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Targets is the cached result of the daily target computation. It is
// recomputed on every profile or training-mode change, never edited directly.
type Targets struct {
	Calories  int
	ProteinG  int
	CarbsG    int
	FatG      int
	UpdatedAt time.Time
}

type BudgetBreakdown struct {
	Breakfast float64
	Lunch     float64
	Dinner    float64
	Snack     float64
}

type Budget struct {
	DailyTotal float64
	Breakdown  BudgetBreakdown
	// Custom selects which direction budget edits flow: false means the
	// total is authoritative and slots are derived, true means slots are
	// authoritative and the total is derived.
	Custom    bool
	UpdatedAt time.Time
}

type FoodLog struct {
	ID       int64
	UserID   string
	Name     string
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
	Price    float64
	Slot     MealSlot
	LoggedAt time.Time
}

type BodyLog struct {
	ID         int64
	UserID     string
	WeightKg   float64
	BodyFatPct *float64
	LoggedAt   time.Time
	Notes      string
}

type WorkoutLog struct {
	ID          int64
	UserID      string
	Activity    string
	DurationMin *int
	Source      string
	LoggedAt    time.Time
	Notes       string
}

// DailyStats is a derived snapshot: a fold over the food logs of one local
// calendar day. It has no persisted identity of its own.
type DailyStats struct {
	Calories    int     `json:"calories"`
	ProteinG    float64 `json:"protein_g"`
	CarbsG      float64 `json:"carbs_g"`
	FatG        float64 `json:"fat_g"`
	SpentBudget float64 `json:"spent_budget"`
}

// FoodEstimate is the payload handed over by the external nutrition
// estimator. The core checks its shape, never its accuracy.
type FoodEstimate struct {
	FoodName string  `json:"food_name"`
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	Price    float64 `json:"price"`
}
