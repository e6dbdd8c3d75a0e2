package service

import (
	"fmt"
	"time"

	"github.com/chiawen/mealtrack/internal/model"
)

func validateNonNegativeInt(name string, value int) error {
	if value < 0 {
		return invalid(name, "must be >= 0")
	}
	return nil
}

func validateNonNegativeFloat(name string, value float64) error {
	if value < 0 {
		return invalid(name, "must be >= 0")
	}
	return nil
}

func validateMealSlot(slot model.MealSlot) error {
	switch slot {
	case model.SlotBreakfast, model.SlotLunch, model.SlotDinner, model.SlotSnack:
		return nil
	}
	return invalid("meal slot", fmt.Sprintf("unknown slot %q", slot))
}

func validateTrainingMode(mode model.TrainingMode) error {
	switch mode {
	case model.ModeRest, model.ModePushPull, model.ModeLeg:
		return nil
	}
	return invalid("training mode", fmt.Sprintf("unknown mode %q", mode))
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// nextMidnight is the exclusive upper bound of t's local day. Computed via
// the calendar, not by adding 24h: a DST transition day is 23 or 25 real
// hours long.
func nextMidnight(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, time.Local)
}
