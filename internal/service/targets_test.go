package service_test

import (
	"testing"

	"github.com/chiawen/mealtrack/internal/model"
	"github.com/chiawen/mealtrack/internal/service"
)

func referenceProfile() model.Profile {
	return model.Profile{
		HeightCm:       175,
		WeightKg:       70,
		AgeYears:       25,
		Sex:            model.SexMale,
		ActivityFactor: 1.55,
		GoalType:       model.GoalRecomp,
	}
}

func TestComputeTDEEReferenceProfile(t *testing.T) {
	t.Parallel()
	// 10*70 + 6.25*175 - 5*25 + 5 = 1673.75; * 1.55 = 2594.3125
	if got := service.ComputeTDEE(referenceProfile()); got != 2594 {
		t.Fatalf("expected TDEE 2594, got %d", got)
	}
}

func TestComputeTDEEFemaleConstant(t *testing.T) {
	t.Parallel()
	p := referenceProfile()
	p.Sex = model.SexFemale
	// Same formula with -161 instead of +5: 1507.75 * 1.55 = 2337.0125
	if got := service.ComputeTDEE(p); got != 2337 {
		t.Fatalf("expected TDEE 2337, got %d", got)
	}
}

func TestComputeTargetsRecomp(t *testing.T) {
	t.Parallel()
	got := service.ComputeTargets(2594, model.GoalRecomp)
	want := model.Targets{Calories: 2490, ProteinG: 174, CarbsG: 311, FatG: 61}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestComputeTargetsPerGoalType(t *testing.T) {
	t.Parallel()
	cases := []struct {
		goal     model.GoalType
		calories int
	}{
		{model.GoalLoseFat, 2075},     // round(2594*0.80)
		{model.GoalBuildMuscle, 2853}, // round(2594*1.10)
		{model.GoalRecomp, 2490},      // round(2594*0.96)
		{model.GoalMaintain, 2594},
	}
	for _, tc := range cases {
		t.Run(string(tc.goal), func(t *testing.T) {
			got := service.ComputeTargets(2594, tc.goal)
			if got.Calories != tc.calories {
				t.Fatalf("expected %d calories for %s, got %d", tc.calories, tc.goal, got.Calories)
			}
		})
	}
}

func TestComputeTargetsUnknownGoalFallsBackToMaintain(t *testing.T) {
	t.Parallel()
	got := service.ComputeTargets(2000, model.GoalType("bulk"))
	want := service.ComputeTargets(2000, model.GoalMaintain)
	if got != want {
		t.Fatalf("expected maintain fallback %+v, got %+v", want, got)
	}
}

func TestComputeTargetsDeterministic(t *testing.T) {
	t.Parallel()
	p := referenceProfile()
	first := service.ComputeTargets(service.ComputeTDEE(p), p.GoalType)
	for i := 0; i < 50; i++ {
		if got := service.ComputeTargets(service.ComputeTDEE(p), p.GoalType); got != first {
			t.Fatalf("call %d diverged: %+v vs %+v", i, got, first)
		}
	}
}

func TestMacroCaloriesConsistentWithTarget(t *testing.T) {
	t.Parallel()
	goals := []model.GoalType{model.GoalLoseFat, model.GoalMaintain, model.GoalBuildMuscle, model.GoalRecomp}
	for tdee := 1200; tdee <= 4000; tdee += 97 {
		for _, goal := range goals {
			got := service.ComputeTargets(tdee, goal)
			macroKcal := 4*got.ProteinG + 4*got.CarbsG + 9*got.FatG
			diff := macroKcal - got.Calories
			if diff < -10 || diff > 10 {
				t.Fatalf("tdee %d goal %s: macro kcal %d drifts %d from target %d", tdee, goal, macroKcal, diff, got.Calories)
			}
		}
	}
}

func TestApplyTrainingModeLegDay(t *testing.T) {
	t.Parallel()
	base := service.ComputeTargets(2594, model.GoalRecomp)
	got := service.ApplyTrainingMode(base, model.ModeLeg)
	want := model.Targets{Calories: 2790, ProteinG: 174, CarbsG: 371, FatG: 51}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestApplyTrainingModeFatFloor(t *testing.T) {
	t.Parallel()
	base := model.Targets{Calories: 1500, ProteinG: 120, CarbsG: 150, FatG: 35}
	got := service.ApplyTrainingMode(base, model.ModeLeg)
	if got.FatG != 30 {
		t.Fatalf("expected fat floored at 30, got %d", got.FatG)
	}
}

func TestApplyTrainingModeNonLegIsIdentity(t *testing.T) {
	t.Parallel()
	base := service.ComputeTargets(2594, model.GoalRecomp)
	for _, mode := range []model.TrainingMode{model.ModeRest, model.ModePushPull} {
		if got := service.ApplyTrainingMode(base, mode); got != base {
			t.Fatalf("expected %s to leave targets unchanged, got %+v", mode, got)
		}
	}
}

func TestTargetsForComposesFromScratch(t *testing.T) {
	t.Parallel()
	p := referenceProfile()
	got := service.TargetsFor(p, model.ModeLeg)
	want := service.ApplyTrainingMode(service.ComputeTargets(service.ComputeTDEE(p), p.GoalType), model.ModeLeg)
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
