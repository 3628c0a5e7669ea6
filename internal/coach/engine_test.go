package coach_test

import (
	"testing"
	"time"

	"github.com/TedTes/trakfit/internal/catalog"
	"github.com/TedTes/trakfit/internal/coach"
	"github.com/TedTes/trakfit/internal/errors"
	"github.com/TedTes/trakfit/internal/profile"
	"github.com/google/go-cmp/cmp"
)

func newTestEngine(t *testing.T) *coach.Engine {
	t.Helper()
	c, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	now := func() time.Time {
		return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	}
	return coach.NewEngine(c, coach.FixedIDGenerator("plan-test"), now)
}

func completeProfile() profile.Profile {
	return profile.Profile{
		Personal: profile.Personal{
			AgeYears:      30,
			Sex:           profile.SexMale,
			HeightCm:      180,
			WeightKg:      80,
			ActivityLevel: profile.ActivityModeratelyActive,
		},
		Goals:     profile.Goals{Primary: profile.GoalGeneralFitness, Timeline: profile.TimelineOngoing},
		Equipment: profile.Equipment{CommercialGym: true},
		Dietary:   profile.Dietary{DietType: profile.DietOmnivore},
		Lifestyle: profile.Lifestyle{
			SleepHours:    7,
			SleepQuality:  profile.SleepGood,
			StressLevel:   profile.StressModerate,
			MinutesPerDay: 45,
		},
	}
}

func TestEngine_DailyPlan_Deterministic(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	p := completeProfile()

	first, err := engine.DailyPlan(p)
	if err != nil {
		t.Fatalf("DailyPlan: %v", err)
	}
	second, err := engine.DailyPlan(p)
	if err != nil {
		t.Fatalf("DailyPlan repeat: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("plans differ between calls (-first +second):\n%s", diff)
	}
}

func TestEngine_DailyPlan_ProfileIncomplete(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)

	_, err := engine.DailyPlan(profile.Profile{})
	if !errors.Is(err, coach.ErrProfileIncomplete) {
		t.Fatalf("error = %v, want ErrProfileIncomplete", err)
	}

	var incomplete *coach.IncompleteProfileError
	if !errors.As(err, &incomplete) {
		t.Fatalf("error %T does not carry the missing field list", err)
	}
	want := []string{"age_years", "sex", "height_cm", "weight_kg"}
	if diff := cmp.Diff(want, incomplete.Missing); diff != "" {
		t.Errorf("missing fields (-want +got):\n%s", diff)
	}
}

func TestEngine_WorkoutPlan_ExerciseCountBounds(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	goals := []profile.Goal{
		profile.GoalStrength, profile.GoalFatLoss, profile.GoalMuscleGain,
		profile.GoalEndurance, profile.GoalMobility, profile.GoalGeneralFitness,
	}
	minutes := []int{10, 24, 45, 90, 180}

	for _, goal := range goals {
		for _, mins := range minutes {
			p := completeProfile()
			p.Goals.Primary = goal
			p.Lifestyle.MinutesPerDay = mins

			plan, err := engine.WorkoutPlan(p)
			if err != nil {
				t.Fatalf("WorkoutPlan(%s, %dmin): %v", goal, mins, err)
			}
			budget := mins / 8
			if budget < 3 {
				budget = 3
			}
			if budget > 6 {
				budget = 6
			}
			if got := len(plan.Exercises); got > budget {
				t.Errorf("goal=%s minutes=%d: %d exercises exceeds budget %d", goal, mins, got, budget)
			}
			if got := len(plan.Exercises); got > 6 {
				t.Errorf("goal=%s minutes=%d: %d exercises exceeds hard cap 6", goal, mins, got)
			}
			if got := len(plan.Exercises); got == 0 {
				t.Errorf("goal=%s minutes=%d: empty workout from full gym", goal, mins)
			}
		}
	}
}

func TestEngine_WorkoutPlan_BodyweightOnly(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	p := completeProfile()
	p.Equipment = profile.Equipment{NoEquipment: true}

	plan, err := engine.WorkoutPlan(p)
	if err != nil {
		t.Fatalf("WorkoutPlan: %v", err)
	}
	if len(plan.Exercises) == 0 {
		t.Fatal("expected bodyweight exercises")
	}
	for _, ex := range plan.Exercises {
		found := false
		for _, eq := range ex.Equipment {
			if eq == "bodyweight" {
				found = true
			}
		}
		if !found {
			t.Errorf("exercise %q selected without bodyweight option: %v", ex.Name, ex.Equipment)
		}
	}
}

func TestFilterByEquipment_NoContextSelectsNothing(t *testing.T) {
	t.Parallel()

	c, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	got := coach.FilterByEquipment(c.Exercises(), profile.Equipment{})
	if len(got) != 0 {
		t.Errorf("filter with no training context returned %d exercises, want 0", len(got))
	}
}

func TestEngine_WorkoutPlan_FatLossRestOverridesAge(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	p := completeProfile()
	p.Personal.AgeYears = 50
	p.Goals.Primary = profile.GoalFatLoss

	plan, err := engine.WorkoutPlan(p)
	if err != nil {
		t.Fatalf("WorkoutPlan: %v", err)
	}
	if len(plan.Exercises) == 0 {
		t.Fatal("expected exercises")
	}

	c, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	for _, ex := range plan.Exercises {
		entry, err := c.Exercise(ex.ExerciseID)
		if err != nil {
			t.Fatalf("lookup %s: %v", ex.ExerciseID, err)
		}
		if entry.Kind() == catalog.KindStrength && ex.RestSeconds != 60 {
			t.Errorf("exercise %q rest = %ds, want fat-loss 60s despite age 50", ex.Name, ex.RestSeconds)
		}
	}
}

func TestEngine_NutritionPlan_VeganFilter(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	p := completeProfile()
	p.Dietary.DietType = profile.DietVegan

	plan, err := engine.NutritionPlan(p)
	if err != nil {
		t.Fatalf("NutritionPlan: %v", err)
	}
	if len(plan.Meals) != 3 {
		t.Fatalf("got %d meals, want 3", len(plan.Meals))
	}
	wantSlots := []coach.MealSlot{coach.SlotBreakfast, coach.SlotLunch, coach.SlotDinner}
	for i, meal := range plan.Meals {
		if meal.Slot != wantSlots[i] {
			t.Errorf("meal %d slot = %q, want %q", i, meal.Slot, wantSlots[i])
		}
		if !meal.Meal.SuitsDiet(profile.DietVegan) {
			t.Errorf("meal %q is not vegan-compatible", meal.Meal.Name)
		}
	}
}

func TestEngine_WorkoutPlan_UnknownGoalFallsBack(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t)
	p := completeProfile()
	p.Goals.Primary = "crossfit_champion"

	plan, err := engine.WorkoutPlan(p)
	if err != nil {
		t.Fatalf("WorkoutPlan: %v", err)
	}
	if len(plan.Exercises) == 0 {
		t.Error("unknown goal should fall back to the balanced selection, not select nothing")
	}
}
