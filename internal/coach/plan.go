// Package coach computes daily training, nutrition, recovery, and mindset
// plans from a profile snapshot. Every computation is a pure function of
// its inputs plus the immutable catalog; nothing in this package reads
// ambient state or performs I/O.
package coach

import (
	"time"

	"github.com/TedTes/trakfit/internal/catalog"
	"github.com/TedTes/trakfit/internal/profile"
)

// Priority marks how important an exercise is within a workout.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// PrescribedExercise is one fully parameterized exercise within a workout.
type PrescribedExercise struct {
	ExerciseID       string   `json:"exercise_id"`
	Name             string   `json:"name"`
	TargetMuscle     string   `json:"target_muscle"`
	Sets             int      `json:"sets"`
	Reps             string   `json:"reps"`
	WeightSuggestion string   `json:"weight_suggestion"`
	RestSeconds      int      `json:"rest_seconds"`
	Priority         Priority `json:"priority"`
	Muscles          []string `json:"muscles"`
	Equipment        []string `json:"equipment"`
}

// WorkoutPlan is the workout half of a daily plan, also produced by the
// standalone generator.
type WorkoutPlan struct {
	ID               string               `json:"id"`
	Title            string               `json:"title"`
	Subtitle         string               `json:"subtitle"`
	Goal             profile.Goal         `json:"goal"`
	Exercises        []PrescribedExercise `json:"exercises"`
	EstimatedMinutes int                  `json:"estimated_minutes"`
	CoachingNotes    []string             `json:"coaching_notes"`
	WarmUpRequired   bool                 `json:"warm_up_required"`
	CoolDownRequired bool                 `json:"cool_down_required"`
}

// MacroTargets is the daily macronutrient prescription.
type MacroTargets struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
	Calories int `json:"calories"`
}

// MealSlot labels a planned meal's place in the day.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotDinner    MealSlot = "dinner"
)

// PlannedMeal is one meal of a nutrition plan.
type PlannedMeal struct {
	Slot MealSlot     `json:"slot"`
	Meal catalog.Meal `json:"meal"`
}

// NutritionPlan is the nutrition half of a daily plan.
type NutritionPlan struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Subtitle        string        `json:"subtitle"`
	Macros          MacroTargets  `json:"macros"`
	Meals           []PlannedMeal `json:"meals"`
	BudgetPerDay    float64       `json:"budget_per_day"`
	Tip             string        `json:"tip"`
	HydrationLiters float64       `json:"hydration_liters"`
	TimingGuidance  []string      `json:"timing_guidance"`
}

// RecoveryPlan carries sleep and rest guidance derived from the profile.
type RecoveryPlan struct {
	SleepTargetHours float64  `json:"sleep_target_hours"`
	RestGuidance     string   `json:"rest_guidance"`
	Suggestions      []string `json:"suggestions"`
}

// MindsetGuidance carries the day's mental-focus prompts.
type MindsetGuidance struct {
	Focus     string   `json:"focus"`
	Practices []string `json:"practices"`
}

// DailyPlan is the full output of one engine invocation. It is ephemeral;
// callers decide whether to persist anything derived from it.
type DailyPlan struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Workout   WorkoutPlan     `json:"workout"`
	Nutrition NutritionPlan   `json:"nutrition"`
	Recovery  RecoveryPlan    `json:"recovery"`
	Mindset   MindsetGuidance `json:"mindset"`
}
