// Package history persists workout sessions and meal logs, and answers the
// recency queries the workout generator depends on.
package history

import (
	"time"

	"github.com/TedTes/trakfit/internal/profile"
)

// DateLayout is the canonical day key for sessions and meal logs.
const DateLayout = "2006-01-02"

// LoggedSet records one performed set. CompletedReps is nil until the set
// is logged.
type LoggedSet struct {
	SetNumber     int  `json:"set_number"`
	CompletedReps *int `json:"completed_reps,omitempty"`
}

// LoggedExercise is one exercise within a session, with its prescription
// and any completed sets.
type LoggedExercise struct {
	ExerciseID  string      `json:"exercise_id"`
	Position    int         `json:"position"`
	Sets        int         `json:"sets"`
	Reps        string      `json:"reps"`
	RestSeconds int         `json:"rest_seconds"`
	Completed   []LoggedSet `json:"completed"`
}

// Session is one day's workout log.
type Session struct {
	Date        string           `json:"date"`
	Goal        profile.Goal     `json:"goal"`
	StartedAt   *time.Time       `json:"started_at,omitempty"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	Exercises   []LoggedExercise `json:"exercises"`
}

// MealEntry is one logged meal.
type MealEntry struct {
	Date    string    `json:"date"`
	Slot    string    `json:"slot"`
	MealID  string    `json:"meal_id"`
	EatenAt time.Time `json:"eaten_at"`
}
