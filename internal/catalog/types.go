// Package catalog holds the static exercise and meal reference data. The
// tables are compiled in, validated once at process start, and never
// mutated afterwards, so they are safe for unlimited concurrent readers.
package catalog

import (
	"github.com/TedTes/trakfit/internal/profile"
)

// ExerciseCategory classifies the mechanical nature of an exercise.
type ExerciseCategory string

const (
	CategoryCompound  ExerciseCategory = "compound"
	CategoryIsolation ExerciseCategory = "isolation"
	CategoryIsometric ExerciseCategory = "isometric"
	CategoryCardio    ExerciseCategory = "cardio"
)

// Difficulty is the minimum experience level an exercise is suitable for.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Allows reports whether someone at experience level d may perform an
// exercise of difficulty other. Each level permits its own difficulty and
// all easier ones.
func (d Difficulty) Allows(other Difficulty) bool {
	rank := map[Difficulty]int{
		DifficultyBeginner:     0,
		DifficultyIntermediate: 1,
		DifficultyAdvanced:     2,
	}
	dr, ok := rank[d]
	if !ok {
		return false
	}
	or, ok := rank[other]
	if !ok {
		return false
	}
	return or <= dr
}

// Kind is the coarse training classification used by goal-based selection.
type Kind string

const (
	KindStrength  Kind = "strength"
	KindCardio    Kind = "cardio"
	KindStability Kind = "stability"
)

// Muscles groups the muscle involvement of an exercise by role.
type Muscles struct {
	Primary     []string
	Secondary   []string
	Stabilizers []string
}

// Exercise is an immutable catalog entry.
type Exercise struct {
	ID              string
	Name            string
	Category        ExerciseCategory
	Equipment       []string
	Difficulty      Difficulty
	Muscles         Muscles
	MovementPattern string
	RepRanges       map[profile.Goal]string
	RestSeconds     map[profile.Goal]int
	ProgressionID   string
	RegressionID    string
	AlternativeIDs  []string
	FormCues        []string
	CommonMistakes  []string
	Description     string
}

// Kind maps the mechanical category to the training classification:
// cardio stays cardio, isometric work counts as stability, everything
// else is strength work.
func (e Exercise) Kind() Kind {
	switch e.Category {
	case CategoryCardio:
		return KindCardio
	case CategoryIsometric:
		return KindStability
	default:
		return KindStrength
	}
}

// TargetsMuscle reports whether the muscle appears among the exercise's
// primary or secondary muscles.
func (e Exercise) TargetsMuscle(muscle string) bool {
	for _, m := range e.Muscles.Primary {
		if m == muscle {
			return true
		}
	}
	for _, m := range e.Muscles.Secondary {
		if m == muscle {
			return true
		}
	}
	return false
}

// UsesAnyEquipment reports whether the exercise's equipment list intersects
// the given set.
func (e Exercise) UsesAnyEquipment(available map[string]bool) bool {
	for _, eq := range e.Equipment {
		if available[eq] {
			return true
		}
	}
	return false
}

// Macros is the macronutrient content of one meal serving.
type Macros struct {
	ProteinG int
	CarbsG   int
	FatG     int
	Calories int
}

// Meal is an immutable meal template.
type Meal struct {
	ID              string
	Name            string
	BaseCost        float64
	Macros          Macros
	Ingredients     []string
	DietTypes       []profile.DietType
	PrepTimeMinutes int
	Difficulty      string
}

// SuitsDiet reports whether the meal is compatible with the diet type.
func (m Meal) SuitsDiet(dt profile.DietType) bool {
	for _, d := range m.DietTypes {
		if d == dt {
			return true
		}
	}
	return false
}
