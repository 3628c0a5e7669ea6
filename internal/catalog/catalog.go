package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TedTes/trakfit/internal/errors"
	"github.com/TedTes/trakfit/internal/profile"
)

// ErrNotFound is returned when a catalog id does not resolve.
var ErrNotFound = errors.NewSentinel("catalog entry not found")

var knownCategories = map[ExerciseCategory]struct{}{
	CategoryCompound:  {},
	CategoryIsolation: {},
	CategoryIsometric: {},
	CategoryCardio:    {},
}

var knownDifficulties = map[Difficulty]struct{}{
	DifficultyBeginner:     {},
	DifficultyIntermediate: {},
	DifficultyAdvanced:     {},
}

var knownDietTypes = map[profile.DietType]struct{}{
	profile.DietOmnivore:    {},
	profile.DietVegetarian:  {},
	profile.DietVegan:       {},
	profile.DietPescatarian: {},
	profile.DietKeto:        {},
	profile.DietPaleo:       {},
}

// Catalog is the validated, immutable reference data set.
type Catalog struct {
	exercises []Exercise
	byID      map[string]int
	meals     []Meal
	mealByID  map[string]int
}

// New validates the compiled-in tables and returns the catalog. Any
// malformed entry is a programmer error and must abort process start.
func New() (*Catalog, error) {
	c := &Catalog{
		exercises: exercises,
		byID:      make(map[string]int, len(exercises)),
		meals:     meals,
		mealByID:  make(map[string]int, len(meals)),
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return c, nil
}

func (c *Catalog) validate() error {
	names := make(map[string]struct{}, len(c.exercises))
	for i, e := range c.exercises {
		if e.ID == "" {
			return fmt.Errorf("exercise %d: empty id", i)
		}
		if e.Name == "" {
			return fmt.Errorf("exercise %q: empty name", e.ID)
		}
		if _, dup := c.byID[e.ID]; dup {
			return fmt.Errorf("exercise %q: duplicate id", e.ID)
		}
		if _, dup := names[e.Name]; dup {
			return fmt.Errorf("exercise %q: duplicate name %q", e.ID, e.Name)
		}
		c.byID[e.ID] = i
		names[e.Name] = struct{}{}

		if _, ok := knownCategories[e.Category]; !ok {
			return fmt.Errorf("exercise %q: unknown category %q", e.ID, e.Category)
		}
		if _, ok := knownDifficulties[e.Difficulty]; !ok {
			return fmt.Errorf("exercise %q: unknown difficulty %q", e.ID, e.Difficulty)
		}
		if len(e.Equipment) == 0 {
			return fmt.Errorf("exercise %q: no equipment listed", e.ID)
		}
		if len(e.Muscles.Primary) == 0 {
			return fmt.Errorf("exercise %q: no primary muscles", e.ID)
		}
		if e.MovementPattern == "" {
			return fmt.Errorf("exercise %q: empty movement pattern", e.ID)
		}
		if len(e.RepRanges) == 0 {
			return fmt.Errorf("exercise %q: no rep ranges", e.ID)
		}
		for goal, rr := range e.RepRanges {
			if _, err := AvgReps(rr); err != nil {
				return fmt.Errorf("exercise %q: rep range for goal %q: %w", e.ID, goal, err)
			}
		}
		for goal, rest := range e.RestSeconds {
			if rest <= 0 {
				return fmt.Errorf("exercise %q: non-positive rest for goal %q", e.ID, goal)
			}
		}
	}

	// Reference resolution needs the full id index first.
	for _, e := range c.exercises {
		for _, ref := range append([]string{e.ProgressionID, e.RegressionID}, e.AlternativeIDs...) {
			if ref == "" {
				continue
			}
			if _, ok := c.byID[ref]; !ok {
				return fmt.Errorf("exercise %q: unresolved reference %q", e.ID, ref)
			}
		}
	}

	mealNames := make(map[string]struct{}, len(c.meals))
	for i, m := range c.meals {
		if m.ID == "" {
			return fmt.Errorf("meal %d: empty id", i)
		}
		if m.Name == "" {
			return fmt.Errorf("meal %q: empty name", m.ID)
		}
		if _, dup := c.mealByID[m.ID]; dup {
			return fmt.Errorf("meal %q: duplicate id", m.ID)
		}
		if _, dup := mealNames[m.Name]; dup {
			return fmt.Errorf("meal %q: duplicate name %q", m.ID, m.Name)
		}
		c.mealByID[m.ID] = i
		mealNames[m.Name] = struct{}{}

		if m.Macros.Calories <= 0 {
			return fmt.Errorf("meal %q: non-positive calories", m.ID)
		}
		if m.Macros.ProteinG < 0 || m.Macros.CarbsG < 0 || m.Macros.FatG < 0 {
			return fmt.Errorf("meal %q: negative macro value", m.ID)
		}
		if len(m.DietTypes) == 0 {
			return fmt.Errorf("meal %q: no diet types", m.ID)
		}
		for _, dt := range m.DietTypes {
			if _, ok := knownDietTypes[dt]; !ok {
				return fmt.Errorf("meal %q: unknown diet type %q", m.ID, dt)
			}
		}
	}
	return nil
}

// Exercises returns all exercises in stable catalog order. Callers must not
// mutate the returned slice.
func (c *Catalog) Exercises() []Exercise {
	return c.exercises
}

// Exercise resolves an exercise by id.
func (c *Catalog) Exercise(id string) (Exercise, error) {
	i, ok := c.byID[id]
	if !ok {
		return Exercise{}, fmt.Errorf("exercise %q: %w", id, ErrNotFound)
	}
	return c.exercises[i], nil
}

// Meals returns all meal templates in stable catalog order.
func (c *Catalog) Meals() []Meal {
	return c.meals
}

// Meal resolves a meal by id.
func (c *Catalog) Meal(id string) (Meal, error) {
	i, ok := c.mealByID[id]
	if !ok {
		return Meal{}, fmt.Errorf("meal %q: %w", id, ErrNotFound)
	}
	return c.meals[i], nil
}

// MealsForDiet returns the meals compatible with the diet type, in catalog
// order.
func (c *Catalog) MealsForDiet(dt profile.DietType) []Meal {
	var out []Meal
	for _, m := range c.meals {
		if m.SuitsDiet(dt) {
			out = append(out, m)
		}
	}
	return out
}

// AvgReps returns the midpoint of a "min-max" rep-range string, or the
// literal value when the string is a single integer.
func AvgReps(repRange string) (float64, error) {
	low, high, found := strings.Cut(repRange, "-")
	if !found {
		n, err := strconv.Atoi(strings.TrimSpace(repRange))
		if err != nil {
			return 0, fmt.Errorf("malformed rep range %q", repRange)
		}
		return float64(n), nil
	}
	lo, err := strconv.Atoi(strings.TrimSpace(low))
	if err != nil {
		return 0, fmt.Errorf("malformed rep range %q", repRange)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(high))
	if err != nil {
		return 0, fmt.Errorf("malformed rep range %q", repRange)
	}
	if hi < lo {
		return 0, fmt.Errorf("inverted rep range %q", repRange)
	}
	return float64(lo+hi) / 2, nil
}
