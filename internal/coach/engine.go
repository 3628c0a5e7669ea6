package coach

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/TedTes/trakfit/internal/catalog"
	"github.com/TedTes/trakfit/internal/errors"
	"github.com/TedTes/trakfit/internal/profile"
)

// ErrProfileIncomplete signals that required identity fields are missing
// and no plan can be generated.
var ErrProfileIncomplete = errors.NewSentinel("profile incomplete")

// IncompleteProfileError lists the missing required fields so callers can
// drive onboarding. It unwraps to ErrProfileIncomplete.
type IncompleteProfileError struct {
	Missing []string
}

func (e *IncompleteProfileError) Error() string {
	return fmt.Sprintf("cannot generate plan, missing: %s", strings.Join(e.Missing, ", "))
}

func (e *IncompleteProfileError) Unwrap() error {
	return ErrProfileIncomplete
}

// Engine turns a profile snapshot into a daily plan. It holds only
// immutable collaborators and is safe for concurrent use.
type Engine struct {
	catalog  *catalog.Catalog
	ids      IDGenerator
	strategy SelectionStrategy
	now      func() time.Time
}

// NewEngine builds an engine over the validated catalog. The id generator
// and clock are injected so plan output is reproducible under test.
func NewEngine(c *catalog.Catalog, ids IDGenerator, now func() time.Time) *Engine {
	return &Engine{
		catalog:  c,
		ids:      ids,
		strategy: GoalTableStrategy{},
		now:      now,
	}
}

// DailyPlan composes the four sub-plans for the given snapshot. Optional
// fields are defaulted first; only absent identity fields refuse generation.
func (e *Engine) DailyPlan(p profile.Profile) (DailyPlan, error) {
	if missing := profile.MissingRequired(p); len(missing) > 0 {
		return DailyPlan{}, &IncompleteProfileError{Missing: missing}
	}
	p = profile.ApplyDefaults(p)

	workout, err := e.WorkoutPlan(p)
	if err != nil {
		return DailyPlan{}, err
	}
	return DailyPlan{
		ID:        e.ids.NewID(),
		Date:      e.now().Truncate(24 * time.Hour),
		Workout:   workout,
		Nutrition: e.buildNutritionPlan(p),
		Recovery:  buildRecoveryPlan(p),
		Mindset:   buildMindsetGuidance(p),
	}, nil
}

// WorkoutPlan selects and parameterizes today's exercises. An equipment
// combination admitting no exercises yields an empty plan, not an error.
func (e *Engine) WorkoutPlan(p profile.Profile) (WorkoutPlan, error) {
	if missing := profile.MissingRequired(p); len(missing) > 0 {
		return WorkoutPlan{}, &IncompleteProfileError{Missing: missing}
	}
	p = profile.ApplyDefaults(p)

	intensity := Intensity(p)
	pool := FilterByEquipment(e.catalog.Exercises(), p.Equipment)
	selected := e.strategy.Select(pool, SelectionInputs{
		Goal:      p.Goals.Primary,
		Intensity: intensity,
	})
	selected = truncate(selected, exerciseBudget(p.Lifestyle.MinutesPerDay))

	priority := PriorityNormal
	if p.Goals.Primary == profile.GoalStrength && intensity >= 8 {
		priority = PriorityHigh
	}

	prescribed := make([]PrescribedExercise, 0, len(selected))
	for _, ex := range selected {
		kind := ex.Kind()
		prescribed = append(prescribed, PrescribedExercise{
			ExerciseID:       ex.ID,
			Name:             ex.Name,
			TargetMuscle:     ex.Muscles.Primary[0],
			Sets:             setsFor(p.Goals.Primary, intensity, priority),
			Reps:             repsFor(p.Goals.Primary, kind),
			WeightSuggestion: weightSuggestion(ex, intensity),
			RestSeconds:      restFor(p.Goals.Primary, p.Personal.AgeYears, kind),
			Priority:         priority,
			Muscles:          ex.Muscles.Primary,
			Equipment:        ex.Equipment,
		})
	}

	title, subtitle := workoutTitle(p.Goals.Primary)
	return WorkoutPlan{
		ID:               e.ids.NewID(),
		Title:            title,
		Subtitle:         subtitle,
		Goal:             p.Goals.Primary,
		Exercises:        prescribed,
		EstimatedMinutes: estimateMinutes(prescribed),
		CoachingNotes:    coachingNotes(p.Goals.Primary, intensity),
		WarmUpRequired:   len(prescribed) > 0,
		CoolDownRequired: len(prescribed) > 0,
	}, nil
}

// NutritionPlan is independently callable without the rest of the daily
// plan.
func (e *Engine) NutritionPlan(p profile.Profile) (NutritionPlan, error) {
	if missing := profile.MissingRequired(p); len(missing) > 0 {
		return NutritionPlan{}, &IncompleteProfileError{Missing: missing}
	}
	return e.buildNutritionPlan(profile.ApplyDefaults(p)), nil
}

func (e *Engine) RecoveryPlan(p profile.Profile) RecoveryPlan {
	return buildRecoveryPlan(profile.ApplyDefaults(p))
}

func (e *Engine) MindsetGuidance(p profile.Profile) MindsetGuidance {
	return buildMindsetGuidance(profile.ApplyDefaults(p))
}

// estimateMinutes sums working and resting time per exercise: three seconds
// per rep at the midpoint of the rep range, plus rest between sets.
func estimateMinutes(exercises []PrescribedExercise) int {
	var seconds float64
	for _, ex := range exercises {
		avg, err := catalog.AvgReps(ex.Reps)
		if err != nil {
			avg = 10
		}
		seconds += float64(ex.Sets)*avg*3 + float64(ex.Sets-1)*float64(ex.RestSeconds)
	}
	return int(math.Round(seconds / 60))
}

func workoutTitle(goal profile.Goal) (string, string) {
	switch goal {
	case profile.GoalStrength:
		return "Strength Session", "Heavy compounds, long rests"
	case profile.GoalFatLoss:
		return "Burn & Build", "Cardio paired with strength work"
	case profile.GoalMuscleGain:
		return "Hypertrophy Session", "Volume in the growth rep range"
	case profile.GoalEndurance:
		return "Engine Builder", "Higher reps, shorter rests"
	case profile.GoalMobility:
		return "Stability & Control", "Core and positional work"
	default:
		return "Balanced Session", "A bit of everything, done well"
	}
}

func coachingNotes(goal profile.Goal, intensity int) []string {
	notes := []string{"Stop each set with at least one clean rep left."}
	switch goal {
	case profile.GoalStrength:
		notes = append(notes, "Rest fully between sets; rushing costs bar speed.")
	case profile.GoalFatLoss:
		notes = append(notes, "Keep rests short and transitions quick.")
	case profile.GoalEndurance:
		notes = append(notes, "Steady pace beats early sprints.")
	case profile.GoalMobility:
		notes = append(notes, "Range of motion first, load second.")
	}
	if intensity <= 3 {
		notes = append(notes, "Recovery is low today; treat this as an easy session.")
	}
	if intensity >= 8 {
		notes = append(notes, "You are well recovered; push the top sets.")
	}
	return notes
}
