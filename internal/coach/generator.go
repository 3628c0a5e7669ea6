package coach

import (
	"time"

	"github.com/TedTes/trakfit/internal/catalog"
	"github.com/TedTes/trakfit/internal/errors"
	"github.com/TedTes/trakfit/internal/profile"
)

// ErrNoEligibleExercises signals that the requested constraints admit no
// catalog exercise at all. Callers surface it as "no exercises match your
// constraints" rather than an internal failure.
var ErrNoEligibleExercises = errors.NewSentinel("no exercises match the given constraints")

// FullBody requests coverage of all major muscle groups instead of a
// specific target list.
const FullBody = "full_body"

// majorMuscles is the coverage list used when full_body is requested.
var majorMuscles = []string{"chest", "back", "shoulders", "quadriceps", "hamstrings", "glutes", "core"}

// RecencyWindow is how far back an exercise counts as recently used.
const RecencyWindow = 3 * 24 * time.Hour

// GeneratorInputs are the explicit constraints for one standalone workout.
type GeneratorInputs struct {
	Equipment         []string             `json:"equipment"`
	Experience        catalog.Difficulty   `json:"experience"`
	TargetMuscles     []string             `json:"target_muscles"`
	DurationMinutes   int                  `json:"duration_minutes"`
	Goal              profile.Goal         `json:"goal"`
	RecentExerciseIDs map[string]time.Time `json:"-"`
}

func (in GeneratorInputs) wantsFullBody() bool {
	for _, m := range in.TargetMuscles {
		if m == FullBody {
			return true
		}
	}
	return len(in.TargetMuscles) == 0
}

// Generator builds workouts from explicit constraints plus recent workout
// history, independent of the daily coaching flow.
type Generator struct {
	catalog  *catalog.Catalog
	ids      IDGenerator
	strategy SelectionStrategy
}

func NewGenerator(c *catalog.Catalog, ids IDGenerator) *Generator {
	return &Generator{
		catalog:  c,
		ids:      ids,
		strategy: CoverageGreedyStrategy{},
	}
}

// Generate selects, orders, and parameterizes a workout for the inputs.
// Constraints admitting zero exercises return an empty plan together with
// ErrNoEligibleExercises.
func (g *Generator) Generate(in GeneratorInputs) (WorkoutPlan, error) {
	pool := g.eligible(in)
	if len(pool) == 0 {
		return WorkoutPlan{ID: g.ids.NewID(), Goal: in.Goal}, ErrNoEligibleExercises
	}

	targets := in.TargetMuscles
	if in.wantsFullBody() {
		targets = majorMuscles
	}
	selected := g.strategy.Select(pool, SelectionInputs{
		Goal:          in.Goal,
		TargetMuscles: targets,
		Recent:        in.RecentExerciseIDs,
		MaxExercises:  in.DurationMinutes / 8,
	})

	prescribed := make([]PrescribedExercise, 0, len(selected))
	for i, ex := range selected {
		prescribed = append(prescribed, PrescribedExercise{
			ExerciseID:       ex.ID,
			Name:             ex.Name,
			TargetMuscle:     ex.Muscles.Primary[0],
			Sets:             generatorSets(ex, in.Goal, i),
			Reps:             exerciseReps(ex, in.Goal),
			WeightSuggestion: weightSuggestion(ex, 5),
			RestSeconds:      exerciseRest(ex, in.Goal),
			Priority:         PriorityNormal,
			Muscles:          ex.Muscles.Primary,
			Equipment:        ex.Equipment,
		})
	}

	title, notes := titleForPatterns(selected)
	return WorkoutPlan{
		ID:               g.ids.NewID(),
		Title:            title,
		Subtitle:         subtitleForInputs(in),
		Goal:             in.Goal,
		Exercises:        prescribed,
		EstimatedMinutes: estimateMinutes(prescribed),
		CoachingNotes:    notes,
		WarmUpRequired:   true,
		CoolDownRequired: true,
	}, nil
}

// eligible filters the catalog by equipment intersection, experience
// superset, and target-muscle intersection.
func (g *Generator) eligible(in GeneratorInputs) []catalog.Exercise {
	available := make(map[string]bool, len(in.Equipment))
	for _, eq := range in.Equipment {
		available[eq] = true
	}
	fullBody := in.wantsFullBody()

	var out []catalog.Exercise
	for _, e := range g.catalog.Exercises() {
		if !e.UsesAnyEquipment(available) {
			continue
		}
		if !in.Experience.Allows(e.Difficulty) {
			continue
		}
		if !fullBody && !targetsAny(e, in.TargetMuscles) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func targetsAny(e catalog.Exercise, muscles []string) bool {
	for _, m := range muscles {
		if e.TargetsMuscle(m) {
			return true
		}
	}
	return false
}

// CoverageGreedyStrategy selects compounds first with movement-pattern
// novelty and a recency skip, then fills uncovered target muscles with
// non-compound work.
type CoverageGreedyStrategy struct{}

func (CoverageGreedyStrategy) Select(pool []catalog.Exercise, in SelectionInputs) []catalog.Exercise {
	if in.MaxExercises <= 0 {
		return nil
	}

	var selected []catalog.Exercise
	usedPatterns := make(map[string]bool)

	// Compound pass: one exercise per movement pattern, skipping anything
	// used within the recency window.
	for _, e := range pool {
		if len(selected) >= in.MaxExercises {
			break
		}
		if e.Category != catalog.CategoryCompound {
			continue
		}
		if _, recent := in.Recent[e.ID]; recent {
			continue
		}
		if usedPatterns[e.MovementPattern] {
			continue
		}
		selected = append(selected, e)
		usedPatterns[e.MovementPattern] = true
	}

	// Coverage pass: one non-compound exercise per still-uncovered target
	// muscle.
	covered := make(map[string]bool)
	for _, e := range selected {
		for _, m := range e.Muscles.Primary {
			covered[m] = true
		}
		for _, m := range e.Muscles.Secondary {
			covered[m] = true
		}
	}
	for _, muscle := range in.TargetMuscles {
		if len(selected) >= in.MaxExercises {
			break
		}
		if covered[muscle] {
			continue
		}
		for _, e := range pool {
			if e.Category == catalog.CategoryCompound {
				continue
			}
			if _, recent := in.Recent[e.ID]; recent {
				continue
			}
			if alreadySelected(selected, e.ID) || !e.TargetsMuscle(muscle) {
				continue
			}
			selected = append(selected, e)
			for _, m := range e.Muscles.Primary {
				covered[m] = true
			}
			for _, m := range e.Muscles.Secondary {
				covered[m] = true
			}
			break
		}
	}

	return truncate(selected, in.MaxExercises)
}

func alreadySelected(selected []catalog.Exercise, id string) bool {
	for _, e := range selected {
		if e.ID == id {
			return true
		}
	}
	return false
}

func generatorSets(e catalog.Exercise, goal profile.Goal, position int) int {
	var sets int
	if e.Category == catalog.CategoryCompound {
		sets = 3
		if goal == profile.GoalStrength {
			sets = 4
		}
	} else {
		sets = 3
		if goal == profile.GoalEndurance {
			sets = 2
		}
	}
	// Later exercises get less volume.
	if position >= 3 {
		sets--
	}
	if sets < 2 {
		sets = 2
	}
	return sets
}

func exerciseReps(e catalog.Exercise, goal profile.Goal) string {
	if r, ok := e.RepRanges[goal]; ok {
		return r
	}
	return e.RepRanges[profile.GoalGeneralFitness]
}

func exerciseRest(e catalog.Exercise, goal profile.Goal) int {
	if r, ok := e.RestSeconds[goal]; ok {
		return r
	}
	return e.RestSeconds[profile.GoalGeneralFitness]
}

// titleForPatterns derives a session title and notes from the movement
// patterns present in the final selection. First matching rule wins.
func titleForPatterns(selected []catalog.Exercise) (string, []string) {
	patterns := make(map[string]bool, len(selected))
	for _, e := range selected {
		patterns[e.MovementPattern] = true
	}

	rules := []struct {
		first, second string
		title         string
		note          string
	}{
		{"squat", "horizontal_push", "Upper & Lower Power", "Alternate the squat and press work to keep quality high."},
		{"hinge", "horizontal_pull", "Posterior Chain Builder", "Brace hard; every movement today loads the back side."},
		{"squat", "hinge", "Lower Body Strength", "Leave two reps in reserve on the first heavy set."},
		{"horizontal_push", "vertical_pull", "Push & Pull Balance", "Match the effort on pulls to the effort on presses."},
	}
	for _, r := range rules {
		if patterns[r.first] && patterns[r.second] {
			return r.title, []string{r.note, "Stop each set with at least one clean rep left."}
		}
	}
	if len(patterns) == 1 && patterns["cardio"] {
		return "Conditioning Circuit", []string{"Keep moving; recovery is the walk between stations."}
	}
	return "Full Body Session", []string{"Work through the list in order; rest as prescribed."}
}

func subtitleForInputs(in GeneratorInputs) string {
	if in.wantsFullBody() {
		return "Full body coverage"
	}
	return "Focused on your chosen muscles"
}
