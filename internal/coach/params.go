package coach

import (
	"github.com/TedTes/trakfit/internal/catalog"
	"github.com/TedTes/trakfit/internal/profile"
)

// Rep prescriptions by goal and training kind. Unknown goals fall back to
// the general-fitness row, keeping the lookup total.
var repsByGoal = map[profile.Goal]map[catalog.Kind]string{
	profile.GoalStrength: {
		catalog.KindStrength:  "3-6",
		catalog.KindCardio:    "10-15",
		catalog.KindStability: "20-30",
	},
	profile.GoalFatLoss: {
		catalog.KindStrength:  "12-15",
		catalog.KindCardio:    "15-20",
		catalog.KindStability: "30-45",
	},
	profile.GoalMuscleGain: {
		catalog.KindStrength:  "8-12",
		catalog.KindCardio:    "12-15",
		catalog.KindStability: "20-30",
	},
	profile.GoalEndurance: {
		catalog.KindStrength:  "15-20",
		catalog.KindCardio:    "20-30",
		catalog.KindStability: "30-60",
	},
	profile.GoalMobility: {
		catalog.KindStrength:  "10-12",
		catalog.KindCardio:    "10-15",
		catalog.KindStability: "30-60",
	},
	profile.GoalGeneralFitness: {
		catalog.KindStrength:  "8-12",
		catalog.KindCardio:    "12-15",
		catalog.KindStability: "20-30",
	},
}

// Rest tables by training kind. The base table applies first, overridden
// wholesale for lifters over 40, overridden again for the fat-loss goal.
// The last override wins; the adjustments are not additive.
var (
	baseRest = map[catalog.Kind]int{
		catalog.KindStrength:  90,
		catalog.KindCardio:    30,
		catalog.KindStability: 45,
	}
	over40Rest = map[catalog.Kind]int{
		catalog.KindStrength:  120,
		catalog.KindCardio:    45,
		catalog.KindStability: 60,
	}
	fatLossRest = map[catalog.Kind]int{
		catalog.KindStrength:  60,
		catalog.KindCardio:    20,
		catalog.KindStability: 30,
	}
)

func repsFor(goal profile.Goal, kind catalog.Kind) string {
	row, ok := repsByGoal[goal]
	if !ok {
		row = repsByGoal[profile.GoalGeneralFitness]
	}
	return row[kind]
}

func restFor(goal profile.Goal, ageYears int, kind catalog.Kind) int {
	rest := baseRest[kind]
	if ageYears > 40 {
		rest = over40Rest[kind]
	}
	if goal == profile.GoalFatLoss {
		rest = fatLossRest[kind]
	}
	return rest
}

func setsFor(goal profile.Goal, intensity int, priority Priority) int {
	sets := 3
	if goal == profile.GoalStrength && intensity >= 7 {
		sets = 4
	}
	if goal == profile.GoalEndurance {
		sets = 2
	}
	if priority == PriorityHigh {
		sets++
	}
	if sets < 2 {
		sets = 2
	}
	if sets > 5 {
		sets = 5
	}
	return sets
}

func weightSuggestion(e catalog.Exercise, intensity int) string {
	if len(e.Equipment) == 1 && e.Equipment[0] == "bodyweight" {
		return "bodyweight"
	}
	switch {
	case intensity >= 8:
		return "heavy, leave 1-2 reps in reserve"
	case intensity >= 5:
		return "moderate, leave 2-3 reps in reserve"
	default:
		return "light, focus on form"
	}
}
