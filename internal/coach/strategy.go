package coach

import (
	"sort"
	"strings"
	"time"

	"github.com/TedTes/trakfit/internal/catalog"
	"github.com/TedTes/trakfit/internal/profile"
)

// SelectionInputs carries everything a selection strategy may consult.
// Each strategy reads the fields relevant to it and ignores the rest.
type SelectionInputs struct {
	Goal          profile.Goal
	Intensity     int
	TargetMuscles []string
	Recent        map[string]time.Time
	MaxExercises  int
}

// SelectionStrategy chooses an ordered exercise list from an already
// equipment-filtered pool.
type SelectionStrategy interface {
	Select(pool []catalog.Exercise, in SelectionInputs) []catalog.Exercise
}

// FilterByEquipment keeps the exercises performable with the given
// equipment availability. The three context flags combine as an inclusive
// OR: a commercial gym admits everything, a home gym admits dumbbell and
// bodyweight work, and no-equipment admits bodyweight work.
func FilterByEquipment(pool []catalog.Exercise, eq profile.Equipment) []catalog.Exercise {
	if eq.CommercialGym {
		return pool
	}
	var out []catalog.Exercise
	for _, e := range pool {
		if exercisePasses(e, eq) {
			out = append(out, e)
		}
	}
	return out
}

func exercisePasses(e catalog.Exercise, eq profile.Equipment) bool {
	for _, item := range e.Equipment {
		if eq.NoEquipment && item == "bodyweight" {
			return true
		}
		if eq.HomeGym && (item == "bodyweight" || item == "dumbbell") {
			return true
		}
	}
	return false
}

// GoalTableStrategy is the simple rule-table selection used by the daily
// coaching engine: a fixed sub-list rule per goal, then a time-budget
// truncation applied by the caller.
type GoalTableStrategy struct{}

func (GoalTableStrategy) Select(pool []catalog.Exercise, in SelectionInputs) []catalog.Exercise {
	switch in.Goal {
	case profile.GoalStrength:
		return selectStrength(pool, in.Intensity)
	case profile.GoalFatLoss:
		return selectFatLoss(pool)
	case profile.GoalEndurance:
		return selectEndurance(pool)
	case profile.GoalMobility:
		return selectMobility(pool)
	default:
		return selectBalanced(pool)
	}
}

func selectStrength(pool []catalog.Exercise, intensity int) []catalog.Exercise {
	var strength []catalog.Exercise
	for _, e := range pool {
		if e.Kind() == catalog.KindStrength {
			strength = append(strength, e)
		}
	}
	// Compound preference: more primary muscles first. Stable so pool
	// order breaks ties deterministically.
	sort.SliceStable(strength, func(i, j int) bool {
		return len(strength[i].Muscles.Primary) > len(strength[j].Muscles.Primary)
	})
	limit := 4
	if intensity >= 7 {
		limit = 5
	}
	return truncate(strength, limit)
}

func selectFatLoss(pool []catalog.Exercise) []catalog.Exercise {
	var out []catalog.Exercise
	cardio := 0
	for _, e := range pool {
		if e.Kind() == catalog.KindCardio && cardio < 2 {
			out = append(out, e)
			cardio++
		}
	}
	strength := 0
	for _, e := range pool {
		if e.Kind() == catalog.KindStrength && strength < 3 {
			out = append(out, e)
			strength++
		}
	}
	return out
}

func selectEndurance(pool []catalog.Exercise) []catalog.Exercise {
	var out []catalog.Exercise
	for _, e := range pool {
		if e.Kind() == catalog.KindCardio || strings.Contains(e.Name, "Squats") {
			out = append(out, e)
		}
	}
	return truncate(out, 4)
}

func selectMobility(pool []catalog.Exercise) []catalog.Exercise {
	var out []catalog.Exercise
	for _, e := range pool {
		if e.Kind() == catalog.KindStability || targetsCore(e) {
			out = append(out, e)
		}
	}
	return truncate(out, 4)
}

func selectBalanced(pool []catalog.Exercise) []catalog.Exercise {
	var out []catalog.Exercise
	strength := 0
	for _, e := range pool {
		if e.Kind() == catalog.KindStrength && strength < 3 {
			out = append(out, e)
			strength++
		}
	}
	other := 0
	for _, e := range pool {
		if e.Kind() != catalog.KindStrength && other < 2 {
			out = append(out, e)
			other++
		}
	}
	return out
}

func targetsCore(e catalog.Exercise) bool {
	for _, m := range e.Muscles.Primary {
		if m == "core" {
			return true
		}
	}
	return false
}

func truncate(list []catalog.Exercise, n int) []catalog.Exercise {
	if len(list) > n {
		return list[:n]
	}
	return list
}

// exerciseBudget bounds the exercise count by the daily time budget,
// roughly eight minutes per exercise, clamped to [3,6].
func exerciseBudget(minutesPerDay int) int {
	n := minutesPerDay / 8
	if n < 3 {
		n = 3
	}
	if n > 6 {
		n = 6
	}
	return n
}
