package coach

import "github.com/TedTes/trakfit/internal/profile"

// Intensity scores how hard today's session should be, as an integer in
// [1,10]. Four independent additive adjustments on a base of 5, evaluated
// against the current snapshot with no memory across days.
func Intensity(p profile.Profile) int {
	score := 5

	switch {
	case p.Personal.AgeYears > 50:
		score -= 2
	case p.Personal.AgeYears > 35:
		score--
	case p.Personal.AgeYears < 25:
		score++
	}

	switch p.Personal.ActivityLevel {
	case profile.ActivitySedentary:
		score -= 2
	case profile.ActivityLightlyActive:
		score--
	case profile.ActivityVeryActive:
		score++
	}

	switch p.Lifestyle.SleepQuality {
	case profile.SleepPoor:
		score -= 2
	case profile.SleepFair:
		score--
	case profile.SleepExcellent:
		score++
	}

	switch p.Lifestyle.StressLevel {
	case profile.StressLow:
		score++
	case profile.StressHigh, profile.StressVeryHigh:
		score -= 2
	}

	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}
