package coach

import "github.com/TedTes/trakfit/internal/profile"

func sleepTarget(ageYears int) float64 {
	switch {
	case ageYears < 30:
		return 8.0
	case ageYears <= 50:
		return 7.5
	default:
		return 7.0
	}
}

func buildRecoveryPlan(p profile.Profile) RecoveryPlan {
	var guidance string
	switch p.Lifestyle.StressLevel {
	case profile.StressHigh, profile.StressVeryHigh:
		guidance = "Take a full rest day after every two training days this week."
	case profile.StressModerate:
		guidance = "Keep one full rest day between your hardest sessions."
	default:
		guidance = "Train as planned; one rest day per week is enough right now."
	}

	suggestions := []string{"Take a 10 minute walk after your largest meal."}
	if p.Lifestyle.SleepHours < sleepTarget(p.Personal.AgeYears) {
		suggestions = append(suggestions, "Move bedtime 30 minutes earlier tonight.")
	}
	if p.Lifestyle.SleepQuality == profile.SleepPoor {
		suggestions = append(suggestions, "Keep screens out of the last hour before bed.")
	}
	if !hasHabit(p.Lifestyle.RecoveryHabits, "stretching") {
		suggestions = append(suggestions, "Add 5 minutes of easy stretching after training.")
	}

	return RecoveryPlan{
		SleepTargetHours: sleepTarget(p.Personal.AgeYears),
		RestGuidance:     guidance,
		Suggestions:      suggestions,
	}
}

func hasHabit(habits []string, habit string) bool {
	for _, h := range habits {
		if h == habit {
			return true
		}
	}
	return false
}
