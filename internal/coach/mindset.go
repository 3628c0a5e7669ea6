package coach

import "github.com/TedTes/trakfit/internal/profile"

func buildMindsetGuidance(p profile.Profile) MindsetGuidance {
	highStress := p.Lifestyle.StressLevel == profile.StressHigh ||
		p.Lifestyle.StressLevel == profile.StressVeryHigh
	shortSleep := p.Lifestyle.SleepHours > 0 && p.Lifestyle.SleepHours < 6

	switch {
	case highStress:
		return MindsetGuidance{
			Focus: "Train to decompress, not to max out.",
			Practices: []string{
				"Two minutes of slow breathing before your first set.",
				"Write down one thing that went well after the session.",
			},
		}
	case shortSleep:
		return MindsetGuidance{
			Focus: "Show up and move; today counts even at reduced effort.",
			Practices: []string{
				"Cut the last set of each exercise if focus fades.",
				"No caffeine within 8 hours of bedtime.",
			},
		}
	default:
		return MindsetGuidance{
			Focus: "Consistency beats intensity.",
			Practices: []string{
				"Set one concrete target for today's session before you start.",
				"Finish with a one-line note on how training felt.",
			},
		}
	}
}
