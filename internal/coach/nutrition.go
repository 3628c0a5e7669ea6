package coach

import (
	"math"

	"github.com/TedTes/trakfit/internal/profile"
)

var activityFactors = map[profile.ActivityLevel]float64{
	profile.ActivitySedentary:        1.2,
	profile.ActivityLightlyActive:    1.375,
	profile.ActivityModeratelyActive: 1.55,
	profile.ActivityVeryActive:       1.725,
}

// MacroSplit is a goal's protein/carb/fat calorie fractions. Each row sums
// to 1.0 before the age and sex protein adjustments.
type MacroSplit struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

var macroSplits = map[profile.Goal]MacroSplit{
	profile.GoalStrength:       {Protein: 0.30, Carbs: 0.45, Fat: 0.25},
	profile.GoalFatLoss:        {Protein: 0.40, Carbs: 0.30, Fat: 0.30},
	profile.GoalMuscleGain:     {Protein: 0.30, Carbs: 0.50, Fat: 0.20},
	profile.GoalEndurance:      {Protein: 0.25, Carbs: 0.55, Fat: 0.20},
	profile.GoalMobility:       {Protein: 0.30, Carbs: 0.45, Fat: 0.25},
	profile.GoalGeneralFitness: {Protein: 0.30, Carbs: 0.40, Fat: 0.30},
}

var calorieAdjustments = map[profile.Goal]float64{
	profile.GoalFatLoss:   0.8,
	profile.GoalStrength:  1.1,
	profile.GoalEndurance: 1.05,
}

// BMR estimates the basal metabolic rate with the Mifflin-St Jeor formula.
func BMR(p profile.Personal) float64 {
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.AgeYears)
	if p.Sex == profile.SexFemale {
		return base - 161
	}
	return base + 5
}

// TDEE scales BMR by the activity factor. An unknown or unset activity
// level uses the moderately-active factor.
func TDEE(p profile.Personal) float64 {
	factor, ok := activityFactors[p.ActivityLevel]
	if !ok {
		factor = 1.55
	}
	return BMR(p) * factor
}

// TargetCalories applies the goal adjustment to TDEE, rounded to the
// nearest calorie. Goals without an adjustment use TDEE unchanged.
func TargetCalories(p profile.Profile) int {
	adjust, ok := calorieAdjustments[p.Goals.Primary]
	if !ok {
		adjust = 1.0
	}
	return int(math.Round(TDEE(p.Personal) * adjust))
}

// MacroRatios returns the calorie fractions for the goal after the age and
// sex protein adjustments. The protein fraction gains +0.05 over age 40 and
// +0.02 for women with no rescaling of carbs and fat, so the fractions can
// sum above 1.0. Known limitation, pinned by tests; do not renormalize
// without a product decision.
func MacroRatios(p profile.Profile) MacroSplit {
	split, ok := macroSplits[p.Goals.Primary]
	if !ok {
		split = macroSplits[profile.GoalGeneralFitness]
	}
	if p.Personal.AgeYears > 40 {
		split.Protein += 0.05
	}
	if p.Personal.Sex == profile.SexFemale {
		split.Protein += 0.02
	}
	return split
}

// MacroTargetsFor derives the gram prescription from the calorie target and
// the goal's adjusted ratios. Pure in its inputs, so repeat calls with the
// same profile produce identical integers.
func MacroTargetsFor(p profile.Profile) MacroTargets {
	calories := TargetCalories(p)
	if p.Dietary.CalorieTarget != nil {
		calories = *p.Dietary.CalorieTarget
	}
	split := MacroRatios(p)
	cal := float64(calories)
	targets := MacroTargets{
		ProteinG: int(math.Round(cal * split.Protein / 4)),
		CarbsG:   int(math.Round(cal * split.Carbs / 4)),
		FatG:     int(math.Round(cal * split.Fat / 9)),
		Calories: calories,
	}
	if p.Dietary.ProteinTargetG != nil {
		targets.ProteinG = *p.Dietary.ProteinTargetG
	}
	return targets
}

var nutritionTips = map[profile.Goal]string{
	profile.GoalStrength:       "Eat most of your carbs around training to fuel heavy sets.",
	profile.GoalFatLoss:        "Front-load protein at breakfast to manage hunger through the day.",
	profile.GoalMuscleGain:     "A small calorie surplus every day beats a big one on some days.",
	profile.GoalEndurance:      "Top up carbs within an hour of finishing longer sessions.",
	profile.GoalMobility:       "Stay hydrated; connective tissue recovers poorly when you are not.",
	profile.GoalGeneralFitness: "Build each meal around a palm of protein and plenty of vegetables.",
}

var timingGuidance = map[profile.Goal][]string{
	profile.GoalStrength: {
		"Have a carb and protein meal 2-3 hours before training.",
		"Eat a protein-rich meal within 2 hours after training.",
	},
	profile.GoalFatLoss: {
		"Keep meals evenly spaced to avoid late-day overeating.",
		"Save starchy carbs for the meal after training.",
	},
	profile.GoalEndurance: {
		"Eat easily digestible carbs 1-2 hours before longer sessions.",
		"Rehydrate with electrolytes after sweaty sessions.",
	},
}

var defaultTiming = []string{
	"Eat within an hour of waking.",
	"Leave 2-3 hours between dinner and sleep.",
}

// buildNutritionPlan assembles macros and the day's three meals. Meal
// selection filters the catalog by diet type and takes the first three
// compatible templates in catalog order; it does not optimize for macro
// fit. Fewer than three compatible meals yields a shorter list rather
// than an error.
func (e *Engine) buildNutritionPlan(p profile.Profile) NutritionPlan {
	compatible := e.catalog.MealsForDiet(p.Dietary.DietType)
	slots := []MealSlot{SlotBreakfast, SlotLunch, SlotDinner}

	var planned []PlannedMeal
	var budget float64
	for i, m := range compatible {
		if i >= len(slots) {
			break
		}
		planned = append(planned, PlannedMeal{Slot: slots[i], Meal: m})
		budget += m.BaseCost
	}

	tip, ok := nutritionTips[p.Goals.Primary]
	if !ok {
		tip = nutritionTips[profile.GoalGeneralFitness]
	}
	timing, ok := timingGuidance[p.Goals.Primary]
	if !ok {
		timing = defaultTiming
	}

	return NutritionPlan{
		ID:              e.ids.NewID(),
		Title:           "Daily Nutrition",
		Subtitle:        nutritionSubtitle(p.Goals.Primary),
		Macros:          MacroTargetsFor(p),
		Meals:           planned,
		BudgetPerDay:    math.Round(budget*100) / 100,
		Tip:             tip,
		HydrationLiters: math.Round(p.Personal.WeightKg*0.033*10) / 10,
		TimingGuidance:  timing,
	}
}

func nutritionSubtitle(goal profile.Goal) string {
	switch goal {
	case profile.GoalFatLoss:
		return "Calorie deficit, protein first"
	case profile.GoalMuscleGain:
		return "Fuel for growth"
	case profile.GoalStrength:
		return "Eat to lift"
	case profile.GoalEndurance:
		return "Carbs are fuel"
	default:
		return "Balanced fuel for the day"
	}
}
