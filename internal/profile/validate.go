package profile

import (
	"fmt"
	"strings"
)

// Range bounds enforced at the write boundary. Values outside these ranges
// are rejected rather than clamped.
const (
	minAgeYears = 16
	maxAgeYears = 100

	minHeightCm = 120
	maxHeightCm = 250

	minWeightKg = 30
	maxWeightKg = 300

	minCalorieTarget = 1000
	maxCalorieTarget = 5000

	minProteinTargetG = 20
	maxProteinTargetG = 300

	minSleepHours = 0
	maxSleepHours = 16

	minMinutesPerDay = 10
	maxMinutesPerDay = 180
)

var allowedSexes = map[Sex]struct{}{
	SexMale:   {},
	SexFemale: {},
}

var allowedActivityLevels = map[ActivityLevel]struct{}{
	ActivitySedentary:        {},
	ActivityLightlyActive:    {},
	ActivityModeratelyActive: {},
	ActivityVeryActive:       {},
}

var allowedGoals = map[Goal]struct{}{
	GoalStrength:       {},
	GoalFatLoss:        {},
	GoalMuscleGain:     {},
	GoalEndurance:      {},
	GoalMobility:       {},
	GoalGeneralFitness: {},
}

var allowedTimelines = map[Timeline]struct{}{
	TimelineOneMonth:    {},
	TimelineThreeMonths: {},
	TimelineSixMonths:   {},
	TimelineOngoing:     {},
}

var allowedDietTypes = map[DietType]struct{}{
	DietOmnivore:    {},
	DietVegetarian:  {},
	DietVegan:       {},
	DietPescatarian: {},
	DietKeto:        {},
	DietPaleo:       {},
}

var allowedSleepQualities = map[SleepQuality]struct{}{
	SleepPoor:      {},
	SleepFair:      {},
	SleepGood:      {},
	SleepExcellent: {},
}

var allowedStressLevels = map[StressLevel]struct{}{
	StressLow:      {},
	StressModerate: {},
	StressHigh:     {},
	StressVeryHigh: {},
}

// ValidationError collects per-field validation failures for one section.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "invalid profile: " + strings.Join(parts, "; ")
}

type fieldErrors map[string]string

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// ValidatePersonal checks the personal section against its ranges and enums.
func ValidatePersonal(p Personal) error {
	errs := fieldErrors{}
	if p.AgeYears < minAgeYears || p.AgeYears > maxAgeYears {
		errs["age_years"] = fmt.Sprintf("must be between %d and %d", minAgeYears, maxAgeYears)
	}
	if _, ok := allowedSexes[p.Sex]; !ok {
		errs["sex"] = "must be male or female"
	}
	if p.HeightCm < minHeightCm || p.HeightCm > maxHeightCm {
		errs["height_cm"] = fmt.Sprintf("must be between %d and %d", minHeightCm, maxHeightCm)
	}
	if p.WeightKg < minWeightKg || p.WeightKg > maxWeightKg {
		errs["weight_kg"] = fmt.Sprintf("must be between %d and %d", minWeightKg, maxWeightKg)
	}
	if p.ActivityLevel != "" {
		if _, ok := allowedActivityLevels[p.ActivityLevel]; !ok {
			errs["activity_level"] = "unknown activity level"
		}
	}
	return errs.err()
}

// ValidateGoals checks the goals section. A secondary goal must differ from
// the primary goal.
func ValidateGoals(g Goals) error {
	errs := fieldErrors{}
	if _, ok := allowedGoals[g.Primary]; !ok {
		errs["primary"] = "unknown goal"
	}
	if g.Secondary != nil {
		if _, ok := allowedGoals[*g.Secondary]; !ok {
			errs["secondary"] = "unknown goal"
		} else if *g.Secondary == g.Primary {
			errs["secondary"] = "must differ from primary goal"
		}
	}
	if _, ok := allowedTimelines[g.Timeline]; !ok {
		errs["timeline"] = "unknown timeline"
	}
	return errs.err()
}

// ValidateEquipment requires at least one training context flag.
func ValidateEquipment(e Equipment) error {
	errs := fieldErrors{}
	if !e.HomeGym && !e.CommercialGym && !e.NoEquipment {
		errs["equipment"] = "at least one of home_gym, commercial_gym, no_equipment must be set"
	}
	return errs.err()
}

// ValidateDietary checks the dietary section. Explicit targets are optional
// but must be in range when present.
func ValidateDietary(d Dietary) error {
	errs := fieldErrors{}
	if _, ok := allowedDietTypes[d.DietType]; !ok {
		errs["diet_type"] = "unknown diet type"
	}
	if d.CalorieTarget != nil && (*d.CalorieTarget < minCalorieTarget || *d.CalorieTarget > maxCalorieTarget) {
		errs["calorie_target"] = fmt.Sprintf("must be between %d and %d", minCalorieTarget, maxCalorieTarget)
	}
	if d.ProteinTargetG != nil && (*d.ProteinTargetG < minProteinTargetG || *d.ProteinTargetG > maxProteinTargetG) {
		errs["protein_target_g"] = fmt.Sprintf("must be between %d and %d", minProteinTargetG, maxProteinTargetG)
	}
	return errs.err()
}

// ValidateLifestyle checks the lifestyle section ranges and enums.
func ValidateLifestyle(l Lifestyle) error {
	errs := fieldErrors{}
	if l.SleepHours < minSleepHours || l.SleepHours > maxSleepHours {
		errs["sleep_hours"] = fmt.Sprintf("must be between %d and %d", minSleepHours, maxSleepHours)
	}
	if _, ok := allowedSleepQualities[l.SleepQuality]; !ok {
		errs["sleep_quality"] = "unknown sleep quality"
	}
	if _, ok := allowedStressLevels[l.StressLevel]; !ok {
		errs["stress_level"] = "unknown stress level"
	}
	if l.MinutesPerDay < minMinutesPerDay || l.MinutesPerDay > maxMinutesPerDay {
		errs["minutes_per_day"] = fmt.Sprintf("must be between %d and %d", minMinutesPerDay, maxMinutesPerDay)
	}
	return errs.err()
}
