// Package profile holds the user profile data model, its validation rules,
// and the SQLite-backed profile store.
package profile

// Sex is the biological sex used in energy-expenditure formulas.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel describes habitual daily activity outside training.
type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
)

// Goal is a training goal.
type Goal string

const (
	GoalStrength       Goal = "strength"
	GoalFatLoss        Goal = "fat_loss"
	GoalMuscleGain     Goal = "muscle_gain"
	GoalEndurance      Goal = "endurance"
	GoalMobility       Goal = "mobility"
	GoalGeneralFitness Goal = "general_fitness"
)

// Timeline is the horizon the user wants to reach their goal in.
type Timeline string

const (
	TimelineOneMonth    Timeline = "1_month"
	TimelineThreeMonths Timeline = "3_months"
	TimelineSixMonths   Timeline = "6_months"
	TimelineOngoing     Timeline = "ongoing"
)

// DietType describes the user's dietary pattern.
type DietType string

const (
	DietOmnivore    DietType = "omnivore"
	DietVegetarian  DietType = "vegetarian"
	DietVegan       DietType = "vegan"
	DietPescatarian DietType = "pescatarian"
	DietKeto        DietType = "keto"
	DietPaleo       DietType = "paleo"
)

// SleepQuality is the self-reported sleep quality.
type SleepQuality string

const (
	SleepPoor      SleepQuality = "poor"
	SleepFair      SleepQuality = "fair"
	SleepGood      SleepQuality = "good"
	SleepExcellent SleepQuality = "excellent"
)

// StressLevel is the self-reported stress level.
type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
	StressVeryHigh StressLevel = "very_high"
)

// Personal holds the identity attributes required for plan generation.
type Personal struct {
	AgeYears      int           `json:"age_years"`
	Sex           Sex           `json:"sex"`
	HeightCm      float64       `json:"height_cm"`
	WeightKg      float64       `json:"weight_kg"`
	ActivityLevel ActivityLevel `json:"activity_level"`
}

// Goals holds the user's training goals. Secondary is optional and must
// differ from Primary.
type Goals struct {
	Primary   Goal     `json:"primary"`
	Secondary *Goal    `json:"secondary,omitempty"`
	Timeline  Timeline `json:"timeline"`
}

// HomeEquipment lists the specific equipment available in a home gym.
type HomeEquipment struct {
	Dumbbells     bool `json:"dumbbells"`
	Barbells      bool `json:"barbells"`
	Bands         bool `json:"bands"`
	PullUpBar     bool `json:"pull_up_bar"`
	Bench         bool `json:"bench"`
	Kettlebells   bool `json:"kettlebells"`
	Cables        bool `json:"cables"`
	CardioMachine bool `json:"cardio_machine"`
}

// Equipment describes where and with what the user can train. A complete
// profile has at least one of the three top-level flags set.
type Equipment struct {
	HomeGym       bool          `json:"home_gym"`
	CommercialGym bool          `json:"commercial_gym"`
	NoEquipment   bool          `json:"no_equipment"`
	Home          HomeEquipment `json:"home"`
}

// Dietary holds food preferences and optional explicit macro targets.
type Dietary struct {
	DietType           DietType `json:"diet_type"`
	Allergies          []string `json:"allergies"`
	CuisinePreferences []string `json:"cuisine_preferences"`
	CalorieTarget      *int     `json:"calorie_target,omitempty"`
	ProteinTargetG     *int     `json:"protein_target_g,omitempty"`
}

// Lifestyle holds sleep, stress, and time-budget attributes.
type Lifestyle struct {
	SleepHours     float64      `json:"sleep_hours"`
	SleepQuality   SleepQuality `json:"sleep_quality"`
	StressLevel    StressLevel  `json:"stress_level"`
	MinutesPerDay  int          `json:"minutes_per_day"`
	RecoveryHabits []string     `json:"recovery_habits"`
}

// Profile aggregates the five independently mutable profile sections. The
// coaching engine receives it as a read-only snapshot per invocation.
type Profile struct {
	Personal  Personal  `json:"personal"`
	Goals     Goals     `json:"goals"`
	Equipment Equipment `json:"equipment"`
	Dietary   Dietary   `json:"dietary"`
	Lifestyle Lifestyle `json:"lifestyle"`
}

// Section names the five profile sections for partial updates.
type Section string

const (
	SectionPersonal  Section = "personal"
	SectionGoals     Section = "goals"
	SectionEquipment Section = "equipment"
	SectionDietary   Section = "dietary"
	SectionLifestyle Section = "lifestyle"
)

// MissingRequired reports which identity fields required for plan generation
// are absent from the profile.
func MissingRequired(p Profile) []string {
	var missing []string
	if p.Personal.AgeYears == 0 {
		missing = append(missing, "age_years")
	}
	if p.Personal.Sex == "" {
		missing = append(missing, "sex")
	}
	if p.Personal.HeightCm == 0 {
		missing = append(missing, "height_cm")
	}
	if p.Personal.WeightKg == 0 {
		missing = append(missing, "weight_kg")
	}
	return missing
}
