package profile

// ApplyDefaults fills unset optional fields with their documented defaults.
// Required identity fields are never defaulted; use MissingRequired to
// detect their absence.
func ApplyDefaults(p Profile) Profile {
	if p.Personal.ActivityLevel == "" {
		p.Personal.ActivityLevel = ActivityModeratelyActive
	}
	if p.Goals.Primary == "" {
		p.Goals.Primary = GoalGeneralFitness
	}
	if p.Goals.Timeline == "" {
		p.Goals.Timeline = TimelineOngoing
	}
	if !p.Equipment.HomeGym && !p.Equipment.CommercialGym && !p.Equipment.NoEquipment {
		p.Equipment.NoEquipment = true
	}
	if p.Dietary.DietType == "" {
		p.Dietary.DietType = DietOmnivore
	}
	if p.Lifestyle.SleepHours == 0 {
		p.Lifestyle.SleepHours = 7
	}
	if p.Lifestyle.SleepQuality == "" {
		p.Lifestyle.SleepQuality = SleepFair
	}
	if p.Lifestyle.StressLevel == "" {
		p.Lifestyle.StressLevel = StressModerate
	}
	if p.Lifestyle.MinutesPerDay == 0 {
		p.Lifestyle.MinutesPerDay = 45
	}
	return p
}
