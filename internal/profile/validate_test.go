package profile_test

import (
	"testing"

	"github.com/TedTes/trakfit/internal/profile"
	"github.com/TedTes/trakfit/internal/ptr"
)

func TestValidatePersonal(t *testing.T) {
	t.Parallel()

	valid := profile.Personal{
		AgeYears:      30,
		Sex:           profile.SexFemale,
		HeightCm:      170,
		WeightKg:      65,
		ActivityLevel: profile.ActivityModeratelyActive,
	}

	tests := []struct {
		name    string
		mutate  func(*profile.Personal)
		wantErr bool
	}{
		{name: "valid", mutate: func(*profile.Personal) {}},
		{name: "age too low", mutate: func(p *profile.Personal) { p.AgeYears = 15 }, wantErr: true},
		{name: "age too high", mutate: func(p *profile.Personal) { p.AgeYears = 101 }, wantErr: true},
		{name: "age at lower bound", mutate: func(p *profile.Personal) { p.AgeYears = 16 }},
		{name: "age at upper bound", mutate: func(p *profile.Personal) { p.AgeYears = 100 }},
		{name: "unknown sex", mutate: func(p *profile.Personal) { p.Sex = "other" }, wantErr: true},
		{name: "height too low", mutate: func(p *profile.Personal) { p.HeightCm = 119 }, wantErr: true},
		{name: "height too high", mutate: func(p *profile.Personal) { p.HeightCm = 251 }, wantErr: true},
		{name: "weight too low", mutate: func(p *profile.Personal) { p.WeightKg = 29 }, wantErr: true},
		{name: "weight too high", mutate: func(p *profile.Personal) { p.WeightKg = 301 }, wantErr: true},
		{name: "unknown activity level", mutate: func(p *profile.Personal) { p.ActivityLevel = "extreme" }, wantErr: true},
		{name: "empty activity level allowed", mutate: func(p *profile.Personal) { p.ActivityLevel = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := valid
			tt.mutate(&p)
			err := profile.ValidatePersonal(p)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePersonal() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateGoals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		goals   profile.Goals
		wantErr bool
	}{
		{
			name:  "primary only",
			goals: profile.Goals{Primary: profile.GoalStrength, Timeline: profile.TimelineOngoing},
		},
		{
			name: "distinct secondary",
			goals: profile.Goals{
				Primary:   profile.GoalFatLoss,
				Secondary: ptr.Ref(profile.GoalMobility),
				Timeline:  profile.TimelineThreeMonths,
			},
		},
		{
			name: "secondary equals primary",
			goals: profile.Goals{
				Primary:   profile.GoalFatLoss,
				Secondary: ptr.Ref(profile.GoalFatLoss),
				Timeline:  profile.TimelineThreeMonths,
			},
			wantErr: true,
		},
		{
			name:    "unknown primary",
			goals:   profile.Goals{Primary: "get_swole", Timeline: profile.TimelineOngoing},
			wantErr: true,
		},
		{
			name:    "unknown timeline",
			goals:   profile.Goals{Primary: profile.GoalStrength, Timeline: "2_weeks"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := profile.ValidateGoals(tt.goals)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateGoals() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEquipment(t *testing.T) {
	t.Parallel()

	if err := profile.ValidateEquipment(profile.Equipment{}); err == nil {
		t.Error("expected error for no training context")
	}
	if err := profile.ValidateEquipment(profile.Equipment{NoEquipment: true}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := profile.ValidateEquipment(profile.Equipment{
		HomeGym: true,
		Home:    profile.HomeEquipment{Dumbbells: true},
	}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateDietary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dietary profile.Dietary
		wantErr bool
	}{
		{name: "plain omnivore", dietary: profile.Dietary{DietType: profile.DietOmnivore}},
		{name: "unknown diet", dietary: profile.Dietary{DietType: "carnivore"}, wantErr: true},
		{
			name:    "calorie target in range",
			dietary: profile.Dietary{DietType: profile.DietVegan, CalorieTarget: ptr.Ref(2200)},
		},
		{
			name:    "calorie target too low",
			dietary: profile.Dietary{DietType: profile.DietVegan, CalorieTarget: ptr.Ref(999)},
			wantErr: true,
		},
		{
			name:    "calorie target too high",
			dietary: profile.Dietary{DietType: profile.DietVegan, CalorieTarget: ptr.Ref(5001)},
			wantErr: true,
		},
		{
			name:    "protein target too low",
			dietary: profile.Dietary{DietType: profile.DietKeto, ProteinTargetG: ptr.Ref(19)},
			wantErr: true,
		},
		{
			name:    "protein target too high",
			dietary: profile.Dietary{DietType: profile.DietKeto, ProteinTargetG: ptr.Ref(301)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := profile.ValidateDietary(tt.dietary)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDietary() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLifestyle(t *testing.T) {
	t.Parallel()

	valid := profile.Lifestyle{
		SleepHours:    7.5,
		SleepQuality:  profile.SleepGood,
		StressLevel:   profile.StressModerate,
		MinutesPerDay: 45,
	}

	tests := []struct {
		name    string
		mutate  func(*profile.Lifestyle)
		wantErr bool
	}{
		{name: "valid", mutate: func(*profile.Lifestyle) {}},
		{name: "sleep hours too high", mutate: func(l *profile.Lifestyle) { l.SleepHours = 17 }, wantErr: true},
		{name: "unknown sleep quality", mutate: func(l *profile.Lifestyle) { l.SleepQuality = "amazing" }, wantErr: true},
		{name: "unknown stress level", mutate: func(l *profile.Lifestyle) { l.StressLevel = "none" }, wantErr: true},
		{name: "minutes too low", mutate: func(l *profile.Lifestyle) { l.MinutesPerDay = 5 }, wantErr: true},
		{name: "minutes too high", mutate: func(l *profile.Lifestyle) { l.MinutesPerDay = 200 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := valid
			tt.mutate(&l)
			err := profile.ValidateLifestyle(l)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLifestyle() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMissingRequired(t *testing.T) {
	t.Parallel()

	var empty profile.Profile
	got := profile.MissingRequired(empty)
	want := []string{"age_years", "sex", "height_cm", "weight_kg"}
	if len(got) != len(want) {
		t.Fatalf("MissingRequired() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MissingRequired()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	full := profile.Profile{Personal: profile.Personal{
		AgeYears: 30, Sex: profile.SexMale, HeightCm: 180, WeightKg: 80,
	}}
	if missing := profile.MissingRequired(full); len(missing) != 0 {
		t.Errorf("MissingRequired() = %v, want none", missing)
	}
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	got := profile.ApplyDefaults(profile.Profile{})
	if got.Personal.ActivityLevel != profile.ActivityModeratelyActive {
		t.Errorf("activity level = %q, want moderately_active", got.Personal.ActivityLevel)
	}
	if got.Goals.Primary != profile.GoalGeneralFitness {
		t.Errorf("primary goal = %q, want general_fitness", got.Goals.Primary)
	}
	if !got.Equipment.NoEquipment {
		t.Error("expected no_equipment default")
	}
	if got.Dietary.DietType != profile.DietOmnivore {
		t.Errorf("diet type = %q, want omnivore", got.Dietary.DietType)
	}
	if got.Lifestyle.MinutesPerDay != 45 {
		t.Errorf("minutes per day = %d, want 45", got.Lifestyle.MinutesPerDay)
	}

	// Explicit values survive.
	set := profile.Profile{
		Goals:     profile.Goals{Primary: profile.GoalStrength, Timeline: profile.TimelineOneMonth},
		Equipment: profile.Equipment{CommercialGym: true},
	}
	got = profile.ApplyDefaults(set)
	if got.Goals.Primary != profile.GoalStrength {
		t.Errorf("primary goal = %q, want strength", got.Goals.Primary)
	}
	if got.Equipment.NoEquipment {
		t.Error("no_equipment defaulted despite commercial_gym set")
	}
}
