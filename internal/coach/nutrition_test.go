package coach_test

import (
	"testing"

	"github.com/TedTes/trakfit/internal/coach"
	"github.com/TedTes/trakfit/internal/profile"
	"github.com/TedTes/trakfit/internal/ptr"
	"github.com/google/go-cmp/cmp"
)

func TestBMR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		personal profile.Personal
		want     float64
	}{
		{
			name: "male reference",
			personal: profile.Personal{
				AgeYears: 28, Sex: profile.SexMale, HeightCm: 175, WeightKg: 70,
			},
			want: 1658.75,
		},
		{
			name: "female reference",
			personal: profile.Personal{
				AgeYears: 28, Sex: profile.SexFemale, HeightCm: 175, WeightKg: 70,
			},
			want: 1492.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := coach.BMR(tt.personal); got != tt.want {
				t.Errorf("BMR() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTargetCalories_Reference(t *testing.T) {
	t.Parallel()

	// 10*70 + 6.25*175 - 5*28 + 5 = 1658.75; * 1.55 = 2571.0625.
	p := profile.Profile{
		Personal: profile.Personal{
			AgeYears:      28,
			Sex:           profile.SexMale,
			HeightCm:      175,
			WeightKg:      70,
			ActivityLevel: profile.ActivityModeratelyActive,
		},
		Goals: profile.Goals{Primary: profile.GoalGeneralFitness},
	}
	if got := coach.TargetCalories(p); got != 2571 {
		t.Errorf("TargetCalories() = %d, want 2571", got)
	}
}

func TestTargetCalories_GoalAdjustments(t *testing.T) {
	t.Parallel()

	base := profile.Profile{
		Personal: profile.Personal{
			AgeYears:      28,
			Sex:           profile.SexMale,
			HeightCm:      175,
			WeightKg:      70,
			ActivityLevel: profile.ActivityModeratelyActive,
		},
	}

	tests := []struct {
		goal profile.Goal
		want int
	}{
		{goal: profile.GoalFatLoss, want: 2057},   // 2571.0625 * 0.8
		{goal: profile.GoalStrength, want: 2828},  // * 1.1
		{goal: profile.GoalEndurance, want: 2700}, // * 1.05
		{goal: profile.GoalMuscleGain, want: 2571},
		{goal: profile.Goal("unknown_goal"), want: 2571},
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			t.Parallel()
			p := base
			p.Goals.Primary = tt.goal
			if got := coach.TargetCalories(p); got != tt.want {
				t.Errorf("TargetCalories() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTDEE_UnknownActivityUsesDefault(t *testing.T) {
	t.Parallel()

	personal := profile.Personal{AgeYears: 28, Sex: profile.SexMale, HeightCm: 175, WeightKg: 70}
	personal.ActivityLevel = "space_walking"
	want := coach.BMR(personal) * 1.55
	if got := coach.TDEE(personal); got != want {
		t.Errorf("TDEE() = %v, want %v", got, want)
	}
}

func TestMacroRatios_ProteinAdjustmentsDoNotRenormalize(t *testing.T) {
	t.Parallel()

	// The age and sex bumps raise the protein fraction without rescaling
	// carbs and fat, so the fractions can sum above 1.0. Pinned here so a
	// silent "fix" fails loudly.
	p := profile.Profile{
		Personal: profile.Personal{AgeYears: 45, Sex: profile.SexFemale, HeightCm: 165, WeightKg: 70},
		Goals:    profile.Goals{Primary: profile.GoalFatLoss},
	}
	split := coach.MacroRatios(p)
	if want := 0.40 + 0.05 + 0.02; split.Protein != want {
		t.Errorf("protein fraction = %v, want %v", split.Protein, want)
	}
	sum := split.Protein + split.Carbs + split.Fat
	if sum <= 1.0 {
		t.Errorf("fraction sum = %v, expected above 1.0 for age>40 female", sum)
	}
}

func TestMacroTargetsFor_Idempotent(t *testing.T) {
	t.Parallel()

	p := profile.Profile{
		Personal: profile.Personal{
			AgeYears:      50,
			Sex:           profile.SexFemale,
			HeightCm:      160,
			WeightKg:      62,
			ActivityLevel: profile.ActivityLightlyActive,
		},
		Goals: profile.Goals{Primary: profile.GoalMuscleGain},
	}
	first := coach.MacroTargetsFor(p)
	second := coach.MacroTargetsFor(p)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("macro targets drifted between calls (-first +second):\n%s", diff)
	}
}

func TestMacroTargetsFor_ExplicitTargetsWin(t *testing.T) {
	t.Parallel()

	p := profile.Profile{
		Personal: profile.Personal{
			AgeYears:      30,
			Sex:           profile.SexMale,
			HeightCm:      180,
			WeightKg:      80,
			ActivityLevel: profile.ActivityVeryActive,
		},
		Goals: profile.Goals{Primary: profile.GoalGeneralFitness},
		Dietary: profile.Dietary{
			DietType:       profile.DietOmnivore,
			CalorieTarget:  ptr.Ref(2000),
			ProteinTargetG: ptr.Ref(150),
		},
	}
	got := coach.MacroTargetsFor(p)
	if got.Calories != 2000 {
		t.Errorf("calories = %d, want explicit 2000", got.Calories)
	}
	if got.ProteinG != 150 {
		t.Errorf("protein = %d, want explicit 150", got.ProteinG)
	}
}
