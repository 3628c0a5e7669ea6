package coach_test

import (
	"testing"

	"github.com/TedTes/trakfit/internal/coach"
	"github.com/TedTes/trakfit/internal/profile"
)

func TestIntensity_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		age      int
		activity profile.ActivityLevel
		sleep    profile.SleepQuality
		stress   profile.StressLevel
		want     int
	}{
		{
			name: "everything favorable",
			age:  22, activity: profile.ActivityVeryActive,
			sleep: profile.SleepExcellent, stress: profile.StressLow,
			want: 9, // 5 +1 +1 +1 +1
		},
		{
			name: "everything unfavorable clamps to 1",
			age:  55, activity: profile.ActivitySedentary,
			sleep: profile.SleepPoor, stress: profile.StressHigh,
			want: 1, // 5 -2 -2 -2 -2
		},
		{
			name: "neutral baseline",
			age:  30, activity: profile.ActivityModeratelyActive,
			sleep: profile.SleepGood, stress: profile.StressModerate,
			want: 5,
		},
		{
			name: "middle age deduction",
			age:  40, activity: profile.ActivityModeratelyActive,
			sleep: profile.SleepGood, stress: profile.StressModerate,
			want: 4, // age>35 -1
		},
		{
			name: "very high stress treated like high",
			age:  30, activity: profile.ActivityModeratelyActive,
			sleep: profile.SleepGood, stress: profile.StressVeryHigh,
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := profile.Profile{
				Personal: profile.Personal{
					AgeYears: tt.age, Sex: profile.SexMale,
					HeightCm: 175, WeightKg: 75,
					ActivityLevel: tt.activity,
				},
				Lifestyle: profile.Lifestyle{
					SleepQuality: tt.sleep,
					StressLevel:  tt.stress,
				},
			}
			if got := coach.Intensity(p); got != tt.want {
				t.Errorf("Intensity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIntensity_Bounds(t *testing.T) {
	t.Parallel()

	ages := []int{16, 24, 25, 35, 36, 50, 51, 100}
	activities := []profile.ActivityLevel{
		profile.ActivitySedentary, profile.ActivityLightlyActive,
		profile.ActivityModeratelyActive, profile.ActivityVeryActive,
	}
	sleeps := []profile.SleepQuality{
		profile.SleepPoor, profile.SleepFair, profile.SleepGood, profile.SleepExcellent,
	}
	stresses := []profile.StressLevel{
		profile.StressLow, profile.StressModerate, profile.StressHigh, profile.StressVeryHigh,
	}

	for _, age := range ages {
		for _, activity := range activities {
			for _, sleep := range sleeps {
				for _, stress := range stresses {
					p := profile.Profile{
						Personal: profile.Personal{
							AgeYears: age, Sex: profile.SexFemale,
							HeightCm: 165, WeightKg: 60,
							ActivityLevel: activity,
						},
						Lifestyle: profile.Lifestyle{SleepQuality: sleep, StressLevel: stress},
					}
					got := coach.Intensity(p)
					if got < 1 || got > 10 {
						t.Fatalf("Intensity() = %d out of [1,10] for age=%d activity=%s sleep=%s stress=%s",
							got, age, activity, sleep, stress)
					}
				}
			}
		}
	}
}
