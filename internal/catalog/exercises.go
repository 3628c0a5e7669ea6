package catalog

import "github.com/TedTes/trakfit/internal/profile"

// Shared per-goal rep and rest presets. Assigned by mechanical category;
// individual exercises reference them rather than repeating the tables.
var (
	compoundReps = map[profile.Goal]string{
		profile.GoalStrength:       "3-6",
		profile.GoalFatLoss:        "12-15",
		profile.GoalMuscleGain:     "8-12",
		profile.GoalEndurance:      "15-20",
		profile.GoalMobility:       "10-12",
		profile.GoalGeneralFitness: "8-12",
	}
	isolationReps = map[profile.Goal]string{
		profile.GoalStrength:       "6-8",
		profile.GoalFatLoss:        "12-15",
		profile.GoalMuscleGain:     "10-12",
		profile.GoalEndurance:      "15-20",
		profile.GoalMobility:       "12-15",
		profile.GoalGeneralFitness: "10-12",
	}
	isometricReps = map[profile.Goal]string{
		profile.GoalStrength:       "20-30",
		profile.GoalFatLoss:        "30-45",
		profile.GoalMuscleGain:     "20-30",
		profile.GoalEndurance:      "30-60",
		profile.GoalMobility:       "30-60",
		profile.GoalGeneralFitness: "20-30",
	}
	cardioReps = map[profile.Goal]string{
		profile.GoalStrength:       "10-15",
		profile.GoalFatLoss:        "15-20",
		profile.GoalMuscleGain:     "12-15",
		profile.GoalEndurance:      "20-30",
		profile.GoalMobility:       "10-15",
		profile.GoalGeneralFitness: "12-15",
	}

	compoundRest = map[profile.Goal]int{
		profile.GoalStrength:       180,
		profile.GoalFatLoss:        60,
		profile.GoalMuscleGain:     90,
		profile.GoalEndurance:      45,
		profile.GoalMobility:       60,
		profile.GoalGeneralFitness: 90,
	}
	isolationRest = map[profile.Goal]int{
		profile.GoalStrength:       120,
		profile.GoalFatLoss:        45,
		profile.GoalMuscleGain:     60,
		profile.GoalEndurance:      30,
		profile.GoalMobility:       45,
		profile.GoalGeneralFitness: 60,
	}
	isometricRest = map[profile.Goal]int{
		profile.GoalStrength:       60,
		profile.GoalFatLoss:        30,
		profile.GoalMuscleGain:     45,
		profile.GoalEndurance:      30,
		profile.GoalMobility:       30,
		profile.GoalGeneralFitness: 45,
	}
	cardioRest = map[profile.Goal]int{
		profile.GoalStrength:       60,
		profile.GoalFatLoss:        20,
		profile.GoalMuscleGain:     45,
		profile.GoalEndurance:      30,
		profile.GoalMobility:       30,
		profile.GoalGeneralFitness: 30,
	}
)

var exercises = []Exercise{
	{
		ID:              "push_up_001",
		Name:            "Push-Up",
		Category:        CategoryCompound,
		Equipment:       []string{"bodyweight"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"chest"}, Secondary: []string{"triceps", "shoulders"}, Stabilizers: []string{"core"}},
		MovementPattern: "horizontal_push",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		ProgressionID:   "push_up_decline_001",
		AlternativeIDs:  []string{"db_bench_press_001"},
		FormCues:        []string{"Keep a straight line from head to heels", "Lower until the chest nearly touches the floor"},
		CommonMistakes:  []string{"Sagging hips", "Flaring elbows past 45 degrees"},
		Description:     "## Push-Up\n\nA bodyweight horizontal press. Brace the trunk, lower under control, and press back to a full lockout.",
	},
	{
		ID:              "push_up_decline_001",
		Name:            "Decline Push-Up",
		Category:        CategoryCompound,
		Equipment:       []string{"bodyweight", "bench"},
		Difficulty:      DifficultyIntermediate,
		Muscles:         Muscles{Primary: []string{"chest", "shoulders"}, Secondary: []string{"triceps"}, Stabilizers: []string{"core"}},
		MovementPattern: "horizontal_push",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		RegressionID:    "push_up_001",
		FormCues:        []string{"Elevate the feet on a stable surface", "Keep the hips level throughout"},
		CommonMistakes:  []string{"Letting the head drop toward the floor"},
		Description:     "## Decline Push-Up\n\nFeet-elevated push-up shifting load to the upper chest and shoulders.",
	},
	{
		ID:              "bench_press_001",
		Name:            "Barbell Bench Press",
		Category:        CategoryCompound,
		Equipment:       []string{"barbell", "bench"},
		Difficulty:      DifficultyIntermediate,
		Muscles:         Muscles{Primary: []string{"chest"}, Secondary: []string{"triceps", "shoulders"}, Stabilizers: []string{"core"}},
		MovementPattern: "horizontal_push",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		RegressionID:    "db_bench_press_001",
		AlternativeIDs:  []string{"push_up_001"},
		FormCues:        []string{"Pin the shoulder blades to the bench", "Touch the bar to mid chest"},
		CommonMistakes:  []string{"Bouncing the bar off the chest", "Lifting the hips off the bench"},
		Description:     "## Barbell Bench Press\n\nThe primary barbell horizontal press. Use a spotter or safeties at working weights.",
	},
	{
		ID:              "db_bench_press_001",
		Name:            "Dumbbell Bench Press",
		Category:        CategoryCompound,
		Equipment:       []string{"dumbbell", "bench"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"chest"}, Secondary: []string{"triceps", "shoulders"}, Stabilizers: []string{"core"}},
		MovementPattern: "horizontal_push",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		ProgressionID:   "bench_press_001",
		FormCues:        []string{"Lower the dumbbells to chest level with elbows at 45 degrees"},
		CommonMistakes:  []string{"Clanging the dumbbells together at lockout"},
		Description:     "## Dumbbell Bench Press\n\nUnilateral-friendly horizontal press with a longer range of motion than the barbell.",
	},
	{
		ID:              "overhead_press_001",
		Name:            "Barbell Overhead Press",
		Category:        CategoryCompound,
		Equipment:       []string{"barbell"},
		Difficulty:      DifficultyIntermediate,
		Muscles:         Muscles{Primary: []string{"shoulders"}, Secondary: []string{"triceps"}, Stabilizers: []string{"core"}},
		MovementPattern: "vertical_push",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		RegressionID:    "db_shoulder_press_001",
		FormCues:        []string{"Squeeze the glutes to keep the ribcage down", "Press to a full overhead lockout"},
		CommonMistakes:  []string{"Excessive lower-back arch"},
		Description:     "## Barbell Overhead Press\n\nStanding vertical press. Brace hard and keep the bar path close to the face.",
	},
	{
		ID:              "db_shoulder_press_001",
		Name:            "Dumbbell Shoulder Press",
		Category:        CategoryCompound,
		Equipment:       []string{"dumbbell"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"shoulders"}, Secondary: []string{"triceps"}, Stabilizers: []string{"core"}},
		MovementPattern: "vertical_push",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		ProgressionID:   "overhead_press_001",
		FormCues:        []string{"Start with the dumbbells at shoulder height, palms forward"},
		CommonMistakes:  []string{"Shrugging the shoulders toward the ears"},
		Description:     "## Dumbbell Shoulder Press\n\nSeated or standing vertical press with independent arm paths.",
	},
	{
		ID:              "pull_up_001",
		Name:            "Pull-Up",
		Category:        CategoryCompound,
		Equipment:       []string{"pull_up_bar"},
		Difficulty:      DifficultyIntermediate,
		Muscles:         Muscles{Primary: []string{"back"}, Secondary: []string{"biceps"}, Stabilizers: []string{"core"}},
		MovementPattern: "vertical_pull",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		RegressionID:    "band_assisted_pull_up_001",
		FormCues:        []string{"Start from a dead hang", "Pull the chin over the bar without kipping"},
		CommonMistakes:  []string{"Half range of motion", "Swinging for momentum"},
		Description:     "## Pull-Up\n\nThe benchmark vertical pull. Control the descent on every rep.",
	},
	{
		ID:              "band_assisted_pull_up_001",
		Name:            "Band-Assisted Pull-Up",
		Category:        CategoryCompound,
		Equipment:       []string{"pull_up_bar", "band"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"back"}, Secondary: []string{"biceps"}, Stabilizers: []string{"core"}},
		MovementPattern: "vertical_pull",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		ProgressionID:   "pull_up_001",
		FormCues:        []string{"Loop the band under one knee or foot", "Use the thinnest band that allows clean reps"},
		CommonMistakes:  []string{"Relying on the band instead of pulling"},
		Description:     "## Band-Assisted Pull-Up\n\nScaled vertical pull for building toward a strict pull-up.",
	},
	{
		ID:              "bent_over_row_001",
		Name:            "Barbell Bent-Over Row",
		Category:        CategoryCompound,
		Equipment:       []string{"barbell"},
		Difficulty:      DifficultyIntermediate,
		Muscles:         Muscles{Primary: []string{"back"}, Secondary: []string{"biceps", "shoulders"}, Stabilizers: []string{"core", "hamstrings"}},
		MovementPattern: "horizontal_pull",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		RegressionID:    "db_row_001",
		FormCues:        []string{"Hinge to roughly 45 degrees and hold the torso angle", "Row to the lower ribs"},
		CommonMistakes:  []string{"Standing up as the set fatigues"},
		Description:     "## Barbell Bent-Over Row\n\nHip-hinged horizontal pull loading the entire posterior chain isometrically.",
	},
	{
		ID:              "db_row_001",
		Name:            "One-Arm Dumbbell Row",
		Category:        CategoryCompound,
		Equipment:       []string{"dumbbell", "bench"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"back"}, Secondary: []string{"biceps"}, Stabilizers: []string{"core"}},
		MovementPattern: "horizontal_pull",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		ProgressionID:   "bent_over_row_001",
		AlternativeIDs:  []string{"seated_cable_row_001"},
		FormCues:        []string{"Support the free hand on a bench", "Pull the elbow toward the hip"},
		CommonMistakes:  []string{"Rotating the torso to move more weight"},
		Description:     "## One-Arm Dumbbell Row\n\nSupported single-arm horizontal pull, easy on the lower back.",
	},
	{
		ID:              "seated_cable_row_001",
		Name:            "Seated Cable Row",
		Category:        CategoryCompound,
		Equipment:       []string{"cable"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"back"}, Secondary: []string{"biceps"}, Stabilizers: []string{"core"}},
		MovementPattern: "horizontal_pull",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		FormCues:        []string{"Sit tall and pull the handle to the navel"},
		CommonMistakes:  []string{"Leaning far back on every rep"},
		Description:     "## Seated Cable Row\n\nConstant-tension horizontal pull on the cable stack.",
	},
	{
		ID:              "bodyweight_squat_001",
		Name:            "Bodyweight Squats",
		Category:        CategoryCompound,
		Equipment:       []string{"bodyweight"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"quadriceps", "glutes"}, Secondary: []string{"hamstrings"}, Stabilizers: []string{"core"}},
		MovementPattern: "squat",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		ProgressionID:   "goblet_squat_001",
		FormCues:        []string{"Sit between the hips, not over the knees", "Keep the heels down"},
		CommonMistakes:  []string{"Knees caving inward", "Cutting depth short"},
		Description:     "## Bodyweight Squats\n\nThe foundational squat pattern. Full depth with an upright torso.",
	},
	{
		ID:              "goblet_squat_001",
		Name:            "Goblet Squats",
		Category:        CategoryCompound,
		Equipment:       []string{"dumbbell", "kettlebell"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"quadriceps", "glutes"}, Secondary: []string{"hamstrings"}, Stabilizers: []string{"core"}},
		MovementPattern: "squat",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		ProgressionID:   "back_squat_001",
		RegressionID:    "bodyweight_squat_001",
		FormCues:        []string{"Hold the weight at the sternum with elbows tucked"},
		CommonMistakes:  []string{"Letting the weight drift away from the chest"},
		Description:     "## Goblet Squats\n\nAnterior-loaded squat that naturally enforces an upright torso.",
	},
	{
		ID:              "back_squat_001",
		Name:            "Barbell Back Squats",
		Category:        CategoryCompound,
		Equipment:       []string{"barbell"},
		Difficulty:      DifficultyIntermediate,
		Muscles:         Muscles{Primary: []string{"quadriceps", "glutes"}, Secondary: []string{"hamstrings", "core"}, Stabilizers: []string{"core"}},
		MovementPattern: "squat",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		RegressionID:    "goblet_squat_001",
		FormCues:        []string{"Brace before every descent", "Drive the floor apart on the way up"},
		CommonMistakes:  []string{"Good-morning the weight up", "Heels rising"},
		Description:     "## Barbell Back Squats\n\nThe primary loaded squat. Use a rack with safeties.",
	},
	{
		ID:              "deadlift_001",
		Name:            "Barbell Deadlift",
		Category:        CategoryCompound,
		Equipment:       []string{"barbell"},
		Difficulty:      DifficultyAdvanced,
		Muscles:         Muscles{Primary: []string{"hamstrings", "glutes", "back"}, Secondary: []string{"quadriceps", "forearms"}, Stabilizers: []string{"core"}},
		MovementPattern: "hinge",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		RegressionID:    "kb_swing_001",
		FormCues:        []string{"Take the slack out of the bar before pulling", "Push the floor away, keep the bar on the legs"},
		CommonMistakes:  []string{"Rounding the lower back", "Jerking the bar off the floor"},
		Description:     "## Barbell Deadlift\n\nThe heaviest hinge. Treat every rep from the floor as a first rep.",
	},
	{
		ID:              "kb_swing_001",
		Name:            "Kettlebell Swing",
		Category:        CategoryCompound,
		Equipment:       []string{"kettlebell"},
		Difficulty:      DifficultyIntermediate,
		Muscles:         Muscles{Primary: []string{"glutes", "hamstrings"}, Secondary: []string{"back", "shoulders"}, Stabilizers: []string{"core"}},
		MovementPattern: "hinge",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		ProgressionID:   "deadlift_001",
		AlternativeIDs:  []string{"glute_bridge_001"},
		FormCues:        []string{"Snap the hips, let the arms follow", "Hike the bell back high between the legs"},
		CommonMistakes:  []string{"Squatting the swing", "Lifting with the arms"},
		Description:     "## Kettlebell Swing\n\nBallistic hip hinge building posterior-chain power and conditioning.",
	},
	{
		ID:              "glute_bridge_001",
		Name:            "Glute Bridge",
		Category:        CategoryIsolation,
		Equipment:       []string{"bodyweight"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"glutes"}, Secondary: []string{"hamstrings"}, Stabilizers: []string{"core"}},
		MovementPattern: "hinge",
		RepRanges:       isolationReps,
		RestSeconds:     isolationRest,
		FormCues:        []string{"Drive through the heels and squeeze at the top"},
		CommonMistakes:  []string{"Hyperextending the lower back at lockout"},
		Description:     "## Glute Bridge\n\nFloor-based hip extension isolating the glutes.",
	},
	{
		ID:              "walking_lunge_001",
		Name:            "Walking Lunge",
		Category:        CategoryCompound,
		Equipment:       []string{"bodyweight", "dumbbell"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"quadriceps", "glutes"}, Secondary: []string{"hamstrings", "calves"}, Stabilizers: []string{"core"}},
		MovementPattern: "lunge",
		RepRanges:       compoundReps,
		RestSeconds:     compoundRest,
		FormCues:        []string{"Step long enough that the front shin stays vertical"},
		CommonMistakes:  []string{"Slamming the back knee into the floor"},
		Description:     "## Walking Lunge\n\nSingle-leg pattern training balance alongside leg strength.",
	},
	{
		ID:              "db_curl_001",
		Name:            "Dumbbell Curl",
		Category:        CategoryIsolation,
		Equipment:       []string{"dumbbell"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"biceps"}, Secondary: []string{"forearms"}},
		MovementPattern: "elbow_flexion",
		RepRanges:       isolationReps,
		RestSeconds:     isolationRest,
		FormCues:        []string{"Pin the elbows to the sides", "Control the lowering phase"},
		CommonMistakes:  []string{"Swinging the torso"},
		Description:     "## Dumbbell Curl\n\nDirect elbow-flexion work for the biceps.",
	},
	{
		ID:              "triceps_pushdown_001",
		Name:            "Cable Triceps Pushdown",
		Category:        CategoryIsolation,
		Equipment:       []string{"cable"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"triceps"}},
		MovementPattern: "elbow_extension",
		RepRanges:       isolationReps,
		RestSeconds:     isolationRest,
		FormCues:        []string{"Keep the upper arms vertical and still"},
		CommonMistakes:  []string{"Leaning over the cable to press with bodyweight"},
		Description:     "## Cable Triceps Pushdown\n\nConstant-tension elbow extension on the cable stack.",
	},
	{
		ID:              "lateral_raise_001",
		Name:            "Dumbbell Lateral Raise",
		Category:        CategoryIsolation,
		Equipment:       []string{"dumbbell"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"shoulders"}},
		MovementPattern: "shoulder_abduction",
		RepRanges:       isolationReps,
		RestSeconds:     isolationRest,
		FormCues:        []string{"Raise to shoulder height with a slight elbow bend"},
		CommonMistakes:  []string{"Shrugging the traps into the movement"},
		Description:     "## Dumbbell Lateral Raise\n\nIsolated abduction for the lateral deltoid.",
	},
	{
		ID:              "leg_extension_001",
		Name:            "Leg Extension",
		Category:        CategoryIsolation,
		Equipment:       []string{"machine"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"quadriceps"}},
		MovementPattern: "knee_extension",
		RepRanges:       isolationReps,
		RestSeconds:     isolationRest,
		FormCues:        []string{"Pause briefly at full extension"},
		CommonMistakes:  []string{"Kicking the weight up with momentum"},
		Description:     "## Leg Extension\n\nMachine-isolated knee extension for the quadriceps.",
	},
	{
		ID:              "calf_raise_001",
		Name:            "Standing Calf Raise",
		Category:        CategoryIsolation,
		Equipment:       []string{"bodyweight", "dumbbell"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"calves"}},
		MovementPattern: "ankle_extension",
		RepRanges:       isolationReps,
		RestSeconds:     isolationRest,
		FormCues:        []string{"Full stretch at the bottom, full squeeze at the top"},
		CommonMistakes:  []string{"Bouncing out of the bottom position"},
		Description:     "## Standing Calf Raise\n\nSimple plantar-flexion work, loadable with a dumbbell in one hand.",
	},
	{
		ID:              "plank_001",
		Name:            "Plank",
		Category:        CategoryIsometric,
		Equipment:       []string{"bodyweight"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"core"}, Secondary: []string{"shoulders"}, Stabilizers: []string{"glutes"}},
		MovementPattern: "anti_extension",
		RepRanges:       isometricReps,
		RestSeconds:     isometricRest,
		ProgressionID:   "side_plank_001",
		FormCues:        []string{"Tuck the pelvis slightly and squeeze the glutes", "Breathe without losing the brace"},
		CommonMistakes:  []string{"Hips sagging or piking up"},
		Description:     "## Plank\n\nAnti-extension hold. Quality of the brace matters more than duration.",
	},
	{
		ID:              "side_plank_001",
		Name:            "Side Plank",
		Category:        CategoryIsometric,
		Equipment:       []string{"bodyweight"},
		Difficulty:      DifficultyIntermediate,
		Muscles:         Muscles{Primary: []string{"core", "obliques"}, Secondary: []string{"shoulders"}, Stabilizers: []string{"glutes"}},
		MovementPattern: "anti_rotation",
		RepRanges:       isometricReps,
		RestSeconds:     isometricRest,
		RegressionID:    "plank_001",
		FormCues:        []string{"Stack the feet and lift the hips high"},
		CommonMistakes:  []string{"Letting the hips drop toward the floor"},
		Description:     "## Side Plank\n\nLateral trunk hold for the obliques and hip stabilizers.",
	},
	{
		ID:              "dead_bug_001",
		Name:            "Dead Bug",
		Category:        CategoryIsometric,
		Equipment:       []string{"bodyweight"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"core"}},
		MovementPattern: "anti_extension",
		RepRanges:       isometricReps,
		RestSeconds:     isometricRest,
		FormCues:        []string{"Keep the lower back pressed into the floor", "Move slow, opposite arm and leg"},
		CommonMistakes:  []string{"Arching the back as the leg extends"},
		Description:     "## Dead Bug\n\nSupine anti-extension drill teaching trunk control under limb movement.",
	},
	{
		ID:              "jumping_jacks_001",
		Name:            "Jumping Jacks",
		Category:        CategoryCardio,
		Equipment:       []string{"bodyweight"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"quadriceps", "calves"}, Secondary: []string{"shoulders"}},
		MovementPattern: "cardio",
		RepRanges:       cardioReps,
		RestSeconds:     cardioRest,
		FormCues:        []string{"Land softly on the balls of the feet"},
		CommonMistakes:  []string{"Landing flat-footed"},
		Description:     "## Jumping Jacks\n\nLow-skill full-body conditioning, useful as a warm-up or finisher.",
	},
	{
		ID:              "burpee_001",
		Name:            "Burpees",
		Category:        CategoryCardio,
		Equipment:       []string{"bodyweight"},
		Difficulty:      DifficultyIntermediate,
		Muscles:         Muscles{Primary: []string{"quadriceps", "chest"}, Secondary: []string{"shoulders", "core"}},
		MovementPattern: "cardio",
		RepRanges:       cardioReps,
		RestSeconds:     cardioRest,
		FormCues:        []string{"Step back instead of jumping back to scale down"},
		CommonMistakes:  []string{"Letting the hips sag in the bottom push-up"},
		Description:     "## Burpees\n\nHigh-demand full-body conditioning movement.",
	},
	{
		ID:              "mountain_climbers_001",
		Name:            "Mountain Climbers",
		Category:        CategoryCardio,
		Equipment:       []string{"bodyweight"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"core", "quadriceps"}, Secondary: []string{"shoulders"}},
		MovementPattern: "cardio",
		RepRanges:       cardioReps,
		RestSeconds:     cardioRest,
		FormCues:        []string{"Keep the hips level with the shoulders"},
		CommonMistakes:  []string{"Bouncing the hips up and down"},
		Description:     "## Mountain Climbers\n\nPlank-based conditioning with alternating knee drives.",
	},
	{
		ID:              "rowing_machine_001",
		Name:            "Rowing Machine Intervals",
		Category:        CategoryCardio,
		Equipment:       []string{"cardio_machine"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"back", "quadriceps"}, Secondary: []string{"biceps", "core"}},
		MovementPattern: "cardio",
		RepRanges:       cardioReps,
		RestSeconds:     cardioRest,
		FormCues:        []string{"Sequence legs, then hips, then arms on the drive"},
		CommonMistakes:  []string{"Pulling with the arms before the legs finish"},
		Description:     "## Rowing Machine Intervals\n\nLow-impact full-body conditioning on the erg.",
	},
	{
		ID:              "treadmill_run_001",
		Name:            "Treadmill Intervals",
		Category:        CategoryCardio,
		Equipment:       []string{"cardio_machine"},
		Difficulty:      DifficultyBeginner,
		Muscles:         Muscles{Primary: []string{"quadriceps", "hamstrings"}, Secondary: []string{"calves", "glutes"}},
		MovementPattern: "cardio",
		RepRanges:       cardioReps,
		RestSeconds:     cardioRest,
		FormCues:        []string{"Alternate hard efforts with easy recovery minutes"},
		CommonMistakes:  []string{"Holding the handrails during work intervals"},
		Description:     "## Treadmill Intervals\n\nStructured run intervals scalable by speed and incline.",
	},
}
