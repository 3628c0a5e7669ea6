package main

import (
	"net/http"
	"time"

	"github.com/TedTes/trakfit/internal/coach"
	"github.com/TedTes/trakfit/internal/contexthelpers"
	"github.com/TedTes/trakfit/internal/errors"
	"github.com/TedTes/trakfit/internal/observability"
)

// workoutGeneratePOST builds a one-off workout from explicit constraints,
// excluding exercises the user has done in the last few days.
func (app *application) workoutGeneratePOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := contexthelpers.UserID(ctx)

	var inputs coach.GeneratorInputs
	if !app.readJSON(w, r, &inputs) {
		return
	}
	if inputs.DurationMinutes <= 0 {
		app.writeJSON(w, r, http.StatusBadRequest, map[string]string{
			"error": "duration_minutes must be positive",
		})
		return
	}

	recent, err := app.history.RecentExerciseIDs(ctx, userID, time.Now(), coach.RecencyWindow)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "load recent exercises"))
		return
	}
	inputs.RecentExerciseIDs = recent

	start := time.Now()
	plan, err := app.generator.Generate(inputs)
	if err != nil {
		if errors.Is(err, coach.ErrNoEligibleExercises) {
			app.writeJSON(w, r, http.StatusOK, map[string]any{
				"status":  "no_eligible_exercises",
				"workout": plan,
			})
			return
		}
		app.serverError(w, r, errors.Wrap(err, "generate workout"))
		return
	}
	observability.RecordWorkoutGenerated(time.Since(start))

	app.writeJSON(w, r, http.StatusOK, map[string]any{
		"status":  "ok",
		"workout": plan,
	})
}
