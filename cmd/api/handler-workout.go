package main

import (
	"net/http"
	"strconv"

	"github.com/TedTes/trakfit/internal/catalog"
	"github.com/TedTes/trakfit/internal/contexthelpers"
	"github.com/TedTes/trakfit/internal/errors"
	"github.com/TedTes/trakfit/internal/history"
)

func (app *application) workoutStartPOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	userID := contexthelpers.UserID(ctx)

	if err := app.history.Start(ctx, userID, date); err != nil {
		if errors.Is(err, history.ErrSessionNotFound) {
			app.writeJSON(w, r, http.StatusNotFound, map[string]string{
				"error": "no workout planned for this date",
			})
			return
		}
		app.serverError(w, r, errors.Wrap(err, "start workout"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (app *application) workoutCompletePOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	userID := contexthelpers.UserID(ctx)

	if err := app.history.Complete(ctx, userID, date); err != nil {
		if errors.Is(err, history.ErrSessionNotFound) {
			app.writeJSON(w, r, http.StatusNotFound, map[string]string{
				"error": "no started workout for this date",
			})
			return
		}
		app.serverError(w, r, errors.Wrap(err, "complete workout"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// workoutSetPOST records the completed reps for one set of an exercise in a
// started workout.
func (app *application) workoutSetPOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}
	setNumber, err := strconv.Atoi(r.PathValue("setNumber"))
	if err != nil || setNumber < 1 {
		http.NotFound(w, r)
		return
	}

	var body struct {
		CompletedReps int `json:"completed_reps"`
	}
	if !app.readJSON(w, r, &body) {
		return
	}
	if body.CompletedReps < 0 {
		app.writeJSON(w, r, http.StatusBadRequest, map[string]string{
			"error": "completed_reps must not be negative",
		})
		return
	}

	ctx := r.Context()
	userID := contexthelpers.UserID(ctx)
	exerciseID := r.PathValue("exerciseID")

	if err = app.history.LogSet(ctx, userID, date, exerciseID, setNumber, body.CompletedReps); err != nil {
		if errors.Is(err, history.ErrSessionNotFound) {
			app.writeJSON(w, r, http.StatusNotFound, map[string]string{
				"error": "exercise not found in this workout",
			})
			return
		}
		app.serverError(w, r, errors.Wrap(err, "log set"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// workoutSwapPOST replaces one exercise in a planned workout with another
// from the catalog, keeping its position in the session.
func (app *application) workoutSwapPOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	var body struct {
		OldExerciseID string `json:"old_exercise_id"`
		NewExerciseID string `json:"new_exercise_id"`
	}
	if !app.readJSON(w, r, &body) {
		return
	}
	if body.OldExerciseID == "" || body.NewExerciseID == "" {
		app.writeJSON(w, r, http.StatusBadRequest, map[string]string{
			"error": "old_exercise_id and new_exercise_id are required",
		})
		return
	}

	ctx := r.Context()
	userID := contexthelpers.UserID(ctx)

	err := app.history.SwapExercise(ctx, userID, date, body.OldExerciseID, body.NewExerciseID)
	if err != nil {
		if errors.Is(err, history.ErrSessionNotFound) || errors.Is(err, catalog.ErrNotFound) {
			app.writeJSON(w, r, http.StatusNotFound, map[string]string{
				"error": "workout or exercise not found",
			})
			return
		}
		app.serverError(w, r, errors.Wrap(err, "swap exercise"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
