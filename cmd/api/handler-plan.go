package main

import (
	"net/http"
	"time"

	"github.com/TedTes/trakfit/internal/coach"
	"github.com/TedTes/trakfit/internal/contexthelpers"
	"github.com/TedTes/trakfit/internal/errors"
	"github.com/TedTes/trakfit/internal/observability"
	"golang.org/x/sync/errgroup"
)

// planTodayGET builds and returns today's full coaching plan. The generated
// workout is recorded to history so it can be started and logged later.
func (app *application) planTodayGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := contexthelpers.UserID(ctx)

	snapshot, err := app.profiles.Snapshot(ctx, userID)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "profile snapshot"))
		return
	}

	start := time.Now()
	plan, err := app.engine.DailyPlan(snapshot)
	if err != nil {
		var incomplete *coach.IncompleteProfileError
		if errors.As(err, &incomplete) {
			observability.RecordProfileIncomplete()
			app.writeJSON(w, r, http.StatusConflict, map[string]any{
				"error":          "profile incomplete",
				"missing_fields": incomplete.Missing,
			})
			return
		}
		app.serverError(w, r, errors.Wrap(err, "build daily plan"))
		return
	}
	observability.RecordPlanGenerated(string(snapshot.Goals.Primary), time.Since(start))

	plan.Workout.CoachingNotes = app.enricher.Enrich(ctx, plan.Workout)

	if err = app.history.Record(ctx, userID, plan.Date, plan.Workout); err != nil {
		app.serverError(w, r, errors.Wrap(err, "record workout"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, plan)
}

// planWeekGET returns a seven-day preview starting today. Preview plans are
// not recorded to history; only starting a day's workout commits it.
func (app *application) planWeekGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := contexthelpers.UserID(ctx)

	snapshot, err := app.profiles.Snapshot(ctx, userID)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "profile snapshot"))
		return
	}

	var (
		plans [7]coach.DailyPlan
		g     errgroup.Group
		today = time.Now()
	)
	for i := range plans {
		day := today.AddDate(0, 0, i)
		g.Go(func() error {
			engine := coach.NewEngine(app.catalog, coach.UUIDGenerator{}, func() time.Time { return day })
			plan, planErr := engine.DailyPlan(snapshot)
			if planErr != nil {
				return planErr
			}
			plans[i] = plan
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		var incomplete *coach.IncompleteProfileError
		if errors.As(err, &incomplete) {
			observability.RecordProfileIncomplete()
			app.writeJSON(w, r, http.StatusConflict, map[string]any{
				"error":          "profile incomplete",
				"missing_fields": incomplete.Missing,
			})
			return
		}
		app.serverError(w, r, errors.Wrap(err, "build weekly plans"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, map[string]any{"days": plans[:]})
}
