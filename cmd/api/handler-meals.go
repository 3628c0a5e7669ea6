package main

import (
	"net/http"

	"github.com/TedTes/trakfit/internal/catalog"
	"github.com/TedTes/trakfit/internal/coach"
	"github.com/TedTes/trakfit/internal/contexthelpers"
	"github.com/TedTes/trakfit/internal/errors"
)

// mealEatenPOST marks a planned meal slot as eaten for nutrition adherence
// tracking.
func (app *application) mealEatenPOST(w http.ResponseWriter, r *http.Request) {
	date, ok := app.parseDateParam(w, r)
	if !ok {
		return
	}

	slot := r.PathValue("slot")
	switch coach.MealSlot(slot) {
	case coach.SlotBreakfast, coach.SlotLunch, coach.SlotDinner:
	default:
		http.NotFound(w, r)
		return
	}

	var body struct {
		MealID string `json:"meal_id"`
	}
	if !app.readJSON(w, r, &body) {
		return
	}
	if body.MealID == "" {
		app.writeJSON(w, r, http.StatusBadRequest, map[string]string{
			"error": "meal_id is required",
		})
		return
	}

	ctx := r.Context()
	userID := contexthelpers.UserID(ctx)

	if err := app.history.MarkMealEaten(ctx, userID, date, slot, body.MealID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			app.writeJSON(w, r, http.StatusNotFound, map[string]string{
				"error": "unknown meal",
			})
			return
		}
		app.serverError(w, r, errors.Wrap(err, "mark meal eaten"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
