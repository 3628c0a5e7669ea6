package main

import (
	"net/http"

	"github.com/TedTes/trakfit/internal/contexthelpers"
	"github.com/TedTes/trakfit/internal/errors"
	"github.com/TedTes/trakfit/internal/profile"
)

// profileGET returns the stored profile without defaults applied, so the
// client can tell which sections the user has actually filled in.
func (app *application) profileGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := contexthelpers.UserID(ctx)

	p, err := app.profiles.Get(ctx, userID)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "load profile"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, p)
}

// profileSectionPUT replaces one of the five profile sections.
func (app *application) profileSectionPUT(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := contexthelpers.UserID(ctx)

	var err error
	switch profile.Section(r.PathValue("section")) {
	case profile.SectionPersonal:
		var personal profile.Personal
		if !app.readJSON(w, r, &personal) {
			return
		}
		err = app.profiles.SavePersonal(ctx, userID, personal)
	case profile.SectionGoals:
		var goals profile.Goals
		if !app.readJSON(w, r, &goals) {
			return
		}
		err = app.profiles.SaveGoals(ctx, userID, goals)
	case profile.SectionEquipment:
		var equipment profile.Equipment
		if !app.readJSON(w, r, &equipment) {
			return
		}
		err = app.profiles.SaveEquipment(ctx, userID, equipment)
	case profile.SectionDietary:
		var dietary profile.Dietary
		if !app.readJSON(w, r, &dietary) {
			return
		}
		err = app.profiles.SaveDietary(ctx, userID, dietary)
	case profile.SectionLifestyle:
		var lifestyle profile.Lifestyle
		if !app.readJSON(w, r, &lifestyle) {
			return
		}
		err = app.profiles.SaveLifestyle(ctx, userID, lifestyle)
	default:
		http.NotFound(w, r)
		return
	}

	if err != nil {
		var validationErr *profile.ValidationError
		if errors.As(err, &validationErr) {
			app.writeJSON(w, r, http.StatusBadRequest, map[string]any{
				"error":  "validation failed",
				"fields": validationErr.Fields,
			})
			return
		}
		app.serverError(w, r, errors.Wrap(err, "save profile section"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
