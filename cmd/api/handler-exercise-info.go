package main

import (
	"bytes"
	"net/http"

	"github.com/TedTes/trakfit/internal/catalog"
	"github.com/TedTes/trakfit/internal/errors"
	"github.com/yuin/goldmark"
)

// exerciseInfoGET returns form guidance for one exercise, with the markdown
// description rendered to HTML for the client to embed.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	exercise, err := app.catalog.Exercise(r.PathValue("exerciseID"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		app.serverError(w, r, errors.Wrap(err, "look up exercise"))
		return
	}

	var description bytes.Buffer
	if err = goldmark.Convert([]byte(exercise.Description), &description); err != nil {
		app.serverError(w, r, errors.Wrap(err, "render exercise description"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, map[string]any{
		"id":               exercise.ID,
		"name":             exercise.Name,
		"description_html": description.String(),
		"form_cues":        exercise.FormCues,
		"common_mistakes":  exercise.CommonMistakes,
	})
}
