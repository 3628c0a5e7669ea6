package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/TedTes/trakfit/internal/errors"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelError, "encode response", errors.SlogError(err))
	}
}

// readJSON decodes the request body into v and rejects unknown fields.
// On failure, sends HTTP 400 response automatically.
func (app *application) readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		app.writeJSON(w, r, http.StatusBadRequest, map[string]string{
			"error": "malformed request body: " + err.Error(),
		})
		return false
	}
	return true
}

// parseDateParam parses the "date" path parameter from the request URL.
// Returns the parsed date and true if successful, or zero time and false if parsing fails.
// On failure, sends HTTP 404 response automatically.
func (app *application) parseDateParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	dateStr := r.PathValue("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		http.NotFound(w, r)
		return time.Time{}, false
	}
	return date, true
}
