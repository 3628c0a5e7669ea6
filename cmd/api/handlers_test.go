package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/TedTes/trakfit/internal/catalog"
	"github.com/TedTes/trakfit/internal/coach"
	"github.com/TedTes/trakfit/internal/history"
	"github.com/TedTes/trakfit/internal/profile"
	"github.com/TedTes/trakfit/internal/sqlite"
	"github.com/TedTes/trakfit/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer starts the full route stack against an in-memory database.
// The returned client carries the device session cookie between requests.
func newTestServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()
	ctx := context.Background()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	c, err := catalog.New()
	require.NoError(t, err)

	now := func() time.Time {
		return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	}
	app := application{
		logger:         logger,
		sessionManager: initializeSessionManager(db),
		catalog:        c,
		engine:         coach.NewEngine(c, coach.UUIDGenerator{}, now),
		generator:      coach.NewGenerator(c, coach.UUIDGenerator{}),
		enricher:       coach.NewNoteEnricher("", logger),
		profiles:       profile.NewService(profile.NewRepository(db), logger),
		history:        history.NewService(db, c, logger),
	}

	server := httptest.NewTLSServer(app.routes())
	t.Cleanup(server.Close)

	client := server.Client()
	client.Jar, err = cookiejar.New(nil)
	require.NoError(t, err)
	return server, client
}

func doJSON(t *testing.T, client *http.Client, method, url string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// completePersonal holds the minimum profile input for plan generation.
var completePersonal = map[string]any{
	"age_years": 30,
	"sex":       "male",
	"height_cm": 180,
	"weight_kg": 80,
}

func Test_healthy(t *testing.T) {
	server, client := newTestServer(t)

	resp, err := client.Get(server.URL + "/api/healthy")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func Test_planToday_incompleteProfile(t *testing.T) {
	server, client := newTestServer(t)

	resp, err := client.Get(server.URL + "/api/plan/today")
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var body struct {
		Error         string   `json:"error"`
		MissingFields []string `json:"missing_fields"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "profile incomplete", body.Error)
	assert.Equal(t, []string{"age_years", "sex", "height_cm", "weight_kg"}, body.MissingFields)
}

func Test_planToday_fullLifecycle(t *testing.T) {
	server, client := newTestServer(t)

	resp := doJSON(t, client, http.MethodPut, server.URL+"/api/profile/personal", completePersonal)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err := client.Get(server.URL + "/api/plan/today")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var plan coach.DailyPlan
	decodeBody(t, resp, &plan)
	assert.Equal(t, "2026-03-14", plan.Date.Format("2006-01-02"))
	assert.NotEmpty(t, plan.Workout.Exercises)
	assert.Len(t, plan.Nutrition.Meals, 3)
	assert.Positive(t, plan.Nutrition.Macros.Calories)
	assert.NotEmpty(t, plan.Recovery.RestGuidance)
	assert.NotEmpty(t, plan.Mindset.Focus)

	// The plan was recorded, so the workout can be started and completed.
	resp = doJSON(t, client, http.MethodPost, server.URL+"/api/workouts/2026-03-14/start", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	first := plan.Workout.Exercises[0]
	resp = doJSON(t, client, http.MethodPost,
		server.URL+"/api/workouts/2026-03-14/exercises/"+first.ExerciseID+"/sets/1",
		map[string]any{"completed_reps": 8})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, client, http.MethodPost, server.URL+"/api/workouts/2026-03-14/complete", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	// Completing twice is rejected.
	resp = doJSON(t, client, http.MethodPost, server.URL+"/api/workouts/2026-03-14/complete", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func Test_planWeek(t *testing.T) {
	server, client := newTestServer(t)

	resp := doJSON(t, client, http.MethodPut, server.URL+"/api/profile/personal", completePersonal)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err := client.Get(server.URL + "/api/plan/week")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Days []coach.DailyPlan `json:"days"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Days, 7)
	for _, day := range body.Days {
		assert.NotEmpty(t, day.Workout.Exercises)
	}
}

func Test_profileSection_validation(t *testing.T) {
	server, client := newTestServer(t)

	resp := doJSON(t, client, http.MethodPut, server.URL+"/api/profile/personal", map[string]any{
		"age_years": 12,
		"sex":       "male",
		"height_cm": 180,
		"weight_kg": 80,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "validation failed", body.Error)
	assert.Contains(t, body.Fields, "age_years")

	resp = doJSON(t, client, http.MethodPut, server.URL+"/api/profile/unknown", map[string]any{})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func Test_profileGET_roundTrip(t *testing.T) {
	server, client := newTestServer(t)

	resp := doJSON(t, client, http.MethodPut, server.URL+"/api/profile/goals", map[string]any{
		"primary":  "fat_loss",
		"timeline": "3_months",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err := client.Get(server.URL + "/api/profile")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var p profile.Profile
	decodeBody(t, resp, &p)
	assert.Equal(t, profile.GoalFatLoss, p.Goals.Primary)
}

func Test_workoutGenerate(t *testing.T) {
	server, client := newTestServer(t)

	resp := doJSON(t, client, http.MethodPost, server.URL+"/api/workouts/generate", map[string]any{
		"equipment":        []string{"bodyweight"},
		"experience":       "beginner",
		"target_muscles":   []string{"full_body"},
		"duration_minutes": 45,
		"goal":             "general_fitness",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status  string            `json:"status"`
		Workout coach.WorkoutPlan `json:"workout"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Workout.Exercises)
	assert.NotEmpty(t, body.Workout.Title)
}

func Test_workoutGenerate_noEligible(t *testing.T) {
	server, client := newTestServer(t)

	resp := doJSON(t, client, http.MethodPost, server.URL+"/api/workouts/generate", map[string]any{
		"equipment":        []string{"barbell"},
		"experience":       "beginner",
		"duration_minutes": 45,
		"goal":             "strength",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status  string            `json:"status"`
		Workout coach.WorkoutPlan `json:"workout"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "no_eligible_exercises", body.Status)
	assert.Empty(t, body.Workout.Exercises)
}

func Test_workoutGenerate_badDuration(t *testing.T) {
	server, client := newTestServer(t)

	resp := doJSON(t, client, http.MethodPost, server.URL+"/api/workouts/generate", map[string]any{
		"equipment":        []string{"bodyweight"},
		"experience":       "beginner",
		"duration_minutes": 0,
		"goal":             "general_fitness",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()
}

func Test_exerciseInfo(t *testing.T) {
	server, client := newTestServer(t)

	resp, err := client.Get(server.URL + "/api/exercises/push_up_001/info")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		ID              string   `json:"id"`
		Name            string   `json:"name"`
		DescriptionHTML string   `json:"description_html"`
		FormCues        []string `json:"form_cues"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "push_up_001", body.ID)
	assert.True(t, strings.Contains(body.DescriptionHTML, "<p>"))
	assert.NotEmpty(t, body.FormCues)

	resp, err = client.Get(server.URL + "/api/exercises/no_such_exercise/info")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func Test_mealEaten(t *testing.T) {
	server, client := newTestServer(t)

	resp := doJSON(t, client, http.MethodPost, server.URL+"/api/meals/2026-03-14/breakfast/eaten",
		map[string]any{"meal_id": "oatmeal_berries_001"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, client, http.MethodPost, server.URL+"/api/meals/2026-03-14/brunch/eaten",
		map[string]any{"meal_id": "oatmeal_berries_001"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	resp = doJSON(t, client, http.MethodPost, server.URL+"/api/meals/2026-03-14/dinner/eaten",
		map[string]any{"meal_id": "no_such_meal"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
}

func Test_metrics(t *testing.T) {
	server, client := newTestServer(t)

	resp, err := client.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "trakfit_")
}
