package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (app *application) routes() *http.ServeMux {
	mux := http.NewServeMux()

	var (
		base = func(next http.Handler) http.Handler {
			return app.recoverPanic(app.logAndTraceRequest(secureHeaders(next)))
		}
		// device associates the request with an anonymous device-keyed user.
		device = func(next http.Handler) http.Handler {
			return base(noCache(app.sessionManager.LoadAndSave(app.deviceUser(next))))
		}
	)

	mux.Handle("GET /api/plan/today", device(http.HandlerFunc(app.planTodayGET)))
	mux.Handle("GET /api/plan/week", device(http.HandlerFunc(app.planWeekGET)))

	mux.Handle("POST /api/workouts/generate", device(http.HandlerFunc(app.workoutGeneratePOST)))

	mux.Handle("GET /api/profile", device(http.HandlerFunc(app.profileGET)))
	mux.Handle("PUT /api/profile/{section}", device(http.HandlerFunc(app.profileSectionPUT)))

	mux.Handle("POST /api/workouts/{date}/start", device(http.HandlerFunc(app.workoutStartPOST)))
	mux.Handle("POST /api/workouts/{date}/complete", device(http.HandlerFunc(app.workoutCompletePOST)))
	mux.Handle("POST /api/workouts/{date}/exercises/{exerciseID}/sets/{setNumber}",
		device(http.HandlerFunc(app.workoutSetPOST)))
	mux.Handle("POST /api/workouts/{date}/swap", device(http.HandlerFunc(app.workoutSwapPOST)))

	mux.Handle("POST /api/meals/{date}/{slot}/eaten", device(http.HandlerFunc(app.mealEatenPOST)))

	mux.Handle("GET /api/exercises/{exerciseID}/info", base(http.HandlerFunc(app.exerciseInfoGET)))

	mux.Handle("GET /api/healthy", base(http.HandlerFunc(app.healthy)))
	mux.Handle("GET /metrics", base(promhttp.Handler()))

	return mux
}
