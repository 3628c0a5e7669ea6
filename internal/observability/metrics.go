// Package observability exposes the service's Prometheus metrics.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	plansGeneratedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trakfit",
		Subsystem: "coach",
		Name:      "plans_generated_total",
		Help:      "Daily plans generated, labelled by primary goal.",
	}, []string{"goal"})

	workoutsGeneratedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "trakfit",
		Subsystem: "coach",
		Name:      "workouts_generated_total",
		Help:      "Standalone workouts produced by the constraint generator.",
	})

	generationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "trakfit",
		Subsystem: "coach",
		Name:      "generation_duration_seconds",
		Help:      "Wall time of a single plan or workout generation.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	})

	profileIncompleteCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "trakfit",
		Subsystem: "coach",
		Name:      "profile_incomplete_total",
		Help:      "Plan requests refused because required profile fields were missing.",
	})
)

func init() {
	prometheus.MustRegister(
		plansGeneratedCounter,
		workoutsGeneratedCounter,
		generationDuration,
		profileIncompleteCounter,
	)
}

// RecordPlanGenerated counts one daily plan for the goal.
func RecordPlanGenerated(goal string, elapsed time.Duration) {
	plansGeneratedCounter.WithLabelValues(goal).Inc()
	generationDuration.Observe(elapsed.Seconds())
}

// RecordWorkoutGenerated counts one standalone generator run.
func RecordWorkoutGenerated(elapsed time.Duration) {
	workoutsGeneratedCounter.Inc()
	generationDuration.Observe(elapsed.Seconds())
}

// RecordProfileIncomplete counts one refused plan request.
func RecordProfileIncomplete() {
	profileIncompleteCounter.Inc()
}
