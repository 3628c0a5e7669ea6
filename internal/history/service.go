package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/TedTes/trakfit/internal/catalog"
	"github.com/TedTes/trakfit/internal/coach"
	"github.com/TedTes/trakfit/internal/profile"
	"github.com/TedTes/trakfit/internal/sqlite"
)

var validSlots = map[string]struct{}{
	string(coach.SlotBreakfast): {},
	string(coach.SlotLunch):     {},
	string(coach.SlotDinner):    {},
}

// Service owns the workout and meal logs for all users.
type Service struct {
	repo    *sqliteRepository
	catalog *catalog.Catalog
	logger  *slog.Logger
}

func NewService(db *sqlite.Database, c *catalog.Catalog, logger *slog.Logger) *Service {
	return &Service{
		repo:    newSQLiteRepository(db, logger),
		catalog: c,
		logger:  logger,
	}
}

// Record stores the prescribed workout for a date so sets can be logged
// against it.
func (s *Service) Record(ctx context.Context, userID int64, date time.Time, plan coach.WorkoutPlan) error {
	return s.repo.saveSession(ctx, userID, date.Format(DateLayout), plan)
}

// Start marks the session as started. Starting an already started session
// is a no-op.
func (s *Service) Start(ctx context.Context, userID int64, date time.Time) error {
	return s.repo.startSession(ctx, userID, date.Format(DateLayout))
}

// Complete marks the session as finished.
func (s *Service) Complete(ctx context.Context, userID int64, date time.Time) error {
	return s.repo.completeSession(ctx, userID, date.Format(DateLayout))
}

// LogSet records the completed reps for one set of a session exercise.
func (s *Service) LogSet(ctx context.Context, userID int64, date time.Time, exerciseID string, setNumber, completedReps int) error {
	if setNumber < 1 {
		return fmt.Errorf("set number must be positive, got %d", setNumber)
	}
	if completedReps < 0 {
		return fmt.Errorf("completed reps must not be negative, got %d", completedReps)
	}
	return s.repo.logSet(ctx, userID, date.Format(DateLayout), exerciseID, setNumber, completedReps)
}

// SwapExercise replaces a prescribed exercise with another catalog
// exercise, re-deriving reps and rest from the session's goal.
func (s *Service) SwapExercise(ctx context.Context, userID int64, date time.Time, oldID, newID string) error {
	dateStr := date.Format(DateLayout)

	session, err := s.repo.getSession(ctx, userID, dateStr)
	if err != nil {
		return err
	}
	replacement, err := s.catalog.Exercise(newID)
	if err != nil {
		return fmt.Errorf("resolve replacement exercise: %w", err)
	}

	var old *LoggedExercise
	for i := range session.Exercises {
		if session.Exercises[i].ExerciseID == oldID {
			old = &session.Exercises[i]
			break
		}
	}
	if old == nil {
		return fmt.Errorf("exercise %q not in session: %w", oldID, ErrSessionNotFound)
	}

	reps, ok := replacement.RepRanges[session.Goal]
	if !ok {
		reps = replacement.RepRanges[profile.GoalGeneralFitness]
	}
	rest, ok := replacement.RestSeconds[session.Goal]
	if !ok {
		rest = replacement.RestSeconds[profile.GoalGeneralFitness]
	}

	if err := s.repo.swapExercise(ctx, userID, dateStr, oldID, newID, reps, old.Sets, rest); err != nil {
		return err
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "exercise swapped",
		slog.Int64("user_id", userID),
		slog.String("date", dateStr),
		slog.String("old", oldID),
		slog.String("new", newID))
	return nil
}

// MarkMealEaten logs that the planned meal in a slot was eaten.
func (s *Service) MarkMealEaten(ctx context.Context, userID int64, date time.Time, slot, mealID string) error {
	if _, ok := validSlots[slot]; !ok {
		return fmt.Errorf("unknown meal slot %q", slot)
	}
	if _, err := s.catalog.Meal(mealID); err != nil {
		return fmt.Errorf("resolve meal: %w", err)
	}
	return s.repo.mealEaten(ctx, userID, date.Format(DateLayout), slot, mealID)
}

// RecentExerciseIDs returns exercises used within the window before asOf,
// keyed by their last use. Feed directly to the workout generator's
// recency exclusion.
func (s *Service) RecentExerciseIDs(ctx context.Context, userID int64, asOf time.Time, window time.Duration) (map[string]time.Time, error) {
	since := asOf.Add(-window).Format(DateLayout)
	return s.repo.recentExerciseIDs(ctx, userID, since)
}

// Session loads one day's log.
func (s *Service) Session(ctx context.Context, userID int64, date time.Time) (Session, error) {
	return s.repo.getSession(ctx, userID, date.Format(DateLayout))
}

// Sessions loads all logs on or after since, oldest first.
func (s *Service) Sessions(ctx context.Context, userID int64, since time.Time) ([]Session, error) {
	return s.repo.sessions(ctx, userID, since.Format(DateLayout))
}

// PruneMealLog deletes meal log rows older than the cutoff and reports how
// many were removed. Run from the nightly maintenance job.
func (s *Service) PruneMealLog(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.repo.pruneMealLog(ctx, cutoff.Format(DateLayout))
}
