package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/TedTes/trakfit/internal/coach"
	"github.com/TedTes/trakfit/internal/errors"
	"github.com/TedTes/trakfit/internal/sqlite"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"

// ErrSessionNotFound is returned for operations on a date with no recorded
// session.
var ErrSessionNotFound = errors.NewSentinel("workout session not found")

type sqliteRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newSQLiteRepository(db *sqlite.Database, logger *slog.Logger) *sqliteRepository {
	return &sqliteRepository{db: db, logger: logger}
}

func (r *sqliteRepository) rollback(ctx context.Context, tx *sql.Tx) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		r.logger.LogAttrs(ctx, slog.LevelError, "rollback transaction", slog.Any("error", err))
	}
}

// saveSession records the day's prescribed workout. Re-saving the same date
// keeps already logged sets: the session row updates its goal, exercise
// rows insert only when absent.
func (r *sqliteRepository) saveSession(ctx context.Context, userID int64, date string, plan coach.WorkoutPlan) error {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer r.rollback(ctx, tx)

	_, err = tx.ExecContext(ctx, `
        INSERT INTO workout_sessions (user_id, workout_date, goal)
        VALUES (?, ?, ?)
        ON CONFLICT (user_id, workout_date) DO UPDATE SET goal = excluded.goal`,
		userID, date, plan.Goal)
	if err != nil {
		return fmt.Errorf("insert workout session: %w", err)
	}

	for i, ex := range plan.Exercises {
		_, err = tx.ExecContext(ctx, `
            INSERT INTO session_exercises (user_id, workout_date, exercise_id, position, sets, reps, rest_seconds)
            VALUES (?, ?, ?, ?, ?, ?, ?)
            ON CONFLICT (user_id, workout_date, exercise_id) DO NOTHING`,
			userID, date, ex.ExerciseID, i, ex.Sets, ex.Reps, ex.RestSeconds)
		if err != nil {
			return fmt.Errorf("insert session exercise: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *sqliteRepository) startSession(ctx context.Context, userID int64, date string) error {
	startedAt := time.Now().UTC().Format(timestampFormat)
	result, err := r.db.ReadWrite.ExecContext(ctx, `
        UPDATE workout_sessions
        SET started_at = COALESCE(started_at, ?)
        WHERE user_id = ? AND workout_date = ?`,
		startedAt, userID, date)
	if err != nil {
		return fmt.Errorf("start workout session: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *sqliteRepository) completeSession(ctx context.Context, userID int64, date string) error {
	completedAt := time.Now().UTC().Format(timestampFormat)
	result, err := r.db.ReadWrite.ExecContext(ctx, `
        UPDATE workout_sessions
        SET completed_at = ?
        WHERE user_id = ? AND workout_date = ? AND completed_at IS NULL`,
		completedAt, userID, date)
	if err != nil {
		return fmt.Errorf("complete workout session: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("session missing or already completed: %w", ErrSessionNotFound)
	}
	return nil
}

func (r *sqliteRepository) logSet(ctx context.Context, userID int64, date, exerciseID string, setNumber, completedReps int) error {
	var exists bool
	err := r.db.ReadOnly.QueryRowContext(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM session_exercises
            WHERE user_id = ? AND workout_date = ? AND exercise_id = ?
        )`, userID, date, exerciseID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check session exercise: %w", err)
	}
	if !exists {
		return fmt.Errorf("exercise %q not in session: %w", exerciseID, ErrSessionNotFound)
	}

	_, err = r.db.ReadWrite.ExecContext(ctx, `
        INSERT INTO session_sets (user_id, workout_date, exercise_id, set_number, completed_reps)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT (user_id, workout_date, exercise_id, set_number) DO UPDATE SET
            completed_reps = excluded.completed_reps`,
		userID, date, exerciseID, setNumber, completedReps)
	if err != nil {
		return fmt.Errorf("log set: %w", err)
	}
	return nil
}

// swapExercise replaces one prescribed exercise with another, keeping its
// position but dropping any sets already logged against the old exercise.
func (r *sqliteRepository) swapExercise(ctx context.Context, userID int64, date, oldID, newID, reps string, sets, restSeconds int) error {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer r.rollback(ctx, tx)

	var position int
	err = tx.QueryRowContext(ctx, `
        SELECT position FROM session_exercises
        WHERE user_id = ? AND workout_date = ? AND exercise_id = ?`,
		userID, date, oldID).Scan(&position)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("exercise %q not in session: %w", oldID, ErrSessionNotFound)
	}
	if err != nil {
		return fmt.Errorf("query session exercise: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
        DELETE FROM session_exercises
        WHERE user_id = ? AND workout_date = ? AND exercise_id = ?`,
		userID, date, oldID)
	if err != nil {
		return fmt.Errorf("delete session exercise: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
        INSERT INTO session_exercises (user_id, workout_date, exercise_id, position, sets, reps, rest_seconds)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, date, newID, position, sets, reps, restSeconds)
	if err != nil {
		return fmt.Errorf("insert replacement exercise: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *sqliteRepository) mealEaten(ctx context.Context, userID int64, date, slot, mealID string) error {
	eatenAt := time.Now().UTC().Format(timestampFormat)
	_, err := r.db.ReadWrite.ExecContext(ctx, `
        INSERT INTO meal_log (user_id, log_date, slot, meal_id, eaten_at)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT (user_id, log_date, slot) DO UPDATE SET
            meal_id = excluded.meal_id,
            eaten_at = excluded.eaten_at`,
		userID, date, slot, mealID, eatenAt)
	if err != nil {
		return fmt.Errorf("log meal: %w", err)
	}
	return nil
}

// recentExerciseIDs returns the exercises appearing in sessions on or after
// the given date, with the last date each was prescribed.
func (r *sqliteRepository) recentExerciseIDs(ctx context.Context, userID int64, since string) (map[string]time.Time, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
        SELECT exercise_id, MAX(workout_date) AS last_used
        FROM session_exercises
        WHERE user_id = ? AND workout_date >= ?
        GROUP BY exercise_id`,
		userID, since)
	if err != nil {
		return nil, fmt.Errorf("query recent exercises: %w", err)
	}
	defer rows.Close()

	recent := make(map[string]time.Time)
	for rows.Next() {
		var (
			id      string
			dateStr string
		)
		if err = rows.Scan(&id, &dateStr); err != nil {
			return nil, fmt.Errorf("scan recent exercise row: %w", err)
		}
		date, err := time.Parse(DateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse exercise date: %w", err)
		}
		recent[id] = date
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent exercise rows: %w", err)
	}
	return recent, nil
}

func (r *sqliteRepository) getSession(ctx context.Context, userID int64, date string) (Session, error) {
	var (
		session     Session
		startedAt   sql.NullString
		completedAt sql.NullString
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
        SELECT workout_date, goal, started_at, completed_at
        FROM workout_sessions
        WHERE user_id = ? AND workout_date = ?`,
		userID, date).Scan(&session.Date, &session.Goal, &startedAt, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("query workout session: %w", err)
	}
	if session.StartedAt, err = parseNullTimestamp(startedAt); err != nil {
		return Session{}, err
	}
	if session.CompletedAt, err = parseNullTimestamp(completedAt); err != nil {
		return Session{}, err
	}
	if session.Exercises, err = r.loadExercises(ctx, userID, date); err != nil {
		return Session{}, err
	}
	return session, nil
}

func (r *sqliteRepository) loadExercises(ctx context.Context, userID int64, date string) ([]LoggedExercise, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
        SELECT se.exercise_id, se.position, se.sets, se.reps, se.rest_seconds,
               ss.set_number, ss.completed_reps
        FROM session_exercises se
        LEFT JOIN session_sets ss
            ON ss.user_id = se.user_id
           AND ss.workout_date = se.workout_date
           AND ss.exercise_id = se.exercise_id
        WHERE se.user_id = ? AND se.workout_date = ?
        ORDER BY se.position, ss.set_number`,
		userID, date)
	if err != nil {
		return nil, fmt.Errorf("query session exercises: %w", err)
	}
	defer rows.Close()

	var exercises []LoggedExercise
	for rows.Next() {
		var (
			ex            LoggedExercise
			setNumber     sql.NullInt64
			completedReps sql.NullInt64
		)
		if err = rows.Scan(&ex.ExerciseID, &ex.Position, &ex.Sets, &ex.Reps, &ex.RestSeconds,
			&setNumber, &completedReps); err != nil {
			return nil, fmt.Errorf("scan session exercise row: %w", err)
		}

		if len(exercises) == 0 || exercises[len(exercises)-1].ExerciseID != ex.ExerciseID {
			exercises = append(exercises, ex)
		}
		if setNumber.Valid {
			set := LoggedSet{SetNumber: int(setNumber.Int64)}
			if completedReps.Valid {
				reps := int(completedReps.Int64)
				set.CompletedReps = &reps
			}
			last := &exercises[len(exercises)-1]
			last.Completed = append(last.Completed, set)
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session exercise rows: %w", err)
	}
	return exercises, nil
}

func (r *sqliteRepository) sessions(ctx context.Context, userID int64, since string) ([]Session, error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
        SELECT workout_date FROM workout_sessions
        WHERE user_id = ? AND workout_date >= ?
        ORDER BY workout_date`,
		userID, since)
	if err != nil {
		return nil, fmt.Errorf("query workout sessions: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err = rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan session date: %w", err)
		}
		dates = append(dates, date)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session dates: %w", err)
	}

	sessions := make([]Session, 0, len(dates))
	for _, date := range dates {
		session, err := r.getSession(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func (r *sqliteRepository) pruneMealLog(ctx context.Context, olderThan string) (int64, error) {
	result, err := r.db.ReadWrite.ExecContext(ctx,
		`DELETE FROM meal_log WHERE log_date < ?`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("prune meal log: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get rows affected: %w", err)
	}
	return rows, nil
}

func parseNullTimestamp(value sql.NullString) (*time.Time, error) {
	if !value.Valid {
		return nil, nil
	}
	t, err := time.Parse(timestampFormat, value.String)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp: %w", err)
	}
	return &t, nil
}
