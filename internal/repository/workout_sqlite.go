package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/JSwartzmiller/gym/internal/model"
	"github.com/JSwartzmiller/gym/internal/sqlerr"
)

// SQLiteWorkoutRepository stores workouts in a SQLite file.
type SQLiteWorkoutRepository struct {
	db *sql.DB
}

func NewSQLiteWorkoutRepository(db *sql.DB) *SQLiteWorkoutRepository {
	return &SQLiteWorkoutRepository{db: db}
}

// Create inserts the workout with all of its exercises and sets in one
// transaction and returns the new workout id.
func (r *SQLiteWorkoutRepository) Create(ctx context.Context, w *model.Workout) (id int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO workouts (date, label) VALUES (?, ?)`, w.Date, w.Label)
	if err != nil {
		return 0, sqlerr.WithTable("workouts", fmt.Errorf("insert workout: %w", err))
	}
	if id, err = res.LastInsertId(); err != nil {
		return 0, fmt.Errorf("workout id: %w", err)
	}

	for _, ex := range w.Exercises {
		res, err = tx.ExecContext(ctx,
			`INSERT INTO exercises (workout_id, name, weight) VALUES (?, ?, ?)`,
			id, ex.Name, ex.Weight)
		if err != nil {
			return 0, sqlerr.WithTable("exercises", fmt.Errorf("insert exercise %q: %w", ex.Name, err))
		}
		var exerciseID int64
		if exerciseID, err = res.LastInsertId(); err != nil {
			return 0, fmt.Errorf("exercise id: %w", err)
		}

		for _, reps := range ex.Sets {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO sets (exercise_id, reps) VALUES (?, ?)`,
				exerciseID, reps); err != nil {
				return 0, sqlerr.WithTable("sets", fmt.Errorf("insert set: %w", err))
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit workout: %w", err)
	}

	return id, nil
}

// List returns every workout, newest first, fully nested.
func (r *SQLiteWorkoutRepository) List(ctx context.Context) ([]model.Workout, error) {
	rows, err := r.db.QueryContext(ctx, listWorkoutsQuery)
	if err != nil {
		return nil, sqlerr.WithTable("workouts", fmt.Errorf("query workouts: %w", err))
	}
	defer rows.Close()

	var collected []workoutRow
	for rows.Next() {
		var row workoutRow
		if err := rows.Scan(&row.WorkoutID, &row.Date, &row.Label,
			&row.ExerciseID, &row.Name, &row.Weight, &row.Reps); err != nil {
			return nil, fmt.Errorf("scan workout row: %w", err)
		}
		collected = append(collected, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout rows: %w", err)
	}

	return foldWorkouts(collected), nil
}

// Version returns the SQLite library version.
func (r *SQLiteWorkoutRepository) Version(ctx context.Context) (string, error) {
	var version string
	if err := r.db.QueryRowContext(ctx, `SELECT sqlite_version()`).Scan(&version); err != nil {
		return "", fmt.Errorf("query sqlite version: %w", err)
	}
	return "SQLite " + version, nil
}
