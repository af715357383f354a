package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/JSwartzmiller/gym/internal/model"
	"github.com/JSwartzmiller/gym/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WorkoutRepository stores workouts in PostgreSQL.
type WorkoutRepository struct {
	pool *pgxpool.Pool
}

func NewWorkoutRepository(pool *pgxpool.Pool) *WorkoutRepository {
	return &WorkoutRepository{pool: pool}
}

// Create inserts the workout with all of its exercises and sets in one
// transaction and returns the new workout id. Any failure rolls back the
// whole workout.
func (r *WorkoutRepository) Create(ctx context.Context, w *model.Workout) (id int64, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
			}
		}
	}()

	err = tx.QueryRow(ctx,
		`INSERT INTO workouts (date, label) VALUES ($1, $2) RETURNING id`,
		w.Date, w.Label,
	).Scan(&id)
	if err != nil {
		return 0, sqlerr.WithTable("workouts", fmt.Errorf("insert workout: %w", err))
	}

	for _, ex := range w.Exercises {
		var exerciseID int64
		err = tx.QueryRow(ctx,
			`INSERT INTO exercises (workout_id, name, weight) VALUES ($1, $2, $3) RETURNING id`,
			id, ex.Name, ex.Weight,
		).Scan(&exerciseID)
		if err != nil {
			return 0, sqlerr.WithTable("exercises", fmt.Errorf("insert exercise %q: %w", ex.Name, err))
		}

		for _, reps := range ex.Sets {
			if _, err = tx.Exec(ctx,
				`INSERT INTO sets (exercise_id, reps) VALUES ($1, $2)`,
				exerciseID, reps,
			); err != nil {
				return 0, sqlerr.WithTable("sets", fmt.Errorf("insert set: %w", err))
			}
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit workout: %w", err)
	}

	return id, nil
}

// List returns every workout, newest first, fully nested.
func (r *WorkoutRepository) List(ctx context.Context) ([]model.Workout, error) {
	rows, err := r.pool.Query(ctx, listWorkoutsQuery)
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

// Version returns the PostgreSQL server version string.
func (r *WorkoutRepository) Version(ctx context.Context) (string, error) {
	var version string
	if err := r.pool.QueryRow(ctx, `SELECT version()`).Scan(&version); err != nil {
		return "", fmt.Errorf("query server version: %w", err)
	}
	return version, nil
}
