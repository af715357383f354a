package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/JSwartzmiller/gym/internal/config"
	"github.com/JSwartzmiller/gym/internal/database"
	"github.com/JSwartzmiller/gym/internal/errs"
	"github.com/JSwartzmiller/gym/internal/model"
	"github.com/JSwartzmiller/gym/internal/sqlerr"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) WorkoutStore {
	t.Helper()
	log := zerolog.Nop()
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			URL:    filepath.Join(t.TempDir(), "workouts.db"),
		},
	}
	db, err := database.New(cfg, &log, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewWorkoutStore(db)
}

// newPostgresStore connects to GYM_TEST_DATABASE_URL, skipping when unset.
func newPostgresStore(t *testing.T) WorkoutStore {
	t.Helper()
	url := os.Getenv("GYM_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("GYM_TEST_DATABASE_URL not set")
	}
	log := zerolog.Nop()
	cfg := &config.Config{
		Primary:  config.Primary{Env: "test"},
		Database: config.DatabaseConfig{Driver: config.DriverPostgres, URL: url},
	}
	require.NoError(t, database.Migrate(context.Background(), &log, cfg))

	db, err := database.New(cfg, &log, nil)
	require.NoError(t, err)
	_, err = db.Pool.Exec(context.Background(), `TRUNCATE workouts RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewWorkoutStore(db)
}

func legDay() *model.Workout {
	return &model.Workout{
		Date:  "2024-03-01",
		Label: "Leg Day",
		Exercises: []model.Exercise{
			{Name: "Squat", Weight: 225, Sets: []int{5, 5, 5}},
			{Name: "Lunge", Weight: 50, Sets: []int{10, 10}},
		},
	}
}

var stores = map[string]func(*testing.T) WorkoutStore{
	"sqlite":   newSQLiteStore,
	"postgres": newPostgresStore,
}

func TestWorkoutStore_CreateAndList(t *testing.T) {
	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			ctx := context.Background()

			id, err := store.Create(ctx, legDay())
			require.NoError(t, err)
			assert.Positive(t, id)

			workouts, err := store.List(ctx)
			require.NoError(t, err)
			require.Len(t, workouts, 1)

			w := workouts[0]
			assert.Equal(t, id, w.ID)
			assert.Equal(t, "2024-03-01", w.Date)
			assert.Equal(t, "Leg Day", w.Label)
			require.Len(t, w.Exercises, 2)
			assert.Equal(t, "Squat", w.Exercises[0].Name)
			assert.Equal(t, 225.0, w.Exercises[0].Weight)
			assert.Equal(t, []int{5, 5, 5}, w.Exercises[0].Sets)
			assert.Equal(t, "Lunge", w.Exercises[1].Name)
			assert.Equal(t, []int{10, 10}, w.Exercises[1].Sets)
		})
	}
}

func TestWorkoutStore_ListEmpty(t *testing.T) {
	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			workouts, err := open(t).List(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, workouts)
			assert.Empty(t, workouts)
		})
	}
}

func TestWorkoutStore_ListOrdersNewestFirst(t *testing.T) {
	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			ctx := context.Background()

			for _, d := range []string{"2024-01-10", "2024-03-05", "2024-02-20"} {
				_, err := store.Create(ctx, &model.Workout{
					Date:      d,
					Label:     "Session " + d,
					Exercises: []model.Exercise{{Name: "Row", Weight: 100, Sets: []int{8}}},
				})
				require.NoError(t, err)
			}

			workouts, err := store.List(ctx)
			require.NoError(t, err)
			require.Len(t, workouts, 3)
			assert.Equal(t, "2024-03-05", workouts[0].Date)
			assert.Equal(t, "2024-02-20", workouts[1].Date)
			assert.Equal(t, "2024-01-10", workouts[2].Date)
		})
	}
}

func TestWorkoutStore_ExerciseWithoutSets(t *testing.T) {
	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			ctx := context.Background()

			_, err := store.Create(ctx, &model.Workout{
				Date:      "2024-04-01",
				Label:     "Mobility",
				Exercises: []model.Exercise{{Name: "Stretch", Sets: []int{}}},
			})
			require.NoError(t, err)

			workouts, err := store.List(ctx)
			require.NoError(t, err)
			require.Len(t, workouts, 1)
			require.Len(t, workouts[0].Exercises, 1)
			assert.NotNil(t, workouts[0].Exercises[0].Sets)
			assert.Empty(t, workouts[0].Exercises[0].Sets)
		})
	}
}

func TestWorkoutStore_CreateRollsBackOnInvalidExercise(t *testing.T) {
	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			ctx := context.Background()

			w := legDay()
			w.Exercises = append(w.Exercises, model.Exercise{Name: "", Sets: []int{3}})

			_, err := store.Create(ctx, w)
			require.Error(t, err)
			assert.Equal(t, sqlerr.CheckViolation, sqlerr.ErrCode(err))

			var httpErr *errs.HTTPError
			require.True(t, errors.As(sqlerr.HandleError(err), &httpErr))
			assert.Equal(t, "EXERCISE_INVALID", httpErr.Code)

			workouts, err := store.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, workouts)
		})
	}
}

func TestWorkoutStore_CreateRollsBackOnNegativeReps(t *testing.T) {
	for name, open := range stores {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			ctx := context.Background()

			w := legDay()
			w.Exercises[1].Sets = []int{10, -1}

			_, err := store.Create(ctx, w)
			require.Error(t, err)
			assert.Equal(t, sqlerr.CheckViolation, sqlerr.ErrCode(err))

			workouts, err := store.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, workouts)
		})
	}
}

func TestWorkoutStore_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	store := newSQLiteStore(t)
	ctx := context.Background()

	const n = 8
	ids := make([]int64, n)
	errCh := make(chan error, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := store.Create(ctx, legDay())
			ids[i] = id
			errCh <- err
		}(i)
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	seen := make(map[int64]bool, n)
	for _, id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}

	workouts, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, workouts, n)
	for _, w := range workouts {
		assert.Len(t, w.Exercises, 2)
	}
}

func TestWorkoutStore_Version(t *testing.T) {
	version, err := newSQLiteStore(t).Version(context.Background())
	require.NoError(t, err)
	assert.Contains(t, version, "SQLite 3.")
}
