package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JSwartzmiller/gym/internal/model"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	created   []*model.Workout
	createErr error
	workouts  []model.Workout
	version   string
	delay     time.Duration
}

func (f *fakeStore) Create(_ context.Context, w *model.Workout) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, w)
	return int64(len(f.created)), nil
}

func (f *fakeStore) List(context.Context) ([]model.Workout, error) {
	time.Sleep(f.delay)
	return f.workouts, nil
}

func (f *fakeStore) Version(context.Context) (string, error) {
	return f.version, nil
}

type fakeNotifier struct {
	notified []*model.Workout
	err      error
}

func (f *fakeNotifier) NotifyWorkoutRecorded(_ context.Context, w *model.Workout) error {
	f.notified = append(f.notified, w)
	return f.err
}

func request() *model.AddWorkoutRequest {
	return &model.AddWorkoutRequest{
		Date:  "2024-03-01",
		Label: "Leg Day",
		Exercises: []model.ExerciseInput{
			{Name: "Squat", Weight: 225, Sets: []int{5, 5, 5}},
			{Name: "Plank"},
		},
	}
}

func TestAddWorkout(t *testing.T) {
	log := zerolog.Nop()
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := NewWorkoutService(store, notifier, &log)

	workoutsBefore := testutil.ToFloat64(workoutsRecorded)
	setsBefore := testutil.ToFloat64(setsRecorded)

	id, err := svc.AddWorkout(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.Len(t, store.created, 1)
	saved := store.created[0]
	assert.Equal(t, "Leg Day", saved.Label)
	require.Len(t, saved.Exercises, 2)
	assert.Equal(t, []int{}, saved.Exercises[1].Sets)

	require.Len(t, notifier.notified, 1)
	assert.Equal(t, int64(1), notifier.notified[0].ID)

	assert.Equal(t, workoutsBefore+1, testutil.ToFloat64(workoutsRecorded))
	assert.Equal(t, setsBefore+3, testutil.ToFloat64(setsRecorded))
}

func TestAddWorkout_StoreErrorSkipsNotify(t *testing.T) {
	log := zerolog.Nop()
	storeErr := errors.New("check constraint failed")
	notifier := &fakeNotifier{}
	svc := NewWorkoutService(&fakeStore{createErr: storeErr}, notifier, &log)

	_, err := svc.AddWorkout(context.Background(), request())
	require.ErrorIs(t, err, storeErr)
	assert.Empty(t, notifier.notified)
}

func TestAddWorkout_NotifyFailureIsNotFatal(t *testing.T) {
	log := zerolog.Nop()
	svc := NewWorkoutService(&fakeStore{}, &fakeNotifier{err: errors.New("redis down")}, &log)

	id, err := svc.AddWorkout(context.Background(), request())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestAddWorkout_NilNotifier(t *testing.T) {
	log := zerolog.Nop()
	svc := NewWorkoutService(&fakeStore{}, nil, &log)

	_, err := svc.AddWorkout(context.Background(), request())
	require.NoError(t, err)
}

func TestListWorkoutsAndVersion(t *testing.T) {
	log := zerolog.Nop()
	store := &fakeStore{
		workouts: []model.Workout{{ID: 2, Label: "Pull", Exercises: []model.Exercise{}}},
		version:  "PostgreSQL 16.2",
	}
	svc := NewWorkoutService(store, nil, &log)

	workouts, err := svc.ListWorkouts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, store.workouts, workouts)

	version, err := svc.DatabaseVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "PostgreSQL 16.2", version)
}

func TestListWorkouts_LogsSlowStoreCalls(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	svc := NewWorkoutService(&fakeStore{delay: 5 * time.Millisecond}, nil, &log)
	svc.SlowQueryThreshold = time.Millisecond

	_, err := svc.ListWorkouts(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "slow store call")
	assert.Contains(t, buf.String(), "list_workouts")
}
