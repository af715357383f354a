package repository

import (
	"testing"

	"github.com/JSwartzmiller/gym/internal/model"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestFoldWorkouts(t *testing.T) {
	rows := []workoutRow{
		{WorkoutID: 2, Date: "2024-03-02", Label: "Rest"},
		{WorkoutID: 1, Date: "2024-03-01", Label: "Push", ExerciseID: ptr[int64](10), Name: ptr("Bench"), Weight: ptr(135.0), Reps: ptr(8)},
		{WorkoutID: 1, Date: "2024-03-01", Label: "Push", ExerciseID: ptr[int64](10), Name: ptr("Bench"), Weight: ptr(135.0), Reps: ptr(6)},
		{WorkoutID: 1, Date: "2024-03-01", Label: "Push", ExerciseID: ptr[int64](11), Name: ptr("Dip"), Weight: ptr(0.0)},
	}

	got := foldWorkouts(rows)

	want := []model.Workout{
		{ID: 2, Date: "2024-03-02", Label: "Rest", Exercises: []model.Exercise{}},
		{ID: 1, Date: "2024-03-01", Label: "Push", Exercises: []model.Exercise{
			{ID: 10, Name: "Bench", Weight: 135, Sets: []int{8, 6}},
			{ID: 11, Name: "Dip", Weight: 0, Sets: []int{}},
		}},
	}
	assert.Equal(t, want, got)
}

func TestFoldWorkoutsEmpty(t *testing.T) {
	got := foldWorkouts(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
