package job

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/JSwartzmiller/gym/internal/config"
	"github.com/JSwartzmiller/gym/internal/lib/email"
	"github.com/JSwartzmiller/gym/internal/model"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkoutRecordedTask(t *testing.T) {
	w := &model.Workout{
		ID:    3,
		Date:  "2024-03-01",
		Label: "Pull",
		Exercises: []model.Exercise{
			{Name: "Row", Sets: []int{8, 8}},
			{Name: "Curl", Sets: []int{12}},
		},
	}

	task, err := NewWorkoutRecordedTask(w.Summary())
	require.NoError(t, err)
	assert.Equal(t, TaskWorkoutRecorded, task.Type())

	var got model.WorkoutSummary
	require.NoError(t, json.Unmarshal(task.Payload(), &got))
	assert.Equal(t, int64(3), got.WorkoutID)
	assert.Equal(t, []string{"Row", "Curl"}, got.ExerciseNames)
	assert.Equal(t, 3, got.SetCount)
}

func TestHandleWorkoutRecordedTask(t *testing.T) {
	log := zerolog.Nop()
	j := &JobService{
		email:  email.NewClient(&config.Config{}, &log),
		logger: &log,
	}

	task, err := NewWorkoutRecordedTask(model.WorkoutSummary{WorkoutID: 1, Label: "Push"})
	require.NoError(t, err)

	assert.NoError(t, j.handleWorkoutRecordedTask(context.Background(), task))
}

func TestHandleWorkoutRecordedTask_BadPayload(t *testing.T) {
	log := zerolog.Nop()
	j := &JobService{email: email.NewClient(&config.Config{}, &log), logger: &log}

	err := j.handleWorkoutRecordedTask(context.Background(), asynq.NewTask(TaskWorkoutRecorded, []byte("{")))
	require.Error(t, err)
}
