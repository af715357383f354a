package job

import (
	"context"
	"encoding/json"
	"time"

	"github.com/JSwartzmiller/gym/internal/model"
	"github.com/hibiken/asynq"
)

const (
	// TaskWorkoutRecorded is the task type enqueued after a workout is saved.
	TaskWorkoutRecorded = "workout:recorded"
)

// NewWorkoutRecordedTask builds the task carrying a saved workout's summary.
func NewWorkoutRecordedTask(s model.WorkoutSummary) (*asynq.Task, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWorkoutRecorded,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// NotifyWorkoutRecorded enqueues a workout:recorded task.
func (j *JobService) NotifyWorkoutRecorded(ctx context.Context, w *model.Workout) error {
	task, err := NewWorkoutRecordedTask(w.Summary())
	if err != nil {
		return err
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Int64("workout_id", w.ID).
		Msg("enqueued workout recorded task")
	return nil
}
