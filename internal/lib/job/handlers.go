package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JSwartzmiller/gym/internal/model"
	"github.com/hibiken/asynq"
)

// handleWorkoutRecordedTask logs the recorded workout and emails a summary
// when email delivery is configured.
func (j *JobService) handleWorkoutRecordedTask(ctx context.Context, t *asynq.Task) error {
	var s model.WorkoutSummary
	if err := json.Unmarshal(t.Payload(), &s); err != nil {
		return fmt.Errorf("failed to unmarshal workout recorded payload: %w", err)
	}

	j.logger.Info().
		Int64("workout_id", s.WorkoutID).
		Str("date", s.Date).
		Str("label", s.Label).
		Int("exercises", len(s.ExerciseNames)).
		Int("sets", s.SetCount).
		Msg("Processing workout recorded task")

	if !j.email.Enabled() {
		return nil
	}

	if err := j.email.SendWorkoutRecordedEmail(s); err != nil {
		j.logger.Error().
			Int64("workout_id", s.WorkoutID).
			Err(err).
			Msg("Failed to send workout recorded email")
		return err
	}

	j.logger.Info().
		Int64("workout_id", s.WorkoutID).
		Msg("Sent workout recorded email")
	return nil
}
