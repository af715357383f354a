package email

import (
	"fmt"

	"github.com/JSwartzmiller/gym/internal/model"
)

// WorkoutSubject is the subject line of the workout-recorded email.
func WorkoutSubject(s model.WorkoutSummary) string {
	return fmt.Sprintf("Workout recorded: %s (%s)", s.Label, s.Date)
}

// SendWorkoutRecordedEmail tells the configured recipient a workout was saved.
func (c *Client) SendWorkoutRecordedEmail(s model.WorkoutSummary) error {
	return c.SendEmail(WorkoutSubject(s), TemplateWorkoutRecorded, s)
}
