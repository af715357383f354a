package email

import (
	"testing"

	"github.com/JSwartzmiller/gym/internal/config"
	"github.com/JSwartzmiller/gym/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summary() model.WorkoutSummary {
	return model.WorkoutSummary{
		WorkoutID:     7,
		Date:          "2024-03-01",
		Label:         "Leg <Day>",
		ExerciseNames: []string{"Squat", "Lunge"},
		SetCount:      5,
	}
}

func TestRenderWorkoutRecorded(t *testing.T) {
	html, err := Render(TemplateWorkoutRecorded, summary())
	require.NoError(t, err)

	assert.Contains(t, html, "Leg &lt;Day&gt;")
	assert.Contains(t, html, "<strong>2024-03-01</strong>")
	assert.Contains(t, html, "5 sets")
	assert.Contains(t, html, "<li>Squat</li>")
	assert.Contains(t, html, "Workout #7")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("missing", nil)
	require.Error(t, err)
}

func TestWorkoutSubject(t *testing.T) {
	assert.Equal(t, "Workout recorded: Leg <Day> (2024-03-01)", WorkoutSubject(summary()))
}

func TestClientDisabledSkipsSend(t *testing.T) {
	log := zerolog.Nop()
	c := NewClient(&config.Config{Integration: config.IntegrationConfig{NotifyEmail: "me@example.com"}}, &log)

	assert.False(t, c.Enabled())
	assert.NoError(t, c.SendWorkoutRecordedEmail(summary()))
}
