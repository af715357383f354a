package service

import (
	"github.com/JSwartzmiller/gym/internal/repository"
	"github.com/JSwartzmiller/gym/internal/server"
)

type Services struct {
	Workout *WorkoutService
}

// NewServices wires the services. Workout notifications are enqueued on the
// job service when Redis is configured.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var notifier WorkoutNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	workout := NewWorkoutService(repos.Workout, notifier, s.Logger)
	if obs := s.Config.Observability; obs != nil {
		workout.SlowQueryThreshold = obs.Logging.SlowQueryThreshold
	}

	return &Services{
		Workout: workout,
	}, nil
}
