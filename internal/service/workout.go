package service

import (
	"context"
	"time"

	"github.com/JSwartzmiller/gym/internal/logger"
	"github.com/JSwartzmiller/gym/internal/model"
	"github.com/rs/zerolog"
)

// Store persists and reads workouts.
type Store interface {
	Create(ctx context.Context, w *model.Workout) (int64, error)
	List(ctx context.Context) ([]model.Workout, error)
	Version(ctx context.Context) (string, error)
}

// WorkoutNotifier is told about every saved workout.
type WorkoutNotifier interface {
	NotifyWorkoutRecorded(ctx context.Context, w *model.Workout) error
}

type WorkoutService struct {
	store    Store
	notifier WorkoutNotifier
	logger   *zerolog.Logger

	// SlowQueryThreshold, when positive, logs store calls that take longer.
	SlowQueryThreshold time.Duration
}

// NewWorkoutService builds the service. notifier may be nil.
func NewWorkoutService(store Store, notifier WorkoutNotifier, logger *zerolog.Logger) *WorkoutService {
	return &WorkoutService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// AddWorkout saves the workout atomically and returns its id.
//
// A failed notification is logged and does not fail the request; the
// workout is already committed.
func (s *WorkoutService) AddWorkout(ctx context.Context, req *model.AddWorkoutRequest) (int64, error) {
	w := req.ToWorkout()

	start := time.Now()
	id, err := s.store.Create(ctx, w)
	s.observe(ctx, "create_workout", start)
	if err != nil {
		return 0, err
	}
	w.ID = id

	workoutsRecorded.Inc()
	setsRecorded.Add(float64(w.SetCount()))

	log := logger.FromContext(ctx, s.logger)
	log.Info().
		Int64("workout_id", id).
		Str("label", w.Label).
		Int("exercises", len(w.Exercises)).
		Msg("workout recorded")

	if s.notifier != nil {
		if err := s.notifier.NotifyWorkoutRecorded(ctx, w); err != nil {
			log.Error().Err(err).Int64("workout_id", id).Msg("failed to enqueue workout notification")
		}
	}

	return id, nil
}

// ListWorkouts returns every workout, newest first.
func (s *WorkoutService) ListWorkouts(ctx context.Context) ([]model.Workout, error) {
	defer s.observe(ctx, "list_workouts", time.Now())
	return s.store.List(ctx)
}

// DatabaseVersion reports the store's server version, proving it is reachable.
func (s *WorkoutService) DatabaseVersion(ctx context.Context) (string, error) {
	return s.store.Version(ctx)
}

func (s *WorkoutService) observe(ctx context.Context, op string, start time.Time) {
	if s.SlowQueryThreshold <= 0 {
		return
	}
	if elapsed := time.Since(start); elapsed > s.SlowQueryThreshold {
		logger.FromContext(ctx, s.logger).Warn().
			Str("operation", op).
			Dur("duration", elapsed).
			Dur("threshold", s.SlowQueryThreshold).
			Msg("slow store call")
	}
}
