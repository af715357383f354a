package handler

import (
	"context"

	"github.com/JSwartzmiller/gym/internal/model"
	"github.com/JSwartzmiller/gym/internal/server"
	"github.com/labstack/echo/v4"
)

// WorkoutRecorder is the workout service as seen by the HTTP layer.
type WorkoutRecorder interface {
	AddWorkout(ctx context.Context, req *model.AddWorkoutRequest) (int64, error)
	ListWorkouts(ctx context.Context) ([]model.Workout, error)
}

type WorkoutHandler struct {
	Handler
	workouts WorkoutRecorder
}

func NewWorkoutHandler(s *server.Server, workouts WorkoutRecorder) *WorkoutHandler {
	return &WorkoutHandler{
		Handler:  NewHandler(s),
		workouts: workouts,
	}
}

// AddWorkout saves the workout in req with all its exercises and sets.
func (h *WorkoutHandler) AddWorkout(c echo.Context, req *model.AddWorkoutRequest) (*model.AddWorkoutResponse, error) {
	id, err := h.workouts.AddWorkout(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}

	return &model.AddWorkoutResponse{
		Message: WorkoutAddedMessage,
		ID:      id,
	}, nil
}

// ListWorkouts returns every workout, newest first.
func (h *WorkoutHandler) ListWorkouts(c echo.Context, _ *model.StatusRequest) ([]model.Workout, error) {
	return h.workouts.ListWorkouts(c.Request().Context())
}
