package router

import (
	"net/http"

	"github.com/JSwartzmiller/gym/internal/handler"
	"github.com/JSwartzmiller/gym/internal/model"
	"github.com/labstack/echo/v4"
)

func registerWorkoutRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", handler.Handle[model.StatusRequest](
		h.Welcome.Handler,
		h.Welcome.Welcome,
		http.StatusOK,
	))

	r.GET("/test-db", handler.Handle[model.StatusRequest](
		h.Welcome.Handler,
		h.Welcome.TestDB,
		http.StatusOK,
	))

	r.POST("/add-workout", handler.Handle[model.AddWorkoutRequest](
		h.Workout.Handler,
		h.Workout.AddWorkout,
		http.StatusCreated,
	))

	r.GET("/get-workouts", handler.Handle[model.StatusRequest](
		h.Workout.Handler,
		h.Workout.ListWorkouts,
		http.StatusOK,
	))
}
