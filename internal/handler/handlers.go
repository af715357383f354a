package handler

import (
	"github.com/JSwartzmiller/gym/internal/server"
	"github.com/JSwartzmiller/gym/internal/service"
)

// Handlers groups every HTTP handler for the router.
type Handlers struct {
	Welcome *WelcomeHandler
	Workout *WorkoutHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Welcome: NewWelcomeHandler(s, services.Workout),
		Workout: NewWorkoutHandler(s, services.Workout),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
