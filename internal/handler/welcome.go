package handler

import (
	"context"

	"github.com/JSwartzmiller/gym/internal/model"
	"github.com/JSwartzmiller/gym/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	WelcomeMessage      = "Welcome to the Gym Progress Tracker API!"
	DatabaseOKMessage   = "Database connection successful!"
	WorkoutAddedMessage = "Workout added successfully!"
)

// VersionReporter reports the store's server version.
type VersionReporter interface {
	DatabaseVersion(ctx context.Context) (string, error)
}

type WelcomeHandler struct {
	Handler
	db VersionReporter
}

func NewWelcomeHandler(s *server.Server, db VersionReporter) *WelcomeHandler {
	return &WelcomeHandler{
		Handler: NewHandler(s),
		db:      db,
	}
}

// Welcome answers GET / with a fixed greeting.
func (h *WelcomeHandler) Welcome(c echo.Context, _ *model.StatusRequest) (*model.MessageResponse, error) {
	return &model.MessageResponse{Message: WelcomeMessage}, nil
}

// TestDB answers GET /test-db by asking the store for its version.
func (h *WelcomeHandler) TestDB(c echo.Context, _ *model.StatusRequest) (*model.DatabaseStatusResponse, error) {
	version, err := h.db.DatabaseVersion(c.Request().Context())
	if err != nil {
		return nil, err
	}

	return &model.DatabaseStatusResponse{
		Message: DatabaseOKMessage,
		Version: version,
	}, nil
}
