// Package router builds the Echo instance: the global middleware stack, the
// error handler and every route.
package router

import (
	"github.com/JSwartzmiller/gym/internal/handler"
	"github.com/JSwartzmiller/gym/internal/middleware"
	"github.com/JSwartzmiller/gym/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.RateLimit.Limit(),
		middleware.Metrics(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerWorkoutRoutes(router, h)

	return router
}
