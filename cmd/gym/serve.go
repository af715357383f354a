package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/JSwartzmiller/gym/internal/database"
	"github.com/JSwartzmiller/gym/internal/handler"
	"github.com/JSwartzmiller/gym/internal/repository"
	"github.com/JSwartzmiller/gym/internal/router"
	"github.com/JSwartzmiller/gym/internal/server"
	"github.com/JSwartzmiller/gym/internal/service"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Run the HTTP API until SIGINT or SIGTERM, then drain in-flight requests
and close the database.

With GYM_DATABASE__AUTO_MIGRATE=true the schema is migrated before serving.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, loggerService, err := bootstrap()
		if err != nil {
			return err
		}
		defer loggerService.Shutdown()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if cfg.Database.AutoMigrate {
			if err := database.Migrate(ctx, log, cfg); err != nil {
				log.Error().Err(err).Msg("failed to migrate database")
				return err
			}
		}

		srv, err := server.New(cfg, log, loggerService)
		if err != nil {
			log.Error().Err(err).Msg("failed to initialize server")
			return err
		}

		repos := repository.NewRepositories(srv)
		services, err := service.NewServices(srv, repos)
		if err != nil {
			log.Error().Err(err).Msg("could not create services")
			return err
		}
		handlers := handler.NewHandlers(srv, services)
		srv.SetupHTTPServer(router.NewRouter(srv, handlers))

		serveErr := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		select {
		case err := <-serveErr:
			if err != nil {
				log.Error().Err(err).Msg("server stopped unexpectedly")
				_ = srv.Shutdown(context.Background())
				return err
			}
		case <-ctx.Done():
		}

		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
			return err
		}

		log.Info().Msg("server exited properly")
		return nil
	},
}
