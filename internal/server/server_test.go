package server

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/JSwartzmiller/gym/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutRedis(t *testing.T) {
	log := zerolog.Nop()
	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server:  config.ServerConfig{Port: "0"},
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			URL:    filepath.Join(t.TempDir(), "workouts.db"),
		},
	}

	s, err := New(cfg, &log, nil)
	require.NoError(t, err)

	assert.Nil(t, s.Redis)
	assert.Nil(t, s.Job)
	require.NotNil(t, s.DB.SQL)

	require.NoError(t, s.Shutdown(context.Background()))
}

func TestStartRequiresSetup(t *testing.T) {
	log := zerolog.Nop()
	s := &Server{Config: &config.Config{}, Logger: &log}

	assert.EqualError(t, s.Start(), "HTTP server not initialized")
}
