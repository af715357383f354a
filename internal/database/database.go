// Package database owns the connection to the workout store.
//
// PostgreSQL is reached through a pgx connection pool with query tracing
// (New Relic via nrpgx5, and SQL logging through pgx tracelog in the local
// environment). SQLite is reached through database/sql with the pure Go
// modernc driver and is used for single-file deployments and tests.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/JSwartzmiller/gym/internal/config"
	loggerConfig "github.com/JSwartzmiller/gym/internal/logger"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/newrelic/go-agent/v3/integrations/nrpgx5"
	"github.com/rs/zerolog"
)

// Database holds the open store handle for the configured driver.
// Exactly one of Pool and SQL is set.
type Database struct {
	Driver string
	Pool   *pgxpool.Pool
	SQL    *sql.DB
	log    *zerolog.Logger
}

// multiTracer fans a query trace out to several pgx tracers, since
// ConnConfig only has a single Tracer slot.
type multiTracer struct {
	tracers []any
}

func (mt *multiTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryStart(context.Context, *pgx.Conn, pgx.TraceQueryStartData) context.Context
		}); ok {
			ctx = t.TraceQueryStart(ctx, conn, data)
		}
	}
	return ctx
}

func (mt *multiTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	for _, tracer := range mt.tracers {
		if t, ok := tracer.(interface {
			TraceQueryEnd(context.Context, *pgx.Conn, pgx.TraceQueryEndData)
		}); ok {
			t.TraceQueryEnd(ctx, conn, data)
		}
	}
}

// DatabasePingTimeout is the number of seconds to wait for a ping.
const DatabasePingTimeout = 10

// New opens the store selected by cfg.Database.Driver.
//
// For PostgreSQL an unreachable server at startup is logged, not returned:
// the pool connects lazily and /test-db reports the failure per request.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := openSQLite(cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		logger.Info().Str("path", cfg.Database.URL).Msg("opened sqlite database")
		return &Database{Driver: config.DriverSQLite, SQL: db, log: logger}, nil
	case config.DriverPostgres, "":
		return newPostgres(cfg, logger, loggerService)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

func newPostgres(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	pgxPoolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx pool config: %w", err)
	}

	if cfg.Database.MaxOpenConns > 0 {
		pgxPoolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.ConnMaxLifetime > 0 {
		pgxPoolConfig.MaxConnLifetime = time.Duration(cfg.Database.ConnMaxLifetime) * time.Second
	}
	if cfg.Database.ConnMaxIdleTime > 0 {
		pgxPoolConfig.MaxConnIdleTime = time.Duration(cfg.Database.ConnMaxIdleTime) * time.Second
	}

	if loggerService != nil && loggerService.GetApplication() != nil {
		pgxPoolConfig.ConnConfig.Tracer = nrpgx5.NewTracer()
	}

	// SQL logging is noisy, so only in local.
	if cfg.Primary.Env == "local" {
		globalLevel := logger.GetLevel()
		localTracer := &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(loggerConfig.NewPgxLogger(globalLevel)),
			LogLevel: tracelog.LogLevel(loggerConfig.GetPgxTraceLogLevel(globalLevel)),
		}

		if pgxPoolConfig.ConnConfig.Tracer != nil {
			pgxPoolConfig.ConnConfig.Tracer = &multiTracer{
				tracers: []any{pgxPoolConfig.ConnConfig.Tracer, localTracer},
			}
		} else {
			pgxPoolConfig.ConnConfig.Tracer = localTracer
		}
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), pgxPoolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	database := &Database{
		Driver: config.DriverPostgres,
		Pool:   pool,
		log:    logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = pool.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("database is unreachable, continuing without a verified connection")
	} else {
		logger.Info().Msg("connected to the database")
	}

	return database, nil
}

// Ping verifies the store is reachable.
func (db *Database) Ping(ctx context.Context) error {
	if db.SQL != nil {
		return db.SQL.PingContext(ctx)
	}
	return db.Pool.Ping(ctx)
}

// Close releases the pool or file handle.
func (db *Database) Close() error {
	db.log.Info().Str("driver", db.Driver).Msg("closing database connection")
	if db.SQL != nil {
		return db.SQL.Close()
	}
	db.Pool.Close()
	return nil
}
