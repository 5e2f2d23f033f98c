// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file contains database bootstrapping: Postgres
// connection with startup retry, pool limits, tracing instrumentation, and
// schema migration.
package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/go-play-history/internal/config"
	"github.com/tbourn/go-play-history/internal/domain"
)

// Open connects to Postgres with exponential backoff and returns a GORM
// handle with bounded pooling. It retries cfg.ConnectRetries times, doubling
// the delay each attempt (base cfg.ConnectBaseDelay), and gives up with the
// last error once the ceiling is reached. Callers treat that as fatal to
// process startup; once running, dead connections are re-dialed per query by
// database/sql, so no separate reconnect loop exists in-process.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)

	var lastErr error
	for attempt := 1; attempt <= cfg.ConnectRetries; attempt++ {
		db, err := open(dsn, cfg)
		if err == nil {
			log.Info().
				Str("host", cfg.Host).
				Int("port", cfg.Port).
				Str("database", cfg.Name).
				Int("attempt", attempt).
				Msg("connected to postgres")
			return db, nil
		}
		lastErr = err

		if attempt < cfg.ConnectRetries {
			delay := cfg.ConnectBaseDelay << (attempt - 1)
			log.Warn().
				Err(err).
				Int("attempt", attempt).
				Dur("retry_in", delay).
				Msg("postgres connection failed, retrying")
			time.Sleep(delay)
		}
	}
	return nil, fmt.Errorf("connect postgres after %d attempts: %w", cfg.ConnectRetries, lastErr)
}

// open performs a single connection attempt, verifies it with a ping, and
// applies pool limits and the OpenTelemetry tracing plugin.
func open(dsn string, cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate creates or updates the schema for all domain models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.PlayEvent{},
		&domain.Tombstone{},
	)
}

// Close releases the underlying connection pool. Safe to call on shutdown.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifies database reachability; used by the health endpoint.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
