package sysutil

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// SetLogLevel configures the global zerolog level based on a string value.
// Supported values (case-insensitive): debug, info, warn, error, fatal, panic.
func SetLogLevel(lvl string) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info", "":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// IsTruthy reports whether an environment variable string should be considered true.
// Accepted values (case-insensitive): "1", "true", "yes", "y", "on".
func IsTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

// EnvironmentInfo describes where the process is running and which database
// it is pointed at. Returned by the health endpoint so deployment mixups
// (wrong DB host, container vs. local) are visible at a glance.
type EnvironmentInfo struct {
	Environment string    `json:"environment" example:"Docker"`
	DBHost      string    `json:"dbHost" example:"db"`
	DBName      string    `json:"dbName" example:"play_history_service"`
	Hostname    string    `json:"hostname"`
	Timestamp   time.Time `json:"timestamp"`
}

// DetectEnvironment classifies the runtime as CI, Docker, or Local using
// common environment markers and reports the configured database target.
func DetectEnvironment() EnvironmentInfo {
	hostname, _ := os.Hostname()
	isDocker := IsTruthy(os.Getenv("DOCKER_ENV")) || strings.Contains(hostname, "docker")

	env := "Local"
	switch {
	case os.Getenv("CI") != "":
		env = "CI"
	case isDocker:
		env = "Docker"
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		if isDocker {
			dbHost = "db"
		} else {
			dbHost = "localhost"
		}
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "play_history_service"
	}

	return EnvironmentInfo{
		Environment: env,
		DBHost:      dbHost,
		DBName:      dbName,
		Hostname:    hostname,
		Timestamp:   time.Now().UTC(),
	}
}
