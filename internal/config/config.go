// Package config reads runtime settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds settings shared by the API server and the console planner.
type Config struct {
	// Port is the HTTP listen port for the API server.
	// Default: 3000
	Port string

	// Env names the deployment environment and is attached to every log line.
	// Default: development
	Env string

	// LogLevel is the minimum zerolog level. The default depends on the binary.
	LogLevel zerolog.Level

	// LogFormat is "console" (human-readable) or "json".
	// Default: console
	LogFormat string

	// GinMode is passed to gin.SetMode.
	// Default: release
	GinMode string
}

// Load reads .env (if present) into the process environment without
// overriding variables that are already set, then calls FromEnv.
func Load(defaultLevel zerolog.Level) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(defaultLevel)
}

// FromEnv builds a Config from environment variables. LOG_LEVEL falls back
// to defaultLevel when unset.
func FromEnv(defaultLevel zerolog.Level) (Config, error) {
	cfg := Config{
		Port:      getEnvOrDefault("PORT", "3000"),
		Env:       getEnvOrDefault("APP_ENV", "development"),
		LogLevel:  defaultLevel,
		LogFormat: strings.ToLower(getEnvOrDefault("LOG_FORMAT", FormatConsole)),
		GinMode:   strings.ToLower(getEnvOrDefault("GIN_MODE", gin.ReleaseMode)),
	}

	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(raw))
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
		}
		cfg.LogLevel = level
	}

	switch cfg.LogFormat {
	case FormatConsole, FormatJSON:
	default:
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q: must be console or json", cfg.LogFormat)
	}

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("invalid GIN_MODE %q: must be debug, release or test", cfg.GinMode)
	}

	return cfg, nil
}

// Addr is the listen address for the API server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
