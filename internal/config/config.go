// Package config loads the termsync configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Config holds everything termsync needs to talk to one Traduora project.
type Config struct {
	// BaseURL is the Traduora instance, e.g. http://localhost:8080
	BaseURL string `env:"TERMSYNC_BASE_URL" envDefault:"http://localhost:8080" validate:"required,url"`

	// Username authenticates against the instance
	Username string `env:"TERMSYNC_USERNAME" validate:"required"`

	// Password is optional here; the login command prompts when it is unset
	Password string `env:"TERMSYNC_PASSWORD"`

	// ProjectID is the Traduora project UUID
	ProjectID string `env:"TERMSYNC_PROJECT_ID" validate:"required"`

	// Locale is the locale code whose translations are synchronized
	Locale string `env:"TERMSYNC_LOCALE" envDefault:"en" validate:"required"`

	// TranslationFile is the locally edited JSON translation file
	TranslationFile string `env:"TERMSYNC_TRANSLATION_FILE" validate:"required"`

	// BaselineRev is the git revision holding the last synchronized state of
	// the translation file. Empty disables baseline refinement.
	BaselineRev string `env:"TERMSYNC_BASELINE_REV"`

	// DBPath is the local state database (cached session, sync metadata)
	DBPath string `env:"TERMSYNC_DB" envDefault:"termsync.db"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `env:"TERMSYNC_LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the environment. When envFile is
// non-empty it must exist and is loaded first; otherwise a .env in the
// working directory is picked up if present.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if _, err := uuid.Parse(cfg.ProjectID); err != nil {
		return nil, fmt.Errorf("TERMSYNC_PROJECT_ID must be a UUID: %w", err)
	}

	return &cfg, nil
}

// SlogLevel maps the configured log level onto slog.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
