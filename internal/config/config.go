// Package config loads and validates agentseed configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kelseyhightower/envconfig"
)

// ErrMissingCredentials is returned when a persistence target lacks the
// settings it needs to connect.
var ErrMissingCredentials = errors.New("config: missing credentials")

// ServiceRole is the role claim carried by a Supabase service-role JWT.
const ServiceRole = "service_role"

// Config holds all application configuration.
type Config struct {
	// Supabase REST target.
	SupabaseURL    string `envconfig:"VITE_SUPABASE_URL"`
	ServiceRoleKey string `envconfig:"SUPABASE_SERVICE_ROLE_KEY"`

	// Direct Postgres target.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// OTEL settings.
	OTELEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `envconfig:"OTEL_SERVICE_NAME" default:"agentseed"`
	OTELInsecure bool   `envconfig:"AGENTSEED_OTEL_INSECURE"`

	LogLevel string `envconfig:"AGENTSEED_LOG_LEVEL" default:"info"`
}

// Timeouts bound writes to a persistence target. They are read separately
// from Config so a bad value only fails the seed command.
type Timeouts struct {
	HTTP time.Duration `envconfig:"AGENTSEED_HTTP_TIMEOUT" default:"30s"`
	Copy time.Duration `envconfig:"AGENTSEED_COPY_TIMEOUT" default:"30s"`
}

// Load reads configuration from environment variables with defaults applied.
// Credentials are not required here; callers check them per target with
// ValidateREST or ValidatePostgres.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadTimeouts reads and validates the persistence timeouts.
func LoadTimeouts() (Timeouts, error) {
	var t Timeouts
	if err := envconfig.Process("", &t); err != nil {
		return Timeouts{}, fmt.Errorf("config: %w", err)
	}
	if t.HTTP <= 0 {
		return Timeouts{}, fmt.Errorf("config: AGENTSEED_HTTP_TIMEOUT must be positive")
	}
	if t.Copy <= 0 {
		return Timeouts{}, fmt.Errorf("config: AGENTSEED_COPY_TIMEOUT must be positive")
	}
	return t, nil
}

// SlogLevel maps LogLevel to a slog level. Unknown names fall back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ValidateREST checks that both Supabase settings are present.
func (c Config) ValidateREST() error {
	var missing []string
	if c.SupabaseURL == "" {
		missing = append(missing, "VITE_SUPABASE_URL")
	}
	if c.ServiceRoleKey == "" {
		missing = append(missing, "SUPABASE_SERVICE_ROLE_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return nil
}

// ValidatePostgres checks that DATABASE_URL is present.
func (c Config) ValidatePostgres() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("%w: DATABASE_URL", ErrMissingCredentials)
	}
	return nil
}

// ServiceKeyRole returns the role claim of the service key without verifying
// its signature. ok is false when the key is not a JWT or has no role claim;
// newer Supabase secret keys are opaque strings.
func (c Config) ServiceKeyRole() (role string, ok bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.ServiceRoleKey, claims); err != nil {
		return "", false
	}
	role, ok = claims["role"].(string)
	return role, ok
}
