package config

import (
	"regexp"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// devSecret signs tokens when the backend is unconfigured. Demo mode is
// explicitly not a security boundary.
const devSecret = "synergy-dev-secret-change-me"

// Config holds application settings loaded from environment variables.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" default:""`
	ServiceKey  string `envconfig:"SERVICE_KEY" default:""`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Env         string `envconfig:"APP_ENV" default:"development"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var postgresURL = regexp.MustCompile(`^postgres(ql)?://`)

// Configured reports whether a usable backend endpoint and key are
// present. The checks are shape checks only: non-placeholder values, a
// postgres URL, a key of plausible length. When either fails the whole
// process runs in demo mode against the in-memory store.
func (c *Config) Configured() bool {
	url := strings.TrimSpace(c.DatabaseURL)
	key := strings.TrimSpace(c.ServiceKey)

	if url == "" || key == "" {
		return false
	}
	if strings.Contains(url, "demo") || key == "demo-key" {
		return false
	}
	if !postgresURL.MatchString(url) {
		return false
	}
	return len(key) > 20
}

// JWTSecret returns the token-signing secret: the service key when the
// backend is configured, a fixed dev secret in demo mode.
func (c *Config) JWTSecret() string {
	if c.Configured() {
		return c.ServiceKey
	}
	return devSecret
}
