package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// DefaultBaseURLs maps an environment to its backend when BASE_URL is unset.
// Production has no default and must be configured explicitly.
var DefaultBaseURLs = map[Environment]string{
	EnvDevelopment: "http://localhost:8787/api",
	EnvTesting:     "http://127.0.0.1:8787/api",
}

// Config holds the client configuration.
// Environment variables are automatically parsed from HOMEPAGE_ prefix
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// Backend
	BaseURL string            `envconfig:"BASE_URL" default:""`
	Timeout time.Duration     `envconfig:"TIMEOUT" default:"30s"`
	Headers map[string]string `envconfig:"HEADERS" default:"Content-Type:application/json"`

	// Retry policy defaults applied to every request
	RetryCount int           `envconfig:"RETRY_COUNT" default:"3"`
	RetryDelay time.Duration `envconfig:"RETRY_DELAY" default:"1s"`

	// Local state; empty means ~/.homepage-uni
	DataDir string `envconfig:"DATA_DIR" default:""`

	Debug bool `envconfig:"DEBUG" default:"false"`

	// Development backend
	DevServerPort int `envconfig:"DEV_SERVER_PORT" default:"8787"`
}

// ResolveDefaults validates Environment and derives BaseURL when it is empty.
func (c *Config) ResolveDefaults() error {
	switch c.Environment {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return fmt.Errorf("unsupported ENVIRONMENT: %s", c.Environment)
	}

	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURLs[c.Environment]
	}
	if c.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required for environment %s", c.Environment)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")

	if c.Timeout <= 0 {
		return fmt.Errorf("TIMEOUT must be > 0, got %s", c.Timeout)
	}
	if c.RetryCount < 0 {
		return fmt.Errorf("RETRY_COUNT must be >= 0, got %d", c.RetryCount)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("RETRY_DELAY must be >= 0, got %s", c.RetryDelay)
	}
	if c.Headers == nil {
		c.Headers = map[string]string{}
	}
	return nil
}

// SetBaseURL overrides the backend base URL.
func (c *Config) SetBaseURL(u string) {
	c.BaseURL = strings.TrimRight(u, "/")
}

// New creates a new Config by parsing environment variables
// Environment variables should be prefixed with HOMEPAGE_
// Example: HOMEPAGE_BASE_URL, HOMEPAGE_RETRY_COUNT
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("HOMEPAGE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("environment", string(cfg.Environment)).
		Str("base_url", cfg.BaseURL).
		Dur("timeout", cfg.Timeout).
		Int("retry_count", cfg.RetryCount).
		Dur("retry_delay", cfg.RetryDelay).
		Bool("data_dir_override", cfg.DataDir != "").
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	cfg := &Config{
		Environment:   EnvTesting,
		BaseURL:       DefaultBaseURLs[EnvTesting],
		Timeout:       5 * time.Second,
		Headers:       map[string]string{"Content-Type": "application/json"},
		RetryCount:    3,
		RetryDelay:    10 * time.Millisecond,
		DevServerPort: 8787,
	}
	return cfg
}
