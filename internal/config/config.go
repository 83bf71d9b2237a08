// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP Server
	Port int `env:"PORT" envDefault:"8080"`

	// Database
	DBPath string `env:"DB_PATH" envDefault:"./data/moneysplitter.db"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// Auth. An empty secret disables token checks.
	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`

	// Events. No brokers disables publishing.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"settlements"`

	// SettleConcurrency bounds how many ledgers of a group settle at once.
	SettleConcurrency int `env:"SETTLE_CONCURRENCY" envDefault:"4"`

	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`
}

// Load reads an optional .env file and then parses the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return Parse(nil)
}

// Parse builds a Config from environ, or from the process environment when
// environ is nil.
func Parse(environ map[string]string) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// AuthEnabled reports whether RPCs require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// EventsEnabled reports whether settlements are published to Kafka.
func (c *Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.Port < 1 || c.Port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLevels, strings.ToLower(c.LogLevel)) {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of %v", c.LogLevel, validLevels))
	}

	validFormats := []string{"text", "json"}
	if !slices.Contains(validFormats, strings.ToLower(c.LogFormat)) {
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be one of %v", c.LogFormat, validFormats))
	}

	if c.AuthEnabled() && c.JWTTTL <= 0 {
		errors = append(errors, fmt.Sprintf("invalid JWT TTL %v: must be positive", c.JWTTTL))
	}

	if c.EventsEnabled() {
		if c.KafkaTopic == "" {
			errors = append(errors, "Kafka topic cannot be empty when brokers are provided")
		}
		for _, broker := range c.KafkaBrokers {
			if strings.TrimSpace(broker) == "" {
				errors = append(errors, "Kafka broker address cannot be empty")
				break
			}
		}
	}

	if c.SettleConcurrency < 1 {
		errors = append(errors, fmt.Sprintf("invalid settle concurrency %d: must be at least 1", c.SettleConcurrency))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}
