package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "./data/moneysplitter.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "settlements", cfg.KafkaTopic)
	assert.Equal(t, 4, cfg.SettleConcurrency)
	assert.True(t, cfg.MetricsEnabled)

	assert.False(t, cfg.AuthEnabled())
	assert.False(t, cfg.EventsEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"PORT":               "9090",
		"JWT_SECRET":         "s3cret",
		"JWT_TTL":            "1h",
		"KAFKA_BROKERS":      "kafka-1:9092,kafka-2:9092",
		"SETTLE_CONCURRENCY": "8",
		"METRICS_ENABLED":    "false",
	})
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 8, cfg.SettleConcurrency)
	assert.False(t, cfg.MetricsEnabled)
	assert.True(t, cfg.AuthEnabled())
	assert.True(t, cfg.EventsEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestParse_InvalidValue(t *testing.T) {
	_, err := Parse(map[string]string{"PORT": "eighty"})
	assert.ErrorContains(t, err, "parse env")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = 70000 },
			wantErr: "invalid port 70000",
		},
		{
			name:    "empty database path",
			mutate:  func(c *Config) { c.DBPath = "" },
			wantErr: "database path cannot be empty",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "invalid log level 'verbose'",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.LogFormat = "xml" },
			wantErr: "invalid log format 'xml'",
		},
		{
			name: "non-positive token TTL with auth",
			mutate: func(c *Config) {
				c.JWTSecret = "s3cret"
				c.JWTTTL = 0
			},
			wantErr: "invalid JWT TTL",
		},
		{
			name: "brokers without topic",
			mutate: func(c *Config) {
				c.KafkaBrokers = []string{"localhost:9092"}
				c.KafkaTopic = ""
			},
			wantErr: "Kafka topic cannot be empty",
		},
		{
			name:    "zero concurrency",
			mutate:  func(c *Config) { c.SettleConcurrency = 0 },
			wantErr: "invalid settle concurrency 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse(map[string]string{})
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{Port: 0, LogLevel: "info", LogFormat: "text", SettleConcurrency: 0}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port 0")
	assert.Contains(t, err.Error(), "database path cannot be empty")
	assert.Contains(t, err.Error(), "invalid settle concurrency 0")
}
