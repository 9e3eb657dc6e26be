package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 6565, cfg.GRPCPort)
	assert.Equal(t, 8080, cfg.MetricsPort)
	assert.Equal(t, BackendSQLite, cfg.StateBackend)
	assert.Equal(t, "macaroni-spin-mania", cfg.StateKey)
	assert.Equal(t, time.Second, cfg.PopupTTL())
	assert.Equal(t, time.Second, cfg.RedisRetryDelay())
	assert.Equal(t, time.Minute, cfg.RolloverInterval())
	assert.Equal(t, logrus.InfoLevel, cfg.LogrusLevel())
	assert.False(t, cfg.StreakDecay)
	assert.True(t, cfg.HapticsEnabled)
}

func TestParse_FromEnvironment(t *testing.T) {
	t.Setenv("STATE_BACKEND", "redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("STREAK_DECAY", "true")
	t.Setenv("POPUP_TTL_MS", "250")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Parse()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, BackendRedis, cfg.StateBackend)
	assert.Equal(t, "cache", cfg.RedisHost)
	assert.True(t, cfg.StreakDecay)
	assert.Equal(t, 250*time.Millisecond, cfg.PopupTTL())
	assert.Equal(t, logrus.DebugLevel, cfg.LogrusLevel())
}

func TestParse_InvalidNumber(t *testing.T) {
	t.Setenv("GRPC_PORT", "not-a-port")

	_, err := Parse()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"grpc port", func(c *Config) { c.GRPCPort = 0 }},
		{"metrics port", func(c *Config) { c.MetricsPort = 70000 }},
		{"log level", func(c *Config) { c.LogLevel = "loud" }},
		{"backend", func(c *Config) { c.StateBackend = "postgres" }},
		{"sqlite path", func(c *Config) { c.SQLitePath = "" }},
		{"state key", func(c *Config) { c.StateKey = "" }},
		{"redis retries", func(c *Config) { c.RedisMaxRetries = -1 }},
		{"popup ttl", func(c *Config) { c.PopupTTLMs = 0 }},
		{"rollover interval", func(c *Config) { c.RolloverCheckSec = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse()
			require.NoError(t, err)
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
