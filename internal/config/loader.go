// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// State backends accepted by STATE_BACKEND.
const (
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Load reads configuration from environment variables.
// It attempts to load from .env file first (for local development),
// then parses environment variables into the Config struct.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Warnf("no .env file found or error loading it: %v (this is normal in production)", err)
	} else {
		logrus.Infof("loaded environment variables from .env file")
	}

	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}
	return cfg, nil
}

// Validate performs custom validation on the configuration.
func (c *Config) Validate() error {
	if c.GRPCPort < 1 || c.GRPCPort > 65535 {
		return fmt.Errorf("invalid GRPC_PORT: %d (must be 1-65535)", c.GRPCPort)
	}

	if c.MetricsPort < 1 || c.MetricsPort > 65535 {
		return fmt.Errorf("invalid METRICS_PORT: %d (must be 1-65535)", c.MetricsPort)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	switch c.StateBackend {
	case BackendRedis, BackendMemory:
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("invalid STATE_BACKEND: %q (must be redis, sqlite or memory)", c.StateBackend)
	}

	if c.StateKey == "" {
		return fmt.Errorf("STATE_KEY is required")
	}

	if c.RedisMaxRetries < 0 {
		return fmt.Errorf("invalid REDIS_MAX_RETRIES: %d", c.RedisMaxRetries)
	}

	if c.PopupTTLMs <= 0 {
		return fmt.Errorf("invalid POPUP_TTL_MS: %d (must be positive)", c.PopupTTLMs)
	}

	if c.RolloverCheckSec <= 0 {
		return fmt.Errorf("invalid ROLLOVER_CHECK_SEC: %d (must be positive)", c.RolloverCheckSec)
	}

	return nil
}

// LogrusLevel returns the parsed LOG_LEVEL. Call Validate first.
func (c *Config) LogrusLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// PopupTTL is POPUP_TTL_MS as a duration.
func (c *Config) PopupTTL() time.Duration {
	return time.Duration(c.PopupTTLMs) * time.Millisecond
}

// RedisRetryDelay is REDIS_RETRY_DELAY_MS as a duration.
func (c *Config) RedisRetryDelay() time.Duration {
	return time.Duration(c.RedisRetryDelayMs) * time.Millisecond
}

// RolloverInterval is how often a running session checks for a new day.
func (c *Config) RolloverInterval() time.Duration {
	return time.Duration(c.RolloverCheckSec) * time.Second
}
