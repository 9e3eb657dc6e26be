// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

// Config holds all application configuration loaded from environment variables.
// This struct uses github.com/caarlos0/env for automatic environment variable parsing.
type Config struct {
	// ============================================================
	// Server configuration
	// ============================================================
	GRPCPort    int    `env:"GRPC_PORT" envDefault:"6565"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"MacaroniSpinMania"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// ============================================================
	// State persistence
	// ============================================================
	// StateBackend is one of redis, sqlite or memory.
	StateBackend string `env:"STATE_BACKEND" envDefault:"sqlite"`
	StateKey     string `env:"STATE_KEY" envDefault:"macaroni-spin-mania"`
	SQLitePath   string `env:"SQLITE_PATH" envDefault:"macaroni-spin-mania.db"`

	RedisHost         string `env:"REDIS_HOST" envDefault:"localhost"`
	RedisPort         string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword     string `env:"REDIS_PASSWORD"`
	RedisMaxRetries   int    `env:"REDIS_MAX_RETRIES" envDefault:"5"`
	RedisRetryDelayMs int    `env:"REDIS_RETRY_DELAY_MS" envDefault:"1000"`

	// ============================================================
	// Game configuration
	// ============================================================
	// CatalogPath points at a YAML catalog override. Missing file means built-in catalog.
	CatalogPath         string  `env:"CATALOG_PATH" envDefault:"config/catalog.yaml"`
	StreakDecay         bool    `env:"STREAK_DECAY" envDefault:"false"`
	RotationKeepPartial bool    `env:"ROTATION_KEEP_PARTIAL" envDefault:"false"`
	PlateCenterX        float64 `env:"PLATE_CENTER_X" envDefault:"150"`
	PlateCenterY        float64 `env:"PLATE_CENTER_Y" envDefault:"150"`
	PopupTTLMs          int     `env:"POPUP_TTL_MS" envDefault:"1000"`
	HapticsEnabled      bool    `env:"HAPTICS_ENABLED" envDefault:"true"`
	RolloverCheckSec    int     `env:"ROLLOVER_CHECK_SEC" envDefault:"60"`

	// ============================================================
	// Telemetry configuration
	// ============================================================
	OtelEnabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OtelEndpoint    string `env:"OTEL_EXPORTER_ZIPKIN_ENDPOINT"`
	OtelServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"macaroni-spin-mania"`
}
