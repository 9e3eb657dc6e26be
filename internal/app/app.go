// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-macaroni-spin/internal/bootstrap"
	"github.com/AccelByte/extend-macaroni-spin/internal/config"
	"github.com/AccelByte/extend-macaroni-spin/internal/server"
	"github.com/AccelByte/extend-macaroni-spin/pkg/common"
	"github.com/AccelByte/extend-macaroni-spin/pkg/session"
)

// App holds all application dependencies and manages the application lifecycle.
type App struct {
	cfg               *config.Config
	grpcServer        *server.GRPCServer
	metricsServer     *server.MetricsServer
	store             *bootstrap.Store
	session           *session.Session
	shutdownTelemetry func(context.Context) error
}

// New creates and initializes a new application instance.
//
// Components are initialized in dependency order:
// 1. Telemetry (so the session's first spans are exported)
// 2. State store (redis, sqlite or memory)
// 3. Catalog and reducer
// 4. Session (load, repair, day rollover)
// 5. Servers (gRPC, metrics)
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logrus.Info("initializing application...")

	app := &App{cfg: cfg}

	// ============================================================
	// Step 1: Setup telemetry
	// ============================================================
	shutdownTelemetry, err := server.SetupTelemetry(ctx, server.TelemetryConfig{
		Enabled:        cfg.OtelEnabled,
		ZipkinEndpoint: cfg.OtelEndpoint,
		ServiceName:    cfg.OtelServiceName,
		Environment:    cfg.Environment,
		ID:             common.GenerateRandomInt(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to setup telemetry: %w", err)
	}
	app.shutdownTelemetry = shutdownTelemetry

	// ============================================================
	// Step 2: Open state store
	// ============================================================
	app.store, err = bootstrap.InitStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to init %s state store: %w", cfg.StateBackend, err)
	}

	// ============================================================
	// Step 3: Load catalog
	// ============================================================
	reducer, err := bootstrap.InitReducer(cfg)
	if err != nil {
		_ = app.store.Close()
		return nil, err
	}

	// ============================================================
	// Step 4: Open session
	// ============================================================
	app.session, err = bootstrap.InitSession(ctx, cfg, reducer, app.store)
	if err != nil {
		_ = app.store.Close()
		return nil, err
	}

	// ============================================================
	// Step 5: Setup servers
	// ============================================================
	app.grpcServer = server.NewGRPCServer(cfg.GRPCPort, app.session)
	if err := app.grpcServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup gRPC server: %w", err)
	}

	app.metricsServer = server.NewMetricsServer(cfg.MetricsPort, "/metrics")
	if err := app.metricsServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup metrics server: %w", err)
	}

	logrus.Info("application initialized successfully")

	return app, nil
}
