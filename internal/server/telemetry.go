// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package server

import (
	"context"
	"fmt"

	"github.com/AccelByte/extend-macaroni-spin/pkg/common"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// TelemetryConfig selects where spans go.
type TelemetryConfig struct {
	Enabled        bool
	ZipkinEndpoint string
	ServiceName    string
	Environment    string
	ID             int
}

// SetupTelemetry initializes OpenTelemetry tracer and propagators.
// Returns a shutdown function that should be called on application shutdown.
//
// Spans are exported to Zipkin. When telemetry is disabled the global no-op
// tracer stays in place and only propagation is configured.
func SetupTelemetry(_ context.Context, cfg TelemetryConfig) (func(context.Context) error, error) {
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			b3.New(),                   // Zipkin B3 propagation
			propagation.TraceContext{}, // W3C Trace Context
			propagation.Baggage{},      // W3C Baggage
		),
	)
	logrus.Infof("set text map propagator")

	if !cfg.Enabled {
		logrus.Infof("tracing disabled")
		return func(context.Context) error { return nil }, nil
	}

	tracerProvider, err := common.NewTracerProvider(cfg.ZipkinEndpoint, cfg.ServiceName, cfg.Environment, int64(cfg.ID))
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer provider: %w", err)
	}

	otel.SetTracerProvider(tracerProvider)
	logrus.Infof("set tracer provider: (name: %s environment: %s id: %d)", cfg.ServiceName, cfg.Environment, cfg.ID)

	shutdown := func(ctx context.Context) error {
		logrus.Info("shutting down telemetry...")
		if err := tracerProvider.Shutdown(ctx); err != nil {
			return err
		}
		logrus.Info("telemetry stopped")
		return nil
	}

	return shutdown, nil
}
