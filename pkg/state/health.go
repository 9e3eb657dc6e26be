// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package state

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger is any backend that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthChecker provides store health check functionality
type HealthChecker struct {
	name   string
	target Pinger
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(name string, target Pinger) *HealthChecker {
	return &HealthChecker{name: name, target: target}
}

// Check performs a health check bounded by two seconds
func (h *HealthChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := h.target.Ping(ctx); err != nil {
		logrus.Errorf("%s health check failed: %v", h.name, err)
		return err
	}

	logrus.Debugf("%s health check passed", h.name)
	return nil
}

// IsHealthy returns true if the store is accessible
func (h *HealthChecker) IsHealthy(ctx context.Context) bool {
	return h.Check(ctx) == nil
}
