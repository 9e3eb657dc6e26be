// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package haptics is the boundary to the host's vibration capability.
package haptics

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// SpinPulse is the vibration played after each spin.
const SpinPulse = 50 * time.Millisecond

// Vibrator plays a vibration for d.
type Vibrator interface {
	Vibrate(ctx context.Context, d time.Duration) error
}

// Func adapts a function to Vibrator.
type Func func(ctx context.Context, d time.Duration) error

func (f Func) Vibrate(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// Available reports whether the host exposes a vibration capability.
func Available(v Vibrator) bool {
	return v != nil
}

// LogVibrator records vibrations in the log, for hosts without a motor.
type LogVibrator struct{}

func (LogVibrator) Vibrate(_ context.Context, d time.Duration) error {
	logrus.Debugf("vibrate %s", d)
	return nil
}

// Pulse vibrates for d when v is available, swallowing any host error.
func Pulse(ctx context.Context, v Vibrator, d time.Duration) {
	if !Available(v) {
		return
	}
	if err := v.Vibrate(ctx, d); err != nil {
		logrus.Debugf("vibration failed: %v", err)
	}
}
