package common

import (
	"context"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestInterceptorLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	l := InterceptorLogger(logger)

	tests := []struct {
		level logging.Level
		want  logrus.Level
	}{
		{logging.LevelDebug, logrus.DebugLevel},
		{logging.LevelInfo, logrus.InfoLevel},
		{logging.LevelWarn, logrus.WarnLevel},
		{logging.LevelError, logrus.ErrorLevel},
	}

	for _, tt := range tests {
		hook.Reset()
		l.Log(context.Background(), tt.level, "finished call", "grpc.method", "Spin", "grpc.code", "OK")

		entry := hook.LastEntry()
		if entry == nil {
			t.Fatalf("level %v: no entry logged", tt.level)
		}
		if entry.Level != tt.want {
			t.Errorf("level = %v, want %v", entry.Level, tt.want)
		}
		if entry.Message != "finished call" {
			t.Errorf("message = %q", entry.Message)
		}
		if entry.Data["grpc.method"] != "Spin" || entry.Data["grpc.code"] != "OK" {
			t.Errorf("fields = %v", entry.Data)
		}
	}
}
