// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-macaroni-spin/internal/config"
	"github.com/AccelByte/extend-macaroni-spin/pkg/state"
)

// Store is the opened state backend together with its cleanup.
type Store struct {
	state.Store
	Health *state.HealthChecker
	close  func() error
}

// Close releases the backend connection.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// InitStore opens the backend selected by STATE_BACKEND.
func InitStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StateBackend {
	case config.BackendRedis:
		return initRedisStore(ctx, cfg)
	case config.BackendSQLite:
		return initSQLiteStore(ctx, cfg)
	case config.BackendMemory:
		logrus.Warnf("using in-memory state, progress is lost on exit")
		return &Store{Store: state.NewMemoryStore()}, nil
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
	}
}

func initRedisStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisHost + ":" + cfg.RedisPort,
		Password:     cfg.RedisPassword,
		DB:           0, // use default DB
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	store := state.NewRedisStore(client, state.RedisStoreConfig{Key: cfg.StateKey})
	health := state.NewHealthChecker("redis", store)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.RedisRetryDelay()
	err := backoff.Retry(
		func() error {
			if err := health.Check(ctx); err != nil {
				logrus.Warnf("Redis connection failed: %v, retrying...", err)
				return err
			}
			return nil
		},
		backoff.WithContext(backoff.WithMaxRetries(b, uint64(cfg.RedisMaxRetries)), ctx),
	)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s:%s: %w", cfg.RedisHost, cfg.RedisPort, err)
	}

	logrus.Infof("Redis state store initialized (key: %s)", cfg.StateKey)
	return &Store{Store: store, Health: health, close: client.Close}, nil
}

func initSQLiteStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	store, err := state.OpenSQLiteStore(cfg.SQLitePath, cfg.StateKey)
	if err != nil {
		return nil, err
	}

	health := state.NewHealthChecker("sqlite", store)
	if err := health.Check(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	logrus.Infof("SQLite state store initialized at %s", cfg.SQLitePath)
	return &Store{Store: store, Health: health, close: store.Close}, nil
}
