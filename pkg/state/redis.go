// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package state

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RedisStore implements Store using a single Redis string key.
type RedisStore struct {
	client *redis.Client
	cfg    RedisStoreConfig
}

type RedisStoreConfig struct {
	// Key defaults to DefaultKey.
	Key string
}

// NewRedisStore creates a new Redis-backed state store.
func NewRedisStore(client *redis.Client, cfg RedisStoreConfig) *RedisStore {
	if cfg.Key == "" {
		cfg.Key = DefaultKey
	}
	return &RedisStore{client: client, cfg: cfg}
}

// Load retrieves the stored record.
func (r *RedisStore) Load(ctx context.Context) (*GameState, error) {
	data, err := r.client.Get(ctx, r.cfg.Key).Result()
	if err == redis.Nil {
		logrus.Infof("no existing state under key %s", r.cfg.Key)
		return nil, ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state: %w", err)
	}

	s, err := decode([]byte(data))
	if err != nil {
		return nil, err
	}

	logrus.Debugf("retrieved state under key %s", r.cfg.Key)
	return s, nil
}

// Save overwrites the stored record. The key never expires.
func (r *RedisStore) Save(ctx context.Context, s *GameState) error {
	data, err := encode(s)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.cfg.Key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	logrus.Debugf("saved state under key %s", r.cfg.Key)
	return nil
}

// Ping checks the Redis connection.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
