// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-macaroni-spin/internal/config"
	"github.com/AccelByte/extend-macaroni-spin/pkg/catalog"
	"github.com/AccelByte/extend-macaroni-spin/pkg/game"
	"github.com/AccelByte/extend-macaroni-spin/pkg/haptics"
	"github.com/AccelByte/extend-macaroni-spin/pkg/reward"
	"github.com/AccelByte/extend-macaroni-spin/pkg/rotation"
	"github.com/AccelByte/extend-macaroni-spin/pkg/session"
	"github.com/AccelByte/extend-macaroni-spin/pkg/state"
)

// InitReducer loads the catalog and builds the reducer with the builtin reward appliers.
func InitReducer(cfg *config.Config) (*game.Reducer, error) {
	cat, err := catalog.LoadOrDefault(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", cfg.CatalogPath, err)
	}
	logrus.Infof("catalog: %d forks, %d shop items, %d achievements, %d missions",
		len(cat.Forks), len(cat.ShopItems), len(cat.Achievements), len(cat.Missions))

	rewards := reward.NewDefaultRegistry(cat)
	logrus.Infof("registered %d reward appliers", rewards.Count())

	return game.NewReducer(cat, rewards, game.Config{StreakDecay: cfg.StreakDecay}), nil
}

// InitSession opens the player's session over store.
func InitSession(ctx context.Context, cfg *config.Config, reducer *game.Reducer, store state.Store) (*session.Session, error) {
	var vibrator haptics.Vibrator
	if cfg.HapticsEnabled {
		vibrator = haptics.LogVibrator{}
	}

	s, err := session.Open(ctx, reducer, store,
		session.Config{
			Center:               rotation.Point{X: cfg.PlateCenterX, Y: cfg.PlateCenterY},
			KeepPartialOnRelease: cfg.RotationKeepPartial,
			PopupTTL:             cfg.PopupTTL(),
		},
		session.Dependencies{Vibrator: vibrator},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}
	return s, nil
}
