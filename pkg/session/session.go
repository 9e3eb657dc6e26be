// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package session owns the single live GameState of the local player.
// Every operation runs under one mutex, computes the next state through the
// reducer, persists it and only then makes it current.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-macaroni-spin/pkg/game"
	"github.com/AccelByte/extend-macaroni-spin/pkg/haptics"
	"github.com/AccelByte/extend-macaroni-spin/pkg/metrics"
	"github.com/AccelByte/extend-macaroni-spin/pkg/popup"
	"github.com/AccelByte/extend-macaroni-spin/pkg/rotation"
	"github.com/AccelByte/extend-macaroni-spin/pkg/state"
)

// PopupOffset places a popup above and left of the emission point.
var PopupOffset = rotation.Point{X: -100, Y: -50}

// Config controls gesture and feedback behavior.
type Config struct {
	Center               rotation.Point
	KeepPartialOnRelease bool
	PopupTTL             time.Duration
}

// Dependencies are the host capabilities a session uses. All fields are optional.
type Dependencies struct {
	Vibrator haptics.Vibrator
	Clock    func() time.Time
}

// SpinOutcome describes a spin produced by a gesture or a direct Spin call.
type SpinOutcome struct {
	Result game.SpinResult
	Event  rotation.SpinEvent
	Popup  popup.Popup
}

// Session is the explicit state container for one player.
type Session struct {
	reducer  *game.Reducer
	store    state.Store
	tracker  *rotation.Tracker
	popups   *popup.Scheduler
	vibrator haptics.Vibrator
	now      func() time.Time

	mu       sync.Mutex
	current  state.GameState
	openedAt time.Time
}

// Open loads the stored record or creates a new game, repairs it, applies the
// day rollover and persists the result.
func Open(ctx context.Context, reducer *game.Reducer, store state.Store, cfg Config, deps Dependencies) (*Session, error) {
	now := deps.Clock
	if now == nil {
		now = time.Now
	}

	s := &Session{
		reducer: reducer,
		store:   store,
		tracker: rotation.NewTracker(rotation.Config{
			Center:               cfg.Center,
			KeepPartialOnRelease: cfg.KeepPartialOnRelease,
		}),
		popups:   popup.NewScheduler(cfg.PopupTTL),
		vibrator: deps.Vibrator,
		now:      now,
	}

	today := now()
	loaded, err := store.Load(ctx)
	var gs state.GameState
	switch {
	case errors.Is(err, state.ErrStateNotFound):
		logrus.Infof("starting a new game")
		gs = reducer.New(today)
	case err != nil:
		return nil, fmt.Errorf("failed to load state: %w", err)
	default:
		var notes []string
		gs, notes = reducer.Repair(*loaded)
		for _, n := range notes {
			logrus.Warnf("repaired stored state: %s", n)
		}
	}

	gs, rolled := reducer.DayRollover(gs, today)
	if rolled {
		logrus.Infof("new day, daily missions and reward reset")
	}

	if err := s.persist(ctx, gs); err != nil {
		return nil, err
	}
	s.current = gs
	s.openedAt = today
	metrics.Level.Set(float64(gs.Level))

	logrus.Infof("session opened: level %d, score %d, %d spins", gs.Level, gs.Score, gs.TotalSpins)
	return s, nil
}

// persist writes next to the store. Callers hold mu.
func (s *Session) persist(ctx context.Context, next state.GameState) error {
	if err := s.store.Save(ctx, &next); err != nil {
		metrics.StateSaveFailuresTotal.Inc()
		logrus.Errorf("failed to persist state: %v", err)
		return fmt.Errorf("failed to persist state: %w", err)
	}
	return nil
}

// commit persists next and makes it current. On failure the current state is kept.
func (s *Session) commit(ctx context.Context, next state.GameState) error {
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.current = next
	metrics.Level.Set(float64(next.Level))
	return nil
}

func reject(operation string, err error) {
	if reason, ok := game.Reason(err); ok {
		metrics.RejectionsTotal.WithLabelValues(operation, reason).Inc()
		logrus.Debugf("%s rejected: %s", operation, reason)
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() state.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Shop lists shop items with owned flags for the current state.
func (s *Session) Shop() []state.ShopItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reducer.Shop(s.current)
}

// Spin scores one revolution without a gesture, e.g. from auto-spin.
// The popup is placed at the plate center.
func (s *Session) Spin(ctx context.Context) (SpinOutcome, error) {
	s.mu.Lock()
	center := s.tracker.Center()
	out, vibrate, err := s.spinLocked(ctx, rotation.SpinEvent{Point: center, Direction: 1})
	s.mu.Unlock()

	if err == nil && vibrate {
		haptics.Pulse(ctx, s.vibrator, haptics.SpinPulse)
	}
	return out, err
}

func (s *Session) spinLocked(ctx context.Context, ev rotation.SpinEvent) (SpinOutcome, bool, error) {
	res := s.reducer.Spin(s.current)
	if err := s.commit(ctx, res.State); err != nil {
		return SpinOutcome{}, false, err
	}
	metrics.SpinsTotal.Inc()

	p := s.popups.Show(res.Points, ev.Point.X+PopupOffset.X, ev.Point.Y+PopupOffset.Y)
	return SpinOutcome{
		Result: res,
		Event:  ev,
		Popup:  p,
	}, res.State.Settings.VibrationEnabled, nil
}

// Purchase buys a shop item.
func (s *Session) Purchase(ctx context.Context, itemID string, usePremium bool) (state.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.reducer.Purchase(s.current, itemID, usePremium)
	if err != nil {
		reject("purchase", err)
		return s.current.Clone(), err
	}
	if err := s.commit(ctx, next); err != nil {
		return s.current.Clone(), err
	}

	item, _ := s.reducer.Catalog().ShopItem(itemID)
	metrics.PurchasesTotal.WithLabelValues(string(item.Category), metrics.Currency(usePremium)).Inc()
	return next.Clone(), nil
}

// ClaimDailyReward grants today's reward.
func (s *Session) ClaimDailyReward(ctx context.Context) (state.GameState, state.Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, rw, err := s.reducer.ClaimDailyReward(s.current)
	if err != nil {
		reject("claim_daily_reward", err)
		return s.current.Clone(), state.Reward{}, err
	}
	if err := s.commit(ctx, next); err != nil {
		return s.current.Clone(), state.Reward{}, err
	}

	metrics.RewardsClaimedTotal.WithLabelValues("daily", string(rw.Type)).Inc()
	return next.Clone(), rw, nil
}

// ClaimMissionReward grants a completed mission's reward.
func (s *Session) ClaimMissionReward(ctx context.Context, missionID string) (state.GameState, state.Reward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, rw, err := s.reducer.ClaimMissionReward(s.current, missionID)
	if err != nil {
		reject("claim_mission_reward", err)
		return s.current.Clone(), state.Reward{}, err
	}
	if err := s.commit(ctx, next); err != nil {
		return s.current.Clone(), state.Reward{}, err
	}

	metrics.RewardsClaimedTotal.WithLabelValues("mission", string(rw.Type)).Inc()
	return next.Clone(), rw, nil
}

// UpdateSettings merges a partial settings update.
func (s *Session) UpdateSettings(ctx context.Context, patch state.SettingsPatch) (state.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.reducer.UpdateSettings(s.current, patch)
	if err := s.commit(ctx, next); err != nil {
		return s.current.Clone(), err
	}
	return next.Clone(), nil
}

// Reset wipes all progress and overwrites the stored record.
func (s *Session) Reset(ctx context.Context) (state.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.reducer.Reset(s.now())
	if err := s.commit(ctx, next); err != nil {
		return s.current.Clone(), err
	}
	s.popups.Close()
	return next.Clone(), nil
}

// RolloverIfNewDay applies the day rollover for long-running sessions.
// It reports whether the calendar day changed.
func (s *Session) RolloverIfNewDay(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now()
	if state.SameDay(s.current.LastLoginDate, today) {
		return false, nil
	}

	next, rolled := s.reducer.DayRollover(s.current, today)
	if err := s.commit(ctx, next); err != nil {
		return false, err
	}
	if rolled {
		logrus.Infof("day rollover during session")
	}
	return rolled, nil
}

// Close records the session's play time and releases timers.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.popups.Close()
	elapsed := s.now().Sub(s.openedAt)
	next := s.reducer.AddPlayTime(s.current, elapsed)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.openedAt = s.now()
	logrus.Infof("session closed after %s", elapsed.Round(time.Second))
	return nil
}
