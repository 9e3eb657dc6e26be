// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package game implements the progression rules as pure state transitions.
// Every operation works on a deep copy of its input and returns the next
// state; rejected operations return the input unchanged with a sentinel error.
package game

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-macaroni-spin/pkg/catalog"
	"github.com/AccelByte/extend-macaroni-spin/pkg/reward"
	"github.com/AccelByte/extend-macaroni-spin/pkg/state"
)

// Config tunes rule variants.
type Config struct {
	// StreakDecay resets the daily reward streak when whole days are skipped.
	StreakDecay bool
}

// Reducer applies the progression rules for one catalog.
type Reducer struct {
	catalog *catalog.Catalog
	rewards *reward.Registry
	cfg     Config
}

// NewReducer creates a reducer. rewards may be nil to use the default registry.
func NewReducer(cat *catalog.Catalog, rewards *reward.Registry, cfg Config) *Reducer {
	if rewards == nil {
		rewards = reward.NewDefaultRegistry(cat)
	}
	return &Reducer{catalog: cat, rewards: rewards, cfg: cfg}
}

// Catalog returns the catalog the reducer was built with.
func (r *Reducer) Catalog() *catalog.Catalog {
	return r.catalog
}

// SpinResult is the outcome of one spin.
type SpinResult struct {
	State                state.GameState
	Points               int64
	LeveledUp            bool
	UnlockedAchievements []string
	CompletedMissions    []string
}

// DefaultSettings are the preferences of a new player.
func DefaultSettings() state.GameSettings {
	return state.GameSettings{
		SoundEnabled:     true,
		VibrationEnabled: true,
		Language:         "he",
		AutoSpin:         false,
	}
}

// New builds the first-launch state.
func (r *Reducer) New(now time.Time) state.GameState {
	return state.GameState{
		Score:         0,
		Level:         1,
		ActiveFork:    r.catalog.DefaultFork(),
		OwnedUpgrades: []string{},
		Achievements:  r.catalog.NewAchievements(),
		Missions:      r.catalog.NewMissions(),
		Settings:      DefaultSettings(),
		LastLoginDate: now,
		Statistics:    state.PlayerStatistics{MaxLevel: 1},
	}
}

// Reset discards all progress and returns a fresh state.
func (r *Reducer) Reset(now time.Time) state.GameState {
	logrus.Infof("resetting game state")
	return r.New(now)
}

// ApplySpin scores one full revolution.
func (r *Reducer) ApplySpin(s state.GameState) state.GameState {
	return r.Spin(s).State
}

// Spin scores one full revolution and reports what it changed.
func (r *Reducer) Spin(s state.GameState) SpinResult {
	next := s.Clone()
	points := next.ActiveFork.Multiplier
	prevLevel := next.Level

	state.SetScore(&next, next.Score+points)
	next.TotalSpins++
	next.Statistics.TotalSpins++
	if points > next.Statistics.HighestScorePerSpin {
		next.Statistics.HighestScorePerSpin = points
	}

	completed := state.AdvanceMissions(&next, state.TriggerSpin)
	unlocked := r.unlockAchievements(&next)

	if next.Level > prevLevel {
		logrus.Infof("level up: %d -> %d", prevLevel, next.Level)
	}

	return SpinResult{
		State:                next,
		Points:               points,
		LeveledUp:            next.Level > prevLevel,
		UnlockedAchievements: unlocked,
		CompletedMissions:    completed,
	}
}

// Purchase buys a shop item with soft currency, or premium currency when usePremium is set.
// Only items with a premium price can be bought with premium currency.
func (r *Reducer) Purchase(s state.GameState, itemID string, usePremium bool) (state.GameState, error) {
	item, ok := r.catalog.ShopItem(itemID)
	if !ok {
		return s, ErrNotFound
	}
	if s.Owns(itemID) || (item.Category == state.CategoryForks && s.ActiveFork.ID == itemID) {
		return s, ErrAlreadyOwned
	}

	cost := item.Price
	balance := s.Score
	if usePremium {
		if item.PremiumPrice == nil {
			return s, ErrNoPremiumPrice
		}
		cost = *item.PremiumPrice
		balance = s.PremiumCurrency
	}
	if balance < cost {
		return s, ErrInsufficientFunds
	}

	next := s.Clone()
	if usePremium {
		next.PremiumCurrency -= cost
	} else {
		state.SetScore(&next, next.Score-cost)
	}
	next.OwnedUpgrades = append(next.OwnedUpgrades, itemID)

	if item.Category == state.CategoryForks {
		if fork, ok := r.catalog.Fork(itemID); ok {
			fork.Owned = true
			next.ActiveFork = fork
		}
	}

	state.AdvanceMissions(&next, state.TriggerPurchase)
	next.Statistics.TotalPurchases++

	logrus.Debugf("purchased %s for %d (premium=%v)", itemID, cost, usePremium)
	return next, nil
}

// ClaimDailyReward grants the schedule entry for the current streak.
func (r *Reducer) ClaimDailyReward(s state.GameState) (state.GameState, state.Reward, error) {
	if s.DailyRewardClaimed {
		return s, state.Reward{}, ErrAlreadyClaimed
	}

	rw := r.catalog.DailyReward(s.DailyRewardStreak)
	next := s.Clone()
	if err := r.rewards.Apply(&next, rw); err != nil {
		return s, state.Reward{}, err
	}
	next.DailyRewardClaimed = true
	next.DailyRewardStreak++
	r.unlockAchievements(&next)

	return next, rw, nil
}

// ClaimMissionReward grants a completed mission's reward and removes the mission.
func (r *Reducer) ClaimMissionReward(s state.GameState, missionID string) (state.GameState, state.Reward, error) {
	m := s.GetMission(missionID)
	if m == nil {
		return s, state.Reward{}, ErrNotFound
	}
	if !m.Completed {
		return s, state.Reward{}, ErrNotCompleted
	}

	rw := m.Reward
	next := s.Clone()
	if err := r.rewards.Apply(&next, rw); err != nil {
		return s, state.Reward{}, err
	}
	state.RemoveMission(&next, missionID)
	r.unlockAchievements(&next)

	return next, rw, nil
}

// UpdateSettings merges the non-nil fields of patch.
func (r *Reducer) UpdateSettings(s state.GameState, patch state.SettingsPatch) state.GameState {
	next := s.Clone()
	if patch.SoundEnabled != nil {
		next.Settings.SoundEnabled = *patch.SoundEnabled
	}
	if patch.VibrationEnabled != nil {
		next.Settings.VibrationEnabled = *patch.VibrationEnabled
	}
	if patch.Language != nil {
		if ValidLanguage(*patch.Language) {
			next.Settings.Language = *patch.Language
		} else {
			logrus.Warnf("ignoring unsupported language %q", *patch.Language)
		}
	}
	if patch.AutoSpin != nil {
		next.Settings.AutoSpin = *patch.AutoSpin
	}
	return next
}

// ValidLanguage reports whether lang is a supported UI language.
func ValidLanguage(lang string) bool {
	return lang == "he" || lang == "en"
}

// DayRollover resets the daily parts of the state when today is a new
// calendar day. Daily missions claimed on an earlier day come back fresh.
func (r *Reducer) DayRollover(s state.GameState, today time.Time) (state.GameState, bool) {
	next := s.Clone()
	if !state.CheckDayRollover(&next, today, r.cfg.StreakDecay) {
		return next, false
	}

	for _, m := range r.catalog.NewMissions() {
		if m.Type == state.MissionDaily && next.GetMission(m.ID) == nil {
			next.Missions = append(next.Missions, m)
		}
	}
	return next, true
}

// AddPlayTime records d of play in the lifetime statistics, in whole seconds.
func (r *Reducer) AddPlayTime(s state.GameState, d time.Duration) state.GameState {
	next := s.Clone()
	if secs := int64(d / time.Second); secs > 0 {
		next.Statistics.TotalPlayTime += secs
	}
	return next
}

// Shop lists the catalog with owned flags derived from the purchase history.
func (r *Reducer) Shop(s state.GameState) []state.ShopItem {
	items := make([]state.ShopItem, len(r.catalog.ShopItems))
	for i, it := range r.catalog.ShopItems {
		it.Owned = s.Owns(it.ID) || (it.Category == state.CategoryForks && s.ActiveFork.ID == it.ID)
		items[i] = it
	}
	return items
}

// unlockAchievements flips every locked achievement whose threshold is met
// and returns the ids unlocked by this call.
func (r *Reducer) unlockAchievements(s *state.GameState) []string {
	var unlocked []string
	for i := range s.Achievements {
		a := &s.Achievements[i]
		if a.Unlocked {
			continue
		}

		var value int64
		switch a.Metric {
		case state.MetricTotalSpins:
			value = s.TotalSpins
		case state.MetricLevel:
			value = s.Level
		default:
			continue
		}

		if value >= a.Condition {
			a.Unlocked = true
			unlocked = append(unlocked, a.ID)
			logrus.Infof("achievement unlocked: %s", a.ID)
		}
	}
	return unlocked
}
