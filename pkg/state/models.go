// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package state

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// ShopCategory is the closed set of shop sections.
type ShopCategory string

const (
	CategorySauces  ShopCategory = "sauces"
	CategoryPasta   ShopCategory = "pasta"
	CategoryForks   ShopCategory = "forks"
	CategoryPremium ShopCategory = "premium"
)

// RewardKind tags the Reward variant.
type RewardKind string

const (
	RewardScore      RewardKind = "score"
	RewardMultiplier RewardKind = "multiplier"
	RewardPremium    RewardKind = "premium"
	RewardItem       RewardKind = "item"
)

// MissionType classifies how a mission behaves across days.
type MissionType string

const (
	MissionDaily     MissionType = "daily"
	MissionWeekly    MissionType = "weekly"
	MissionPermanent MissionType = "permanent"
)

// MissionTrigger names the player action that advances a mission.
type MissionTrigger string

const (
	TriggerSpin     MissionTrigger = "spin"
	TriggerPurchase MissionTrigger = "purchase"
)

// AchievementMetric names the lifetime quantity an achievement threshold is compared against.
type AchievementMetric string

const (
	MetricTotalSpins AchievementMetric = "total_spins"
	MetricLevel      AchievementMetric = "level"
)

// GameState is the complete persisted state of one player.
// It is stored as a single JSON record and always replaced as a whole.
type GameState struct {
	Score              int64            `json:"score"`
	Level              int64            `json:"level"` // always LevelForScore(Score)
	TotalSpins         int64            `json:"totalSpins"`
	ActiveFork         Fork             `json:"activeFork"`
	OwnedUpgrades      []string         `json:"ownedUpgrades"`
	Achievements       []Achievement    `json:"achievements"`
	Missions           []Mission        `json:"missions"`
	Settings           GameSettings     `json:"settings"`
	LastLoginDate      time.Time        `json:"lastLoginDate"`
	DailyRewardClaimed bool             `json:"dailyRewardClaimed"`
	DailyRewardStreak  int64            `json:"dailyRewardStreak"`
	PassiveIncome      int64            `json:"passiveIncome"`
	PremiumCurrency    int64            `json:"premiumCurrency"`
	Statistics         PlayerStatistics `json:"statistics"`
}

// PlayerStatistics holds monotonic lifetime aggregates.
type PlayerStatistics struct {
	TotalSpins          int64 `json:"totalSpins"`
	TotalPlayTime       int64 `json:"totalPlayTime"` // seconds
	TotalPurchases      int64 `json:"totalPurchases"`
	HighestScorePerSpin int64 `json:"highestScorePerSpin"`
	MaxLevel            int64 `json:"maxLevel"`
}

// Fork is an equippable item that sets the per-spin score multiplier.
type Fork struct {
	ID         string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Multiplier int64  `json:"multiplier" yaml:"multiplier"`
	Price      int64  `json:"price" yaml:"price"`
	Owned      bool   `json:"owned" yaml:"owned"`
}

// ShopItem is a purchasable catalog entry.
type ShopItem struct {
	ID           string       `json:"id" yaml:"id"`
	Name         string       `json:"name" yaml:"name"`
	Price        int64        `json:"price" yaml:"price"`
	PremiumPrice *int64       `json:"premiumPrice,omitempty" yaml:"premium_price,omitempty"`
	Category     ShopCategory `json:"category" yaml:"category"`
	Owned        bool         `json:"owned" yaml:"-"`
	Description  string       `json:"description,omitempty" yaml:"description,omitempty"`
	Effect       string       `json:"effect,omitempty" yaml:"effect,omitempty"`
	VisualOnly   bool         `json:"isVisualOnly,omitempty" yaml:"visual_only,omitempty"`
}

// Achievement is a one-way unlock triggered by crossing a lifetime threshold.
type Achievement struct {
	ID          string            `json:"id" yaml:"id"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Condition   int64             `json:"condition" yaml:"condition"`
	Metric      AchievementMetric `json:"metric" yaml:"metric"`
	Unlocked    bool              `json:"unlocked" yaml:"-"`
	Reward      Reward            `json:"reward" yaml:"reward"`
}

// Mission is a bounded, completable, claimable progress goal.
type Mission struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Target      int64          `json:"target" yaml:"target"`
	Progress    int64          `json:"progress" yaml:"-"`
	Completed   bool           `json:"completed" yaml:"-"`
	Reward      Reward         `json:"reward" yaml:"reward"`
	Type        MissionType    `json:"type" yaml:"type"`
	Trigger     MissionTrigger `json:"trigger" yaml:"trigger"`
}

// Reward is a tagged variant over score, multiplier, premium currency and item grants.
// Amount is used by score and premium rewards, Factor and Duration by multiplier
// rewards, ItemID by item rewards.
type Reward struct {
	Type     RewardKind `json:"type" yaml:"type"`
	Amount   int64      `json:"amount,omitempty" yaml:"amount,omitempty"`
	Factor   float64    `json:"factor,omitempty" yaml:"factor,omitempty"`
	Duration int64      `json:"duration,omitempty" yaml:"duration,omitempty"` // seconds
	ItemID   string     `json:"itemId,omitempty" yaml:"item_id,omitempty"`
}

// UnmarshalJSON also accepts records where a multiplier reward keeps its
// factor in amount, e.g. {"type":"multiplier","amount":1.1,"duration":3600}.
func (r *Reward) UnmarshalJSON(data []byte) error {
	type plain Reward
	var raw struct {
		plain
		Amount json.Number `json:"amount,omitempty"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Reward(raw.plain)
	r.Amount = 0
	if raw.Amount == "" {
		return nil
	}

	if r.Type == RewardMultiplier {
		f, err := raw.Amount.Float64()
		if err != nil {
			return fmt.Errorf("invalid multiplier amount %s: %w", raw.Amount, err)
		}
		if r.Factor == 0 {
			r.Factor = f
		}
		return nil
	}

	n, err := raw.Amount.Int64()
	if err != nil {
		return fmt.Errorf("%s reward amount %s is not an integer", r.Type, raw.Amount)
	}
	r.Amount = n
	return nil
}

// GameSettings holds user preferences.
type GameSettings struct {
	SoundEnabled     bool   `json:"soundEnabled"`
	VibrationEnabled bool   `json:"vibrationEnabled"`
	Language         string `json:"language"` // "he" or "en"
	AutoSpin         bool   `json:"autoSpin"`
}

// SettingsPatch carries a partial settings update. Nil fields are left untouched.
type SettingsPatch struct {
	SoundEnabled     *bool
	VibrationEnabled *bool
	Language         *string
	AutoSpin         *bool
}

// Clone returns a deep copy so reducers never share slices with their input.
func (s GameState) Clone() GameState {
	cp := s
	cp.OwnedUpgrades = slices.Clone(s.OwnedUpgrades)
	cp.Achievements = slices.Clone(s.Achievements)
	cp.Missions = slices.Clone(s.Missions)
	return cp
}

// Owns reports whether itemID is in the purchase history.
func (s *GameState) Owns(itemID string) bool {
	for _, id := range s.OwnedUpgrades {
		if id == itemID {
			return true
		}
	}
	return false
}

// GetMission finds a mission by ID.
func (s *GameState) GetMission(id string) *Mission {
	for i := range s.Missions {
		if s.Missions[i].ID == id {
			return &s.Missions[i]
		}
	}
	return nil
}

// GetAchievement finds an achievement by ID.
func (s *GameState) GetAchievement(id string) *Achievement {
	for i := range s.Achievements {
		if s.Achievements[i].ID == id {
			return &s.Achievements[i]
		}
	}
	return nil
}
