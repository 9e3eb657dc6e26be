// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package catalog holds the fixed game content: forks, shop items,
// achievements, missions and the daily reward schedule.
package catalog

import (
	"github.com/AccelByte/extend-macaroni-spin/pkg/state"
)

// ScheduleLength is the number of days in the daily reward cycle.
const ScheduleLength = 7

// Catalog is the complete game content definition.
type Catalog struct {
	Forks        []state.Fork        `yaml:"forks"`
	ShopItems    []state.ShopItem    `yaml:"shop_items"`
	Achievements []state.Achievement `yaml:"achievements"`
	Missions     []state.Mission     `yaml:"missions"`
	DailyRewards []state.Reward      `yaml:"daily_rewards"`
}

// DefaultFork returns the fork owned at the start of the game.
func (c *Catalog) DefaultFork() state.Fork {
	for _, f := range c.Forks {
		if f.Owned {
			return f
		}
	}
	return state.Fork{ID: "basic", Name: "Basic Fork", Multiplier: 1, Owned: true}
}

// Fork looks a fork up by id.
func (c *Catalog) Fork(id string) (state.Fork, bool) {
	for _, f := range c.Forks {
		if f.ID == id {
			return f, true
		}
	}
	return state.Fork{}, false
}

// ShopItem looks a shop item up by id.
func (c *Catalog) ShopItem(id string) (state.ShopItem, bool) {
	for _, it := range c.ShopItems {
		if it.ID == id {
			return it, true
		}
	}
	return state.ShopItem{}, false
}

// Achievement looks an achievement definition up by id.
func (c *Catalog) Achievement(id string) (state.Achievement, bool) {
	for _, a := range c.Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return state.Achievement{}, false
}

// Mission looks a mission definition up by id.
func (c *Catalog) Mission(id string) (state.Mission, bool) {
	for _, m := range c.Missions {
		if m.ID == id {
			return m, true
		}
	}
	return state.Mission{}, false
}

// DailyReward returns the schedule entry for the given streak.
func (c *Catalog) DailyReward(streak int64) state.Reward {
	if streak < 0 {
		streak = 0
	}
	return c.DailyRewards[streak%int64(len(c.DailyRewards))]
}

// NewAchievements returns a fresh, all-locked copy of the achievement list.
func (c *Catalog) NewAchievements() []state.Achievement {
	out := make([]state.Achievement, len(c.Achievements))
	for i, a := range c.Achievements {
		a.Unlocked = false
		out[i] = a
	}
	return out
}

// NewMissions returns a fresh, zero-progress copy of the mission list.
func (c *Catalog) NewMissions() []state.Mission {
	out := make([]state.Mission, len(c.Missions))
	for i, m := range c.Missions {
		m.Progress = 0
		m.Completed = false
		out[i] = m
	}
	return out
}
