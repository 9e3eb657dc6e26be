package game

import (
	"fmt"

	"github.com/AccelByte/extend-macaroni-spin/pkg/state"
)

// Repair brings a decoded record back within the state invariants. It never
// rejects a record; the returned notes describe every correction made.
func (r *Reducer) Repair(s state.GameState) (state.GameState, []string) {
	next := s.Clone()
	var notes []string
	note := func(format string, args ...any) {
		notes = append(notes, fmt.Sprintf(format, args...))
	}

	clamp := func(name string, v *int64) {
		if *v < 0 {
			note("%s was negative (%d)", name, *v)
			*v = 0
		}
	}
	clamp("score", &next.Score)
	clamp("premiumCurrency", &next.PremiumCurrency)
	clamp("totalSpins", &next.TotalSpins)
	clamp("dailyRewardStreak", &next.DailyRewardStreak)
	clamp("passiveIncome", &next.PassiveIncome)
	clamp("statistics.totalSpins", &next.Statistics.TotalSpins)
	clamp("statistics.totalPlayTime", &next.Statistics.TotalPlayTime)
	clamp("statistics.totalPurchases", &next.Statistics.TotalPurchases)
	clamp("statistics.highestScorePerSpin", &next.Statistics.HighestScorePerSpin)

	if lvl := state.LevelForScore(next.Score); next.Level != lvl {
		note("level %d did not match score, set to %d", next.Level, lvl)
	}
	state.SetScore(&next, next.Score)

	fork, ok := r.catalog.Fork(next.ActiveFork.ID)
	if !ok {
		note("active fork %q not in catalog, restored default", next.ActiveFork.ID)
		fork = r.catalog.DefaultFork()
	}
	fork.Owned = true
	if next.ActiveFork != fork {
		if ok {
			note("active fork %s restored from catalog", fork.ID)
		}
		next.ActiveFork = fork
	}

	seen := make(map[string]bool, len(next.OwnedUpgrades))
	owned := make([]string, 0, len(next.OwnedUpgrades))
	for _, id := range next.OwnedUpgrades {
		if seen[id] {
			note("duplicate owned upgrade %s", id)
			continue
		}
		seen[id] = true
		owned = append(owned, id)
	}
	next.OwnedUpgrades = owned

	achievements := r.catalog.NewAchievements()
	for i := range achievements {
		if stored := next.GetAchievement(achievements[i].ID); stored != nil {
			achievements[i].Unlocked = stored.Unlocked
		} else {
			note("achievement %s was missing", achievements[i].ID)
		}
	}
	next.Achievements = achievements

	missions := make([]state.Mission, 0, len(next.Missions))
	for _, m := range next.Missions {
		if def, ok := r.catalog.Mission(m.ID); ok {
			if m.Trigger == "" {
				m.Trigger = def.Trigger
			}
			if m.Type == "" {
				m.Type = def.Type
			}
			if m.Target < 1 {
				m.Target = def.Target
			}
		}
		if m.Target < 1 {
			note("dropped mission %s without a target", m.ID)
			continue
		}
		if m.Progress < 0 || m.Progress > m.Target {
			note("mission %s progress %d out of range", m.ID, m.Progress)
			m.Progress = max(0, min(m.Progress, m.Target))
		}
		if m.Progress == m.Target && !m.Completed {
			m.Completed = true
		}
		missions = append(missions, m)
	}
	next.Missions = missions

	if !ValidLanguage(next.Settings.Language) {
		note("unsupported language %q", next.Settings.Language)
		next.Settings.Language = DefaultSettings().Language
	}

	return next, notes
}
