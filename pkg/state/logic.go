// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package state

import (
	"time"

	"github.com/sirupsen/logrus"
)

// PointsPerLevel is the score width of one level.
const PointsPerLevel int64 = 100000

// LevelForScore derives the level from the score. Negative scores map to level 1.
func LevelForScore(score int64) int64 {
	if score < 0 {
		return 1
	}
	return score/PointsPerLevel + 1
}

// SetScore updates the score and keeps level and the max-level statistic in sync.
func SetScore(s *GameState, score int64) {
	if score < 0 {
		score = 0
	}
	s.Score = score
	s.Level = LevelForScore(score)
	if s.Level > s.Statistics.MaxLevel {
		s.Statistics.MaxLevel = s.Level
	}
}

// SameDay reports whether a and b fall on the same calendar day in b's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween counts whole calendar days from a to b, both taken in b's location.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// CheckDayRollover resets the daily parts of the state when today is a
// different calendar day than the last login. It reports whether a rollover
// happened. lastLoginDate is stamped with today in both cases.
func CheckDayRollover(s *GameState, today time.Time, streakDecay bool) bool {
	last := s.LastLoginDate
	s.LastLoginDate = today

	if !last.IsZero() && SameDay(last, today) {
		return false
	}

	for i := range s.Missions {
		if s.Missions[i].Type == MissionDaily {
			s.Missions[i].Progress = 0
			s.Missions[i].Completed = false
		}
	}
	s.DailyRewardClaimed = false

	if streakDecay && !last.IsZero() && DaysBetween(last, today) > 1 {
		logrus.Debugf("streak reset after %d days away", DaysBetween(last, today))
		s.DailyRewardStreak = 0
	}

	logrus.Debugf("day rollover: last login %s, today %s", last.Format(time.DateOnly), today.Format(time.DateOnly))
	return true
}

// AdvanceMissions adds one step of progress to every open mission with the
// given trigger and returns the ids of missions completed by this step.
func AdvanceMissions(s *GameState, trigger MissionTrigger) []string {
	var completed []string
	for i := range s.Missions {
		m := &s.Missions[i]
		if m.Trigger != trigger || m.Completed {
			continue
		}
		m.Progress++
		if m.Progress >= m.Target {
			m.Progress = m.Target
			m.Completed = true
			completed = append(completed, m.ID)
		}
	}
	return completed
}

// RemoveMission drops the mission with the given id, keeping order.
func RemoveMission(s *GameState, id string) {
	kept := s.Missions[:0]
	for _, m := range s.Missions {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.Missions = kept
}
