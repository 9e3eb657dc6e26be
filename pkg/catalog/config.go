// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/AccelByte/extend-macaroni-spin/pkg/state"
)

// LoadOrDefault returns the built-in catalog when path is empty or names no
// file, otherwise the file at path.
func LoadOrDefault(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		logrus.Infof("using built-in catalog")
		return Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logrus.Infof("no catalog file at %s, using built-in catalog", path)
		return Default(), nil
	}
	return Load(path)
}

// Load loads a catalog from a YAML file. Sections missing from the file keep
// their built-in content.
// Supports environment variable expansion in the form ${VAR_NAME} or ${VAR_NAME:default}.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	cat, err := Parse([]byte(expandEnvVars(string(data))))
	if err != nil {
		return nil, err
	}

	logrus.Infof("loaded catalog from %s: %d forks, %d shop items, %d achievements, %d missions",
		path, len(cat.Forks), len(cat.ShopItems), len(cat.Achievements), len(cat.Missions))
	return cat, nil
}

// Parse decodes and validates YAML catalog content.
func Parse(data []byte) (*Catalog, error) {
	var file Catalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML catalog: %w", err)
	}

	cat := Default()
	if file.Forks != nil {
		cat.Forks = file.Forks
	}
	if file.ShopItems != nil {
		cat.ShopItems = file.ShopItems
	}
	if file.Achievements != nil {
		cat.Achievements = file.Achievements
	}
	if file.Missions != nil {
		cat.Missions = file.Missions
	}
	if file.DailyRewards != nil {
		cat.DailyRewards = file.DailyRewards
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return cat, nil
}

// Validate validates the catalog for common errors.
func (c *Catalog) Validate() error {
	if len(c.Forks) == 0 {
		return fmt.Errorf("catalog has no forks")
	}

	forkIDs := make(map[string]bool)
	defaults := 0
	for _, f := range c.Forks {
		if f.ID == "" {
			return fmt.Errorf("fork with empty ID found")
		}
		if forkIDs[f.ID] {
			return fmt.Errorf("duplicate fork ID: %s", f.ID)
		}
		forkIDs[f.ID] = true

		if f.Multiplier < 1 {
			return fmt.Errorf("fork %s has multiplier %d, must be at least 1", f.ID, f.Multiplier)
		}
		if f.Price < 0 {
			return fmt.Errorf("fork %s has negative price", f.ID)
		}
		if f.Owned {
			if f.Price != 0 {
				return fmt.Errorf("default fork %s must be free", f.ID)
			}
			defaults++
		}
	}
	if defaults != 1 {
		return fmt.Errorf("catalog must have exactly one owned fork, found %d", defaults)
	}

	itemIDs := make(map[string]bool)
	for _, it := range c.ShopItems {
		if it.ID == "" {
			return fmt.Errorf("shop item with empty ID found")
		}
		if itemIDs[it.ID] {
			return fmt.Errorf("duplicate shop item ID: %s", it.ID)
		}
		itemIDs[it.ID] = true

		switch it.Category {
		case state.CategorySauces, state.CategoryPasta, state.CategoryPremium:
		case state.CategoryForks:
			if !forkIDs[it.ID] {
				return fmt.Errorf("shop item %s is in forks category but has no fork entry", it.ID)
			}
		default:
			return fmt.Errorf("shop item %s has unknown category %q", it.ID, it.Category)
		}

		if it.Price < 0 || (it.PremiumPrice != nil && *it.PremiumPrice < 0) {
			return fmt.Errorf("shop item %s has negative price", it.ID)
		}
	}

	achievementIDs := make(map[string]bool)
	for _, a := range c.Achievements {
		if a.ID == "" {
			return fmt.Errorf("achievement with empty ID found")
		}
		if achievementIDs[a.ID] {
			return fmt.Errorf("duplicate achievement ID: %s", a.ID)
		}
		achievementIDs[a.ID] = true

		if a.Condition < 1 {
			return fmt.Errorf("achievement %s has condition %d, must be at least 1", a.ID, a.Condition)
		}
		if a.Metric != state.MetricTotalSpins && a.Metric != state.MetricLevel {
			return fmt.Errorf("achievement %s has unknown metric %q", a.ID, a.Metric)
		}
		if err := validateReward(a.Reward); err != nil {
			return fmt.Errorf("achievement %s: %w", a.ID, err)
		}
	}

	missionIDs := make(map[string]bool)
	for _, m := range c.Missions {
		if m.ID == "" {
			return fmt.Errorf("mission with empty ID found")
		}
		if missionIDs[m.ID] {
			return fmt.Errorf("duplicate mission ID: %s", m.ID)
		}
		missionIDs[m.ID] = true

		if m.Target < 1 {
			return fmt.Errorf("mission %s has target %d, must be at least 1", m.ID, m.Target)
		}
		switch m.Type {
		case state.MissionDaily, state.MissionWeekly, state.MissionPermanent:
		default:
			return fmt.Errorf("mission %s has unknown type %q", m.ID, m.Type)
		}
		if m.Trigger != state.TriggerSpin && m.Trigger != state.TriggerPurchase {
			return fmt.Errorf("mission %s has unknown trigger %q", m.ID, m.Trigger)
		}
		if err := validateReward(m.Reward); err != nil {
			return fmt.Errorf("mission %s: %w", m.ID, err)
		}
	}

	if len(c.DailyRewards) != ScheduleLength {
		return fmt.Errorf("daily reward schedule has %d entries, expected %d", len(c.DailyRewards), ScheduleLength)
	}
	for i, r := range c.DailyRewards {
		if err := validateReward(r); err != nil {
			return fmt.Errorf("daily reward %d: %w", i+1, err)
		}
	}

	return nil
}

func validateReward(r state.Reward) error {
	switch r.Type {
	case state.RewardScore, state.RewardPremium:
		if r.Amount < 0 {
			return fmt.Errorf("%s reward has negative amount", r.Type)
		}
	case state.RewardMultiplier:
		if r.Factor <= 0 {
			return fmt.Errorf("multiplier reward needs a positive factor")
		}
	case state.RewardItem:
		if r.ItemID == "" {
			return fmt.Errorf("item reward has no item id")
		}
	default:
		return fmt.Errorf("unknown reward type %q", r.Type)
	}
	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or ${VAR:default}.
func expandEnvVars(s string) string {
	return os.Expand(s, func(key string) string {
		parts := strings.SplitN(key, ":", 2)
		varName := parts[0]
		defaultValue := ""
		if len(parts) == 2 {
			defaultValue = parts[1]
		}

		value := os.Getenv(varName)
		if value == "" {
			return defaultValue
		}
		return value
	})
}
