package catalog

import (
	"fmt"

	"github.com/AccelByte/extend-macaroni-spin/pkg/state"
)

func int64Ptr(v int64) *int64 { return &v }

// Default returns the built-in catalog. Each call returns an independent copy.
func Default() *Catalog {
	forks := []state.Fork{
		{ID: "basic", Name: "Basic Fork", Multiplier: 1, Price: 0, Owned: true},
		{ID: "silver", Name: "Silver Fork", Multiplier: 2, Price: 10000},
		{ID: "gold", Name: "Gold Fork", Multiplier: 3, Price: 50000},
		{ID: "platinum", Name: "Platinum Fork", Multiplier: 5, Price: 200000},
	}

	items := []state.ShopItem{
		{ID: "marinara", Name: "Marinara", Price: 5000, Category: state.CategorySauces, Description: "Classic tomato sauce", VisualOnly: true},
		{ID: "pesto", Name: "Pesto", Price: 7500, Category: state.CategorySauces, Description: "Aromatic basil sauce", VisualOnly: true},
		{ID: "alfredo", Name: "Alfredo", Price: 10000, Category: state.CategorySauces, Description: "Rich cream sauce", VisualOnly: true},
		{ID: "spaghetti", Name: "Spaghetti", Price: 3000, Category: state.CategoryPasta, Description: "Long thin pasta", VisualOnly: true},
		{ID: "penne", Name: "Penne", Price: 4000, Category: state.CategoryPasta, Description: "Tube pasta", VisualOnly: true},
		{ID: "fusilli", Name: "Fusilli", Price: 5000, Category: state.CategoryPasta, Description: "Spiral pasta", VisualOnly: true},
	}
	// the basic fork is owned from the start and never sold
	for _, f := range forks[1:] {
		items = append(items, state.ShopItem{
			ID:          f.ID,
			Name:        f.Name,
			Price:       f.Price,
			Category:    state.CategoryForks,
			Description: fmt.Sprintf("Fork with a x%d multiplier", f.Multiplier),
			Effect:      fmt.Sprintf("x%d multiplier", f.Multiplier),
		})
	}
	items = append(items, state.ShopItem{
		ID:           "golden_multiplier",
		Name:         "Golden Multiplier",
		Price:        0,
		PremiumPrice: int64Ptr(100),
		Category:     state.CategoryPremium,
		Description:  "Permanent x1.5 multiplier",
		Effect:       "x1.5 multiplier",
	})

	return &Catalog{
		Forks:     forks,
		ShopItems: items,
		Achievements: []state.Achievement{
			{
				ID: "novice", Name: "Spin Novice", Description: "Spin 1,000 times",
				Condition: 1000, Metric: state.MetricTotalSpins,
				Reward: state.Reward{Type: state.RewardScore, Amount: 5000},
			},
			{
				ID: "twirler", Name: "Spin Expert", Description: "Spin 10,000 times",
				Condition: 10000, Metric: state.MetricTotalSpins,
				Reward: state.Reward{Type: state.RewardMultiplier, Factor: 1.1, Duration: 3600},
			},
			{
				ID: "overachiever", Name: "Overachiever", Description: "Reach level 10",
				Condition: 10, Metric: state.MetricLevel,
				Reward: state.Reward{Type: state.RewardPremium, Amount: 100},
			},
		},
		Missions: []state.Mission{
			{
				ID: "daily_spins", Name: "Daily Spins", Description: "Spin 500 times today",
				Target: 500, Type: state.MissionDaily, Trigger: state.TriggerSpin,
				Reward: state.Reward{Type: state.RewardScore, Amount: 10000},
			},
			{
				ID: "daily_shop", Name: "Daily Shopping", Description: "Buy 3 items from the shop",
				Target: 3, Type: state.MissionDaily, Trigger: state.TriggerPurchase,
				Reward: state.Reward{Type: state.RewardPremium, Amount: 50},
			},
		},
		DailyRewards: []state.Reward{
			{Type: state.RewardScore, Amount: 5000},
			{Type: state.RewardScore, Amount: 10000},
			{Type: state.RewardPremium, Amount: 50},
			{Type: state.RewardScore, Amount: 15000},
			{Type: state.RewardPremium, Amount: 75},
			{Type: state.RewardScore, Amount: 25000},
			{Type: state.RewardPremium, Amount: 100},
		},
	}
}
