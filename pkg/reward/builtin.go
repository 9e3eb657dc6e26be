package reward

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/AccelByte/extend-macaroni-spin/pkg/catalog"
	"github.com/AccelByte/extend-macaroni-spin/pkg/state"
)

// ScoreApplier adds soft currency and recomputes the level.
type ScoreApplier struct{}

func (ScoreApplier) Kind() state.RewardKind { return state.RewardScore }

func (ScoreApplier) Apply(s *state.GameState, r state.Reward) error {
	if r.Amount < 0 {
		return fmt.Errorf("%w: negative score amount %d", ErrInvalidReward, r.Amount)
	}
	state.SetScore(s, s.Score+r.Amount)
	return nil
}

// PremiumApplier adds premium currency.
type PremiumApplier struct{}

func (PremiumApplier) Kind() state.RewardKind { return state.RewardPremium }

func (PremiumApplier) Apply(s *state.GameState, r state.Reward) error {
	if r.Amount < 0 {
		return fmt.Errorf("%w: negative premium amount %d", ErrInvalidReward, r.Amount)
	}
	s.PremiumCurrency += r.Amount
	return nil
}

// ItemApplier grants a catalog item without cost. An already owned item is a no-op.
type ItemApplier struct {
	Catalog *catalog.Catalog
}

func (ItemApplier) Kind() state.RewardKind { return state.RewardItem }

func (a ItemApplier) Apply(s *state.GameState, r state.Reward) error {
	if _, ok := a.Catalog.ShopItem(r.ItemID); !ok {
		return fmt.Errorf("%w: unknown item %q", ErrInvalidReward, r.ItemID)
	}
	if s.Owns(r.ItemID) {
		logrus.Debugf("item reward %s already owned", r.ItemID)
		return nil
	}
	s.OwnedUpgrades = append(s.OwnedUpgrades, r.ItemID)
	return nil
}

// NewDefaultRegistry registers the score, premium and item appliers.
// Multiplier rewards have no applier and are refused.
func NewDefaultRegistry(cat *catalog.Catalog) *Registry {
	reg := NewRegistry()
	for _, a := range []Applier{ScoreApplier{}, PremiumApplier{}, ItemApplier{Catalog: cat}} {
		if err := reg.Register(a); err != nil {
			logrus.Errorf("failed to register reward applier %s: %v", a.Kind(), err)
		}
	}
	return reg
}
