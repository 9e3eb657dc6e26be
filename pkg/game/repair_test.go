package game

import (
	"reflect"
	"testing"

	"github.com/AccelByte/extend-macaroni-spin/pkg/state"
)

func TestRepair_FreshStateUntouched(t *testing.T) {
	r := newTestReducer()
	s := r.New(testNow)

	repaired, notes := r.Repair(s)
	if len(notes) != 0 {
		t.Errorf("notes = %v, expected none", notes)
	}
	if !reflect.DeepEqual(repaired, s) {
		t.Error("Repair() changed a valid state")
	}
}

func TestRepair_Corrections(t *testing.T) {
	r := newTestReducer()
	s := r.New(testNow)
	s.Score = -50
	s.PremiumCurrency = -1
	s.Level = 42
	s.ActiveFork = state.Fork{ID: "diamond", Multiplier: 1000}
	s.OwnedUpgrades = []string{"pesto", "pesto", "silver"}
	s.Achievements = []state.Achievement{{ID: "novice", Unlocked: true}}
	s.Missions = []state.Mission{
		{ID: "daily_spins", Target: 500, Progress: 900},
		{ID: "custom", Target: 0},
	}
	s.Settings.Language = "klingon"

	repaired, notes := r.Repair(s)

	if len(notes) == 0 {
		t.Fatal("Repair() reported no corrections")
	}
	if repaired.Score != 0 || repaired.PremiumCurrency != 0 || repaired.Level != 1 {
		t.Errorf("balances = score %d premium %d level %d", repaired.Score, repaired.PremiumCurrency, repaired.Level)
	}
	if repaired.ActiveFork.ID != "basic" || repaired.ActiveFork.Multiplier != 1 || !repaired.ActiveFork.Owned {
		t.Errorf("ActiveFork = %+v, expected default fork", repaired.ActiveFork)
	}
	if !reflect.DeepEqual(repaired.OwnedUpgrades, []string{"pesto", "silver"}) {
		t.Errorf("OwnedUpgrades = %v", repaired.OwnedUpgrades)
	}
	if len(repaired.Achievements) != 3 || !repaired.GetAchievement("novice").Unlocked {
		t.Errorf("Achievements = %+v", repaired.Achievements)
	}
	if repaired.GetAchievement("twirler").Metric != state.MetricTotalSpins {
		t.Error("missing achievement should be restored from the catalog")
	}

	m := repaired.GetMission("daily_spins")
	if m == nil || m.Progress != 500 || !m.Completed || m.Trigger != state.TriggerSpin || m.Type != state.MissionDaily {
		t.Errorf("daily_spins = %+v", m)
	}
	if repaired.GetMission("custom") != nil {
		t.Error("mission without target should be dropped")
	}
	if repaired.Settings.Language != "he" {
		t.Errorf("Language = %s, expected he", repaired.Settings.Language)
	}

	if s.Score != -50 {
		t.Error("Repair() mutated its input")
	}
}

func TestRepair_TamperedForkRestoredFromCatalog(t *testing.T) {
	r := newTestReducer()
	s := r.New(testNow)
	s.ActiveFork = state.Fork{ID: "gold", Name: "Gold Fork", Multiplier: 99, Price: 0, Owned: false}

	repaired, notes := r.Repair(s)
	if len(notes) != 1 {
		t.Errorf("notes = %v, expected one", notes)
	}
	if repaired.ActiveFork.Multiplier != 3 || !repaired.ActiveFork.Owned {
		t.Errorf("ActiveFork = %+v, expected catalog gold", repaired.ActiveFork)
	}
}

func TestRepair_NilCollections(t *testing.T) {
	r := newTestReducer()
	var s state.GameState
	s.ActiveFork = r.catalog.DefaultFork()
	s.Settings = DefaultSettings()

	repaired, _ := r.Repair(s)
	if repaired.OwnedUpgrades == nil || repaired.Missions == nil || repaired.Achievements == nil {
		t.Error("Repair() should fill nil collections")
	}
	if repaired.Level != 1 || repaired.Statistics.MaxLevel != 1 {
		t.Errorf("Level = %d, MaxLevel = %d", repaired.Level, repaired.Statistics.MaxLevel)
	}
}
