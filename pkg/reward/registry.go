// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package reward applies Reward values to a GameState through a registry
// of per-kind appliers.
package reward

import (
	"fmt"
	"sync"

	"github.com/AccelByte/extend-macaroni-spin/pkg/state"
)

// Applier grants one kind of reward. Apply mutates s in place; callers pass a copy.
type Applier interface {
	Kind() state.RewardKind
	Apply(s *state.GameState, r state.Reward) error
}

// Registry manages available reward appliers.
// It provides thread-safe registration and lookup of appliers.
type Registry struct {
	appliers map[state.RewardKind]Applier
	mu       sync.RWMutex
}

// NewRegistry creates a new empty reward registry.
func NewRegistry() *Registry {
	return &Registry{
		appliers: make(map[state.RewardKind]Applier),
	}
}

// Register adds an applier to the registry.
// Returns an error if an applier for the same kind already exists.
func (r *Registry) Register(a Applier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.appliers[a.Kind()]; exists {
		return fmt.Errorf("reward applier %s already registered", a.Kind())
	}

	r.appliers[a.Kind()] = a
	return nil
}

// Get returns the applier for a kind, or nil.
func (r *Registry) Get(kind state.RewardKind) Applier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.appliers[kind]
}

// Supports reports whether rewards of this kind can be applied.
func (r *Registry) Supports(kind state.RewardKind) bool {
	return r.Get(kind) != nil
}

// Apply grants rw to s. Unknown kinds fail with ErrUnsupportedReward and leave s untouched.
func (r *Registry) Apply(s *state.GameState, rw state.Reward) error {
	a := r.Get(rw.Type)
	if a == nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedReward, rw.Type)
	}
	return a.Apply(s, rw)
}

// Count returns the number of registered appliers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.appliers)
}
