// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package popup tracks transient score popups that dismiss themselves.
package popup

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a popup stays visible.
const DefaultTTL = time.Second

// Popup is one floating "+points" label.
type Popup struct {
	ID        string    `json:"id"`
	Points    int64     `json:"points"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	CreatedAt time.Time `json:"createdAt"`
}

type entry struct {
	popup Popup
	timer *time.Timer
}

// Scheduler owns the live popups and their dismissal timers. Safe for concurrent use.
type Scheduler struct {
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]*entry
	order   []string
}

// NewScheduler creates a scheduler. A non-positive ttl uses DefaultTTL.
func NewScheduler(ttl time.Duration) *Scheduler {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Scheduler{
		ttl:     ttl,
		entries: make(map[string]*entry),
	}
}

// Show registers a popup and arms its dismissal timer.
func (s *Scheduler) Show(points int64, x, y float64) Popup {
	p := Popup{
		ID:        uuid.NewString(),
		Points:    points,
		X:         x,
		Y:         y,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := p.ID
	s.entries[id] = &entry{
		popup: p,
		timer: time.AfterFunc(s.ttl, func() { s.Dismiss(id) }),
	}
	s.order = append(s.order, id)
	return p
}

// Dismiss removes a popup and cancels its timer. Unknown or already
// dismissed ids are ignored; the return value reports whether a popup was removed.
func (s *Scheduler) Dismiss(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(s.entries, id)

	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Active lists the live popups in creation order.
func (s *Scheduler) Active() []Popup {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Popup, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id].popup)
	}
	return out
}

// Close cancels every pending timer and drops all popups.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		e.timer.Stop()
	}
	s.entries = make(map[string]*entry)
	s.order = nil
}
