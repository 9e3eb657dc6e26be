package state

import (
	"context"
	"sync"
)

// MemoryStore keeps the encoded record in process memory.
// Records are kept encoded so callers never share slices with the store.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
	err  error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (*GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrStateNotFound
	}
	return decode(m.data)
}

func (m *MemoryStore) Save(_ context.Context, s *GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	data, err := encode(s)
	if err != nil {
		return err
	}
	m.data = data
	return nil
}

// FailSaves makes every following Save return err. Pass nil to recover.
func (m *MemoryStore) FailSaves(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}
