// Package memory keeps the snapshot in process memory. Used in dev mode and
// tests; nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"github.com/Pazmazz/Mr-Tuckers-Car-Dealership/internal/store"
)

type Store struct {
	mu       sync.RWMutex
	snapshot []byte
}

func New() *Store {
	return &Store{}
}

func (s *Store) Load(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, store.ErrNoSnapshot
	}
	out := make([]byte, len(s.snapshot))
	copy(out, s.snapshot)
	return out, nil
}

func (s *Store) Save(_ context.Context, snapshot []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = make([]byte, len(snapshot))
	copy(s.snapshot, snapshot)
	return nil
}
