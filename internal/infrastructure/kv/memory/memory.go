// Package memory provides an in-process KV implementation. It backs the
// "memory" storage driver (no persistence across restarts) and the store
// tests.
package memory

import (
	"context"
	"sync"
)

// Store is a map-backed KV. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob := make([]byte, len(value))
	copy(blob, value)
	s.data[key] = blob
	return nil
}

func (s *Store) Close(context.Context) error {
	return nil
}
