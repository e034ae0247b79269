package kv

import (
	"bytes"
	"context"
	"sync"

	"eatery-api/internal/infra"
)

// MemoryStore is the default backend and the substitute used by tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string][]byte),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = clone(value)
	return nil
}

func (s *MemoryStore) CompareAndSwap(_ context.Context, key string, expected, next []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.values[key]
	if expected == nil {
		if ok {
			return infra.WrapRepoErr(infra.KindConflict, "key already written: "+key, nil)
		}
	} else {
		if !ok || !bytes.Equal(current, expected) {
			return infra.WrapRepoErr(infra.KindConflict, "stored value changed under key: "+key, nil)
		}
	}

	s.values[key] = clone(next)
	return nil
}

func clone(value []byte) []byte {
	out := make([]byte, len(value))
	copy(out, value)
	return out
}
