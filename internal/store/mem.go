package store

import (
	"context"
	"sync"
)

var _ Store = (*MemStore)(nil)

// MemStore is used with the "memory" backend and in unit tests.
type MemStore struct {
	mutex sync.RWMutex
	data  map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string][]byte),
	}
}

func (s *MemStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	data, ok := s.data[key]
	if !ok {
		return nil, nil
	}

	// callers may keep the slice around
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (s *MemStore) Save(_ context.Context, key string, data []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	s.data[key] = cp
	return nil
}
