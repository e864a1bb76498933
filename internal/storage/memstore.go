package storage

import (
	"encoding/json"
	"sync"
)

// MemStore is an in-memory Store. It backs tests and any environment
// without a writable filesystem, and round-trips values through JSON so
// it keeps the same serialization behavior as FileStore.
type MemStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{slots: make(map[string][]byte)}
}

func (s *MemStore) Read(key string, dest any) bool {
	s.mu.RLock()
	raw, ok := s.slots[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (s *MemStore) Write(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.slots[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Remove(key string) error {
	s.mu.Lock()
	delete(s.slots, key)
	s.mu.Unlock()
	return nil
}

// Corrupt overwrites a slot with non-JSON bytes. Test helper for the
// fail-soft read path.
func (s *MemStore) Corrupt(key string) {
	s.mu.Lock()
	s.slots[key] = []byte("{not json")
	s.mu.Unlock()
}
