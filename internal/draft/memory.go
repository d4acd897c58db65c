package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is the in-process Store used by tests. It round-trips values
// through JSON so it behaves the same as the Redis store.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (s *MemoryStore) Save(_ context.Context, sessionID, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode draft %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID+":"+key] = b
	return nil
}

func (s *MemoryStore) Load(_ context.Context, sessionID, key string, dest any) error {
	s.mu.Lock()
	b, ok := s.data[sessionID+":"+key]
	s.mu.Unlock()
	if !ok {
		return ErrMissingKey
	}
	return json.Unmarshal(b, dest)
}

func (s *MemoryStore) Delete(_ context.Context, sessionID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID+":"+key)
	return nil
}
