package store

import (
	"context"
	"sync"
)

// MemoryStore keeps configurations for the lifetime of the process
type MemoryStore struct {
	mu      sync.RWMutex
	configs map[string]*StoredConfiguration
	order   []string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		configs: make(map[string]*StoredConfiguration),
	}
}

func (s *MemoryStore) Put(ctx context.Context, cfg *StoredConfiguration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.configs[cfg.ID]; !exists {
		s.order = append(s.order, cfg.ID)
	}
	s.configs[cfg.ID] = cfg
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*StoredConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, ok := s.configs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cfg, nil
}

func (s *MemoryStore) List(ctx context.Context) ([]*StoredConfiguration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*StoredConfiguration, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.configs[id])
	}
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.configs[id]; !ok {
		return ErrNotFound
	}
	delete(s.configs, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Ping always succeeds; the in-memory store has no backing service
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
