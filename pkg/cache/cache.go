package cache

import (
	"sync"
	"time"
)

// Store is an in-memory TTL cache for provider responses.
// Requests within the TTL window reuse the cached value so a dashboard
// refresh does not hammer the upstream data provider.
type Store struct {
	mu    sync.RWMutex
	items map[string]entry
	ttl   time.Duration
	now   func() time.Time
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// New creates a new Store with the given TTL.
func New(ttl time.Duration) *Store {
	return &Store{
		items: make(map[string]entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get retrieves a cached value. Expired entries are treated as absent.
func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.items[key]
	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores a value under key for the configured TTL.
func (s *Store) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = entry{
		value:     value,
		expiresAt: s.now().Add(s.ttl),
	}
}

// Delete removes a cached value.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
}

// Len returns the number of entries, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
