// Package memory is an in-memory ttl storage for cached responses.
package memory

import (
	"sync"
	"time"
)

type entry struct {
	content   []byte
	expiresAt time.Time
}

// Storage ...
type Storage struct {
	mu sync.Mutex
	m  map[string]entry

	now func() time.Time
}

// NewStorage creates new instance of Storage.
func NewStorage() *Storage {
	return &Storage{
		m:   map[string]entry{},
		now: time.Now,
	}
}

// Get returns content stored for the key, nil if absent or expired.
func (s *Storage) Get(key string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.m[key]
	if !ok {
		return nil
	}

	if s.now().After(e.expiresAt) {
		delete(s.m, key)
		return nil
	}

	return e.content
}

// Set stores content for the key for the given duration.
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[key] = entry{
		content:   content,
		expiresAt: s.now().Add(duration),
	}
}
