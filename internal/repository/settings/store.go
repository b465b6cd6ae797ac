// Package settings keeps the current generator configuration in memory.
package settings

import (
	"sync"

	"github.com/kailas-cloud/indexgen/internal/domain/generator"
)

// Store holds one configuration record. It is never persisted; a restart
// returns to the initial value.
type Store struct {
	mu  sync.RWMutex
	cfg generator.Config
}

// New creates a store seeded with initial.
func New(initial generator.Config) *Store {
	return &Store{cfg: initial}
}

// Get returns a copy of the current configuration.
func (s *Store) Get() generator.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update replaces the configuration with fn(current). If fn returns an error
// the record is left unchanged.
func (s *Store) Update(fn func(generator.Config) (generator.Config, error)) (generator.Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.cfg)
	if err != nil {
		return s.cfg, err
	}
	s.cfg = next
	return next, nil
}
