// Package history keeps the in-memory record of processing results. The
// store is injected into the pipeline so callers that need a shared history
// across pipeline instances can pass the same store explicitly.
package history

import (
	"sync"

	"github.com/avasilev/estate-doc-agent/internal/models"
)

// Store is an unbounded, append-only result list cleared only by Reset.
// Appends are synchronized so batch workers can share one store.
type Store struct {
	mu      sync.Mutex
	results []models.ProcessingResult
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(result models.ProcessingResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
}

// Snapshot returns a copy of the accumulated results in append order.
func (s *Store) Snapshot() []models.ProcessingResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]models.ProcessingResult, len(s.results))
	copy(snapshot, s.results)
	return snapshot
}

func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.results)
}
