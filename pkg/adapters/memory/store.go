package memory

import (
	"context"
	"sync"

	"github.com/aretw0/turing/pkg/domain"
)

// Store implements ports.ResultStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.RunRecord
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]domain.RunRecord),
	}
}

// Save persists a copy of the record.
func (s *Store) Save(ctx context.Context, record *domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[record.ID] = *record
	return nil
}

// Load returns a copy so callers can't mutate stored records through the pointer.
func (s *Store) Load(ctx context.Context, runID string) (*domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.data[runID]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return &record, nil
}

// Delete removes the record.
func (s *Store) Delete(ctx context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, runID)
	return nil
}

// List returns stored run IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]string, 0, len(s.data))
	for id := range s.data {
		runs = append(runs, id)
	}
	return runs, nil
}
