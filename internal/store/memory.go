package store

import (
	"context"
	"sync"
	"time"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
)

// MemoryStore keeps records in process memory.
type MemoryStore struct {
	records map[string]Record
	mu      sync.RWMutex
	now     func() time.Time
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
		now:     time.Now,
	}
}

// Get returns a copy of the client's record.
func (s *MemoryStore) Get(ctx context.Context, clientID string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	if err := validateClientID(clientID); err != nil {
		return Record{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[clientID]
	if !ok {
		return Record{Inputs: domain.ScenarioInputs{}}, nil
	}
	return Record{Inputs: rec.Inputs.Clone(), UpdatedAt: rec.UpdatedAt}, nil
}

// Save replaces the client's record.
func (s *MemoryStore) Save(ctx context.Context, clientID string, inputs domain.ScenarioInputs) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	if err := validateClientID(clientID); err != nil {
		return Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Record{Inputs: compact(inputs), UpdatedAt: s.now().UTC()}
	s.records[clientID] = rec
	return Record{Inputs: rec.Inputs.Clone(), UpdatedAt: rec.UpdatedAt}, nil
}
