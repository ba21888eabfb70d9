package memory

import (
	"context"
	"sync"
	"time"

	"gemledger/contexts/ledger/audit/domain/entities"
	domainerrors "gemledger/contexts/ledger/audit/domain/errors"
)

// Store keeps the audit trail as an append-only slice with an id index.
type Store struct {
	mu      sync.RWMutex
	entries []entities.Entry
	byID    map[string]int
}

func NewStore() *Store {
	return &Store{byID: make(map[string]int)}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) Append(_ context.Context, entry entities.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[entry.EntryID] = len(s.entries)
	s.entries = append(s.entries, entry)
	return nil
}

func (s *Store) ListByEntity(_ context.Context, entityType string, entityID string) ([]entities.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Entry, 0)
	for _, entry := range s.entries {
		if entry.EntityType == entityType && entry.EntityID == entityID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (s *Store) ListAll(_ context.Context) ([]entities.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *Store) ListPending(_ context.Context, limit int) ([]entities.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Entry, 0, limit)
	for _, entry := range s.entries {
		if entry.Published {
			continue
		}
		out = append(out, entry)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *Store) MarkPublished(_ context.Context, entryID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byID[entryID]
	if !ok {
		return domainerrors.ErrEntryNotFound
	}
	s.entries[idx].Published = true
	s.entries[idx].PublishedAt = now.UTC()
	return nil
}
