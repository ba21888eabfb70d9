package memory

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	domainerrors "gemledger/contexts/ledger/content-store/domain/errors"
)

// Store keeps blobs in process memory keyed by the hex digest of their
// content.
type Store struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewStore() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

func (s *Store) Put(_ context.Context, data []byte) (string, error) {
	sum := sha256.Sum256(data)
	ref := hex.EncodeToString(sum[:])

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blobs[ref]; !ok {
		stored := make([]byte, len(data))
		copy(stored, data)
		s.blobs[ref] = stored
	}
	return ref, nil
}

func (s *Store) Get(_ context.Context, ref string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.blobs[ref]
	if !ok {
		return nil, domainerrors.ErrContentNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}
