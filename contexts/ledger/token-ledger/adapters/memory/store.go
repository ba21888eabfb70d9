package memory

import (
	"context"
	"sync"
	"time"

	"gemledger/contexts/ledger/token-ledger/domain/entities"
	domainerrors "gemledger/contexts/ledger/token-ledger/domain/errors"
	"gemledger/internal/shared/address"
)

// Store keeps token ownership in process memory: the token table plus a
// per-owner index for enumeration.
type Store struct {
	mu         sync.RWMutex
	tokens     map[uint64]entities.Token
	ownerIndex map[string][]uint64
	nextID     uint64
}

func NewStore() *Store {
	return &Store{
		tokens:     make(map[uint64]entities.Token),
		ownerIndex: make(map[string][]uint64),
		nextID:     1,
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) Mint(_ context.Context, to string, metadataRef string, now time.Time) (entities.Token, error) {
	if address.IsZero(to) {
		return entities.Token{}, domainerrors.ErrInvalidRecipient
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	owner := address.Normalize(to)
	token := entities.Token{
		TokenID:     s.nextID,
		Owner:       owner,
		MetadataRef: metadataRef,
		MintedAt:    now.UTC(),
	}
	s.nextID++
	s.tokens[token.TokenID] = token
	s.ownerIndex[owner] = append(s.ownerIndex[owner], token.TokenID)
	return token, nil
}

func (s *Store) RevertMint(_ context.Context, tokenID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Only the most recent mint can be reverted; anything else would
	// punch a hole into the id sequence.
	if tokenID == 0 || tokenID != s.nextID-1 {
		return domainerrors.ErrTokenNotFound
	}
	token, ok := s.tokens[tokenID]
	if !ok {
		return domainerrors.ErrTokenNotFound
	}

	delete(s.tokens, tokenID)
	s.ownerIndex[token.Owner] = removeID(s.ownerIndex[token.Owner], tokenID)
	s.nextID--
	return nil
}

func (s *Store) Transfer(_ context.Context, from string, to string, tokenID uint64, now time.Time) (entities.Token, error) {
	if address.IsZero(to) {
		return entities.Token{}, domainerrors.ErrInvalidRecipient
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.tokens[tokenID]
	if !ok {
		return entities.Token{}, domainerrors.ErrTokenNotFound
	}
	sender := address.Normalize(from)
	if token.Owner != sender {
		return entities.Token{}, domainerrors.ErrNotTokenOwner
	}

	recipient := address.Normalize(to)
	s.ownerIndex[sender] = removeID(s.ownerIndex[sender], tokenID)
	s.ownerIndex[recipient] = append(s.ownerIndex[recipient], tokenID)
	token.Owner = recipient
	s.tokens[tokenID] = token
	return token, nil
}

func (s *Store) GetToken(_ context.Context, tokenID uint64) (entities.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[tokenID]
	if !ok {
		return entities.Token{}, domainerrors.ErrTokenNotFound
	}
	return token, nil
}

func (s *Store) BalanceOf(_ context.Context, owner string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.ownerIndex[address.Normalize(owner)]), nil
}

func (s *Store) TokenOfOwnerByIndex(_ context.Context, owner string, index int) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.ownerIndex[address.Normalize(owner)]
	if index < 0 || index >= len(ids) {
		return 0, domainerrors.ErrIndexOutOfRange
	}
	return ids[index], nil
}

func removeID(ids []uint64, target uint64) []uint64 {
	filtered := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id != target {
			filtered = append(filtered, id)
		}
	}
	return filtered
}
