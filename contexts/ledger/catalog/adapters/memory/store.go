package memory

import (
	"context"
	"math/big"
	"sync"
	"time"

	"gemledger/contexts/ledger/catalog/domain/entities"
	domainerrors "gemledger/contexts/ledger/catalog/domain/errors"
	"gemledger/contexts/ledger/catalog/ports"
	"gemledger/internal/shared/address"
)

// Store keeps item records in process memory. skus are allocated under the
// store mutex, so they are strictly sequential with no gaps or reuse.
type Store struct {
	mu      sync.RWMutex
	items   map[uint64]entities.Item
	nextSKU uint64
}

func NewStore() *Store {
	return &Store{
		items: make(map[uint64]entities.Item),
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) InsertItem(_ context.Context, item entities.Item) (entities.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item = item.Clone()
	item.SKU = s.nextSKU
	s.nextSKU++
	s.items[item.SKU] = item
	return item.Clone(), nil
}

func (s *Store) GetItem(_ context.Context, sku uint64) (entities.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[sku]
	if !ok {
		return entities.Item{}, domainerrors.ErrItemNotFound
	}
	return item.Clone(), nil
}

func (s *Store) ListForSale(_ context.Context) ([]entities.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Ascending sku walk over everything ever listed.
	items := make([]entities.Item, 0)
	for sku := uint64(0); sku < s.nextSKU; sku++ {
		item, ok := s.items[sku]
		if !ok || item.State != entities.StateForSale {
			continue
		}
		items = append(items, item.Clone())
	}
	return items, nil
}

// SettleItem runs the whole purchase critical section. The state mutation
// happens before the settle callback so the mint and the value transfer
// always observe a Sold item; a callback error restores the prior record.
func (s *Store) SettleItem(
	_ context.Context,
	sku uint64,
	buyer string,
	payment *big.Int,
	now time.Time,
	settle ports.SettleFunc,
) (entities.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prior, ok := s.items[sku]
	if !ok {
		return entities.Item{}, domainerrors.ErrItemNotFound
	}
	if prior.State != entities.StateForSale {
		return entities.Item{}, domainerrors.ErrItemNotForSale
	}
	if payment == nil || payment.Cmp(prior.PriceWei) < 0 {
		return entities.Item{}, domainerrors.ErrNotPaidEnough
	}

	item := prior.Clone()
	item.State = entities.StateSold
	item.Buyer = address.Normalize(buyer)
	item.UpdatedAt = now.UTC()
	s.items[sku] = item

	tokenID, err := settle(item.Clone())
	if err != nil {
		s.items[sku] = prior
		return entities.Item{}, err
	}

	item.TokenID = tokenID
	s.items[sku] = item
	return item.Clone(), nil
}
