package memory

import (
	"context"
	"sync"
	"time"

	"gemledger/contexts/ledger/access-registry/domain/entities"
	domainerrors "gemledger/contexts/ledger/access-registry/domain/errors"
	"gemledger/internal/shared/address"
)

// Store keeps the role sets in process memory. All mutations run under one
// mutex so role changes are serialized the way the ledger requires.
type Store struct {
	mu        sync.RWMutex
	admins    map[string]entities.Admin
	suppliers map[string]entities.Supplier
}

// NewStore seeds the deployer-derived genesis admin. The registry is never
// valid without one at genesis, though admins may later remove it.
func NewStore(genesisAdmin string) *Store {
	s := &Store{
		admins:    make(map[string]entities.Admin),
		suppliers: make(map[string]entities.Supplier),
	}
	if !address.IsZero(genesisAdmin) {
		normalized := address.Normalize(genesisAdmin)
		s.admins[normalized] = entities.Admin{
			Address: normalized,
			AddedAt: time.Now().UTC(),
		}
	}
	return s
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) IsAdmin(_ context.Context, addr string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.admins[address.Normalize(addr)]
	return ok, nil
}

func (s *Store) AddAdmin(_ context.Context, addr string, now time.Time) (entities.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := address.Normalize(addr)
	if normalized == "" {
		return entities.Admin{}, domainerrors.ErrInvalidAddress
	}
	// Re-adding an existing admin is an accepted no-op write.
	if existing, ok := s.admins[normalized]; ok {
		return existing, nil
	}
	admin := entities.Admin{Address: normalized, AddedAt: now.UTC()}
	s.admins[normalized] = admin
	return admin, nil
}

func (s *Store) RemoveAdmin(_ context.Context, addr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.admins, address.Normalize(addr))
	return nil
}

func (s *Store) UpsertSupplier(_ context.Context, addr string, name string, now time.Time) (entities.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := address.Normalize(addr)
	if normalized == "" {
		return entities.Supplier{}, domainerrors.ErrInvalidAddress
	}

	supplier, ok := s.suppliers[normalized]
	if !ok {
		supplier = entities.Supplier{Address: normalized, AddedAt: now.UTC()}
	}
	supplier.Name = name
	supplier.Active = true
	supplier.UpdatedAt = now.UTC()
	s.suppliers[normalized] = supplier
	return supplier, nil
}

func (s *Store) SetSupplierActive(_ context.Context, addr string, active bool, now time.Time) (entities.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := address.Normalize(addr)
	supplier, ok := s.suppliers[normalized]
	if !ok {
		// The original registry records the toggle even for an address that
		// was never added; keep that by materializing an unnamed record.
		supplier = entities.Supplier{Address: normalized, AddedAt: now.UTC()}
	}
	supplier.Active = active
	supplier.UpdatedAt = now.UTC()
	s.suppliers[normalized] = supplier
	return supplier, nil
}

func (s *Store) GetSupplier(_ context.Context, addr string) (entities.Supplier, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	supplier, ok := s.suppliers[address.Normalize(addr)]
	return supplier, ok, nil
}

func (s *Store) ListSuppliers(_ context.Context) ([]entities.Supplier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Supplier, 0, len(s.suppliers))
	for _, supplier := range s.suppliers {
		items = append(items, supplier)
	}
	return items, nil
}
