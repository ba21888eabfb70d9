package ports

import (
	"context"
	"time"

	"gemledger/contexts/ledger/access-registry/domain/entities"
)

type Clock interface {
	Now() time.Time
}

// EventRecorder appends an audit event describing a committed role change.
type EventRecorder interface {
	Record(ctx context.Context, eventType string, entityType string, entityID string, payload any) error
}

// Repository owns the admin set and the supplier roster.
type Repository interface {
	IsAdmin(ctx context.Context, addr string) (bool, error)
	AddAdmin(ctx context.Context, addr string, now time.Time) (entities.Admin, error)
	RemoveAdmin(ctx context.Context, addr string) error
	UpsertSupplier(ctx context.Context, addr string, name string, now time.Time) (entities.Supplier, error)
	SetSupplierActive(ctx context.Context, addr string, active bool, now time.Time) (entities.Supplier, error)
	GetSupplier(ctx context.Context, addr string) (entities.Supplier, bool, error)
	ListSuppliers(ctx context.Context) ([]entities.Supplier, error)
}
