package ports

import (
	"context"
	"math/big"
	"time"

	"gemledger/contexts/ledger/catalog/domain/entities"
)

type Clock interface {
	Now() time.Time
}

// EventRecorder appends an audit event describing a committed catalog change.
type EventRecorder interface {
	Record(ctx context.Context, eventType string, entityType string, entityID string, payload any) error
}

// RoleDirectory is the access-registry view the catalog needs: the active
// supplier gate for listings and the name joined onto item views.
type RoleDirectory interface {
	IsActiveSupplier(ctx context.Context, addr string) (bool, error)
	SupplierName(ctx context.Context, addr string) (string, error)
}

// PriceConverter snapshots the oracle at listing time.
type PriceConverter interface {
	UsdToNative(ctx context.Context, amountUsd uint64) (*big.Int, error)
}

// ItemView joins an item with its supplier's display name.
type ItemView struct {
	entities.Item
	SupplierName string
}

// SettleFunc runs inside the repository's settle section after the item has
// transitioned to Sold. It performs the mint and the value transfer and
// returns the assigned token id; any error rolls the whole settlement back.
type SettleFunc func(item entities.Item) (tokenID uint64, err error)

// Repository owns item records and the monotonic sku counter.
type Repository interface {
	// InsertItem allocates the next sequential sku (starting at 0) and
	// stores the record. Failed listing attempts never reach this call, so
	// they consume no sku.
	InsertItem(ctx context.Context, item entities.Item) (entities.Item, error)
	GetItem(ctx context.Context, sku uint64) (entities.Item, error)
	ListForSale(ctx context.Context) ([]entities.Item, error)
	// SettleItem validates the purchase (exists, for sale, paid enough),
	// transitions the item to Sold with the buyer set, then invokes settle.
	// The whole sequence is one critical section: on settle failure the
	// prior record is restored and nothing is observable.
	SettleItem(
		ctx context.Context,
		sku uint64,
		buyer string,
		payment *big.Int,
		now time.Time,
		settle SettleFunc,
	) (entities.Item, error)
}
