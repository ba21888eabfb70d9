package ports

import (
	"context"
	"math/big"
	"time"

	catalogentities "gemledger/contexts/ledger/catalog/domain/entities"
	catalogports "gemledger/contexts/ledger/catalog/ports"
)

type Clock interface {
	Now() time.Time
}

// EventRecorder appends an audit event describing a committed settlement.
type EventRecorder interface {
	Record(ctx context.Context, eventType string, entityType string, entityID string, payload any) error
}

// Items is the catalog's settle surface. Settlement references catalog
// records but never owns them; the catalog repository runs the critical
// section and this engine supplies the callback.
type Items interface {
	SettleItem(
		ctx context.Context,
		sku uint64,
		buyer string,
		payment *big.Int,
		now time.Time,
		settle catalogports.SettleFunc,
	) (catalogentities.Item, error)
}

// Tokens is the token-ledger's settlement surface: issue a token for the
// buyer, or revert the issue when the value transfer fails afterwards.
type Tokens interface {
	Mint(ctx context.Context, to string, metadataRef string) (uint64, error)
	RevertMint(ctx context.Context, tokenID uint64) error
}

// Payments moves the buyer's funds: the price stays with the treasury and
// any overpayment is returned to the payer in the same operation.
type Payments interface {
	Settle(ctx context.Context, payer string, payment *big.Int, price *big.Int) (refund *big.Int, err error)
}
