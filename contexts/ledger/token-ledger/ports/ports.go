package ports

import (
	"context"
	"time"

	"gemledger/contexts/ledger/token-ledger/domain/entities"
)

type Clock interface {
	Now() time.Time
}

// EventRecorder appends an audit event describing a committed token change.
type EventRecorder interface {
	Record(ctx context.Context, eventType string, entityType string, entityID string, payload any) error
}

// Repository owns token records, the per-owner enumeration index and the
// monotonic token id counter.
type Repository interface {
	// Mint issues the next sequential token id, starting at 1.
	Mint(ctx context.Context, to string, metadataRef string, now time.Time) (entities.Token, error)
	// RevertMint undoes the most recent mint. It exists solely so a failed
	// settlement can roll back inside its critical section; a reverted mint
	// was never observable, so reissuing its id later is correct.
	RevertMint(ctx context.Context, tokenID uint64) error
	Transfer(ctx context.Context, from string, to string, tokenID uint64, now time.Time) (entities.Token, error)
	GetToken(ctx context.Context, tokenID uint64) (entities.Token, error)
	BalanceOf(ctx context.Context, owner string) (int, error)
	TokenOfOwnerByIndex(ctx context.Context, owner string, index int) (uint64, error)
}
