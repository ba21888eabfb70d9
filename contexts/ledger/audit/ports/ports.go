package ports

import (
	"context"
	"time"

	"gemledger/contexts/ledger/audit/domain/entities"
	"gemledger/internal/shared/events"
)

type Clock interface {
	Now() time.Time
}

// Log is the append-only audit store plus the outbox view the relay reads.
type Log interface {
	Append(ctx context.Context, entry entities.Entry) error
	ListByEntity(ctx context.Context, entityType string, entityID string) ([]entities.Entry, error)
	ListAll(ctx context.Context) ([]entities.Entry, error)
	ListPending(ctx context.Context, limit int) ([]entities.Entry, error)
	MarkPublished(ctx context.Context, entryID string, now time.Time) error
}

// EventPublisher hands envelopes to the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, envelope events.Envelope) error
}
