package workers

import (
	"context"
	"log/slog"
	"time"

	application "gemledger/contexts/ledger/audit/application"
	"gemledger/contexts/ledger/audit/ports"
	"gemledger/internal/shared/events"
)

const sourceService = "gemledger"

// OutboxRelay drains pending audit entries onto the event bus. Entries are
// published in append order and marked so a crash between publish and mark
// can at worst replay, never drop.
type OutboxRelay struct {
	Log       ports.Log
	Publisher ports.EventPublisher
	Topic     string
	Clock     ports.Clock
	BatchSize int
	Logger    *slog.Logger
}

func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(r.Logger)
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Log.ListPending(ctx, limit)
	if err != nil {
		logger.Error("audit outbox list failed",
			"event", "audit_outbox_list_failed",
			"module", "ledger/audit",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	now := time.Now().UTC()
	if r.Clock != nil {
		now = r.Clock.Now().UTC()
	}

	for _, entry := range pending {
		envelope := events.Envelope{
			EventID:        entry.EntryID,
			EventType:      entry.EventType,
			SourceService:  sourceService,
			OccurredAtUTC:  entry.OccurredAt,
			EntityType:     entry.EntityType,
			EntityID:       entry.EntityID,
			PayloadVersion: 1,
			Payload:        entry.Payload,
		}
		if err := r.Publisher.Publish(ctx, r.Topic, envelope); err != nil {
			logger.Error("audit outbox publish failed",
				"event", "audit_outbox_publish_failed",
				"module", "ledger/audit",
				"layer", "worker",
				"entry_id", entry.EntryID,
				"error", err.Error(),
			)
			return err
		}
		if err := r.Log.MarkPublished(ctx, entry.EntryID, now); err != nil {
			return err
		}
	}
	return nil
}

// Run loops RunOnce on the given interval until the context ends.
func (r OutboxRelay) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = r.RunOnce(ctx)
		}
	}
}
