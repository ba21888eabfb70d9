package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"gemledger/contexts/ledger/audit/domain/entities"
	"gemledger/contexts/ledger/audit/ports"
)

// Service is the audit trail: every service records committed changes
// through it, and query endpoints read the trail back.
type Service struct {
	Log    ports.Log
	Clock  ports.Clock
	Logger *slog.Logger
}

// Record appends an audit entry. It is the EventRecorder implementation
// handed to every other ledger service.
func (s Service) Record(ctx context.Context, eventType string, entityType string, entityID string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	entry := entities.Entry{
		EntryID:    uuid.NewString(),
		EventType:  eventType,
		EntityType: entityType,
		EntityID:   entityID,
		Payload:    raw,
		OccurredAt: s.now(),
	}
	if err := s.Log.Append(ctx, entry); err != nil {
		return err
	}

	resolveLogger(s.Logger).Info("audit entry recorded",
		"event", "audit_entry_recorded",
		"module", "ledger/audit",
		"layer", "application",
		"entry_id", entry.EntryID,
		"event_type", eventType,
		"entity_type", entityType,
		"entity_id", entityID,
	)
	return nil
}

// History lists the trail for one entity in append order.
func (s Service) History(ctx context.Context, entityType string, entityID string) ([]entities.Entry, error) {
	return s.Log.ListByEntity(ctx, entityType, entityID)
}

// Trail lists the full trail in append order.
func (s Service) Trail(ctx context.Context) ([]entities.Entry, error) {
	return s.Log.ListAll(ctx)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
