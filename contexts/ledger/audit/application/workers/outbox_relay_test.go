package workers

import (
	"context"
	"errors"
	"testing"

	"gemledger/contexts/ledger/audit/adapters/memory"
	"gemledger/contexts/ledger/audit/application"
	"gemledger/internal/shared/events"
)

type capturePublisher struct {
	published []events.Envelope
	topics    []string
	failErr   error
}

func (p *capturePublisher) Publish(_ context.Context, topic string, envelope events.Envelope) error {
	if p.failErr != nil {
		return p.failErr
	}
	p.topics = append(p.topics, topic)
	p.published = append(p.published, envelope)
	return nil
}

func TestRunOncePublishesPendingInOrder(t *testing.T) {
	store := memory.NewStore()
	service := application.Service{Log: store, Clock: store}
	ctx := context.Background()

	if err := service.Record(ctx, "ledger.supplier_added", "supplier", "0xs", nil); err != nil {
		t.Fatalf("record: unexpected error: %v", err)
	}
	if err := service.Record(ctx, "ledger.item_listed", "item", "0", nil); err != nil {
		t.Fatalf("record: unexpected error: %v", err)
	}

	publisher := &capturePublisher{}
	relay := OutboxRelay{Log: store, Publisher: publisher, Topic: "ledger.events", Clock: store}

	if err := relay.RunOnce(ctx); err != nil {
		t.Fatalf("run once: unexpected error: %v", err)
	}

	if len(publisher.published) != 2 {
		t.Fatalf("expected 2 envelopes, got %d", len(publisher.published))
	}
	if publisher.topics[0] != "ledger.events" {
		t.Fatalf("unexpected topic %q", publisher.topics[0])
	}
	if publisher.published[0].EventType != "ledger.supplier_added" {
		t.Fatalf("expected append order, got %q first", publisher.published[0].EventType)
	}
	if publisher.published[0].SourceService != "gemledger" {
		t.Fatalf("unexpected source service %q", publisher.published[0].SourceService)
	}

	pending, err := store.ListPending(ctx, 10)
	if err != nil {
		t.Fatalf("list pending: unexpected error: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("expected no pending entries after relay, got %d", len(pending))
	}
}

func TestRunOnceIsIdempotentOnDrainedLog(t *testing.T) {
	store := memory.NewStore()
	service := application.Service{Log: store, Clock: store}
	ctx := context.Background()

	if err := service.Record(ctx, "ledger.item_sold", "item", "0", nil); err != nil {
		t.Fatalf("record: unexpected error: %v", err)
	}

	publisher := &capturePublisher{}
	relay := OutboxRelay{Log: store, Publisher: publisher, Topic: "ledger.events", Clock: store}

	if err := relay.RunOnce(ctx); err != nil {
		t.Fatalf("first run: unexpected error: %v", err)
	}
	if err := relay.RunOnce(ctx); err != nil {
		t.Fatalf("second run: unexpected error: %v", err)
	}
	if len(publisher.published) != 1 {
		t.Fatalf("expected entry published once, got %d", len(publisher.published))
	}
}

func TestRunOnceStopsOnPublishFailure(t *testing.T) {
	store := memory.NewStore()
	service := application.Service{Log: store, Clock: store}
	ctx := context.Background()

	if err := service.Record(ctx, "ledger.item_sold", "item", "0", nil); err != nil {
		t.Fatalf("record: unexpected error: %v", err)
	}

	boom := errors.New("bus down")
	publisher := &capturePublisher{failErr: boom}
	relay := OutboxRelay{Log: store, Publisher: publisher, Topic: "ledger.events", Clock: store}

	if err := relay.RunOnce(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected publish error, got %v", err)
	}

	pending, err := store.ListPending(ctx, 10)
	if err != nil {
		t.Fatalf("list pending: unexpected error: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected entry to stay pending after failure, got %d pending", len(pending))
	}
}
