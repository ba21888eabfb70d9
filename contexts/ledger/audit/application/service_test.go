package application

import (
	"context"
	"testing"

	"gemledger/contexts/ledger/audit/adapters/memory"
)

func TestRecordAppendsEntry(t *testing.T) {
	store := memory.NewStore()
	service := Service{Log: store, Clock: store}
	ctx := context.Background()

	err := service.Record(ctx, "ledger.item_listed", "item", "0", map[string]string{"sku": "0"})
	if err != nil {
		t.Fatalf("record: unexpected error: %v", err)
	}

	trail, err := service.Trail(ctx)
	if err != nil {
		t.Fatalf("trail: unexpected error: %v", err)
	}
	if len(trail) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(trail))
	}
	entry := trail[0]
	if entry.EntryID == "" {
		t.Fatal("expected entry id assigned")
	}
	if entry.EventType != "ledger.item_listed" {
		t.Fatalf("unexpected event type %q", entry.EventType)
	}
	if entry.Published {
		t.Fatal("expected entry to start unpublished")
	}
	if string(entry.Payload) != `{"sku":"0"}` {
		t.Fatalf("unexpected payload %s", entry.Payload)
	}
}

func TestHistoryFiltersByEntity(t *testing.T) {
	store := memory.NewStore()
	service := Service{Log: store, Clock: store}
	ctx := context.Background()

	if err := service.Record(ctx, "ledger.item_listed", "item", "0", nil); err != nil {
		t.Fatalf("record: unexpected error: %v", err)
	}
	if err := service.Record(ctx, "ledger.item_listed", "item", "1", nil); err != nil {
		t.Fatalf("record: unexpected error: %v", err)
	}
	if err := service.Record(ctx, "ledger.item_sold", "item", "0", nil); err != nil {
		t.Fatalf("record: unexpected error: %v", err)
	}

	history, err := service.History(ctx, "item", "0")
	if err != nil {
		t.Fatalf("history: unexpected error: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 entries for item 0, got %d", len(history))
	}
	if history[0].EventType != "ledger.item_listed" || history[1].EventType != "ledger.item_sold" {
		t.Fatalf("expected append order preserved, got %q then %q", history[0].EventType, history[1].EventType)
	}
}
