package entities

import (
	"encoding/json"
	"time"
)

// Entry is one append-only audit record. Entries double as the outbox for
// the event bus: the relay publishes pending entries and marks them.
type Entry struct {
	EntryID     string
	EventType   string
	EntityType  string
	EntityID    string
	Payload     json.RawMessage
	OccurredAt  time.Time
	Published   bool
	PublishedAt time.Time
}
