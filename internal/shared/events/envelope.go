package events

import (
	"encoding/json"
	"time"
)

// Envelope is the canonical event shape published on the ledger bus.
// Every observable ledger side effect (role change, listing, sale, token
// transfer) is relayed as one of these for auditability.
type Envelope struct {
	EventID        string          `json:"event_id"`
	EventType      string          `json:"event_type"`
	SourceService  string          `json:"source_service"`
	OccurredAtUTC  time.Time       `json:"occurred_at_utc"`
	EntityType     string          `json:"entity_type"`
	EntityID       string          `json:"entity_id"`
	PayloadVersion int             `json:"payload_version"`
	Payload        json.RawMessage `json:"payload"`
}
