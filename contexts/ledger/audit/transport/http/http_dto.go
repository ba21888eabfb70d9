package httptransport

import "encoding/json"

type EntryDTO struct {
	EntryID    string          `json:"entry_id"`
	EventType  string          `json:"event_type"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt string          `json:"occurred_at"`
	Published  bool            `json:"published"`
}

type ListEntriesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Entries []EntryDTO `json:"entries"`
	} `json:"data"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
