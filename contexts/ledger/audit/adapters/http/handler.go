package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"gemledger/contexts/ledger/audit/application"
	"gemledger/contexts/ledger/audit/domain/entities"
	httptransport "gemledger/contexts/ledger/audit/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListTrailHandler(ctx context.Context) (httptransport.ListEntriesResponse, error) {
	entries, err := h.Service.Trail(ctx)
	if err != nil {
		return httptransport.ListEntriesResponse{}, err
	}
	return toListResponse(entries), nil
}

func (h Handler) EntityHistoryHandler(
	ctx context.Context,
	entityType string,
	entityID string,
) (httptransport.ListEntriesResponse, error) {
	entries, err := h.Service.History(ctx, entityType, entityID)
	if err != nil {
		return httptransport.ListEntriesResponse{}, err
	}
	return toListResponse(entries), nil
}

func toListResponse(entries []entities.Entry) httptransport.ListEntriesResponse {
	resp := httptransport.ListEntriesResponse{Status: "success"}
	resp.Data.Entries = make([]httptransport.EntryDTO, 0, len(entries))
	for _, entry := range entries {
		resp.Data.Entries = append(resp.Data.Entries, httptransport.EntryDTO{
			EntryID:    entry.EntryID,
			EventType:  entry.EventType,
			EntityType: entry.EntityType,
			EntityID:   entry.EntityID,
			Payload:    entry.Payload,
			OccurredAt: entry.OccurredAt.UTC().Format(time.RFC3339),
			Published:  entry.Published,
		})
	}
	return resp
}
