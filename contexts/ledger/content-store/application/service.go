package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"gemledger/contexts/ledger/content-store/domain/entities"
	domainerrors "gemledger/contexts/ledger/content-store/domain/errors"
	"gemledger/contexts/ledger/content-store/ports"
)

// Service stores item content and resolves the metadata document embedded
// in it.
type Service struct {
	Blobs  ports.BlobStore
	Logger *slog.Logger
}

// Put stores content and returns its reference.
func (s Service) Put(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", domainerrors.ErrEmptyContent
	}

	ref, err := s.Blobs.Put(ctx, data)
	if err != nil {
		return "", err
	}

	resolveLogger(s.Logger).Info("content stored",
		"event", "content_store_put",
		"module", "ledger/content-store",
		"layer", "application",
		"ref", ref,
		"bytes", len(data),
	)
	return ref, nil
}

// Get returns the raw stored bytes.
func (s Service) Get(ctx context.Context, ref string) ([]byte, error) {
	return s.Blobs.Get(ctx, ref)
}

// Resolve extracts the metadata document from stored content. Content may
// carry framing around the JSON, so the document is taken as the span from
// the first opening brace to the last closing brace. Content without a
// parseable document resolves to empty metadata rather than an error.
func (s Service) Resolve(ctx context.Context, ref string) (entities.Metadata, error) {
	data, err := s.Blobs.Get(ctx, ref)
	if err != nil {
		return entities.Metadata{}, err
	}
	return ExtractMetadata(data), nil
}

// ExtractMetadata parses the brace-delimited document inside raw content.
func ExtractMetadata(data []byte) entities.Metadata {
	text := string(data)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return entities.Metadata{}
	}

	var meta entities.Metadata
	if err := json.Unmarshal([]byte(text[start:end+1]), &meta); err != nil {
		return entities.Metadata{}
	}
	return meta
}
