package application

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	domainerrors "gemledger/contexts/ledger/token-ledger/domain/errors"
	"gemledger/contexts/ledger/token-ledger/ports"
	"gemledger/internal/shared/address"
)

// URIScheme prefixes metadata references when resolving token URIs.
const URIScheme = "ipfs://"

// Service owns the ownership-token surface. Mint and RevertMint are not
// public entry points; they are handed to the settlement engine only.
type Service struct {
	Repo   ports.Repository
	Events ports.EventRecorder
	Clock  ports.Clock
	Logger *slog.Logger
}

// Mint issues the next sequential token to the buyer. Callable only through
// the settlement wiring.
func (s Service) Mint(ctx context.Context, to string, metadataRef string) (uint64, error) {
	if address.IsZero(to) {
		return 0, domainerrors.ErrInvalidRecipient
	}

	token, err := s.Repo.Mint(ctx, to, metadataRef, s.now())
	if err != nil {
		return 0, err
	}

	resolveLogger(s.Logger).Info("token minted",
		"event", "token_ledger_minted",
		"module", "ledger/token-ledger",
		"layer", "application",
		"token_id", token.TokenID,
		"owner", token.Owner,
	)
	return token.TokenID, nil
}

// RevertMint is the settlement rollback hook.
func (s Service) RevertMint(ctx context.Context, tokenID uint64) error {
	return s.Repo.RevertMint(ctx, tokenID)
}

// Transfer moves a token between owners. The caller must be the current
// owner; approval delegates are out of scope for this ledger.
func (s Service) Transfer(ctx context.Context, from string, to string, tokenID uint64) error {
	if address.IsZero(to) {
		return domainerrors.ErrInvalidRecipient
	}

	token, err := s.Repo.Transfer(ctx, from, to, tokenID, s.now())
	if err != nil {
		return err
	}

	s.record(ctx, "ledger.token_transferred", "token", strconv.FormatUint(tokenID, 10), map[string]string{
		"token_id": strconv.FormatUint(tokenID, 10),
		"from":     address.Normalize(from),
		"to":       token.Owner,
	})

	resolveLogger(s.Logger).Info("token transferred",
		"event", "token_ledger_transferred",
		"module", "ledger/token-ledger",
		"layer", "application",
		"token_id", tokenID,
		"from", address.Normalize(from),
		"to", token.Owner,
	)
	return nil
}

// TokenURI resolves the metadata reference of a token.
func (s Service) TokenURI(ctx context.Context, tokenID uint64) (string, error) {
	token, err := s.Repo.GetToken(ctx, tokenID)
	if err != nil {
		return "", err
	}
	return URIScheme + token.MetadataRef, nil
}

func (s Service) BalanceOf(ctx context.Context, owner string) (int, error) {
	return s.Repo.BalanceOf(ctx, owner)
}

func (s Service) TokenOfOwnerByIndex(ctx context.Context, owner string, index int) (uint64, error) {
	return s.Repo.TokenOfOwnerByIndex(ctx, owner, index)
}

func (s Service) record(ctx context.Context, eventType string, entityType string, entityID string, payload any) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Record(ctx, eventType, entityType, entityID, payload); err != nil {
		resolveLogger(s.Logger).Error("audit record failed",
			"event", "token_ledger_audit_record_failed",
			"module", "ledger/token-ledger",
			"layer", "application",
			"event_type", eventType,
			"error", err.Error(),
		)
	}
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
