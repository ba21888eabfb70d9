package application

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"gemledger/contexts/ledger/catalog/domain/entities"
	domainerrors "gemledger/contexts/ledger/catalog/domain/errors"
	"gemledger/contexts/ledger/catalog/ports"
	"gemledger/internal/shared/address"
)

// Service owns the item catalog: listings by active suppliers, sequential
// sku allocation and the ForSale reads served to the storefront.
type Service struct {
	Repo   ports.Repository
	Roles  ports.RoleDirectory
	Prices ports.PriceConverter
	Events ports.EventRecorder
	Clock  ports.Clock
	Logger *slog.Logger
}

// AddItem lists a stone. Listing is all-or-nothing: the supplier gate and
// the oracle snapshot both run before the sku is allocated, so a failed
// attempt consumes no sku.
func (s Service) AddItem(
	ctx context.Context,
	caller string,
	contentHash string,
	priceUsd uint64,
) (entities.Item, error) {
	supplier := address.Normalize(caller)
	if supplier == "" {
		return entities.Item{}, domainerrors.ErrNotSupplier
	}
	if strings.TrimSpace(contentHash) == "" || priceUsd == 0 {
		return entities.Item{}, domainerrors.ErrInvalidItem
	}

	active, err := s.Roles.IsActiveSupplier(ctx, supplier)
	if err != nil {
		return entities.Item{}, err
	}
	if !active {
		return entities.Item{}, domainerrors.ErrNotSupplier
	}

	priceWei, err := s.Prices.UsdToNative(ctx, priceUsd)
	if err != nil {
		return entities.Item{}, err
	}

	now := s.now()
	item, err := s.Repo.InsertItem(ctx, entities.Item{
		Supplier:    supplier,
		State:       entities.StateForSale,
		PriceUsd:    priceUsd,
		PriceWei:    priceWei,
		ContentHash: strings.TrimSpace(contentHash),
		ListedAt:    now,
		UpdatedAt:   now,
	})
	if err != nil {
		return entities.Item{}, err
	}

	s.record(ctx, "ledger.item_listed", "item", strconv.FormatUint(item.SKU, 10), map[string]any{
		"sku":          item.SKU,
		"supplier":     item.Supplier,
		"price_usd":    item.PriceUsd,
		"price_wei":    item.PriceWei.String(),
		"content_hash": item.ContentHash,
	})

	resolveLogger(s.Logger).Info("item listed",
		"event", "catalog_item_listed",
		"module", "ledger/catalog",
		"layer", "application",
		"sku", item.SKU,
		"supplier", item.Supplier,
		"price_usd", item.PriceUsd,
		"price_wei", item.PriceWei.String(),
	)
	return item, nil
}

// GetAvailableItems returns ForSale items in ascending sku order, each
// joined with its supplier's name. The scan is proportional to total items
// ever listed; an accepted boundary of the baseline design.
func (s Service) GetAvailableItems(ctx context.Context) ([]ports.ItemView, error) {
	items, err := s.Repo.ListForSale(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ports.ItemView, 0, len(items))
	for _, item := range items {
		name, err := s.Roles.SupplierName(ctx, item.Supplier)
		if err != nil {
			return nil, err
		}
		views = append(views, ports.ItemView{Item: item, SupplierName: name})
	}
	return views, nil
}

func (s Service) GetItem(ctx context.Context, sku uint64) (entities.Item, error) {
	return s.Repo.GetItem(ctx, sku)
}

func (s Service) record(ctx context.Context, eventType string, entityType string, entityID string, payload any) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Record(ctx, eventType, entityType, entityID, payload); err != nil {
		resolveLogger(s.Logger).Error("audit record failed",
			"event", "catalog_audit_record_failed",
			"module", "ledger/catalog",
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
