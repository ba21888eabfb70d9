package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"math/big"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gemledger/contexts/ledger/catalog/domain/entities"
	domainerrors "gemledger/contexts/ledger/catalog/domain/errors"
	"gemledger/contexts/ledger/catalog/ports"
	"gemledger/internal/shared/address"
)

const skuCounterName = "catalog_sku"

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

// InsertItem allocates the next sku under a row lock on the counter, so
// concurrent listings never collide and failed attempts upstream never
// reach the counter.
func (r *Repository) InsertItem(ctx context.Context, item entities.Item) (entities.Item, error) {
	stored := item.Clone()
	for attempt := 0; ; attempt++ {
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			sku, err := nextCounterValue(tx, skuCounterName, 0)
			if err != nil {
				return err
			}
			stored.SKU = sku

			row := itemModelFromEntity(stored)
			return tx.Create(&row).Error
		})
		if err == nil {
			return stored, nil
		}
		// A row written outside the counter (backfill, restore) can occupy
		// the reserved sku; the counter has already moved past it, so retry.
		if isUniqueViolation(err) && attempt < 2 {
			continue
		}
		return entities.Item{}, r.logError("catalog_repo_insert_item_failed", err,
			"supplier", item.Supplier,
		)
	}
}

func (r *Repository) GetItem(ctx context.Context, sku uint64) (entities.Item, error) {
	var row itemModel
	err := r.db.WithContext(ctx).
		Where("sku = ?", sku).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Item{}, domainerrors.ErrItemNotFound
		}
		return entities.Item{}, r.logError("catalog_repo_get_item_failed", err, "sku", sku)
	}
	return row.toEntity()
}

func (r *Repository) ListForSale(ctx context.Context) ([]entities.Item, error) {
	var rows []itemModel
	if err := r.db.WithContext(ctx).
		Where("state = ?", string(entities.StateForSale)).
		Order("sku ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("catalog_repo_list_for_sale_failed", err)
	}
	items := make([]entities.Item, 0, len(rows))
	for _, row := range rows {
		item, err := row.toEntity()
		if err != nil {
			return nil, r.logError("catalog_repo_list_for_sale_decode_failed", err, "sku", row.SKU)
		}
		items = append(items, item)
	}
	return items, nil
}

// SettleItem validates and transitions the item under a row lock, then runs
// the settle callback inside the same transaction. Any callback error rolls
// the transition back with the transaction.
func (r *Repository) SettleItem(
	ctx context.Context,
	sku uint64,
	buyer string,
	payment *big.Int,
	now time.Time,
	settle ports.SettleFunc,
) (entities.Item, error) {
	var settled entities.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row itemModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("sku = ?", sku).
			First(&row).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrItemNotFound
			}
			return err
		}

		item, err := row.toEntity()
		if err != nil {
			return err
		}
		if item.State != entities.StateForSale {
			return domainerrors.ErrItemNotForSale
		}
		if payment == nil || payment.Cmp(item.PriceWei) < 0 {
			return domainerrors.ErrNotPaidEnough
		}

		item.State = entities.StateSold
		item.Buyer = address.Normalize(buyer)
		item.UpdatedAt = now.UTC()
		if err := tx.Model(&itemModel{}).
			Where("sku = ?", sku).
			Updates(map[string]any{
				"state":      string(item.State),
				"buyer":      item.Buyer,
				"updated_at": item.UpdatedAt,
			}).Error; err != nil {
			return err
		}

		tokenID, err := settle(item.Clone())
		if err != nil {
			return err
		}

		item.TokenID = tokenID
		if err := tx.Model(&itemModel{}).
			Where("sku = ?", sku).
			Update("token_id", tokenID).Error; err != nil {
			return err
		}

		settled = item
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrItemNotFound) ||
			errors.Is(err, domainerrors.ErrItemNotForSale) ||
			errors.Is(err, domainerrors.ErrNotPaidEnough) {
			return entities.Item{}, err
		}
		return entities.Item{}, r.logError("catalog_repo_settle_item_failed", err,
			"sku", sku,
			"buyer", address.Normalize(buyer),
		)
	}
	return settled, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "ledger/catalog",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("catalog repository operation failed", fields...)
	return err
}

type itemModel struct {
	SKU         uint64    `gorm:"column:sku;primaryKey"`
	Supplier    string    `gorm:"column:supplier"`
	State       string    `gorm:"column:state"`
	PriceUsd    uint64    `gorm:"column:price_usd"`
	PriceWei    string    `gorm:"column:price_wei"`
	ContentHash string    `gorm:"column:content_hash"`
	Buyer       string    `gorm:"column:buyer"`
	TokenID     uint64    `gorm:"column:token_id"`
	ListedAt    time.Time `gorm:"column:listed_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (itemModel) TableName() string {
	return "ledger_items"
}

func itemModelFromEntity(item entities.Item) itemModel {
	priceWei := "0"
	if item.PriceWei != nil {
		priceWei = item.PriceWei.String()
	}
	return itemModel{
		SKU:         item.SKU,
		Supplier:    item.Supplier,
		State:       string(item.State),
		PriceUsd:    item.PriceUsd,
		PriceWei:    priceWei,
		ContentHash: item.ContentHash,
		Buyer:       item.Buyer,
		TokenID:     item.TokenID,
		ListedAt:    item.ListedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
}

func (m itemModel) toEntity() (entities.Item, error) {
	priceWei, ok := new(big.Int).SetString(m.PriceWei, 10)
	if !ok {
		return entities.Item{}, domainerrors.ErrInvalidItem
	}
	return entities.Item{
		SKU:         m.SKU,
		Supplier:    m.Supplier,
		State:       entities.State(m.State),
		PriceUsd:    m.PriceUsd,
		PriceWei:    priceWei,
		ContentHash: m.ContentHash,
		Buyer:       m.Buyer,
		TokenID:     m.TokenID,
		ListedAt:    m.ListedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}, nil
}

type counterModel struct {
	Name      string `gorm:"column:name;primaryKey"`
	NextValue uint64 `gorm:"column:next_value"`
}

func (counterModel) TableName() string {
	return "ledger_counters"
}

// nextCounterValue reserves the next value for a named counter under a row
// lock, seeding the row at start when it does not exist yet.
func nextCounterValue(tx *gorm.DB, name string, start uint64) (uint64, error) {
	seed := counterModel{Name: name, NextValue: start}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&seed).Error; err != nil {
		return 0, err
	}

	var row counterModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		First(&row).Error; err != nil {
		return 0, err
	}

	if err := tx.Model(&counterModel{}).
		Where("name = ?", name).
		Update("next_value", row.NextValue+1).Error; err != nil {
		return 0, err
	}
	return row.NextValue, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.Repository = (*Repository)(nil)
