package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gemledger/contexts/ledger/token-ledger/domain/entities"
	domainerrors "gemledger/contexts/ledger/token-ledger/domain/errors"
	"gemledger/contexts/ledger/token-ledger/ports"
	"gemledger/internal/shared/address"
)

const tokenCounterName = "token_id"

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

func (r *Repository) Mint(ctx context.Context, to string, metadataRef string, now time.Time) (entities.Token, error) {
	if address.IsZero(to) {
		return entities.Token{}, domainerrors.ErrInvalidRecipient
	}

	var token entities.Token
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tokenID, err := nextCounterValue(tx, tokenCounterName, 1)
		if err != nil {
			return err
		}

		row := tokenModel{
			TokenID:     tokenID,
			Owner:       address.Normalize(to),
			MetadataRef: metadataRef,
			MintedAt:    now.UTC(),
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		token = row.toEntity()
		return nil
	})
	if err != nil {
		return entities.Token{}, r.logError("token_repo_mint_failed", err, "owner", address.Normalize(to))
	}
	return token, nil
}

func (r *Repository) RevertMint(ctx context.Context, tokenID uint64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var counter counterModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", tokenCounterName).
			First(&counter).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrTokenNotFound
			}
			return err
		}

		// Only the most recent mint can be reverted; anything else would
		// punch a hole into the id sequence.
		if tokenID == 0 || tokenID != counter.NextValue-1 {
			return domainerrors.ErrTokenNotFound
		}

		result := tx.Where("token_id = ?", tokenID).Delete(&tokenModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrTokenNotFound
		}

		return tx.Model(&counterModel{}).
			Where("name = ?", tokenCounterName).
			Update("next_value", counter.NextValue-1).
			Error
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrTokenNotFound) {
			return err
		}
		return r.logError("token_repo_revert_mint_failed", err, "token_id", tokenID)
	}
	return nil
}

func (r *Repository) Transfer(ctx context.Context, from string, to string, tokenID uint64, now time.Time) (entities.Token, error) {
	if address.IsZero(to) {
		return entities.Token{}, domainerrors.ErrInvalidRecipient
	}

	var token entities.Token
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row tokenModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("token_id = ?", tokenID).
			First(&row).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrTokenNotFound
			}
			return err
		}

		if row.Owner != address.Normalize(from) {
			return domainerrors.ErrNotTokenOwner
		}

		row.Owner = address.Normalize(to)
		if err := tx.Model(&tokenModel{}).
			Where("token_id = ?", tokenID).
			Update("owner", row.Owner).Error; err != nil {
			return err
		}
		token = row.toEntity()
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrTokenNotFound) || errors.Is(err, domainerrors.ErrNotTokenOwner) {
			return entities.Token{}, err
		}
		return entities.Token{}, r.logError("token_repo_transfer_failed", err,
			"token_id", tokenID,
			"from", address.Normalize(from),
		)
	}
	return token, nil
}

func (r *Repository) GetToken(ctx context.Context, tokenID uint64) (entities.Token, error) {
	var row tokenModel
	err := r.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Token{}, domainerrors.ErrTokenNotFound
		}
		return entities.Token{}, r.logError("token_repo_get_token_failed", err, "token_id", tokenID)
	}
	return row.toEntity(), nil
}

func (r *Repository) BalanceOf(ctx context.Context, owner string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&tokenModel{}).
		Where("owner = ?", address.Normalize(owner)).
		Count(&count).
		Error
	if err != nil {
		return 0, r.logError("token_repo_balance_of_failed", err, "owner", address.Normalize(owner))
	}
	return int(count), nil
}

func (r *Repository) TokenOfOwnerByIndex(ctx context.Context, owner string, index int) (uint64, error) {
	if index < 0 {
		return 0, domainerrors.ErrIndexOutOfRange
	}
	var row tokenModel
	err := r.db.WithContext(ctx).
		Where("owner = ?", address.Normalize(owner)).
		Order("token_id ASC").
		Offset(index).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, domainerrors.ErrIndexOutOfRange
		}
		return 0, r.logError("token_repo_token_of_owner_by_index_failed", err,
			"owner", address.Normalize(owner),
			"index", index,
		)
	}
	return row.TokenID, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "ledger/token-ledger",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("token repository operation failed", fields...)
	return err
}

type tokenModel struct {
	TokenID     uint64    `gorm:"column:token_id;primaryKey"`
	Owner       string    `gorm:"column:owner"`
	MetadataRef string    `gorm:"column:metadata_ref"`
	MintedAt    time.Time `gorm:"column:minted_at"`
}

func (tokenModel) TableName() string {
	return "ledger_tokens"
}

func (m tokenModel) toEntity() entities.Token {
	return entities.Token{
		TokenID:     m.TokenID,
		Owner:       m.Owner,
		MetadataRef: m.MetadataRef,
		MintedAt:    m.MintedAt.UTC(),
	}
}

type counterModel struct {
	Name      string `gorm:"column:name;primaryKey"`
	NextValue uint64 `gorm:"column:next_value"`
}

func (counterModel) TableName() string {
	return "ledger_counters"
}

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

var _ ports.Repository = (*Repository)(nil)
