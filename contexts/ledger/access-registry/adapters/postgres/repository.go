package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gemledger/contexts/ledger/access-registry/domain/entities"
	domainerrors "gemledger/contexts/ledger/access-registry/domain/errors"
	"gemledger/contexts/ledger/access-registry/ports"
	"gemledger/internal/shared/address"
)

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

// SeedGenesisAdmin records the deployment admin if the table is empty of it.
func (r *Repository) SeedGenesisAdmin(ctx context.Context, addr string, now time.Time) error {
	normalized := address.Normalize(addr)
	if normalized == "" {
		return domainerrors.ErrInvalidAddress
	}
	row := adminModel{Address: normalized, AddedAt: now.UTC()}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		return r.logError("registry_repo_seed_genesis_admin_failed", create.Error, "address", normalized)
	}
	return nil
}

func (r *Repository) IsAdmin(ctx context.Context, addr string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&adminModel{}).
		Where("address = ?", address.Normalize(addr)).
		Count(&count).
		Error
	if err != nil {
		return false, r.logError("registry_repo_is_admin_failed", err, "address", address.Normalize(addr))
	}
	return count > 0, nil
}

func (r *Repository) AddAdmin(ctx context.Context, addr string, now time.Time) (entities.Admin, error) {
	normalized := address.Normalize(addr)
	if normalized == "" {
		return entities.Admin{}, domainerrors.ErrInvalidAddress
	}

	row := adminModel{Address: normalized, AddedAt: now.UTC()}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		return entities.Admin{}, r.logError("registry_repo_add_admin_failed", create.Error, "address", normalized)
	}
	if create.RowsAffected == 0 {
		// Re-adding an existing admin is an accepted no-op write.
		var existing adminModel
		if err := r.db.WithContext(ctx).
			Where("address = ?", normalized).
			First(&existing).Error; err != nil {
			return entities.Admin{}, r.logError("registry_repo_add_admin_load_failed", err, "address", normalized)
		}
		return existing.toEntity(), nil
	}
	return row.toEntity(), nil
}

func (r *Repository) RemoveAdmin(ctx context.Context, addr string) error {
	err := r.db.WithContext(ctx).
		Where("address = ?", address.Normalize(addr)).
		Delete(&adminModel{}).
		Error
	if err != nil {
		return r.logError("registry_repo_remove_admin_failed", err, "address", address.Normalize(addr))
	}
	return nil
}

func (r *Repository) UpsertSupplier(ctx context.Context, addr string, name string, now time.Time) (entities.Supplier, error) {
	normalized := address.Normalize(addr)
	if normalized == "" {
		return entities.Supplier{}, domainerrors.ErrInvalidAddress
	}

	row := supplierModel{
		Address:   normalized,
		Name:      name,
		Active:    true,
		AddedAt:   now.UTC(),
		UpdatedAt: now.UTC(),
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "address"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":       row.Name,
			"active":     true,
			"updated_at": row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		return entities.Supplier{}, r.logError("registry_repo_upsert_supplier_failed", create.Error, "address", normalized)
	}

	var stored supplierModel
	if err := r.db.WithContext(ctx).
		Where("address = ?", normalized).
		First(&stored).Error; err != nil {
		return entities.Supplier{}, r.logError("registry_repo_upsert_supplier_load_failed", err, "address", normalized)
	}
	return stored.toEntity(), nil
}

func (r *Repository) SetSupplierActive(ctx context.Context, addr string, active bool, now time.Time) (entities.Supplier, error) {
	normalized := address.Normalize(addr)

	// The toggle materializes a record even for an address never added,
	// so activation state survives a later add.
	row := supplierModel{
		Address:   normalized,
		Active:    active,
		AddedAt:   now.UTC(),
		UpdatedAt: now.UTC(),
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "address"}},
		DoUpdates: clause.Assignments(map[string]any{
			"active":     active,
			"updated_at": now.UTC(),
		}),
	}).Create(&row)
	if create.Error != nil {
		return entities.Supplier{}, r.logError("registry_repo_set_supplier_active_failed", create.Error, "address", normalized)
	}

	var stored supplierModel
	if err := r.db.WithContext(ctx).
		Where("address = ?", normalized).
		First(&stored).Error; err != nil {
		return entities.Supplier{}, r.logError("registry_repo_set_supplier_active_load_failed", err, "address", normalized)
	}
	return stored.toEntity(), nil
}

func (r *Repository) GetSupplier(ctx context.Context, addr string) (entities.Supplier, bool, error) {
	var row supplierModel
	err := r.db.WithContext(ctx).
		Where("address = ?", address.Normalize(addr)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Supplier{}, false, nil
		}
		return entities.Supplier{}, false, r.logError("registry_repo_get_supplier_failed", err, "address", address.Normalize(addr))
	}
	return row.toEntity(), true, nil
}

func (r *Repository) ListSuppliers(ctx context.Context) ([]entities.Supplier, error) {
	var rows []supplierModel
	if err := r.db.WithContext(ctx).
		Order("added_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("registry_repo_list_suppliers_failed", err)
	}
	items := make([]entities.Supplier, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "ledger/access-registry",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("registry repository operation failed", fields...)
	return err
}

type adminModel struct {
	Address string    `gorm:"column:address;primaryKey"`
	AddedAt time.Time `gorm:"column:added_at"`
}

func (adminModel) TableName() string {
	return "ledger_admins"
}

func (m adminModel) toEntity() entities.Admin {
	return entities.Admin{Address: m.Address, AddedAt: m.AddedAt.UTC()}
}

type supplierModel struct {
	Address   string    `gorm:"column:address;primaryKey"`
	Name      string    `gorm:"column:name"`
	Active    bool      `gorm:"column:active"`
	AddedAt   time.Time `gorm:"column:added_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (supplierModel) TableName() string {
	return "ledger_suppliers"
}

func (m supplierModel) toEntity() entities.Supplier {
	return entities.Supplier{
		Address:   m.Address,
		Name:      m.Name,
		Active:    m.Active,
		AddedAt:   m.AddedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

var _ ports.Repository = (*Repository)(nil)
