package postgresadapter

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gemledger/contexts/ledger/audit/domain/entities"
	domainerrors "gemledger/contexts/ledger/audit/domain/errors"
	"gemledger/contexts/ledger/audit/ports"
)

const (
	entryStatusPending   = "pending"
	entryStatusPublished = "published"
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

func (r *Repository) Append(ctx context.Context, entry entities.Entry) error {
	row := entryModelFromEntity(entry)
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "entry_id"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		return r.logError("audit_repo_append_failed", create.Error, "entry_id", entry.EntryID)
	}
	return nil
}

func (r *Repository) ListByEntity(ctx context.Context, entityType string, entityID string) ([]entities.Entry, error) {
	var rows []entryModel
	if err := r.db.WithContext(ctx).
		Where("entity_type = ?", entityType).
		Where("entity_id = ?", entityID).
		Order("occurred_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("audit_repo_list_by_entity_failed", err,
			"entity_type", entityType,
			"entity_id", entityID,
		)
	}
	return toEntries(rows), nil
}

func (r *Repository) ListAll(ctx context.Context) ([]entities.Entry, error) {
	var rows []entryModel
	if err := r.db.WithContext(ctx).
		Order("occurred_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("audit_repo_list_all_failed", err)
	}
	return toEntries(rows), nil
}

func (r *Repository) ListPending(ctx context.Context, limit int) ([]entities.Entry, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []entryModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", entryStatusPending).
		Order("occurred_at ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, r.logError("audit_repo_list_pending_failed", err, "limit", limit)
	}
	return toEntries(rows), nil
}

func (r *Repository) MarkPublished(ctx context.Context, entryID string, now time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&entryModel{}).
		Where("entry_id = ?", entryID).
		Updates(map[string]any{
			"status":       entryStatusPublished,
			"published_at": now.UTC(),
		})
	if result.Error != nil {
		return r.logError("audit_repo_mark_published_failed", result.Error, "entry_id", entryID)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrEntryNotFound
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "ledger/audit",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("audit repository operation failed", fields...)
	return err
}

type entryModel struct {
	EntryID     string     `gorm:"column:entry_id;primaryKey"`
	EventType   string     `gorm:"column:event_type"`
	EntityType  string     `gorm:"column:entity_type"`
	EntityID    string     `gorm:"column:entity_id"`
	Payload     []byte     `gorm:"column:payload"`
	OccurredAt  time.Time  `gorm:"column:occurred_at"`
	Status      string     `gorm:"column:status"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (entryModel) TableName() string {
	return "ledger_audit_log"
}

func entryModelFromEntity(entry entities.Entry) entryModel {
	row := entryModel{
		EntryID:    entry.EntryID,
		EventType:  entry.EventType,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Payload:    append([]byte(nil), entry.Payload...),
		OccurredAt: entry.OccurredAt.UTC(),
		Status:     entryStatusPending,
	}
	if entry.Published {
		row.Status = entryStatusPublished
		publishedAt := entry.PublishedAt.UTC()
		row.PublishedAt = &publishedAt
	}
	return row
}

func (m entryModel) toEntity() entities.Entry {
	entry := entities.Entry{
		EntryID:    m.EntryID,
		EventType:  m.EventType,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Payload:    append([]byte(nil), m.Payload...),
		OccurredAt: m.OccurredAt.UTC(),
		Published:  m.Status == entryStatusPublished,
	}
	if m.PublishedAt != nil {
		entry.PublishedAt = m.PublishedAt.UTC()
	}
	return entry
}

func toEntries(rows []entryModel) []entities.Entry {
	items := make([]entities.Entry, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

var _ ports.Log = (*Repository)(nil)
