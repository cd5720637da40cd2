package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hys-retail/storedesk/internal/domain/audit"
	"github.com/hys-retail/storedesk/internal/infrastructure/persistence/mappers"
	"github.com/hys-retail/storedesk/internal/infrastructure/persistence/models"
	"github.com/hys-retail/storedesk/internal/shared/db"
)

const (
	defaultAuditListLimit = 100
	maxAuditListLimit     = 500
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(ctx context.Context, e *audit.Entry) error {
	model, err := mappers.AuditEntryToModel(e)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save audit log: %w", err)
	}
	return nil
}

func (r *AuditLogRepository) List(ctx context.Context, filter audit.Filter) ([]*audit.Entry, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AuditLogModel{})
	if filter.StoreID != "" {
		query = query.Scopes(db.StoreScoped(filter.StoreID))
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAuditListLimit
	}
	if limit > maxAuditListLimit {
		limit = maxAuditListLimit
	}

	var rows []models.AuditLogModel
	if err := query.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}

	entries := make([]*audit.Entry, 0, len(rows))
	for i := range rows {
		entries = append(entries, mappers.AuditEntryToDomain(&rows[i]))
	}
	return entries, nil
}
