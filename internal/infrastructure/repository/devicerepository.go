package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/domain/store"
	"github.com/hys-retail/storedesk/internal/infrastructure/persistence/mappers"
	"github.com/hys-retail/storedesk/internal/infrastructure/persistence/models"
	"github.com/hys-retail/storedesk/internal/shared/db"
)

type DeviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) *DeviceRepository {
	return &DeviceRepository{db: db}
}

func (r *DeviceRepository) Create(ctx context.Context, d *store.Device) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.DeviceToModel(d)).Error; err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}
	return nil
}

func (r *DeviceRepository) Update(ctx context.Context, d *store.Device) error {
	model := mappers.DeviceToModel(d)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.DeviceModel{}).
		Where("id = ?", model.ID).
		Select("label", "type", "serial", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update device: %w", result.Error)
	}
	return nil
}

func (r *DeviceRepository) Delete(ctx context.Context, id string) error {
	result := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).Delete(&models.DeviceModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return store.ErrDeviceNotFound
	}
	return nil
}

func (r *DeviceRepository) GetByID(ctx context.Context, scope access.Scope, id string) (*store.Device, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.DeviceModel{})
	if !scope.IsUnrestricted() {
		query = query.Scopes(db.StoreScoped(scope.StoreID()))
	}

	var model models.DeviceModel
	if err := query.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrDeviceNotFound
		}
		return nil, fmt.Errorf("failed to find device: %w", err)
	}
	return mappers.DeviceToDomain(&model), nil
}

func (r *DeviceRepository) ListByStore(ctx context.Context, storeID string) ([]*store.Device, error) {
	var rows []models.DeviceModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.StoreScoped(storeID)).
		Order("label ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	devices := make([]*store.Device, 0, len(rows))
	for i := range rows {
		devices = append(devices, mappers.DeviceToDomain(&rows[i]))
	}
	return devices, nil
}
