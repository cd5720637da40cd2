package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hys-retail/storedesk/internal/domain/store"
	"github.com/hys-retail/storedesk/internal/infrastructure/persistence/mappers"
	"github.com/hys-retail/storedesk/internal/infrastructure/persistence/models"
	"github.com/hys-retail/storedesk/internal/shared/db"
	apperrors "github.com/hys-retail/storedesk/internal/shared/errors"
)

type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Create(ctx context.Context, s *store.Store) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(mappers.StoreToModel(s)).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("store already exists", s.ID())
		}
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

func (r *StoreRepository) Upsert(ctx context.Context, s *store.Store) error {
	err := db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "code", "is_active", "updated_at"}),
		}).
		Create(mappers.StoreToModel(s)).Error
	if err != nil {
		return fmt.Errorf("failed to upsert store: %w", err)
	}
	return nil
}

func (r *StoreRepository) Update(ctx context.Context, s *store.Store) error {
	model := mappers.StoreToModel(s)
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.StoreModel{}).
		Where("id = ?", model.ID).
		Select("name", "code", "is_active", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update store: %w", result.Error)
	}
	return nil
}

func (r *StoreRepository) GetByID(ctx context.Context, id string) (*store.Store, error) {
	var model models.StoreModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find store: %w", err)
	}
	return mappers.StoreToDomain(&model)
}

func (r *StoreRepository) List(ctx context.Context) ([]*store.Store, error) {
	var rows []models.StoreModel
	if err := db.GetTxFromContext(ctx, r.db).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	stores := make([]*store.Store, 0, len(rows))
	for i := range rows {
		s, err := mappers.StoreToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, nil
}

func (r *StoreRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.StoreModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count stores: %w", err)
	}
	return count, nil
}
