package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/hys-retail/storedesk/internal/application/store/dto"
	"github.com/hys-retail/storedesk/internal/domain/store"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
	"github.com/hys-retail/storedesk/internal/shared/sanitize"
)

type CreateStoreCommand struct {
	ID       string
	Name     string
	Code     string
	IsActive *bool
}

type UpdateStoreCommand struct {
	ID       string
	Name     *string
	IsActive *bool
}

// StoreUseCases groups the admin operations on the store table.
type StoreUseCases struct {
	storeRepo store.Repository
	logger    logger.Interface
}

func NewStoreUseCases(storeRepo store.Repository, logger logger.Interface) *StoreUseCases {
	return &StoreUseCases{storeRepo: storeRepo, logger: logger}
}

func (uc *StoreUseCases) List(ctx context.Context) ([]dto.StoreDTO, error) {
	stores, err := uc.storeRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list stores", "error", err)
		return nil, errors.NewUpstreamError("list stores", err)
	}
	return dto.ToStoreDTOs(stores), nil
}

func (uc *StoreUseCases) Create(ctx context.Context, cmd CreateStoreCommand) (*dto.StoreDTO, error) {
	active := true
	if cmd.IsActive != nil {
		active = *cmd.IsActive
	}

	s, err := store.NewStore(strings.TrimSpace(cmd.ID), sanitize.Text(cmd.Name), strings.TrimSpace(cmd.Code), active)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.storeRepo.Create(ctx, s); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create store", "store_id", s.ID(), "error", err)
		return nil, errors.NewUpstreamError("create store", err)
	}

	uc.logger.Infow("store created", "store_id", s.ID())
	result := dto.ToStoreDTO(s)
	return &result, nil
}

func (uc *StoreUseCases) Update(ctx context.Context, cmd UpdateStoreCommand) (*dto.StoreDTO, error) {
	if cmd.Name == nil && cmd.IsActive == nil {
		return nil, errors.NewValidationError("No valid fields to update")
	}

	s, err := uc.get(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Name != nil {
		if err := s.Rename(sanitize.Text(*cmd.Name)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.IsActive != nil {
		s.SetActive(*cmd.IsActive)
	}

	if err := uc.storeRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update store", "store_id", s.ID(), "error", err)
		return nil, errors.NewUpstreamError("update store", err)
	}

	uc.logger.Infow("store updated", "store_id", s.ID(), "is_active", s.IsActive())
	result := dto.ToStoreDTO(s)
	return &result, nil
}

func (uc *StoreUseCases) get(ctx context.Context, id string) (*store.Store, error) {
	s, err := uc.storeRepo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return nil, errors.NewNotFoundError("Store not found")
		}
		uc.logger.Errorw("failed to get store", "store_id", id, "error", err)
		return nil, errors.NewUpstreamError("get store", err)
	}
	return s, nil
}
