package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/hys-retail/storedesk/internal/application/store/dto"
	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/domain/store"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
	"github.com/hys-retail/storedesk/internal/shared/sanitize"
)

type CreateDeviceCommand struct {
	StoreID string
	Label   string
	Type    string
	Serial  *string
}

// UpdateDeviceCommand changes the present fields. An empty Serial clears it.
type UpdateDeviceCommand struct {
	DeviceID string
	Label    *string
	Type     *string
	Serial   *string
}

type DeviceUseCases struct {
	storeRepo  store.Repository
	deviceRepo store.DeviceRepository
	logger     logger.Interface
}

func NewDeviceUseCases(storeRepo store.Repository, deviceRepo store.DeviceRepository, logger logger.Interface) *DeviceUseCases {
	return &DeviceUseCases{
		storeRepo:  storeRepo,
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// ListMine returns the devices of the principal's own store.
func (uc *DeviceUseCases) ListMine(ctx context.Context, principal access.Principal) ([]dto.DeviceDTO, error) {
	if !principal.IsStore() {
		return nil, errors.NewUnauthorizedError("device listing requires a store session")
	}
	return uc.list(ctx, principal.StoreID())
}

// ListByStore is the admin view of one store's devices.
func (uc *DeviceUseCases) ListByStore(ctx context.Context, storeID string) ([]dto.DeviceDTO, error) {
	if err := uc.requireStore(ctx, storeID); err != nil {
		return nil, err
	}
	return uc.list(ctx, storeID)
}

func (uc *DeviceUseCases) Create(ctx context.Context, cmd CreateDeviceCommand) (*dto.DeviceDTO, error) {
	if err := uc.requireStore(ctx, cmd.StoreID); err != nil {
		return nil, err
	}

	serial := sanitize.OptionalText(cmd.Serial)
	if serial != nil && *serial == "" {
		serial = nil
	}

	d, err := store.NewDevice(cmd.StoreID, sanitize.Text(cmd.Label), strings.TrimSpace(cmd.Type), serial)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.deviceRepo.Create(ctx, d); err != nil {
		uc.logger.Errorw("failed to create device", "store_id", cmd.StoreID, "error", err)
		return nil, errors.NewUpstreamError("create device", err)
	}

	uc.logger.Infow("device created", "device_id", d.ID(), "store_id", d.StoreID())
	result := dto.ToDeviceDTO(d)
	return &result, nil
}

func (uc *DeviceUseCases) Update(ctx context.Context, cmd UpdateDeviceCommand) (*dto.DeviceDTO, error) {
	if cmd.Label == nil && cmd.Type == nil && cmd.Serial == nil {
		return nil, errors.NewValidationError("No valid fields to update")
	}

	d, err := uc.deviceRepo.GetByID(ctx, access.Unrestricted(), cmd.DeviceID)
	if err != nil {
		return nil, uc.deviceError(cmd.DeviceID, err)
	}

	if err := d.Update(sanitize.OptionalText(cmd.Label), sanitize.OptionalText(cmd.Type), sanitize.OptionalText(cmd.Serial)); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.deviceRepo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update device", "device_id", d.ID(), "error", err)
		return nil, errors.NewUpstreamError("update device", err)
	}

	result := dto.ToDeviceDTO(d)
	return &result, nil
}

func (uc *DeviceUseCases) Delete(ctx context.Context, deviceID string) error {
	if err := uc.deviceRepo.Delete(ctx, deviceID); err != nil {
		return uc.deviceError(deviceID, err)
	}
	uc.logger.Infow("device deleted", "device_id", deviceID)
	return nil
}

func (uc *DeviceUseCases) list(ctx context.Context, storeID string) ([]dto.DeviceDTO, error) {
	devices, err := uc.deviceRepo.ListByStore(ctx, storeID)
	if err != nil {
		uc.logger.Errorw("failed to list devices", "store_id", storeID, "error", err)
		return nil, errors.NewUpstreamError("list devices", err)
	}
	return dto.ToDeviceDTOs(devices), nil
}

func (uc *DeviceUseCases) requireStore(ctx context.Context, storeID string) error {
	if _, err := uc.storeRepo.GetByID(ctx, storeID); err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			return errors.NewNotFoundError("Store not found")
		}
		uc.logger.Errorw("failed to get store", "store_id", storeID, "error", err)
		return errors.NewUpstreamError("get store", err)
	}
	return nil
}

func (uc *DeviceUseCases) deviceError(deviceID string, err error) error {
	if stderrors.Is(err, store.ErrDeviceNotFound) {
		return errors.NewNotFoundError("Device not found")
	}
	uc.logger.Errorw("device operation failed", "device_id", deviceID, "error", err)
	return errors.NewUpstreamError("device", err)
}
