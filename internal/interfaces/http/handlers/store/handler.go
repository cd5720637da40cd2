package store

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hys-retail/storedesk/internal/application/store/dto"
	"github.com/hys-retail/storedesk/internal/application/store/usecases"
	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/domain/store"
	"github.com/hys-retail/storedesk/internal/interfaces/http/middleware"
	"github.com/hys-retail/storedesk/internal/interfaces/http/validation"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
	"github.com/hys-retail/storedesk/internal/shared/utils"
)

type StoreManager interface {
	List(ctx context.Context) ([]dto.StoreDTO, error)
	Create(ctx context.Context, cmd usecases.CreateStoreCommand) (*dto.StoreDTO, error)
	Update(ctx context.Context, cmd usecases.UpdateStoreCommand) (*dto.StoreDTO, error)
}

type DeviceManager interface {
	ListMine(ctx context.Context, principal access.Principal) ([]dto.DeviceDTO, error)
	ListByStore(ctx context.Context, storeID string) ([]dto.DeviceDTO, error)
	Create(ctx context.Context, cmd usecases.CreateDeviceCommand) (*dto.DeviceDTO, error)
	Update(ctx context.Context, cmd usecases.UpdateDeviceCommand) (*dto.DeviceDTO, error)
	Delete(ctx context.Context, deviceID string) error
}

type CreateStoreRequest struct {
	ID       string `json:"id" binding:"required,store_id"`
	Name     string `json:"name" binding:"required,max=120"`
	Code     string `json:"code" binding:"max=32"`
	IsActive *bool  `json:"is_active"`
}

type UpdateStoreRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=120"`
	IsActive *bool   `json:"is_active"`
}

type CreateDeviceRequest struct {
	Label  string  `json:"label" binding:"required,max=120"`
	Type   string  `json:"type" binding:"required,max=40"`
	Serial *string `json:"serial" binding:"omitempty,max=120"`
}

type UpdateDeviceRequest struct {
	Label  *string `json:"label" binding:"omitempty,max=120"`
	Type   *string `json:"type" binding:"omitempty,max=40"`
	Serial *string `json:"serial" binding:"omitempty,max=120"`
}

type Handler struct {
	stores  StoreManager
	devices DeviceManager
	logger  logger.Interface
}

func NewHandler(stores StoreManager, devices DeviceManager, logger logger.Interface) *Handler {
	return &Handler{stores: stores, devices: devices, logger: logger}
}

// ListStores handles GET /admin/stores
func (h *Handler) ListStores(c *gin.Context) {
	result, err := h.stores.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, result)
}

// CreateStore handles POST /admin/stores
func (h *Handler) CreateStore(c *gin.Context) {
	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, validation.BindingError(err))
		return
	}

	result, err := h.stores.Create(c.Request.Context(), usecases.CreateStoreCommand{
		ID:       req.ID,
		Name:     req.Name,
		Code:     req.Code,
		IsActive: req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSON(c, http.StatusCreated, result)
}

// UpdateStore handles PATCH /admin/stores/:id
func (h *Handler) UpdateStore(c *gin.Context) {
	storeID, err := storeIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, validation.BindingError(err))
		return
	}

	result, err := h.stores.Update(c.Request.Context(), usecases.UpdateStoreCommand{
		ID:       storeID,
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, result)
}

// ListMyDevices handles GET /devices
func (h *Handler) ListMyDevices(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	result, err := h.devices.ListMine(c.Request.Context(), principal)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, result)
}

// ListStoreDevices handles GET /admin/stores/:id/devices
func (h *Handler) ListStoreDevices(c *gin.Context) {
	storeID, err := storeIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.devices.ListByStore(c.Request.Context(), storeID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, result)
}

// CreateDevice handles POST /admin/stores/:id/devices
func (h *Handler) CreateDevice(c *gin.Context) {
	storeID, err := storeIDParam(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, validation.BindingError(err))
		return
	}

	result, err := h.devices.Create(c.Request.Context(), usecases.CreateDeviceCommand{
		StoreID: storeID,
		Label:   req.Label,
		Type:    req.Type,
		Serial:  req.Serial,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSON(c, http.StatusCreated, result)
}

// UpdateDevice handles PATCH /admin/devices/:id
func (h *Handler) UpdateDevice(c *gin.Context) {
	deviceID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, validation.BindingError(err))
		return
	}

	result, err := h.devices.Update(c.Request.Context(), usecases.UpdateDeviceCommand{
		DeviceID: deviceID,
		Label:    req.Label,
		Type:     req.Type,
		Serial:   req.Serial,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, result)
}

// DeleteDevice handles DELETE /admin/devices/:id
func (h *Handler) DeleteDevice(c *gin.Context) {
	deviceID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.devices.Delete(c.Request.Context(), deviceID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OK(c)
}

func storeIDParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if !store.ValidID(id) {
		return "", errors.NewNotFoundError("Store not found")
	}
	return id, nil
}
