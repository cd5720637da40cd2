package store

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hys-retail/storedesk/internal/application/store/dto"
	"github.com/hys-retail/storedesk/internal/application/store/usecases"
	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/interfaces/http/handlers/testutil"
	"github.com/hys-retail/storedesk/internal/interfaces/http/validation"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

const testDeviceID = "0b6f3a7e-2d4c-4a51-8f0e-6c9d1e2f3a4b"

type mockStoreManager struct {
	created *usecases.CreateStoreCommand
	updated *usecases.UpdateStoreCommand
	stores  []dto.StoreDTO
	err     error
}

func (m *mockStoreManager) List(ctx context.Context) ([]dto.StoreDTO, error) {
	return m.stores, m.err
}

func (m *mockStoreManager) Create(ctx context.Context, cmd usecases.CreateStoreCommand) (*dto.StoreDTO, error) {
	m.created = &cmd
	if m.err != nil {
		return nil, m.err
	}
	return &dto.StoreDTO{ID: cmd.ID, Name: cmd.Name, Code: cmd.Code, IsActive: true}, nil
}

func (m *mockStoreManager) Update(ctx context.Context, cmd usecases.UpdateStoreCommand) (*dto.StoreDTO, error) {
	m.updated = &cmd
	if m.err != nil {
		return nil, m.err
	}
	return &dto.StoreDTO{ID: cmd.ID}, nil
}

type mockDeviceManager struct {
	minePrincipal access.Principal
	listedStore   string
	created       *usecases.CreateDeviceCommand
	updated       *usecases.UpdateDeviceCommand
	deleted       string
	devices       []dto.DeviceDTO
	err           error
}

func (m *mockDeviceManager) ListMine(ctx context.Context, principal access.Principal) ([]dto.DeviceDTO, error) {
	m.minePrincipal = principal
	return m.devices, m.err
}

func (m *mockDeviceManager) ListByStore(ctx context.Context, storeID string) ([]dto.DeviceDTO, error) {
	m.listedStore = storeID
	return m.devices, m.err
}

func (m *mockDeviceManager) Create(ctx context.Context, cmd usecases.CreateDeviceCommand) (*dto.DeviceDTO, error) {
	m.created = &cmd
	if m.err != nil {
		return nil, m.err
	}
	return &dto.DeviceDTO{ID: testDeviceID, StoreID: cmd.StoreID, Label: cmd.Label, Type: cmd.Type}, nil
}

func (m *mockDeviceManager) Update(ctx context.Context, cmd usecases.UpdateDeviceCommand) (*dto.DeviceDTO, error) {
	m.updated = &cmd
	if m.err != nil {
		return nil, m.err
	}
	return &dto.DeviceDTO{ID: cmd.DeviceID}, nil
}

func (m *mockDeviceManager) Delete(ctx context.Context, deviceID string) error {
	m.deleted = deviceID
	return m.err
}

func newTestHandler(t *testing.T) (*Handler, *mockStoreManager, *mockDeviceManager) {
	t.Helper()
	require.NoError(t, validation.Register())
	stores := &mockStoreManager{}
	devices := &mockDeviceManager{}
	return NewHandler(stores, devices, logger.NewNopLogger()), stores, devices
}

func TestHandler_CreateStore(t *testing.T) {
	h, stores, _ := newTestHandler(t)

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/stores",
		map[string]any{"id": "27", "name": "Çanakkale Merkez", "code": "CNK"})
	testutil.SetAdminContext(c)

	h.CreateStore(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, stores.created)
	assert.Equal(t, "27", stores.created.ID)
	assert.Nil(t, stores.created.IsActive)
}

func TestHandler_CreateStore_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]any
		wantMsg string
	}{
		{"missing name", map[string]any{"id": "27"}, "Missing required fields"},
		{"bad id", map[string]any{"id": "x1", "name": "A"}, "Invalid store id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, stores, _ := newTestHandler(t)

			c, w := testutil.NewTestContext(http.MethodPost, "/admin/stores", tt.body)
			h.CreateStore(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, stores.created)
			var resp testutil.ErrorResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.Equal(t, tt.wantMsg, resp.Error)
		})
	}
}

func TestHandler_CreateStore_Conflict(t *testing.T) {
	h, stores, _ := newTestHandler(t)
	stores.err = errors.NewConflictError("Store already exists")

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/stores", map[string]any{"id": "03", "name": "Biga"})
	h.CreateStore(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateStore(t *testing.T) {
	h, stores, _ := newTestHandler(t)

	c, w := testutil.NewTestContext(http.MethodPatch, "/admin/stores/03", map[string]any{"is_active": false})
	testutil.SetURLParam(c, "id", "03")
	h.UpdateStore(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, stores.updated)
	assert.Equal(t, "03", stores.updated.ID)
	require.NotNil(t, stores.updated.IsActive)
	assert.False(t, *stores.updated.IsActive)
	assert.Nil(t, stores.updated.Name)
}

func TestHandler_UpdateStore_BadID(t *testing.T) {
	h, stores, _ := newTestHandler(t)

	c, w := testutil.NewTestContext(http.MethodPatch, "/admin/stores/../x", map[string]any{"name": "A"})
	testutil.SetURLParam(c, "id", "../x")
	h.UpdateStore(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Nil(t, stores.updated)
}

func TestHandler_ListMyDevices(t *testing.T) {
	h, _, devices := newTestHandler(t)
	devices.devices = []dto.DeviceDTO{{ID: testDeviceID, StoreID: "03"}}

	c, w := testutil.NewTestContext(http.MethodGet, "/devices", nil)
	testutil.SetStoreContext(c, "03")
	h.ListMyDevices(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "03", devices.minePrincipal.StoreID())
	var resp []dto.DeviceDTO
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_CreateDevice(t *testing.T) {
	h, _, devices := newTestHandler(t)

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/stores/03/devices",
		map[string]any{"label": "Kasa 1", "type": "POS", "serial": "SN-1"})
	testutil.SetURLParam(c, "id", "03")
	h.CreateDevice(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, devices.created)
	assert.Equal(t, "03", devices.created.StoreID)
	require.NotNil(t, devices.created.Serial)
	assert.Equal(t, "SN-1", *devices.created.Serial)
}

func TestHandler_UpdateAndDeleteDevice(t *testing.T) {
	h, _, devices := newTestHandler(t)

	c, w := testutil.NewTestContext(http.MethodPatch, "/admin/devices/"+testDeviceID, map[string]any{"label": "Kasa 2"})
	testutil.SetURLParam(c, "id", testDeviceID)
	h.UpdateDevice(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, devices.updated)
	require.NotNil(t, devices.updated.Label)
	assert.Equal(t, "Kasa 2", *devices.updated.Label)
	assert.Nil(t, devices.updated.Type)

	c, w = testutil.NewTestContext(http.MethodDelete, "/admin/devices/"+testDeviceID, nil)
	testutil.SetURLParam(c, "id", testDeviceID)
	h.DeleteDevice(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testDeviceID, devices.deleted)
}

func TestHandler_DeleteDevice_NotFound(t *testing.T) {
	h, _, devices := newTestHandler(t)
	devices.err = errors.NewNotFoundError("Device not found")

	c, w := testutil.NewTestContext(http.MethodDelete, "/admin/devices/"+testDeviceID, nil)
	testutil.SetURLParam(c, "id", testDeviceID)
	h.DeleteDevice(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
