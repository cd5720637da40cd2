package mappers

import (
	"github.com/hys-retail/storedesk/internal/domain/store"
	"github.com/hys-retail/storedesk/internal/infrastructure/persistence/models"
)

func StoreToModel(s *store.Store) *models.StoreModel {
	return &models.StoreModel{
		ID:       s.ID(),
		Name:     s.Name(),
		Code:     s.Code(),
		IsActive: s.IsActive(),
	}
}

func StoreToDomain(m *models.StoreModel) (*store.Store, error) {
	return store.NewStore(m.ID, m.Name, m.Code, m.IsActive)
}

func DeviceToModel(d *store.Device) *models.DeviceModel {
	return &models.DeviceModel{
		ID:      d.ID(),
		StoreID: d.StoreID(),
		Label:   d.Label(),
		Type:    d.Type(),
		Serial:  d.Serial(),
	}
}

func DeviceToDomain(m *models.DeviceModel) *store.Device {
	return store.ReconstructDevice(m.ID, m.StoreID, m.Label, m.Type, m.Serial)
}
