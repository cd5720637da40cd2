package dto

import "github.com/hys-retail/storedesk/internal/domain/store"

type StoreDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	IsActive bool   `json:"is_active"`
}

type DeviceDTO struct {
	ID      string  `json:"id"`
	StoreID string  `json:"store_id"`
	Label   string  `json:"label"`
	Type    string  `json:"type"`
	Serial  *string `json:"serial,omitempty"`
}

func ToStoreDTO(s *store.Store) StoreDTO {
	return StoreDTO{
		ID:       s.ID(),
		Name:     s.Name(),
		Code:     s.Code(),
		IsActive: s.IsActive(),
	}
}

func ToStoreDTOs(stores []*store.Store) []StoreDTO {
	result := make([]StoreDTO, 0, len(stores))
	for _, s := range stores {
		result = append(result, ToStoreDTO(s))
	}
	return result
}

func ToDeviceDTO(d *store.Device) DeviceDTO {
	return DeviceDTO{
		ID:      d.ID(),
		StoreID: d.StoreID(),
		Label:   d.Label(),
		Type:    d.Type(),
		Serial:  d.Serial(),
	}
}

func ToDeviceDTOs(devices []*store.Device) []DeviceDTO {
	result := make([]DeviceDTO, 0, len(devices))
	for _, d := range devices {
		result = append(result, ToDeviceDTO(d))
	}
	return result
}
