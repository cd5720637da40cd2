package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/hys-retail/storedesk/internal/domain/audit"
	"github.com/hys-retail/storedesk/internal/infrastructure/persistence/models"
)

func AuditEntryToModel(e *audit.Entry) (*models.AuditLogModel, error) {
	raw, err := json.Marshal(e.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to encode audit metadata: %w", err)
	}
	return &models.AuditLogModel{
		ID:        e.ID,
		StoreID:   e.StoreID,
		Action:    e.Action,
		Path:      e.Path,
		Metadata:  datatypes.JSON(raw),
		CreatedAt: e.CreatedAt.UnixMilli(),
	}, nil
}

func AuditEntryToDomain(m *models.AuditLogModel) *audit.Entry {
	metadata := map[string]any{}
	if len(m.Metadata) > 0 {
		// Non-object JSON is kept as a raw string.
		if err := json.Unmarshal(m.Metadata, &metadata); err != nil {
			metadata = map[string]any{"raw": string(m.Metadata)}
		}
	}
	return &audit.Entry{
		ID:        m.ID,
		StoreID:   m.StoreID,
		Action:    m.Action,
		Path:      m.Path,
		Metadata:  metadata,
		CreatedAt: time.UnixMilli(m.CreatedAt).UTC(),
	}
}
