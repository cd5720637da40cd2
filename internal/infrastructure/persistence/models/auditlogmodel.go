package models

import "gorm.io/datatypes"

type AuditLogModel struct {
	ID        string         `gorm:"primaryKey;size:36"`
	StoreID   string         `gorm:"size:32;index"`
	Action    string         `gorm:"size:64;not null;index"`
	Path      string         `gorm:"size:255"`
	Metadata  datatypes.JSON
	CreatedAt int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
