package models

type StoreModel struct {
	ID        string `gorm:"primaryKey;size:32"`
	Name      string `gorm:"size:120;not null"`
	Code      string `gorm:"size:32;not null"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (StoreModel) TableName() string {
	return "stores"
}

type DeviceModel struct {
	ID        string  `gorm:"primaryKey;size:36"`
	StoreID   string  `gorm:"size:32;not null;index"`
	Label     string  `gorm:"size:120;not null"`
	Type      string  `gorm:"size:50;not null"`
	Serial    *string `gorm:"size:120"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (DeviceModel) TableName() string {
	return "devices"
}
