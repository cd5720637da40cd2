package models

// TicketModel is the fixed write schema of a ticket. Timestamps are UTC
// milliseconds.
type TicketModel struct {
	ID             string  `gorm:"primaryKey;size:36"`
	StoreID        string  `gorm:"size:32;not null;index:idx_tickets_store_created,priority:1"`
	DeviceID       *string `gorm:"size:36;index"`
	RequesterName  string  `gorm:"size:120;not null"`
	Title          string  `gorm:"size:200;not null"`
	Description    string  `gorm:"type:text;not null"`
	Category       string  `gorm:"size:32;not null;index"`
	Impact         string  `gorm:"size:20;not null;index"`
	Priority       string  `gorm:"size:4;not null;index"`
	Status         string  `gorm:"size:20;not null;index"`
	AssignedTo     *string `gorm:"size:120"`
	ResolutionNote *string `gorm:"type:text"`
	CloseCode      *string `gorm:"size:32"`
	CreatedAt      int64   `gorm:"autoCreateTime:milli;not null;index:idx_tickets_store_created,priority:2;index"`
	UpdatedAt      int64   `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt       *int64
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID         string `gorm:"primaryKey;size:36"`
	TicketID   string `gorm:"size:36;not null;index"`
	AuthorRole string `gorm:"size:10;not null"`
	AuthorName string `gorm:"size:120;not null"`
	Body       string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
