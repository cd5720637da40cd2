// Package models defines the gorm persistence structs.
package models

// All returns every model in migration order.
func All() []any {
	return []any{
		&StoreModel{},
		&DeviceModel{},
		&TicketModel{},
		&CommentModel{},
		&AuditLogModel{},
	}
}
