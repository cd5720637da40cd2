// Package db provides gorm helpers shared by the repositories: ownership
// scopes and context-bound transactions.
package db

import (
	"time"

	"gorm.io/gorm"
)

// StoreScoped restricts a query to rows owned by storeID. An empty storeID
// matches nothing; callers skip the scope entirely for unrestricted access.
//
//	db.Model(&models.TicketModel{}).Scopes(db.StoreScoped(storeID)).Find(&rows)
func StoreScoped(storeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("store_id = ?", storeID)
	}
}

// CreatedBetween filters on the millisecond created_at column over [from, to).
// Zero bounds are ignored.
func CreatedBetween(from, to time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !from.IsZero() {
			db = db.Where("created_at >= ?", from.UnixMilli())
		}
		if !to.IsZero() {
			db = db.Where("created_at < ?", to.UnixMilli())
		}
		return db
	}
}
