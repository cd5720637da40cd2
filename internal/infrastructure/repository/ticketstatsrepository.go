package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hys-retail/storedesk/internal/domain/ticket"
	"github.com/hys-retail/storedesk/internal/infrastructure/persistence/models"
	"github.com/hys-retail/storedesk/internal/shared/db"
)

// TicketStatsRepository runs the aggregate queries behind the admin reports.
type TicketStatsRepository struct {
	db *gorm.DB
}

func NewTicketStatsRepository(db *gorm.DB) *TicketStatsRepository {
	return &TicketStatsRepository{db: db}
}

type groupCountRow struct {
	GroupKey string
	Total    int64
}

func (r *TicketStatsRepository) tickets(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})
}

func (r *TicketStatsRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.tickets(ctx).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return total, nil
}

func (r *TicketStatsRepository) TopStores(ctx context.Context, limit int) ([]ticket.Count, error) {
	return r.topBy(ctx, "store_id", limit)
}

func (r *TicketStatsRepository) TopCategories(ctx context.Context, limit int) ([]ticket.Count, error) {
	return r.topBy(ctx, "category", limit)
}

// topBy groups on a fixed column name; never pass caller input as column.
func (r *TicketStatsRepository) topBy(ctx context.Context, column string, limit int) ([]ticket.Count, error) {
	var rows []groupCountRow
	err := r.tickets(ctx).
		Select(column + " AS group_key, COUNT(*) AS total").
		Group(column).
		Order("total DESC, group_key ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by %s: %w", column, err)
	}

	counts := make([]ticket.Count, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, ticket.Count{Key: row.GroupKey, Count: row.Total})
	}
	return counts, nil
}

func (r *TicketStatsRepository) CountByStoreCategory(ctx context.Context) ([]ticket.StoreCategoryCount, error) {
	var rows []struct {
		StoreID  string
		Category string
		Total    int64
	}
	err := r.tickets(ctx).
		Select("store_id, category, COUNT(*) AS total").
		Group("store_id, category").
		Order("total DESC, store_id ASC, category ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by store and category: %w", err)
	}

	counts := make([]ticket.StoreCategoryCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, ticket.StoreCategoryCount{
			StoreID:  row.StoreID,
			Category: row.Category,
			Count:    row.Total,
		})
	}
	return counts, nil
}

func (r *TicketStatsRepository) CreatedTimesSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	var millis []int64
	err := r.tickets(ctx).
		Scopes(db.CreatedBetween(since, time.Time{})).
		Order("created_at ASC").
		Pluck("created_at", &millis).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket timestamps: %w", err)
	}

	times := make([]time.Time, 0, len(millis))
	for _, ms := range millis {
		times = append(times, time.UnixMilli(ms).UTC())
	}
	return times, nil
}
