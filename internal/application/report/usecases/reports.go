package usecases

import (
	"context"
	"sort"
	"time"

	"github.com/hys-retail/storedesk/internal/application/report/dto"
	"github.com/hys-retail/storedesk/internal/domain/ticket"
	"github.com/hys-retail/storedesk/internal/shared/biztime"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

const (
	topN            = 10
	DefaultDays     = 30
	MinTimelineDays = 1
	MaxTimelineDays = 365
)

// ReportUseCases answers the admin reporting queries.
type ReportUseCases struct {
	stats  ticket.StatsRepository
	logger logger.Interface
	now    func() time.Time
}

func NewReportUseCases(stats ticket.StatsRepository, logger logger.Interface) *ReportUseCases {
	return &ReportUseCases{
		stats:  stats,
		logger: logger,
		now:    biztime.NowUTC,
	}
}

// Overview returns the ticket total and the ten busiest stores and categories.
func (uc *ReportUseCases) Overview(ctx context.Context) (*dto.OverviewDTO, error) {
	total, err := uc.stats.CountAll(ctx)
	if err != nil {
		return nil, uc.upstream("count tickets", err)
	}
	stores, err := uc.stats.TopStores(ctx, topN)
	if err != nil {
		return nil, uc.upstream("top stores", err)
	}
	categories, err := uc.stats.TopCategories(ctx, topN)
	if err != nil {
		return nil, uc.upstream("top categories", err)
	}

	result := &dto.OverviewDTO{
		TotalTickets:  total,
		TopStores:     make([]dto.StoreCount, 0, len(stores)),
		TopCategories: make([]dto.CategoryCount, 0, len(categories)),
	}
	for _, c := range stores {
		result.TopStores = append(result.TopStores, dto.StoreCount{StoreID: c.Key, Count: c.Count})
	}
	for _, c := range categories {
		result.TopCategories = append(result.TopCategories, dto.CategoryCount{Category: c.Key, Count: c.Count})
	}
	return result, nil
}

func (uc *ReportUseCases) StoreCategory(ctx context.Context) ([]dto.StoreCategoryDTO, error) {
	counts, err := uc.stats.CountByStoreCategory(ctx)
	if err != nil {
		return nil, uc.upstream("store category counts", err)
	}

	result := make([]dto.StoreCategoryDTO, 0, len(counts))
	for _, c := range counts {
		result = append(result, dto.StoreCategoryDTO{StoreID: c.StoreID, Category: c.Category, Count: c.Count})
	}
	return result, nil
}

// Timeline counts tickets per business day over the last days days.
func (uc *ReportUseCases) Timeline(ctx context.Context, days int) (*dto.TimelineDTO, error) {
	days = ClampDays(days)
	since := uc.now().AddDate(0, 0, -days)

	times, err := uc.stats.CreatedTimesSince(ctx, since)
	if err != nil {
		return nil, uc.upstream("ticket timeline", err)
	}

	counts := make(map[string]int64)
	for _, t := range times {
		counts[biztime.DayKey(t)]++
	}

	timeline := make([]dto.DayCount, 0, len(counts))
	for day, count := range counts {
		timeline = append(timeline, dto.DayCount{Day: day, Count: count})
	}
	sort.Slice(timeline, func(i, j int) bool { return timeline[i].Day < timeline[j].Day })

	return &dto.TimelineDTO{Days: days, Timeline: timeline}, nil
}

// ClampDays bounds a timeline window; zero or negative selects the default.
func ClampDays(days int) int {
	switch {
	case days == 0:
		return DefaultDays
	case days < MinTimelineDays:
		return MinTimelineDays
	case days > MaxTimelineDays:
		return MaxTimelineDays
	default:
		return days
	}
}

func (uc *ReportUseCases) upstream(operation string, err error) error {
	uc.logger.Errorw("report query failed", "operation", operation, "error", err)
	return errors.NewUpstreamError(operation, err)
}
