package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/domain/ticket"
	"github.com/hys-retail/storedesk/internal/infrastructure/persistence/mappers"
	"github.com/hys-retail/storedesk/internal/infrastructure/persistence/models"
	"github.com/hys-retail/storedesk/internal/shared/db"
)

const (
	defaultTicketListLimit = 200
	maxTicketListLimit     = 1000
)

// patchColumns are the only columns an update may write.
var patchColumns = []string{
	"priority", "status", "assigned_to", "resolution_note", "close_code", "updated_at", "closed_at",
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

// scoped applies the ownership predicate. It is the only way queries in this
// file reach the tickets table.
func (r *TicketRepository) scoped(ctx context.Context, scope access.Scope) *gorm.DB {
	tx := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})
	if scope.IsUnrestricted() {
		return tx
	}
	return tx.Scopes(db.StoreScoped(scope.StoreID()))
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, scope access.Scope, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	result := r.scoped(ctx, scope).
		Where("id = ?", model.ID).
		Select(patchColumns).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// RowsAffected may be 0 when the values are unchanged, so confirm the row.
	if result.RowsAffected == 0 {
		var count int64
		if err := r.scoped(ctx, scope).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check ticket: %w", err)
		}
		if count == 0 {
			return ticket.ErrNotFound
		}
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, scope access.Scope, id string) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.scoped(ctx, scope).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, scope access.Scope, filter ticket.Filter) ([]*ticket.Ticket, error) {
	query := r.scoped(ctx, scope)

	if filter.StoreID != "" {
		query = query.Scopes(db.StoreScoped(filter.StoreID))
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Impact != nil {
		query = query.Where("impact = ?", filter.Impact.String())
	}
	query = query.Scopes(db.CreatedBetween(filter.From, filter.To))

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultTicketListLimit
	}
	if limit > maxTicketListLimit {
		limit = maxTicketListLimit
	}

	var ticketModels []models.TicketModel
	if err := query.Order("created_at DESC").Limit(limit).Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for i := range ticketModels {
		t, err := r.mapper.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
