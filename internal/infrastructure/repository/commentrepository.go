package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hys-retail/storedesk/internal/domain/ticket"
	"github.com/hys-retail/storedesk/internal/infrastructure/persistence/mappers"
	"github.com/hys-retail/storedesk/internal/infrastructure/persistence/models"
	"github.com/hys-retail/storedesk/internal/shared/db"
)

// CommentRepository stores ticket comments. Callers check ticket ownership
// before reaching it.
type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db, mapper: mappers.NewTicketMapper()}
}

func (r *CommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.CommentToModel(c)).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}

func (r *CommentRepository) ListByTicket(ctx context.Context, ticketID string) ([]*ticket.Comment, error) {
	var rows []models.CommentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(rows))
	for i := range rows {
		comments = append(comments, r.mapper.CommentToDomain(&rows[i]))
	}
	return comments, nil
}
