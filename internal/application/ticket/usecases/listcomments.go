package usecases

import (
	"context"

	"github.com/hys-retail/storedesk/internal/application/ticket/dto"
	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/domain/ticket"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

type ListCommentsUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, principal access.Principal, ticketID string) ([]dto.CommentDTO, error) {
	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, principal.Scope(), ticketID)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewUpstreamError("list comments", err)
	}
	return dto.ToCommentDTOs(comments), nil
}
