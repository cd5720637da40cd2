package usecases

import (
	"context"
	stderrors "errors"

	"github.com/hys-retail/storedesk/internal/application/ticket/dto"
	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/domain/ticket"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID string
}

type GetTicketUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute returns the ticket with its comments. Tickets of other stores are
// reported as not found.
func (uc *GetTicketUseCase) Execute(ctx context.Context, principal access.Principal, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, principal.Scope(), query.TicketID)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTicket(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load comments", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewUpstreamError("list comments", err)
	}

	return dto.ToTicketDTO(t, comments), nil
}

// loadTicket is the scoped lookup shared by every single-ticket use case.
func loadTicket(ctx context.Context, repo ticket.Repository, log logger.Interface, scope access.Scope, id string) (*ticket.Ticket, error) {
	t, err := repo.GetByID(ctx, scope, id)
	if err != nil {
		if stderrors.Is(err, ticket.ErrNotFound) {
			return nil, errors.NewNotFoundError("Not found")
		}
		log.Errorw("failed to load ticket", "ticket_id", id, "error", err)
		return nil, errors.NewUpstreamError("get ticket", err)
	}
	return t, nil
}
