package ticket

import (
	"context"

	"github.com/hys-retail/storedesk/internal/application/ticket/dto"
	"github.com/hys-retail/storedesk/internal/application/ticket/usecases"
	"github.com/hys-retail/storedesk/internal/domain/access"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, principal access.Principal, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, principal access.Principal, query usecases.GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, principal access.Principal, query usecases.ListTicketsQuery) ([]*dto.TicketDTO, error)
}

type PatchTicketExecutor interface {
	Execute(ctx context.Context, principal access.Principal, cmd usecases.PatchTicketCommand) (*dto.TicketDTO, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, principal access.Principal, cmd usecases.AddCommentCommand) (*dto.CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, principal access.Principal, ticketID string) ([]dto.CommentDTO, error)
}
