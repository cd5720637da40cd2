package usecases

import (
	"context"
	"time"

	"github.com/hys-retail/storedesk/internal/application/ticket/dto"
	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/domain/ticket"
	vo "github.com/hys-retail/storedesk/internal/domain/ticket/valueobjects"
	"github.com/hys-retail/storedesk/internal/shared/biztime"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
	"github.com/hys-retail/storedesk/internal/shared/sanitize"
)

const defaultAdminAuthor = "IT"

type AddCommentCommand struct {
	TicketID   string
	AuthorName string
	Body       string
}

type AddCommentUseCase struct {
	ticketRepo  ticket.Repository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
	now         func() time.Time
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

// Execute appends a comment. The author role follows the principal.
func (uc *AddCommentUseCase) Execute(ctx context.Context, principal access.Principal, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	body := sanitize.Text(cmd.Body)
	if body == "" {
		return nil, errors.NewValidationError("Comment body required")
	}

	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, principal.Scope(), cmd.TicketID)
	if err != nil {
		return nil, err
	}

	role := vo.AuthorRoleStore
	authorName := sanitize.Text(cmd.AuthorName)
	if principal.IsAdmin() {
		role = vo.AuthorRoleAdmin
		if authorName == "" {
			authorName = defaultAdminAuthor
		}
	} else if authorName == "" {
		authorName = principal.StoreID()
	}

	comment, err := ticket.NewComment(t.ID(), role, authorName, body, uc.now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewUpstreamError("create comment", err)
	}

	uc.logger.Infow("comment added", "ticket_id", t.ID(), "author_role", role)

	result := dto.ToCommentDTO(comment)
	return &result, nil
}
