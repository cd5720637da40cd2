package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/hys-retail/storedesk/internal/application/ticket/dto"
	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/domain/audit"
	"github.com/hys-retail/storedesk/internal/domain/ticket"
	vo "github.com/hys-retail/storedesk/internal/domain/ticket/valueobjects"
	"github.com/hys-retail/storedesk/internal/shared/biztime"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
	"github.com/hys-retail/storedesk/internal/shared/sanitize"
)

// PatchTicketCommand holds the allowed fields. A nil field was absent from
// the request; an empty AssignedTo, ResolutionNote or CloseCode clears the value.
type PatchTicketCommand struct {
	TicketID       string
	Status         *string
	Priority       *string
	AssignedTo     *string
	ResolutionNote *string
	CloseCode      *string
	Path           string
}

type PatchTicketUseCase struct {
	ticketRepo ticket.Repository
	audit      AuditRecorder
	logger     logger.Interface
	now        func() time.Time
}

func NewPatchTicketUseCase(ticketRepo ticket.Repository, audit AuditRecorder, logger logger.Interface) *PatchTicketUseCase {
	return &PatchTicketUseCase{
		ticketRepo: ticketRepo,
		audit:      audit,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

func (uc *PatchTicketUseCase) Execute(ctx context.Context, principal access.Principal, cmd PatchTicketCommand) (*dto.TicketDTO, error) {
	if !principal.IsAdmin() {
		return nil, errors.NewUnauthorizedError("ticket updates require the admin principal")
	}

	patch, err := buildPatch(cmd)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, errors.NewValidationError("No valid fields to update")
	}

	t, err := loadTicket(ctx, uc.ticketRepo, uc.logger, principal.Scope(), cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.ApplyPatch(patch, uc.now()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, principal.Scope(), t); err != nil {
		if stderrors.Is(err, ticket.ErrNotFound) {
			return nil, errors.NewNotFoundError("Not found")
		}
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewUpstreamError("update ticket", err)
	}

	fields := patch.Fields()
	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "fields", fields, "status", t.Status())

	metadata := map[string]any{"ticketId": t.ID(), "fields": fields}
	if err := uc.audit.Record(ctx, t.StoreID(), audit.ActionTicketPatch, cmd.Path, metadata); err != nil {
		uc.logger.Warnw("failed to record ticket audit entry", "ticket_id", t.ID(), "error", err)
	}

	return dto.ToTicketDTO(t, nil), nil
}

func buildPatch(cmd PatchTicketCommand) (ticket.Patch, error) {
	var patch ticket.Patch

	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return patch, errors.NewValidationError("Invalid status", *cmd.Status)
		}
		patch.Status = &status
	}
	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return patch, errors.NewValidationError("Invalid priority", *cmd.Priority)
		}
		patch.Priority = &priority
	}
	if cmd.CloseCode != nil {
		if strings.TrimSpace(*cmd.CloseCode) == "" {
			patch.ClearCloseCode = true
		} else {
			code, err := vo.NewCloseCode(*cmd.CloseCode)
			if err != nil {
				return patch, errors.NewValidationError("Invalid close code", *cmd.CloseCode)
			}
			patch.CloseCode = &code
		}
	}
	patch.AssignedTo = sanitize.OptionalText(cmd.AssignedTo)
	patch.ResolutionNote = sanitize.OptionalText(cmd.ResolutionNote)

	if err := patch.Validate(); err != nil {
		return patch, errors.NewValidationError(err.Error())
	}
	return patch, nil
}
