package usecases

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/domain/audit"
	"github.com/hys-retail/storedesk/internal/domain/store"
	"github.com/hys-retail/storedesk/internal/domain/ticket"
	vo "github.com/hys-retail/storedesk/internal/domain/ticket/valueobjects"
	"github.com/hys-retail/storedesk/internal/shared/biztime"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
	"github.com/hys-retail/storedesk/internal/shared/sanitize"
)

type CreateTicketCommand struct {
	RequesterName string
	DeviceID      string
	Category      string
	Severity      string
	Title         string
	Description   string
	// Path is recorded in the audit entry.
	Path string
}

type CreateTicketResult struct {
	TicketID  string
	Category  string
	Impact    string
	Priority  string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	devices    DeviceLookup
	audit      AuditRecorder
	notifier   TicketNotifier
	logger     logger.Interface
	now        func() time.Time
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	devices DeviceLookup,
	audit AuditRecorder,
	notifier TicketNotifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		devices:    devices,
		audit:      audit,
		notifier:   notifier,
		logger:     logger,
		now:        biztime.NowUTC,
	}
}

// Execute files a ticket for the principal's store. The audit entry and the
// notification are best effort and never fail the request.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, principal access.Principal, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if !principal.IsStore() {
		return nil, errors.NewUnauthorizedError("ticket creation requires a store session")
	}
	storeID := principal.StoreID()

	requesterName := sanitize.Text(cmd.RequesterName)
	title := sanitize.Text(cmd.Title)
	description := sanitize.Text(cmd.Description)
	category := strings.TrimSpace(cmd.Category)
	severity := strings.TrimSpace(cmd.Severity)

	if requesterName == "" || category == "" || severity == "" || title == "" || description == "" {
		return nil, errors.NewValidationError("Missing required fields")
	}

	cat, err := vo.NewCategory(category)
	if err != nil {
		return nil, errors.NewValidationError("Invalid category", category)
	}

	var deviceID *string
	if id := strings.TrimSpace(cmd.DeviceID); id != "" {
		if _, err := uc.devices.GetByID(ctx, principal.Scope(), id); err != nil {
			if stderrors.Is(err, store.ErrDeviceNotFound) {
				return nil, errors.NewValidationError("Invalid device")
			}
			uc.logger.Errorw("failed to look up device", "device_id", id, "error", err)
			return nil, errors.NewUpstreamError("get device", err)
		}
		deviceID = &id
	}

	t, err := ticket.NewTicket(storeID, deviceID, requesterName, title, description, cat, severity, uc.now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "store_id", storeID, "error", err)
		return nil, errors.NewUpstreamError("create ticket", err)
	}

	uc.logger.Infow("ticket created",
		"ticket_id", t.ID(),
		"store_id", storeID,
		"category", t.Category(),
		"priority", t.Priority(),
	)

	if err := uc.audit.Record(ctx, storeID, audit.ActionTicketCreate, cmd.Path, map[string]any{"ticketId": t.ID()}); err != nil {
		uc.logger.Warnw("failed to record ticket audit entry", "ticket_id", t.ID(), "error", err)
	}
	uc.notifier.TicketCreated(t)

	return &CreateTicketResult{
		TicketID:  t.ID(),
		Category:  t.Category().String(),
		Impact:    t.Impact().String(),
		Priority:  t.Priority().String(),
		CreatedAt: t.CreatedAt(),
	}, nil
}
