package usecases

import (
	"context"

	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/domain/store"
	"github.com/hys-retail/storedesk/internal/domain/ticket"
)

// DeviceLookup resolves a device inside the caller's scope.
type DeviceLookup interface {
	GetByID(ctx context.Context, scope access.Scope, id string) (*store.Device, error)
}

// AuditRecorder writes an audit entry.
type AuditRecorder interface {
	Record(ctx context.Context, storeID, action, path string, metadata map[string]any) error
}

// TicketNotifier announces a new ticket. Implementations must not block.
type TicketNotifier interface {
	TicketCreated(t *ticket.Ticket)
}
