package notification

import (
	"github.com/hys-retail/storedesk/internal/domain/ticket"
)

// Enqueuer accepts messages for background delivery.
type Enqueuer interface {
	Enqueue(msg Message) bool
}

// TicketNotifier turns ticket events into queued notifications.
type TicketNotifier struct {
	queue Enqueuer
}

func NewTicketNotifier(queue Enqueuer) *TicketNotifier {
	return &TicketNotifier{queue: queue}
}

func (n *TicketNotifier) TicketCreated(t *ticket.Ticket) {
	n.queue.Enqueue(FormatTicketCreated(t))
}
