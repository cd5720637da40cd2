package usecases

import (
	"context"
	"sync"

	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/domain/store"
	"github.com/hys-retail/storedesk/internal/domain/ticket"
)

// mockTicketRepository stores tickets in memory and applies scopes the way
// the gorm repository does.
type mockTicketRepository struct {
	mu      sync.Mutex
	tickets map[string]*ticket.Ticket

	CreateFunc  func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc  func(ctx context.Context, scope access.Scope, t *ticket.Ticket) error
	GetByIDFunc func(ctx context.Context, scope access.Scope, id string) (*ticket.Ticket, error)
	ListFunc    func(ctx context.Context, scope access.Scope, filter ticket.Filter) ([]*ticket.Ticket, error)

	lastFilter ticket.Filter
	lastScope  access.Scope
	updates    int
}

func newMockTicketRepository(tickets ...*ticket.Ticket) *mockTicketRepository {
	m := &mockTicketRepository{tickets: make(map[string]*ticket.Ticket)}
	for _, t := range tickets {
		m.tickets[t.ID()] = t
	}
	return m
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets[t.ID()] = t
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, scope access.Scope, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, scope, t)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tickets[t.ID()]; !ok || !scope.Allows(t.StoreID()) {
		return ticket.ErrNotFound
	}
	m.tickets[t.ID()] = t
	m.updates++
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, scope access.Scope, id string) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, scope, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tickets[id]
	if !ok || !scope.Allows(t.StoreID()) {
		return nil, ticket.ErrNotFound
	}
	return t, nil
}

func (m *mockTicketRepository) List(ctx context.Context, scope access.Scope, filter ticket.Filter) ([]*ticket.Ticket, error) {
	m.lastFilter = filter
	m.lastScope = scope
	if m.ListFunc != nil {
		return m.ListFunc(ctx, scope, filter)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*ticket.Ticket
	for _, t := range m.tickets {
		if scope.Allows(t.StoreID()) {
			result = append(result, t)
		}
	}
	return result, nil
}

type mockCommentRepository struct {
	comments []*ticket.Comment

	CreateFunc       func(ctx context.Context, c *ticket.Comment) error
	ListByTicketFunc func(ctx context.Context, ticketID string) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	m.comments = append(m.comments, c)
	return nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID string) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	var result []*ticket.Comment
	for _, c := range m.comments {
		if c.TicketID() == ticketID {
			result = append(result, c)
		}
	}
	return result, nil
}

type mockDeviceLookup struct {
	devices []*store.Device
	err     error
}

func (m *mockDeviceLookup) GetByID(_ context.Context, scope access.Scope, id string) (*store.Device, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, d := range m.devices {
		if d.ID() == id && scope.Allows(d.StoreID()) {
			return d, nil
		}
	}
	return nil, store.ErrDeviceNotFound
}

type auditCall struct {
	StoreID  string
	Action   string
	Path     string
	Metadata map[string]any
}

type mockAuditRecorder struct {
	calls []auditCall
	err   error
}

func (m *mockAuditRecorder) Record(_ context.Context, storeID, action, path string, metadata map[string]any) error {
	m.calls = append(m.calls, auditCall{StoreID: storeID, Action: action, Path: path, Metadata: metadata})
	return m.err
}

type mockNotifier struct {
	created []*ticket.Ticket
}

func (m *mockNotifier) TicketCreated(t *ticket.Ticket) {
	m.created = append(m.created, t)
}
