package ticket

import (
	"context"
	"time"

	"github.com/hys-retail/storedesk/internal/domain/access"
	vo "github.com/hys-retail/storedesk/internal/domain/ticket/valueobjects"
)

// Repository persists tickets. Every read and write takes the caller's scope;
// rows outside it behave as if they did not exist.
type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	// Update writes the triage fields of t. Returns ErrNotFound when t is
	// outside scope.
	Update(ctx context.Context, scope access.Scope, t *Ticket) error
	GetByID(ctx context.Context, scope access.Scope, id string) (*Ticket, error)
	List(ctx context.Context, scope access.Scope, filter Filter) ([]*Ticket, error)
}

// Filter narrows a ticket listing. Zero fields are ignored.
type Filter struct {
	StoreID  string
	Status   *vo.TicketStatus
	Category *vo.Category
	Priority *vo.Priority
	Impact   *vo.Impact
	From     time.Time
	To       time.Time
	Limit    int
}

type CommentRepository interface {
	Create(ctx context.Context, c *Comment) error
	ListByTicket(ctx context.Context, ticketID string) ([]*Comment, error)
}

// Count is one row of a grouped ticket count.
type Count struct {
	Key   string
	Count int64
}

// StoreCategoryCount is one cell of the store by category matrix.
type StoreCategoryCount struct {
	StoreID  string
	Category string
	Count    int64
}

// StatsRepository answers the admin report queries.
type StatsRepository interface {
	CountAll(ctx context.Context) (int64, error)
	TopStores(ctx context.Context, limit int) ([]Count, error)
	TopCategories(ctx context.Context, limit int) ([]Count, error)
	CountByStoreCategory(ctx context.Context) ([]StoreCategoryCount, error)
	CreatedTimesSince(ctx context.Context, since time.Time) ([]time.Time, error)
}
