package http

import (
	"gorm.io/gorm"

	"github.com/hys-retail/storedesk/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	storeRepo   *repository.StoreRepository
	deviceRepo  *repository.DeviceRepository
	ticketRepo  *repository.TicketRepository
	commentRepo *repository.CommentRepository
	statsRepo   *repository.TicketStatsRepository
	auditRepo   *repository.AuditLogRepository
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		storeRepo:   repository.NewStoreRepository(db),
		deviceRepo:  repository.NewDeviceRepository(db),
		ticketRepo:  repository.NewTicketRepository(db),
		commentRepo: repository.NewCommentRepository(db),
		statsRepo:   repository.NewTicketStatsRepository(db),
		auditRepo:   repository.NewAuditLogRepository(db),
	}
}
