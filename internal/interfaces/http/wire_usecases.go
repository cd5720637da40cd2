package http

import (
	appaudit "github.com/hys-retail/storedesk/internal/application/audit"
	reportUsecases "github.com/hys-retail/storedesk/internal/application/report/usecases"
	"github.com/hys-retail/storedesk/internal/application/session"
	storeUsecases "github.com/hys-retail/storedesk/internal/application/store/usecases"
	ticketUsecases "github.com/hys-retail/storedesk/internal/application/ticket/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Session
	storeLoginUC *session.StoreLoginUseCase
	adminLoginUC *session.AdminLoginUseCase

	// Ticket
	createTicketUC *ticketUsecases.CreateTicketUseCase
	getTicketUC    *ticketUsecases.GetTicketUseCase
	listTicketsUC  *ticketUsecases.ListTicketsUseCase
	patchTicketUC  *ticketUsecases.PatchTicketUseCase
	addCommentUC   *ticketUsecases.AddCommentUseCase
	listCommentsUC *ticketUsecases.ListCommentsUseCase

	// Reference data
	storeUCs  *storeUsecases.StoreUseCases
	deviceUCs *storeUsecases.DeviceUseCases

	// Admin
	reportUCs    *reportUsecases.ReportUseCases
	auditService *appaudit.Service
}

func (c *Container) initUseCases() {
	repos := c.repos
	log := c.log

	c.ucs = &allUseCases{}
	ucs := c.ucs

	ucs.auditService = appaudit.NewService(repos.auditRepo, log)

	ucs.storeLoginUC = session.NewStoreLoginUseCase(repos.storeRepo, c.issuer, log)
	ucs.adminLoginUC = session.NewAdminLoginUseCase(c.guard, log)

	ucs.createTicketUC = ticketUsecases.NewCreateTicketUseCase(repos.ticketRepo, repos.deviceRepo, ucs.auditService, c.ticketNotifier, log)
	ucs.getTicketUC = ticketUsecases.NewGetTicketUseCase(repos.ticketRepo, repos.commentRepo, log)
	ucs.listTicketsUC = ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, log)
	ucs.patchTicketUC = ticketUsecases.NewPatchTicketUseCase(repos.ticketRepo, ucs.auditService, log)
	ucs.addCommentUC = ticketUsecases.NewAddCommentUseCase(repos.ticketRepo, repos.commentRepo, log)
	ucs.listCommentsUC = ticketUsecases.NewListCommentsUseCase(repos.ticketRepo, repos.commentRepo, log)

	ucs.storeUCs = storeUsecases.NewStoreUseCases(repos.storeRepo, log)
	ucs.deviceUCs = storeUsecases.NewDeviceUseCases(repos.storeRepo, repos.deviceRepo, log)

	ucs.reportUCs = reportUsecases.NewReportUseCases(repos.statsRepo, log)
}
