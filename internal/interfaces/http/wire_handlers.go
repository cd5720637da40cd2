package http

import (
	audithandlers "github.com/hys-retail/storedesk/internal/interfaces/http/handlers/audit"
	healthhandlers "github.com/hys-retail/storedesk/internal/interfaces/http/handlers/health"
	reporthandlers "github.com/hys-retail/storedesk/internal/interfaces/http/handlers/report"
	sessionhandlers "github.com/hys-retail/storedesk/internal/interfaces/http/handlers/session"
	storehandlers "github.com/hys-retail/storedesk/internal/interfaces/http/handlers/store"
	tickethandlers "github.com/hys-retail/storedesk/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler  *healthhandlers.Handler
	sessionHandler *sessionhandlers.Handler
	ticketHandler  *tickethandlers.TicketHandler
	storeHandler   *storehandlers.Handler
	reportHandler  *reporthandlers.Handler
	auditHandler   *audithandlers.Handler
}

func (c *Container) initHandlers() error {
	ucs := c.ucs
	log := c.log

	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}

	c.hdlrs = &allHandlers{
		healthHandler:  healthhandlers.NewHandler(sqlDB, log),
		sessionHandler: sessionhandlers.NewHandler(ucs.storeLoginUC, ucs.adminLoginUC, c.issuer, log),
		ticketHandler: tickethandlers.NewTicketHandler(
			ucs.createTicketUC,
			ucs.getTicketUC,
			ucs.listTicketsUC,
			ucs.patchTicketUC,
			ucs.addCommentUC,
			ucs.listCommentsUC,
			log,
		),
		storeHandler:  storehandlers.NewHandler(ucs.storeUCs, ucs.deviceUCs, log),
		reportHandler: reporthandlers.NewHandler(ucs.reportUCs, log),
		auditHandler:  audithandlers.NewHandler(ucs.auditService, log),
	}
	return nil
}
