package ticket

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hys-retail/storedesk/internal/application/ticket/usecases"
	"github.com/hys-retail/storedesk/internal/infrastructure/metrics"
	"github.com/hys-retail/storedesk/internal/interfaces/http/middleware"
	"github.com/hys-retail/storedesk/internal/interfaces/http/validation"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
	"github.com/hys-retail/storedesk/internal/shared/utils"
)

const maxPatchBodyBytes = 64 << 10

type TicketHandler struct {
	createTicketUC CreateTicketExecutor
	getTicketUC    GetTicketExecutor
	listTicketsUC  ListTicketsExecutor
	patchTicketUC  PatchTicketExecutor
	addCommentUC   AddCommentExecutor
	listCommentsUC ListCommentsExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC CreateTicketExecutor,
	getTicketUC GetTicketExecutor,
	listTicketsUC ListTicketsExecutor,
	patchTicketUC PatchTicketExecutor,
	addCommentUC AddCommentExecutor,
	listCommentsUC ListCommentsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		patchTicketUC:  patchTicketUC,
		addCommentUC:   addCommentUC,
		listCommentsUC: listCommentsUC,
		logger:         logger,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, validation.BindingError(err))
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), principal, req.ToCommand(c.Request.URL.Path))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	metrics.TicketsCreated.WithLabelValues(result.Category, result.Priority).Inc()
	utils.JSON(c, http.StatusCreated, CreateTicketResponse{OK: true, TicketID: result.TicketID})
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var req ListTicketsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, validation.BindingError(err))
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), principal, req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, result)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	ticketID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), principal, usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, result)
}

// PatchTicket handles PATCH /tickets/:id
func (h *TicketHandler) PatchTicket(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	ticketID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPatchBodyBytes))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid JSON body"))
		return
	}

	cmd, err := parsePatchBody(raw, ticketID, c.Request.URL.Path)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.patchTicketUC.Execute(c.Request.Context(), principal, cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, result)
}

// ListComments handles GET /tickets/:id/comments
func (h *TicketHandler) ListComments(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	ticketID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), principal, ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSON(c, http.StatusOK, result)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	ticketID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, validation.BindingError(err))
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), principal, usecases.AddCommentCommand{
		TicketID:   ticketID,
		AuthorName: req.AuthorName,
		Body:       req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.JSON(c, http.StatusCreated, result)
}
