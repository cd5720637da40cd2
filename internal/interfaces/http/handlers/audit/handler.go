package audit

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	appaudit "github.com/hys-retail/storedesk/internal/application/audit"
	"github.com/hys-retail/storedesk/internal/interfaces/http/middleware"
	"github.com/hys-retail/storedesk/internal/interfaces/http/validation"
	"github.com/hys-retail/storedesk/internal/shared/logger"
	"github.com/hys-retail/storedesk/internal/shared/utils"
)

type AuditService interface {
	Record(ctx context.Context, storeID, action, path string, metadata map[string]any) error
	List(ctx context.Context, query appaudit.ListQuery) ([]appaudit.EntryDTO, error)
}

// RecordRequest is a client-side action. Any store id in the body is
// ignored; the session decides.
type RecordRequest struct {
	Action   string         `json:"action" binding:"max=64"`
	Path     string         `json:"path" binding:"max=255"`
	Metadata map[string]any `json:"metadata"`
}

type ListRequest struct {
	StoreID string `form:"store_id" binding:"omitempty,store_id"`
	Action  string `form:"action" binding:"max=64"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

type Handler struct {
	service AuditService
	logger  logger.Interface
}

func NewHandler(service AuditService, logger logger.Interface) *Handler {
	return &Handler{service: service, logger: logger}
}

// Record handles POST /audit-log
func (h *Handler) Record(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok || !principal.IsStore() {
		utils.UnauthorizedResponse(c)
		return
	}

	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, validation.BindingError(err))
		return
	}

	if err := h.service.Record(c.Request.Context(), principal.StoreID(), req.Action, req.Path, req.Metadata); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OK(c)
}

// List handles GET /admin/audit-logs
func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, validation.BindingError(err))
		return
	}

	result, err := h.service.List(c.Request.Context(), appaudit.ListQuery{
		StoreID: req.StoreID,
		Action:  req.Action,
		Limit:   req.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, result)
}
