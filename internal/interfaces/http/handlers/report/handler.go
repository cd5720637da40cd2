package report

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hys-retail/storedesk/internal/application/report/dto"
	"github.com/hys-retail/storedesk/internal/shared/logger"
	"github.com/hys-retail/storedesk/internal/shared/utils"
)

type ReportQuerier interface {
	Overview(ctx context.Context) (*dto.OverviewDTO, error)
	StoreCategory(ctx context.Context) ([]dto.StoreCategoryDTO, error)
	Timeline(ctx context.Context, days int) (*dto.TimelineDTO, error)
}

type Handler struct {
	reports ReportQuerier
	logger  logger.Interface
}

func NewHandler(reports ReportQuerier, logger logger.Interface) *Handler {
	return &Handler{reports: reports, logger: logger}
}

// Overview handles GET /admin/reports/overview
func (h *Handler) Overview(c *gin.Context) {
	result, err := h.reports.Overview(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, result)
}

// StoreCategory handles GET /admin/reports/store-category
func (h *Handler) StoreCategory(c *gin.Context) {
	result, err := h.reports.StoreCategory(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, result)
}

// Timeline handles GET /admin/reports/timeline?days=
// A missing or non-numeric days selects the default window.
func (h *Handler) Timeline(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("days"))

	result, err := h.reports.Timeline(c.Request.Context(), days)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.JSON(c, http.StatusOK, result)
}
