package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hys-retail/storedesk/internal/shared/logger"
	"github.com/hys-retail/storedesk/internal/shared/utils"
)

const pingTimeout = 2 * time.Second

// Pinger checks a backing dependency.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type Handler struct {
	db     Pinger
	logger logger.Interface
}

func NewHandler(db Pinger, logger logger.Interface) *Handler {
	return &Handler{db: db, logger: logger}
}

// Check handles GET /health
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warnw("health check: database unreachable", "error", err)
		utils.JSON(c, http.StatusServiceUnavailable, Response{Status: "degraded", Database: "down"})
		return
	}
	utils.JSON(c, http.StatusOK, Response{Status: "ok", Database: "up"})
}
