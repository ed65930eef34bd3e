package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/example/cmail/internal/core"
)

// DashboardHandler reads the delivery log back for the dashboard views.
type DashboardHandler struct {
	dashboardService core.DashboardService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(ds core.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: ds}
}

// Log handles GET /dashboard/log.
func (h *DashboardHandler) Log(c *gin.Context) {
	entries, err := h.dashboardService.ReadLog(c.Request.Context(), ownerFromContext(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Stats handles GET /dashboard/stats.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context(), ownerFromContext(c))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
