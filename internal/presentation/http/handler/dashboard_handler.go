package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/salestrack-api/internal/application/service"
	"github.com/sangkips/salestrack-api/internal/domain/enum"
	"github.com/sangkips/salestrack-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary handles getting the dashboard overview
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard summary retrieved successfully", summary)
}

// GetStatusLabels returns the display label and colour of every status
func (h *DashboardHandler) GetStatusLabels(c *gin.Context) {
	response.OK(c, "Status labels retrieved successfully", enum.LabelTable())
}
