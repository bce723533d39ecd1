package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/finbooks/fin_statements_app/internal/core/ports/services"
	"github.com/finbooks/fin_statements_app/internal/dto"
)

// dashboardHandler handles HTTP requests for the dashboard headline figures
type dashboardHandler struct {
	statementService portssvc.StatementSvc
}

// newDashboardHandler creates a new dashboardHandler
func newDashboardHandler(ss portssvc.StatementSvc) *dashboardHandler {
	return &dashboardHandler{statementService: ss}
}

// registerDashboardRoutes registers routes for the dashboard summary
func registerDashboardRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvc) {
	h := newDashboardHandler(statementService)

	dashboardGroup := rg.Group("/dashboard")
	{
		dashboardGroup.GET("/summary", h.getSummary)
	}
}

// getSummary godoc
// @Summary Get dashboard headline figures
// @Description Returns cash balance, revenue, expenses and net burn derived from the current transaction set
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 502 {object} map[string]string "Upstream collaborator unavailable"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	summary, err := h.statementService.DashboardSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(*summary))
}
