package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/finbooks/fin_statements_app/internal/core/ports/services"
	"github.com/finbooks/fin_statements_app/internal/core/render"
	"github.com/finbooks/fin_statements_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	statementService portssvc.StatementSvc,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	setupAPIV1Routes(r, statementService)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	statementService portssvc.StatementSvc,
) {
	v1 := r.Group("/api/v1")

	registerStatementRoutes(v1, statementService, render.A4)
	registerDashboardRoutes(v1, statementService)
}
