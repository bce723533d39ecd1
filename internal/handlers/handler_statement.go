package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finbooks/fin_statements_app/internal/apperrors"
	portssvc "github.com/finbooks/fin_statements_app/internal/core/ports/services"
	"github.com/finbooks/fin_statements_app/internal/core/render"
	"github.com/finbooks/fin_statements_app/internal/dto"
	"github.com/finbooks/fin_statements_app/internal/middleware"
)

// statementHandler handles HTTP requests for the full financial statement
type statementHandler struct {
	statementService portssvc.StatementSvc
	live             *render.LiveRenderer
	paginated        *render.PaginatedRenderer
}

// newStatementHandler creates a new statementHandler
func newStatementHandler(ss portssvc.StatementSvc, spec render.PageSpec) *statementHandler {
	return &statementHandler{
		statementService: ss,
		live:             render.NewLiveRenderer(),
		paginated:        render.NewPaginatedRenderer(spec),
	}
}

// registerStatementRoutes registers routes for statement generation and export
func registerStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementSvc, spec render.PageSpec) {
	h := newStatementHandler(statementService, spec)

	statementGroup := rg.Group("/statements")
	{
		statementGroup.GET("/full", h.getFullStatement)
		statementGroup.GET("/full/pages", h.getFullStatementPages)
		statementGroup.GET("/full/pdf", h.exportFullStatementPDF)
		statementGroup.GET("/full/xlsx", h.exportFullStatementWorkbook)
	}
}

// getFullStatement godoc
// @Summary Get the full financial statement (live view)
// @Description Generates the statement from the current transaction set and returns the continuous live rendering
// @Tags statements
// @Produce json
// @Success 200 {object} dto.LiveStatementResponse
// @Failure 502 {object} map[string]string "Upstream collaborator unavailable"
// @Failure 500 {object} map[string]string "Failed to generate statement"
// @Router /statements/full [get]
func (h *statementHandler) getFullStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.statementService.Generate(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	rendering, err := h.live.Render(result.Sections)
	if err != nil {
		logger.Error("Failed to render live statement view", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render statement"})
		return
	}
	view := rendering.(*render.LiveView)

	c.JSON(http.StatusOK, dto.ToLiveStatementResponse(result, view))
}

// getFullStatementPages godoc
// @Summary Get the paginated financial statement document
// @Description Generates the statement and returns its fixed-page layout, page by page
// @Tags statements
// @Produce json
// @Success 200 {object} dto.PaginatedStatementResponse
// @Failure 502 {object} map[string]string "Upstream collaborator unavailable"
// @Failure 500 {object} map[string]string "Failed to generate statement"
// @Router /statements/full/pages [get]
func (h *statementHandler) getFullStatementPages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.statementService.Generate(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	rendering, err := h.paginated.Render(result.Sections)
	if err != nil {
		logger.Error("Failed to render paginated statement", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render statement"})
		return
	}
	doc := rendering.(*render.Document)

	c.JSON(http.StatusOK, dto.ToPaginatedStatementResponse(result, doc))
}

// exportFullStatementPDF godoc
// @Summary Download the statement as PDF
// @Description Generates the statement and streams the paginated PDF document
// @Tags statements
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 502 {object} map[string]string "Upstream collaborator unavailable"
// @Failure 500 {object} map[string]string "Failed to export statement"
// @Router /statements/full/pdf [get]
func (h *statementHandler) exportFullStatementPDF(c *gin.Context) {
	data, filename, err := h.statementService.ExportPDF(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// exportFullStatementWorkbook godoc
// @Summary Download the statement as a spreadsheet workbook
// @Description Generates the statement and streams it as an xlsx workbook
// @Tags statements
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 502 {object} map[string]string "Upstream collaborator unavailable"
// @Failure 500 {object} map[string]string "Failed to export statement"
// @Router /statements/full/xlsx [get]
func (h *statementHandler) exportFullStatementWorkbook(c *gin.Context) {
	data, filename, err := h.statementService.ExportWorkbook(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// respondServiceError maps service errors onto HTTP statuses
func respondServiceError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrUpstream):
		logger.Error("Upstream collaborator failed", "error", err.Error())
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream service unavailable"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		logger.Error("Statement generation failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate statement"})
	}
}
