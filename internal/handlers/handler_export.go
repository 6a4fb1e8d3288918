package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
	"github.com/maooe/finance_control_app/internal/middleware"
)

// exportHandler handles file exports of the financial data.
type exportHandler struct {
	export portssvc.ExportSvcFacade
}

// registerExportRoutes registers the export routes.
func registerExportRoutes(rg *gin.RouterGroup, export portssvc.ExportSvcFacade) {
	h := &exportHandler{export: export}

	group := rg.Group("/export")
	{
		group.GET("/csv", h.exportCSV)
		group.GET("/pdf", h.exportPDF)
	}
}

// exportCSV godoc
// @Summary Download accounts and incomes as CSV
// @Description Spreadsheet-friendly CSV, semicolon separated with a UTF-8 BOM
// @Tags export
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build export"
// @Security BearerAuth
// @Router /export/csv [get]
func (h *exportHandler) exportCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, filename, err := h.export.ExportCSV(c.Request.Context())
	if err != nil {
		logger.Error("CSV export failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build export"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// exportPDF godoc
// @Summary Download the financial report as PDF
// @Description Branded report with an executive summary and both collections in full
// @Tags export
// @Produce application/pdf
// @Success 200 {string} string "PDF file"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build export"
// @Security BearerAuth
// @Router /export/pdf [get]
func (h *exportHandler) exportPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, filename, err := h.export.ExportPDF(c.Request.Context())
	if err != nil {
		logger.Error("PDF export failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build export"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
