package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/dto"
	"github.com/smartdom/shift_management_app/internal/middleware"
)

// statusReportHandler handles HTTP requests for mid-turn status reports.
type statusReportHandler struct {
	reportService portssvc.StatusReportSvcFacade
}

func newStatusReportHandler(rs portssvc.StatusReportSvcFacade) *statusReportHandler {
	return &statusReportHandler{reportService: rs}
}

// registerStatusReportRoutes registers routes for status reports.
func registerStatusReportRoutes(rg *gin.RouterGroup, rs portssvc.StatusReportSvcFacade) {
	h := newStatusReportHandler(rs)

	reports := rg.Group("/locations/:locationID/status-reports")
	{
		reports.POST("", h.generateStatusReport)
		reports.GET("", h.listStatusReports)
	}
}

// generateStatusReport godoc
// @Summary Generate a status report
// @Description Snapshots the current turn state into a numbered immutable report.
// @Tags reports
// @Accept json
// @Produce json
// @Param locationID path string true "Location ID"
// @Param report body dto.GenerateStatusReportRequest true "Report notes"
// @Success 201 {object} dto.StatusReportResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{locationID}/status-reports [post]
func (h *statusReportHandler) generateStatusReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GenerateStatusReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.reportService.GenerateStatusReport(c.Request.Context(), c.Param("locationID"), req.Notes, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to generate status report")
		return
	}

	logger.Info("Status report generated",
		slog.String("report_id", report.ReportID),
		slog.String("report_number", report.ReportNumber))
	c.JSON(http.StatusCreated, dto.ToStatusReportResponse(report))
}

// listStatusReports godoc
// @Summary List status reports
// @Tags reports
// @Produce json
// @Param locationID path string true "Location ID"
// @Param from query string false "Work date lower bound (YYYY-MM-DD)"
// @Param to query string false "Work date upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.ListStatusReportsResponse
// @Security BearerAuth
// @Router /locations/{locationID}/status-reports [get]
func (h *statusReportHandler) listStatusReports(c *gin.Context) {
	from, to := optionalDateRange(c)
	reports, err := h.reportService.ListStatusReports(c.Request.Context(), c.Param("locationID"), from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to list status reports")
		return
	}
	c.JSON(http.StatusOK, dto.ToListStatusReportsResponse(reports))
}
