package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/dto"
	"github.com/smartdom/shift_management_app/internal/middleware"
)

// attendanceHandler handles HTTP requests for clock-ins and clock-outs.
type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func newAttendanceHandler(as portssvc.AttendanceSvcFacade) *attendanceHandler {
	return &attendanceHandler{attendanceService: as}
}

// registerAttendanceRoutes registers routes for attendance records.
func registerAttendanceRoutes(rg *gin.RouterGroup, as portssvc.AttendanceSvcFacade) {
	h := newAttendanceHandler(as)

	locations := rg.Group("/locations/:locationID/attendance")
	{
		locations.POST("/clock-in", h.clockIn)
		locations.GET("", h.listOpenTurnRecords)
		locations.GET("/active", h.listActiveRecords)
	}

	attendance := rg.Group("/attendance")
	{
		attendance.POST("/:recordID/clock-out", h.clockOut)
	}

	employees := rg.Group("/employees/:employeeID/attendance")
	{
		employees.GET("", h.listEmployeeHistory)
	}
}

// optionalDateRange reads the optional from/to work-date query params.
func optionalDateRange(c *gin.Context) (from, to *string) {
	if v := c.Query("from"); v != "" {
		from = &v
	}
	if v := c.Query("to"); v != "" {
		to = &v
	}
	return from, to
}

// clockIn godoc
// @Summary Clock an employee in
// @Description Registers a shift entry. Fails when the employee has an open record at any location.
// @Tags attendance
// @Accept json
// @Produce json
// @Param locationID path string true "Location ID"
// @Param entry body dto.ClockInRequest true "Clock-in details"
// @Success 201 {object} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Employee already clocked in"
// @Security BearerAuth
// @Router /locations/{locationID}/attendance/clock-in [post]
func (h *attendanceHandler) clockIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ClockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	record, err := h.attendanceService.ClockIn(c.Request.Context(), c.Param("locationID"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to register clock-in")
		return
	}

	logger.Info("Clock-in registered",
		slog.String("record_id", record.RecordID),
		slog.String("employee_id", record.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(record))
}

// clockOut godoc
// @Summary Clock an employee out
// @Tags attendance
// @Accept json
// @Produce json
// @Param recordID path string true "Attendance record ID"
// @Param exit body dto.ClockOutRequest true "Clock-out details"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/{recordID}/clock-out [post]
func (h *attendanceHandler) clockOut(c *gin.Context) {
	var req dto.ClockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	record, err := h.attendanceService.ClockOut(c.Request.Context(), c.Param("recordID"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to register clock-out")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

// listOpenTurnRecords godoc
// @Summary List the open turn's attendance records
// @Tags attendance
// @Produce json
// @Param locationID path string true "Location ID"
// @Success 200 {object} dto.ListAttendanceResponse
// @Security BearerAuth
// @Router /locations/{locationID}/attendance [get]
func (h *attendanceHandler) listOpenTurnRecords(c *gin.Context) {
	records, err := h.attendanceService.ListOpenTurnRecords(c.Request.Context(), c.Param("locationID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list attendance records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAttendanceResponse(records))
}

// listActiveRecords godoc
// @Summary List employees currently on shift
// @Tags attendance
// @Produce json
// @Param locationID path string true "Location ID"
// @Success 200 {object} dto.ListAttendanceResponse
// @Security BearerAuth
// @Router /locations/{locationID}/attendance/active [get]
func (h *attendanceHandler) listActiveRecords(c *gin.Context) {
	records, err := h.attendanceService.ListActiveRecords(c.Request.Context(), c.Param("locationID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list active records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAttendanceResponse(records))
}

// listEmployeeHistory godoc
// @Summary List an employee's attendance history
// @Tags attendance
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param locationID query string false "Restrict to a location"
// @Param from query string false "Work date lower bound (YYYY-MM-DD)"
// @Param to query string false "Work date upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.ListAttendanceResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/attendance [get]
func (h *attendanceHandler) listEmployeeHistory(c *gin.Context) {
	from, to := optionalDateRange(c)
	records, err := h.attendanceService.ListEmployeeHistory(
		c.Request.Context(), c.Param("employeeID"), c.Query("locationID"), from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to list employee history")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAttendanceResponse(records))
}
