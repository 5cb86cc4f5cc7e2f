package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdom/shift_management_app/internal/core/domain"
	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/dto"
	"github.com/smartdom/shift_management_app/internal/middleware"
)

// closingHandler handles HTTP requests for turn and day closings.
type closingHandler struct {
	closingService portssvc.ClosingSvcFacade
}

func newClosingHandler(cs portssvc.ClosingSvcFacade) *closingHandler {
	return &closingHandler{closingService: cs}
}

// registerClosingRoutes registers routes for closing previews, commits and
// history.
func registerClosingRoutes(rg *gin.RouterGroup, cs portssvc.ClosingSvcFacade) {
	h := newClosingHandler(cs)

	locations := rg.Group("/locations/:locationID/closings")
	{
		locations.GET("/preview", h.previewClosing)
		locations.POST("/turn", h.closeTurn)
		locations.POST("/day", h.closeDay)
		locations.GET("/turn", h.listTurnClosings)
		locations.GET("/day", h.listDayClosings)
	}

	closings := rg.Group("/closings")
	{
		closings.GET("/turn/:closingID", h.getTurnClosing)
	}
}

// previewClosing godoc
// @Summary Preview the current turn's closing
// @Description Builds the aggregated snapshot the turn would commit without persisting it.
// @Tags closings
// @Produce json
// @Param locationID path string true "Location ID"
// @Success 200 {object} dto.ClosingPreviewResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{locationID}/closings/preview [get]
func (h *closingHandler) previewClosing(c *gin.Context) {
	snapshot, info, err := h.closingService.PreviewClosing(c.Request.Context(), c.Param("locationID"))
	if err != nil {
		respondServiceError(c, err, "Failed to build closing preview")
		return
	}
	c.JSON(http.StatusOK, dto.ClosingPreviewResponse{
		TurnInfo: dto.ToTurnInfoResponse(snapshot.WorkDate, info),
		Snapshot: *snapshot,
	})
}

// closeTurn godoc
// @Summary Close the current turn
// @Description Commits the turn closing. Rejected outside the turn's closing window or when already closed.
// @Tags closings
// @Accept json
// @Produce json
// @Param locationID path string true "Location ID"
// @Param closing body dto.CloseTurnRequest true "Closing notes"
// @Success 201 {object} dto.TurnClosingResponse
// @Failure 409 {object} ErrorResponse "Turn already closed"
// @Failure 422 {object} ErrorResponse "Outside the closing window"
// @Security BearerAuth
// @Router /locations/{locationID}/closings/turn [post]
func (h *closingHandler) closeTurn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CloseTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var turn *domain.TurnLabel
	if req.Turn != nil {
		label := domain.TurnLabel(*req.Turn)
		turn = &label
	}

	closing, err := h.closingService.CloseTurn(c.Request.Context(), c.Param("locationID"), turn, req.GeneralNotes, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to close turn")
		return
	}

	logger.Info("Turn closed",
		slog.String("closing_id", closing.ClosingID),
		slog.String("turn", string(closing.Turn)))
	c.JSON(http.StatusCreated, dto.ToTurnClosingResponse(closing))
}

// closeDay godoc
// @Summary Close the work day
// @Description Commits the day closing once both turns are committed, inside the day-close window.
// @Tags closings
// @Accept json
// @Produce json
// @Param locationID path string true "Location ID"
// @Param closing body dto.CloseDayRequest true "Closing notes"
// @Success 201 {object} dto.DayClosingResponse
// @Failure 409 {object} ErrorResponse "Day already closed"
// @Failure 422 {object} ErrorResponse "Outside the closing window"
// @Security BearerAuth
// @Router /locations/{locationID}/closings/day [post]
func (h *closingHandler) closeDay(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CloseDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	closing, err := h.closingService.CloseDay(c.Request.Context(), c.Param("locationID"), req.GeneralNotes, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to close day")
		return
	}

	logger.Info("Day closed", slog.String("closing_id", closing.ClosingID))
	c.JSON(http.StatusCreated, dto.ToDayClosingResponse(closing))
}

// listTurnClosings godoc
// @Summary List turn closings
// @Tags closings
// @Produce json
// @Param locationID path string true "Location ID"
// @Param from query string false "Work date lower bound (YYYY-MM-DD)"
// @Param to query string false "Work date upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.ListTurnClosingsResponse
// @Security BearerAuth
// @Router /locations/{locationID}/closings/turn [get]
func (h *closingHandler) listTurnClosings(c *gin.Context) {
	from, to := optionalDateRange(c)
	closings, err := h.closingService.ListTurnClosings(c.Request.Context(), c.Param("locationID"), from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to list turn closings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTurnClosingsResponse(closings))
}

// listDayClosings godoc
// @Summary List day closings
// @Tags closings
// @Produce json
// @Param locationID path string true "Location ID"
// @Param from query string false "Work date lower bound (YYYY-MM-DD)"
// @Param to query string false "Work date upper bound (YYYY-MM-DD)"
// @Success 200 {object} dto.ListDayClosingsResponse
// @Security BearerAuth
// @Router /locations/{locationID}/closings/day [get]
func (h *closingHandler) listDayClosings(c *gin.Context) {
	from, to := optionalDateRange(c)
	closings, err := h.closingService.ListDayClosings(c.Request.Context(), c.Param("locationID"), from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to list day closings")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDayClosingsResponse(closings))
}

// getTurnClosing godoc
// @Summary Get a turn closing
// @Description Retrieves a committed closing with its stored report for reprinting.
// @Tags closings
// @Produce json
// @Param closingID path string true "Closing ID"
// @Success 200 {object} dto.TurnClosingResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /closings/turn/{closingID} [get]
func (h *closingHandler) getTurnClosing(c *gin.Context) {
	closing, err := h.closingService.GetTurnClosingByID(c.Request.Context(), c.Param("closingID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve turn closing")
		return
	}
	c.JSON(http.StatusOK, dto.ToTurnClosingResponse(closing))
}
