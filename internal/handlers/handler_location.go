package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/dto"
	"github.com/smartdom/shift_management_app/internal/middleware"
)

// locationHandler handles HTTP requests for locations and the per-location
// turn state.
type locationHandler struct {
	locationService portssvc.LocationSvcFacade
	turnService     portssvc.TurnSvcFacade
	turnNoteService portssvc.TurnNoteSvcFacade
}

func newLocationHandler(ls portssvc.LocationSvcFacade, ts portssvc.TurnSvcFacade, tns portssvc.TurnNoteSvcFacade) *locationHandler {
	return &locationHandler{
		locationService: ls,
		turnService:     ts,
		turnNoteService: tns,
	}
}

// registerLocationRoutes registers routes for locations, turn state and
// turn notes.
func registerLocationRoutes(rg *gin.RouterGroup, ls portssvc.LocationSvcFacade, ts portssvc.TurnSvcFacade, tns portssvc.TurnNoteSvcFacade) {
	h := newLocationHandler(ls, ts, tns)

	locations := rg.Group("/locations")
	{
		locations.GET("", h.listUserLocations)
		locations.GET("/:locationID", h.getLocation)
		locations.GET("/:locationID/turn", h.getCurrentTurn)
		locations.GET("/:locationID/turn-note", h.getTurnNote)
		locations.PUT("/:locationID/turn-note", h.saveTurnNote)
	}
}

// listUserLocations godoc
// @Summary List the caller's locations
// @Description Retrieves the active locations assigned to the authenticated user.
// @Tags locations
// @Produce json
// @Success 200 {object} dto.ListLocationsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations [get]
func (h *locationHandler) listUserLocations(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	locations, err := h.locationService.ListUserLocations(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list locations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListLocationsResponse(locations))
}

// getLocation godoc
// @Summary Get a location
// @Tags locations
// @Produce json
// @Param locationID path string true "Location ID"
// @Success 200 {object} dto.LocationResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{locationID} [get]
func (h *locationHandler) getLocation(c *gin.Context) {
	location, err := h.locationService.GetLocationByID(c.Request.Context(), c.Param("locationID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve location")
		return
	}
	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}

// getCurrentTurn godoc
// @Summary Get the current turn state
// @Description Resolves which turn, if any, is currently open at the location.
// @Tags turns
// @Produce json
// @Param locationID path string true "Location ID"
// @Success 200 {object} dto.TurnInfoResponse
// @Security BearerAuth
// @Router /locations/{locationID}/turn [get]
func (h *locationHandler) getCurrentTurn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	locationID := c.Param("locationID")

	info := h.turnService.IdentifyCurrentTurn(c.Request.Context(), locationID)
	if info.Degraded {
		logger.Warn("Turn state resolved in degraded mode", slog.String("location_id", locationID))
	}
	c.JSON(http.StatusOK, dto.ToTurnInfoResponse(h.turnService.CurrentWorkDate(), info))
}

// getTurnNote godoc
// @Summary Get the shared turn note
// @Tags turns
// @Produce json
// @Param locationID path string true "Location ID"
// @Success 200 {object} dto.TurnNoteResponse
// @Security BearerAuth
// @Router /locations/{locationID}/turn-note [get]
func (h *locationHandler) getTurnNote(c *gin.Context) {
	note, err := h.turnNoteService.GetTurnNote(c.Request.Context(), c.Param("locationID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve turn note")
		return
	}
	c.JSON(http.StatusOK, dto.ToTurnNoteResponse(note))
}

// saveTurnNote godoc
// @Summary Save the shared turn note
// @Description Creates or replaces the running note of the current work date.
// @Tags turns
// @Accept json
// @Produce json
// @Param locationID path string true "Location ID"
// @Param note body dto.SaveTurnNoteRequest true "Note content"
// @Success 200 {object} dto.TurnNoteResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{locationID}/turn-note [put]
func (h *locationHandler) saveTurnNote(c *gin.Context) {
	var req dto.SaveTurnNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	note, err := h.turnNoteService.SaveTurnNote(c.Request.Context(), c.Param("locationID"), req.Content, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to save turn note")
		return
	}
	c.JSON(http.StatusOK, dto.ToTurnNoteResponse(note))
}
