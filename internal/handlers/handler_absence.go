package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/dto"
	"github.com/smartdom/shift_management_app/internal/middleware"
)

// absenceHandler handles HTTP requests for absences.
type absenceHandler struct {
	absenceService portssvc.AbsenceSvcFacade
}

func newAbsenceHandler(as portssvc.AbsenceSvcFacade) *absenceHandler {
	return &absenceHandler{absenceService: as}
}

// registerAbsenceRoutes registers routes for absences and their reason catalog.
func registerAbsenceRoutes(rg *gin.RouterGroup, as portssvc.AbsenceSvcFacade) {
	h := newAbsenceHandler(as)

	locations := rg.Group("/locations/:locationID/absences")
	{
		locations.POST("", h.registerAbsence)
		locations.GET("", h.listOpenTurnAbsences)
	}

	absences := rg.Group("/absences")
	{
		absences.DELETE("/:absenceID", h.deleteAbsence)
	}

	rg.GET("/catalogs/absence-reasons", h.listAbsenceReasons)
}

// registerAbsence godoc
// @Summary Register an absence
// @Tags absences
// @Accept json
// @Produce json
// @Param locationID path string true "Location ID"
// @Param absence body dto.CreateAbsenceRequest true "Absence details"
// @Success 201 {object} dto.AbsenceResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{locationID}/absences [post]
func (h *absenceHandler) registerAbsence(c *gin.Context) {
	var req dto.CreateAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	absence, err := h.absenceService.RegisterAbsence(c.Request.Context(), c.Param("locationID"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to register absence")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAbsenceResponse(absence))
}

// listOpenTurnAbsences godoc
// @Summary List the open turn's absences
// @Tags absences
// @Produce json
// @Param locationID path string true "Location ID"
// @Success 200 {object} dto.ListAbsencesResponse
// @Security BearerAuth
// @Router /locations/{locationID}/absences [get]
func (h *absenceHandler) listOpenTurnAbsences(c *gin.Context) {
	absences, err := h.absenceService.ListOpenTurnAbsences(c.Request.Context(), c.Param("locationID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list absences")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAbsencesResponse(absences))
}

// deleteAbsence godoc
// @Summary Delete an absence
// @Tags absences
// @Param absenceID path string true "Absence ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /absences/{absenceID} [delete]
func (h *absenceHandler) deleteAbsence(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.absenceService.DeleteAbsence(c.Request.Context(), c.Param("absenceID"), userID); err != nil {
		respondServiceError(c, err, "Failed to delete absence")
		return
	}
	c.Status(http.StatusNoContent)
}

// listAbsenceReasons godoc
// @Summary List absence reasons
// @Tags catalogs
// @Produce json
// @Success 200 {array} dto.AbsenceReasonResponse
// @Security BearerAuth
// @Router /catalogs/absence-reasons [get]
func (h *absenceHandler) listAbsenceReasons(c *gin.Context) {
	reasons, err := h.absenceService.ListAbsenceReasons(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list absence reasons")
		return
	}
	resp := make([]dto.AbsenceReasonResponse, len(reasons))
	for i := range reasons {
		resp[i] = dto.ToAbsenceReasonResponse(&reasons[i])
	}
	c.JSON(http.StatusOK, resp)
}
