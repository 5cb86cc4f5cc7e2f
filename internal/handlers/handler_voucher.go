package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smartdom/shift_management_app/internal/core/ports/services"
	"github.com/smartdom/shift_management_app/internal/dto"
	"github.com/smartdom/shift_management_app/internal/middleware"
)

// voucherHandler handles HTTP requests for cash-advance vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func newVoucherHandler(vs portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{voucherService: vs}
}

// registerVoucherRoutes registers routes for vouchers and their reason catalog.
func registerVoucherRoutes(rg *gin.RouterGroup, vs portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(vs)

	locations := rg.Group("/locations/:locationID/vouchers")
	{
		locations.POST("", h.registerVoucher)
		locations.GET("", h.listOpenTurnVouchers)
		locations.GET("/total", h.openTurnVoucherTotal)
	}

	vouchers := rg.Group("/vouchers")
	{
		vouchers.DELETE("/:voucherID", h.deleteVoucher)
	}

	rg.GET("/catalogs/voucher-reasons", h.listVoucherReasons)
}

// registerVoucher godoc
// @Summary Register a voucher
// @Description Persists a cash advance against the current work date.
// @Tags vouchers
// @Accept json
// @Produce json
// @Param locationID path string true "Location ID"
// @Param voucher body dto.CreateVoucherRequest true "Voucher details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations/{locationID}/vouchers [post]
func (h *voucherHandler) registerVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	voucher, err := h.voucherService.RegisterVoucher(c.Request.Context(), c.Param("locationID"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to register voucher")
		return
	}

	logger.Info("Voucher registered",
		slog.String("voucher_id", voucher.VoucherID),
		slog.String("amount", voucher.Amount.String()))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// listOpenTurnVouchers godoc
// @Summary List the open turn's vouchers
// @Description Returns the vouchers of the current turn window with their summed total.
// @Tags vouchers
// @Produce json
// @Param locationID path string true "Location ID"
// @Success 200 {object} dto.ListVouchersResponse
// @Security BearerAuth
// @Router /locations/{locationID}/vouchers [get]
func (h *voucherHandler) listOpenTurnVouchers(c *gin.Context) {
	vouchers, total, err := h.voucherService.ListOpenTurnVouchers(c.Request.Context(), c.Param("locationID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list vouchers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListVouchersResponse(vouchers, total))
}

// openTurnVoucherTotal godoc
// @Summary Total of the open turn's vouchers
// @Tags vouchers
// @Produce json
// @Param locationID path string true "Location ID"
// @Success 200 {object} dto.VoucherTotalResponse
// @Security BearerAuth
// @Router /locations/{locationID}/vouchers/total [get]
func (h *voucherHandler) openTurnVoucherTotal(c *gin.Context) {
	vouchers, total, err := h.voucherService.ListOpenTurnVouchers(c.Request.Context(), c.Param("locationID"))
	if err != nil {
		respondServiceError(c, err, "Failed to total vouchers")
		return
	}
	c.JSON(http.StatusOK, dto.VoucherTotalResponse{Total: total, Count: len(vouchers)})
}

// deleteVoucher godoc
// @Summary Delete a voucher
// @Tags vouchers
// @Param voucherID path string true "Voucher ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vouchers/{voucherID} [delete]
func (h *voucherHandler) deleteVoucher(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.voucherService.DeleteVoucher(c.Request.Context(), c.Param("voucherID"), userID); err != nil {
		respondServiceError(c, err, "Failed to delete voucher")
		return
	}
	c.Status(http.StatusNoContent)
}

// listVoucherReasons godoc
// @Summary List voucher reasons
// @Tags catalogs
// @Produce json
// @Success 200 {array} dto.VoucherReasonResponse
// @Security BearerAuth
// @Router /catalogs/voucher-reasons [get]
func (h *voucherHandler) listVoucherReasons(c *gin.Context) {
	reasons, err := h.voucherService.ListVoucherReasons(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list voucher reasons")
		return
	}
	resp := make([]dto.VoucherReasonResponse, len(reasons))
	for i := range reasons {
		resp[i] = dto.ToVoucherReasonResponse(&reasons[i])
	}
	c.JSON(http.StatusOK, resp)
}
