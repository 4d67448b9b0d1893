package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/dto"
	"github.com/vnpayroll/attendance_backend/internal/middleware"
)

// advanceHandler lets admins review salary advance requests.
type advanceHandler struct {
	advanceService portssvc.AdvanceReviewerSvc
}

func registerAdvanceRoutes(rg *gin.RouterGroup, advanceService portssvc.AdvanceReviewerSvc) {
	h := &advanceHandler{advanceService: advanceService}

	advances := rg.Group("/advances")
	{
		advances.GET("", h.listAdvances)
		advances.PUT("/:advanceID", h.decideAdvance)
	}
}

// listAdvances godoc
// @Summary List advance requests
// @Tags advances
// @Produce json
// @Param status query string false "PENDING, ACCEPTED or REJECTED"
// @Success 200 {array} dto.AdvanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /advances [get]
func (h *advanceHandler) listAdvances(c *gin.Context) {
	adminID, ok := principalID(c)
	if !ok {
		return
	}
	var params dto.ListAdvancesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}
	advances, err := h.advanceService.ListAdvances(c.Request.Context(), adminID, params.Status)
	if err != nil {
		respondError(c, err, "Failed to list advances")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAdvanceResponse(advances))
}

// decideAdvance godoc
// @Summary Accept or reject an advance request
// @Tags advances
// @Accept json
// @Produce json
// @Param advanceID path int true "Advance ID"
// @Param decision body dto.DecideAdvanceRequest true "Decision"
// @Success 200 {object} dto.AdvanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already decided"
// @Security BearerAuth
// @Router /advances/{advanceID} [put]
func (h *advanceHandler) decideAdvance(c *gin.Context) {
	adminID, ok := principalID(c)
	if !ok {
		return
	}
	advanceID, ok := idParam(c, "advanceID")
	if !ok {
		return
	}
	var req dto.DecideAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	advance, err := h.advanceService.DecideAdvance(c.Request.Context(), adminID, advanceID, req.Status)
	if err != nil {
		respondError(c, err, "Failed to decide advance")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Advance decided",
		slog.Int64("advance_id", advanceID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToAdvanceResponse(advance))
}
