package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/dto"
)

// jobHandler exposes the balance recomputation and a manual reconciler trigger.
type jobHandler struct {
	balanceService portssvc.BalanceSvc
	absenceService portssvc.AbsenceSvc
}

func registerJobRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvc, absenceService portssvc.AbsenceSvc) {
	h := &jobHandler{balanceService: balanceService, absenceService: absenceService}

	rg.POST("/balances/recompute", h.recomputeBalances)
	rg.POST("/jobs/absence", h.reconcileAbsences)
}

// recomputeBalances godoc
// @Summary Recompute employee balances
// @Description Sets every employee's balance to the pay accrued since their last payout, in one transaction.
// @Tags jobs
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 409 {object} dto.ErrorResponse "A recomputation is already running"
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /balances/recompute [post]
func (h *jobHandler) recomputeBalances(c *gin.Context) {
	if _, err := h.balanceService.RecomputeBalances(c.Request.Context()); err != nil {
		respondError(c, err, "Failed to recompute balances")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Balances updated successfully"})
}

// reconcileAbsences godoc
// @Summary Run the absence reconciler
// @Description Marks every active employee without a record on the date as absent. Defaults to today.
// @Tags jobs
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.ReconcileResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /jobs/absence [post]
func (h *jobHandler) reconcileAbsences(c *gin.Context) {
	var params dto.ReconcileParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	if params.Date == "" {
		date, inserted, err := h.absenceService.ReconcileDay(ctx)
		if err != nil {
			respondError(c, err, "Failed to reconcile absences")
			return
		}
		c.JSON(http.StatusOK, dto.ReconcileResponse{Date: date.Format(domain.DateLayout), Inserted: inserted})
		return
	}

	date, _ := domain.ParseDate(params.Date)
	inserted, err := h.absenceService.ReconcileDate(ctx, date)
	if err != nil {
		respondError(c, err, "Failed to reconcile absences")
		return
	}
	c.JSON(http.StatusOK, dto.ReconcileResponse{Date: params.Date, Inserted: inserted})
}
