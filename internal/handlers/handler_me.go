package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/dto"
)

// selfServiceHandler serves the logged-in employee's own records.
type selfServiceHandler struct {
	attendanceService portssvc.AttendanceSelfSvc
	advanceService    portssvc.AdvanceRequesterSvc
}

func registerSelfServiceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSelfSvc, advanceService portssvc.AdvanceRequesterSvc) {
	h := &selfServiceHandler{attendanceService: attendanceService, advanceService: advanceService}

	rg.POST("/check-in", h.checkIn)
	rg.POST("/check-out", h.checkOut)
	rg.GET("/ledger", h.ledger)
	rg.POST("/advances", h.requestAdvance)
}

// checkIn godoc
// @Summary Check in for today
// @Description Records a full day for today. An automatically generated absence for today is replaced.
// @Tags me
// @Produce json
// @Success 201 {object} dto.AttendanceResponse
// @Failure 403 {object} dto.ErrorResponse "Employee deactivated"
// @Failure 409 {object} dto.ErrorResponse "Already checked in"
// @Security BearerAuth
// @Router /me/check-in [post]
func (h *selfServiceHandler) checkIn(c *gin.Context) {
	employeeID, ok := principalID(c)
	if !ok {
		return
	}
	attendance, err := h.attendanceService.CheckIn(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err, "Failed to check in")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(attendance))
}

// checkOut godoc
// @Summary Check out for today
// @Tags me
// @Produce json
// @Success 200 {object} dto.AttendanceResponse
// @Failure 404 {object} dto.ErrorResponse "No check-in today"
// @Security BearerAuth
// @Router /me/check-out [post]
func (h *selfServiceHandler) checkOut(c *gin.Context) {
	employeeID, ok := principalID(c)
	if !ok {
		return
	}
	attendance, err := h.attendanceService.CheckOut(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err, "Failed to check out")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(attendance))
}

// ledger godoc
// @Summary My attendance ledger
// @Description Attendance history joined with advance requests by date.
// @Tags me
// @Produce json
// @Success 200 {array} dto.LedgerEntryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /me/ledger [get]
func (h *selfServiceHandler) ledger(c *gin.Context) {
	employeeID, ok := principalID(c)
	if !ok {
		return
	}
	entries, err := h.attendanceService.Ledger(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, err, "Failed to load ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(entries))
}

// requestAdvance godoc
// @Summary Request a salary advance
// @Tags me
// @Accept json
// @Produce json
// @Param advance body dto.CreateAdvanceRequest true "Advance"
// @Success 201 {object} dto.AdvanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /me/advances [post]
func (h *selfServiceHandler) requestAdvance(c *gin.Context) {
	employeeID, ok := principalID(c)
	if !ok {
		return
	}
	var req dto.CreateAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	advance, err := h.advanceService.RequestAdvance(c.Request.Context(), employeeID, req)
	if err != nil {
		respondError(c, err, "Failed to request advance")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAdvanceResponse(advance))
}
