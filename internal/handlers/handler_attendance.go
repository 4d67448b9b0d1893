package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/dto"
	"github.com/vnpayroll/attendance_backend/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// attendanceHandler handles the admin attendance screens.
type attendanceHandler struct {
	attendanceService portssvc.AttendanceAdminSvc
}

func newAttendanceHandler(as portssvc.AttendanceAdminSvc) *attendanceHandler {
	return &attendanceHandler{attendanceService: as}
}

// registerAttendanceRoutes registers routes related to attendance records.
func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceAdminSvc) {
	h := newAttendanceHandler(attendanceService)

	attendance := rg.Group("/attendance")
	{
		attendance.GET("/dayscreen", h.dayScreen)
		attendance.GET("/export", h.exportDayScreen)
		attendance.POST("", h.addAttendance)
		attendance.PUT("", h.updateAttendance)
	}
}

// dateRange binds the optional from/to query parameters.
func dateRange(c *gin.Context) (from, to *time.Time, ok bool) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return nil, nil, false
	}
	if params.From != "" {
		d, _ := domain.ParseDate(params.From)
		from = &d
	}
	if params.To != "" {
		d, _ := domain.ParseDate(params.To)
		to = &d
	}
	return from, to, true
}

// dayScreen godoc
// @Summary Attendance day screen
// @Description Every employee of the admin with their attendance history, optionally limited to [from, to].
// @Tags attendance
// @Produce json
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {array} dto.DayScreenEntry
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /attendance/dayscreen [get]
func (h *attendanceHandler) dayScreen(c *gin.Context) {
	adminID, ok := principalID(c)
	if !ok {
		return
	}
	from, to, ok := dateRange(c)
	if !ok {
		return
	}
	groups, err := h.attendanceService.DayScreen(c.Request.Context(), adminID, from, to)
	if err != nil {
		respondError(c, err, "Failed to load attendance")
		return
	}
	c.JSON(http.StatusOK, dto.ToDayScreenResponse(groups))
}

// exportDayScreen godoc
// @Summary Export the day screen
// @Description Downloads the day screen as an XLSX workbook, one row per employee and one column per date.
// @Tags attendance
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /attendance/export [get]
func (h *attendanceHandler) exportDayScreen(c *gin.Context) {
	adminID, ok := principalID(c)
	if !ok {
		return
	}
	from, to, ok := dateRange(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.attendanceService.ExportDayScreen(c.Request.Context(), adminID, from, to, &buf); err != nil {
		respondError(c, err, "Failed to export attendance")
		return
	}

	filename := fmt.Sprintf("attendance_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// addAttendance godoc
// @Summary Add an attendance record
// @Description Records one day for an employee. The accrued pay is computed from the current salary and frozen.
// @Tags attendance
// @Accept json
// @Produce json
// @Param attendance body dto.AttendanceRequest true "Attendance"
// @Success 201 {object} dto.AttendanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "The day already has a record"
// @Security BearerAuth
// @Router /attendance [post]
func (h *attendanceHandler) addAttendance(c *gin.Context) {
	adminID, ok := principalID(c)
	if !ok {
		return
	}
	var req dto.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	attendance, err := h.attendanceService.AddAttendance(c.Request.Context(), adminID, req)
	if err != nil {
		respondError(c, err, "Failed to add attendance")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Attendance added",
		slog.Int64("employee_id", req.EmployeeID), slog.String("date", req.Date))
	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(attendance))
}

// updateAttendance godoc
// @Summary Update an attendance record
// @Description Changes a day's status and recomputes its accrued pay from the current salary.
// @Tags attendance
// @Accept json
// @Produce json
// @Param attendance body dto.AttendanceRequest true "Attendance"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /attendance [put]
func (h *attendanceHandler) updateAttendance(c *gin.Context) {
	adminID, ok := principalID(c)
	if !ok {
		return
	}
	var req dto.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	attendance, err := h.attendanceService.UpdateAttendance(c.Request.Context(), adminID, req)
	if err != nil {
		respondError(c, err, "Failed to update attendance")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(attendance))
}
