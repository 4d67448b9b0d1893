package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/dto"
	"github.com/vnpayroll/attendance_backend/internal/middleware"
)

// authHandler handles admin and employee login.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the public login routes, rate limited when loginLimiter is set.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvcFacade, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(authService)

	auth := r.Group("/api/v1/auth")
	if loginLimiter != nil {
		auth.Use(middleware.RateLimit(loginLimiter))
	}
	{
		auth.POST("/admin/login", h.adminLogin)
		auth.POST("/employee/login", h.employeeLogin)
	}
}

// adminLogin godoc
// @Summary Admin login
// @Description Authenticates an admin by phone number and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.AdminLoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/admin/login [post]
func (h *authHandler) adminLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Phone number and password are required"})
		return
	}

	token, admin, err := h.authService.LoginAdmin(c.Request.Context(), req.PhoneNumber, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Admin logged in", slog.Int64("admin_id", admin.AdminID))
	c.JSON(http.StatusOK, dto.AdminLoginResponse{Token: token, Admin: dto.ToAdminResponse(admin)})
}

// employeeLogin godoc
// @Summary Employee login
// @Description Authenticates an active employee by phone number and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.EmployeeLoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "Employee deactivated"
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/employee/login [post]
func (h *authHandler) employeeLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Phone number and password are required"})
		return
	}

	token, employee, err := h.authService.LoginEmployee(c.Request.Context(), req.PhoneNumber, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Employee logged in", slog.Int64("employee_id", employee.EmployeeID))
	c.JSON(http.StatusOK, dto.EmployeeLoginResponse{Token: token, Employee: dto.ToEmployeeResponse(employee)})
}
