package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/vnpayroll/attendance_backend/cmd/docs"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/middleware"
	"github.com/vnpayroll/attendance_backend/internal/platform/config"
	"github.com/vnpayroll/attendance_backend/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// loginLimiter may be nil, in which case login is not rate limited.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	r.GET("/health", health)

	// Public authentication routes
	registerAuthRoutes(r, services.Auth, loginLimiter)

	// Role-protected API v1 routes
	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	admin := v1.Group("", middleware.RequireRole(utils.RoleAdmin))
	registerEmployeeRoutes(admin, services.Employee)
	registerAttendanceRoutes(admin, services.Attendance)
	registerJobRoutes(admin, services.Balance, services.Absence)
	registerAdvanceRoutes(admin, services.Advance)

	me := v1.Group("/me", middleware.RequireRole(utils.RoleEmployee))
	registerSelfServiceRoutes(me, services.Attendance, services.Advance)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// health godoc
// @Summary Liveness probe
// @Tags root
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
