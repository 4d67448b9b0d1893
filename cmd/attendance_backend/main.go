package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/core/services"
	"github.com/vnpayroll/attendance_backend/internal/handlers"
	"github.com/vnpayroll/attendance_backend/internal/jobs"
	"github.com/vnpayroll/attendance_backend/internal/middleware"
	"github.com/vnpayroll/attendance_backend/internal/platform/config"
	"github.com/vnpayroll/attendance_backend/internal/repositories/database/pgsql"
	"github.com/vnpayroll/attendance_backend/pkg/database"
)

// @title Attendance Backend API
// @version 1.0
// @description Employee attendance tracking and payroll bookkeeping.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(dbPool)

	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
	applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
	if err != nil {
		return err
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}

	if cfg.EnableDBCheck {
		if err := database.CheckSchema(ctx, dbPool, "admins", "employees", "salaries", "attendance", "payments_history", "advance_amount_alert"); err != nil {
			return err
		}
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.BootstrapAdminPhone != "" {
		if _, err := serviceContainer.Auth.EnsureAdmin(ctx, cfg.BootstrapAdminName, cfg.BootstrapAdminPhone, cfg.BootstrapAdminPassword); err != nil {
			return err
		}
	}

	var scheduler *jobs.Scheduler
	if cfg.EnableScheduler {
		scheduler, err = jobs.NewScheduler(cfg.AbsenceCron, cfg.Location, serviceContainer.Absence, logger)
		if err != nil {
			return err
		}
		scheduler.Start()
	}

	loginLimiter, err := middleware.NewLimiter(ctx, cfg.LoginRateLimit, cfg.RedisURL)
	if err != nil {
		return err
	}

	router, err := newRouter(cfg, logger, serviceContainer, loginLimiter)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("timezone", cfg.Timezone))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if scheduler != nil {
		select {
		case <-scheduler.Stop().Done():
		case <-shutdownCtx.Done():
			logger.Warn("Absence reconciler still running at shutdown")
		}
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

func newRouter(cfg *config.Config, logger *slog.Logger, serviceContainer *portssvc.ServiceContainer, loginLimiter *limiter.Limiter) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	corsConfig.ExposeHeaders = []string{"Content-Disposition", "X-Request-ID"}
	if len(cfg.CORSAllowedOrigins) == 0 || (len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, loginLimiter)
	return r, nil
}
