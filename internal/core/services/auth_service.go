package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vnpayroll/attendance_backend/internal/apperrors"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portsrepo "github.com/vnpayroll/attendance_backend/internal/core/ports/repositories"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/platform/config"
	"github.com/vnpayroll/attendance_backend/internal/utils"
)

var errInvalidCredentials = fmt.Errorf("invalid phone number or password: %w", apperrors.ErrUnauthorized)

type authService struct {
	BaseService
	adminRepo    portsrepo.AdminRepository
	employeeRepo portsrepo.EmployeeReader
	jwtSecret    string
	jwtDuration  time.Duration
	jwtIssuer    string
}

// NewAuthService creates the admin and employee authentication service.
func NewAuthService(adminRepo portsrepo.AdminRepository, employeeRepo portsrepo.EmployeeReader, cfg *config.Config, options ...ServiceOption) portssvc.AuthSvcFacade {
	return &authService{
		BaseService:  newBaseService(options...),
		adminRepo:    adminRepo,
		employeeRepo: employeeRepo,
		jwtSecret:    cfg.JWTSecret,
		jwtDuration:  cfg.JWTExpiryDuration,
		jwtIssuer:    cfg.JWTIssuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) LoginAdmin(ctx context.Context, phone, password string) (string, *domain.Admin, error) {
	admin, err := s.adminRepo.FindAdminByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, errInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up admin")
		return "", nil, err
	}
	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		s.LogInfo(ctx, "Admin login rejected", slog.Int64("admin_id", admin.AdminID))
		return "", nil, errInvalidCredentials
	}

	token, err := utils.GenerateJWT(admin.AdminID, utils.RoleAdmin, s.jwtSecret, s.jwtDuration, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign admin token", slog.Int64("admin_id", admin.AdminID))
		return "", nil, apperrors.NewAppError(500, "failed to generate token", err)
	}
	return token, admin, nil
}

func (s *authService) LoginEmployee(ctx context.Context, phone, password string) (string, *domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, errInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up employee")
		return "", nil, err
	}
	if !utils.CheckPasswordHash(password, employee.PasswordHash) {
		s.LogInfo(ctx, "Employee login rejected", slog.Int64("employee_id", employee.EmployeeID))
		return "", nil, errInvalidCredentials
	}
	if !employee.IsActive() {
		return "", nil, fmt.Errorf("employee is not active: %w", apperrors.ErrForbidden)
	}

	token, err := utils.GenerateJWT(employee.EmployeeID, utils.RoleEmployee, s.jwtSecret, s.jwtDuration, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign employee token", slog.Int64("employee_id", employee.EmployeeID))
		return "", nil, apperrors.NewAppError(500, "failed to generate token", err)
	}
	return token, employee, nil
}

func (s *authService) EnsureAdmin(ctx context.Context, name, phone, password string) (bool, error) {
	if phone == "" || password == "" {
		return false, fmt.Errorf("%w: phone and password are required", apperrors.ErrValidation)
	}
	hash, err := utils.HashPassword(password)
	if errors.Is(err, utils.ErrWeakPassword) {
		return false, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	} else if err != nil {
		return false, apperrors.NewAppError(500, "failed to hash password", err)
	}
	now := s.now()
	created, err := s.adminRepo.SaveAdmin(ctx, domain.Admin{
		Name:         name,
		Phone:        phone,
		PasswordHash: hash,
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save bootstrap admin")
		return false, err
	}
	if created {
		s.LogInfo(ctx, "Bootstrap admin created", slog.String("phone", phone))
	}
	return created, nil
}
