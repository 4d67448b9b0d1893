package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vnpayroll/attendance_backend/internal/apperrors"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portsrepo "github.com/vnpayroll/attendance_backend/internal/core/ports/repositories"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/dto"
	"github.com/vnpayroll/attendance_backend/internal/utils"
)

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	paymentRepo  portsrepo.PaymentRepository
}

// NewEmployeeService creates the employee, salary and payment service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade, paymentRepo portsrepo.PaymentRepository, options ...ServiceOption) portssvc.EmployeeSvcFacade {
	return &employeeService{
		BaseService:  newBaseService(options...),
		employeeRepo: employeeRepo,
		paymentRepo:  paymentRepo,
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// ownedEmployee loads an employee and checks it belongs to adminID.
func ownedEmployee(ctx context.Context, repo portsrepo.EmployeeReader, adminID, employeeID int64) (*domain.Employee, error) {
	employee, err := repo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee.AdminID != adminID {
		return nil, fmt.Errorf("employee %d is managed by another admin: %w", employeeID, apperrors.ErrForbidden)
	}
	return employee, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", apperrors.ErrValidation, field)
	}
	return &d, nil
}

func requirePositive(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s must be positive", apperrors.ErrValidation, field)
	}
	return nil
}

func (s *employeeService) EnrollEmployee(ctx context.Context, adminID int64, req dto.EnrollEmployeeRequest) (*domain.Employee, error) {
	salaryType, err := domain.ParseSalaryType(req.PayrollType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := requirePositive("salary", req.Salary); err != nil {
		return nil, err
	}
	birthDate, err := parseOptionalDate("dob", req.DOB)
	if err != nil {
		return nil, err
	}
	initiated := s.today()
	if d, err := parseOptionalDate("initiatedDate", req.InitiatedDate); err != nil {
		return nil, err
	} else if d != nil {
		initiated = *d
	}

	hash, err := utils.HashPassword(req.Password)
	if errors.Is(err, utils.ErrWeakPassword) {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	} else if err != nil {
		return nil, apperrors.NewAppError(500, "failed to hash password", err)
	}

	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	now := s.now()
	employee := domain.Employee{
		AdminID:       adminID,
		Name:          strings.TrimSpace(req.FullName),
		Phone:         strings.TrimSpace(req.PhoneNumber),
		PasswordHash:  hash,
		NationalID:    req.IDNumber,
		BirthDate:     birthDate,
		Address:       req.Address,
		ActiveStatus:  domain.StatusActive,
		Balance:       decimal.Zero,
		InitiatedDate: initiated,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	salary := domain.Salary{
		Type:     salaryType,
		Amount:   req.Salary,
		Currency: currency,
		PayDay:   req.PayDate,
	}

	enrolled, err := s.employeeRepo.EnrollEmployee(ctx, employee, salary)
	if err != nil {
		s.LogError(ctx, err, "Failed to enroll employee", slog.Int64("admin_id", adminID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee enrolled", slog.Int64("employee_id", enrolled.EmployeeID), slog.Int64("admin_id", adminID))
	return enrolled, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, adminID, employeeID int64) (*domain.Employee, error) {
	return ownedEmployee(ctx, s.employeeRepo, adminID, employeeID)
}

func (s *employeeService) ListEmployees(ctx context.Context, adminID int64) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployeesByAdmin(ctx, adminID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees", slog.Int64("admin_id", adminID))
		return nil, err
	}
	return employees, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, adminID, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if _, err := ownedEmployee(ctx, s.employeeRepo, adminID, employeeID); err != nil {
		return nil, err
	}

	update := domain.EmployeeUpdate{
		Name:       req.FullName,
		Phone:      req.PhoneNumber,
		NationalID: req.IDNumber,
		Address:    req.Address,
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, fmt.Errorf("%w: fullName cannot be empty", apperrors.ErrValidation)
	}
	if update.Phone != nil && strings.TrimSpace(*update.Phone) == "" {
		return nil, fmt.Errorf("%w: phoneNumber cannot be empty", apperrors.ErrValidation)
	}
	if req.DOB != nil {
		d, err := parseOptionalDate("dob", *req.DOB)
		if err != nil {
			return nil, err
		}
		update.BirthDate = d
	}

	updated, err := s.employeeRepo.UpdateEmployee(ctx, employeeID, update, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.Int64("employee_id", employeeID))
		return nil, err
	}
	return updated, nil
}

func (s *employeeService) DeactivateEmployee(ctx context.Context, adminID, employeeID int64) error {
	if _, err := ownedEmployee(ctx, s.employeeRepo, adminID, employeeID); err != nil {
		return err
	}
	if err := s.employeeRepo.DeactivateEmployee(ctx, employeeID, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate employee", slog.Int64("employee_id", employeeID))
		return err
	}
	s.LogInfo(ctx, "Employee deactivated", slog.Int64("employee_id", employeeID))
	return nil
}

func (s *employeeService) GetSalary(ctx context.Context, adminID, employeeID int64) (*domain.Salary, error) {
	if _, err := ownedEmployee(ctx, s.employeeRepo, adminID, employeeID); err != nil {
		return nil, err
	}
	return s.employeeRepo.FindSalaryByEmployeeID(ctx, employeeID)
}

func (s *employeeService) UpdateSalary(ctx context.Context, adminID, employeeID int64, amount decimal.Decimal) (*domain.Salary, error) {
	if err := requirePositive("salary", amount); err != nil {
		return nil, err
	}
	if _, err := ownedEmployee(ctx, s.employeeRepo, adminID, employeeID); err != nil {
		return nil, err
	}
	salary, err := s.employeeRepo.UpdateSalaryAmount(ctx, employeeID, amount)
	if err != nil {
		s.LogError(ctx, err, "Failed to update salary", slog.Int64("employee_id", employeeID))
		return nil, err
	}
	s.LogInfo(ctx, "Salary updated", slog.Int64("employee_id", employeeID), slog.String("salary", amount.String()))
	return salary, nil
}

func (s *employeeService) RecordPayment(ctx context.Context, adminID, employeeID int64, req dto.RecordPaymentRequest) (*domain.Payment, error) {
	if err := requirePositive("amount", req.Amount); err != nil {
		return nil, err
	}
	paymentDate, err := domain.ParseDate(req.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: paymentDate must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	if paymentDate.After(s.today()) {
		return nil, fmt.Errorf("%w: paymentDate cannot be in the future", apperrors.ErrValidation)
	}
	if _, err := ownedEmployee(ctx, s.employeeRepo, adminID, employeeID); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.SavePayment(ctx, domain.Payment{
		EmployeeID:  employeeID,
		PaymentDate: paymentDate,
		Amount:      req.Amount,
		Note:        req.Note,
		CreatedAt:   s.now(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to record payment", slog.Int64("employee_id", employeeID))
		return nil, err
	}
	s.LogInfo(ctx, "Payment recorded", slog.Int64("employee_id", employeeID), slog.String("payment_date", req.PaymentDate))
	return payment, nil
}

func (s *employeeService) ListPayments(ctx context.Context, adminID, employeeID int64) ([]domain.Payment, error) {
	if _, err := ownedEmployee(ctx, s.employeeRepo, adminID, employeeID); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListPaymentsByEmployee(ctx, employeeID)
}
