package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vnpayroll/attendance_backend/internal/apperrors"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portsrepo "github.com/vnpayroll/attendance_backend/internal/core/ports/repositories"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/dto"
)

type attendanceService struct {
	BaseService
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	employeeRepo   portsrepo.EmployeeRepositoryFacade
}

// NewAttendanceService creates the attendance service.
func NewAttendanceService(attendanceRepo portsrepo.AttendanceRepositoryFacade, employeeRepo portsrepo.EmployeeRepositoryFacade, options ...ServiceOption) portssvc.AttendanceSvcFacade {
	return &attendanceService{
		BaseService:    newBaseService(options...),
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

// currentSalary returns the employee's base salary. A missing salary row counts as zero.
func (s *attendanceService) currentSalary(ctx context.Context, employeeID int64) (decimal.Decimal, error) {
	salary, err := s.employeeRepo.FindSalaryByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "No salary row, accruing zero", slog.Int64("employee_id", employeeID))
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return salary.Amount, nil
}

// buildAttendance validates an admin request and freezes the accrual for it.
func (s *attendanceService) buildAttendance(ctx context.Context, adminID int64, req dto.AttendanceRequest) (domain.Attendance, error) {
	status, err := domain.ParseAttendanceStatus(req.Status)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return domain.Attendance{}, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	if _, err := ownedEmployee(ctx, s.employeeRepo, adminID, req.EmployeeID); err != nil {
		return domain.Attendance{}, err
	}
	salary, err := s.currentSalary(ctx, req.EmployeeID)
	if err != nil {
		return domain.Attendance{}, err
	}
	return domain.NewAttendance(req.EmployeeID, date, status, salary), nil
}

func (s *attendanceService) AddAttendance(ctx context.Context, adminID int64, req dto.AttendanceRequest) (*domain.Attendance, error) {
	attendance, err := s.buildAttendance(ctx, adminID, req)
	if err != nil {
		return nil, err
	}
	created, err := s.attendanceRepo.CreateAttendance(ctx, attendance)
	if err != nil {
		s.LogError(ctx, err, "Failed to add attendance", slog.Int64("employee_id", req.EmployeeID), slog.String("date", req.Date))
		return nil, err
	}
	return created, nil
}

func (s *attendanceService) UpdateAttendance(ctx context.Context, adminID int64, req dto.AttendanceRequest) (*domain.Attendance, error) {
	attendance, err := s.buildAttendance(ctx, adminID, req)
	if err != nil {
		return nil, err
	}
	updated, err := s.attendanceRepo.UpdateAttendance(ctx, attendance)
	if err != nil {
		s.LogError(ctx, err, "Failed to update attendance", slog.Int64("employee_id", req.EmployeeID), slog.String("date", req.Date))
		return nil, err
	}
	return updated, nil
}

func (s *attendanceService) DayScreen(ctx context.Context, adminID int64, from, to *time.Time) ([]domain.EmployeeAttendance, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}
	rows, err := s.attendanceRepo.ListAttendanceRows(ctx, adminID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load day screen", slog.Int64("admin_id", adminID))
		return nil, err
	}
	return domain.GroupAttendance(rows), nil
}

func (s *attendanceService) ExportDayScreen(ctx context.Context, adminID int64, from, to *time.Time, w io.Writer) error {
	groups, err := s.DayScreen(ctx, adminID, from, to)
	if err != nil {
		return err
	}
	if err := writeAttendanceWorkbook(groups, w); err != nil {
		s.LogError(ctx, err, "Failed to write attendance workbook", slog.Int64("admin_id", adminID))
		return apperrors.NewAppError(500, "failed to export attendance", err)
	}
	return nil
}

func (s *attendanceService) activeEmployee(ctx context.Context, employeeID int64) error {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if !employee.IsActive() {
		return fmt.Errorf("employee is not active: %w", apperrors.ErrForbidden)
	}
	return nil
}

func (s *attendanceService) CheckIn(ctx context.Context, employeeID int64) (*domain.Attendance, error) {
	if err := s.activeEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	salary, err := s.currentSalary(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	attendance := domain.NewAttendance(employeeID, s.today(), domain.AttendanceFull, salary)
	attendance.CheckInTime = &now

	checkedIn, err := s.attendanceRepo.CheckIn(ctx, attendance)
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to check in", slog.Int64("employee_id", employeeID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Employee checked in", slog.Int64("employee_id", employeeID))
	return checkedIn, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, employeeID int64) (*domain.Attendance, error) {
	if err := s.activeEmployee(ctx, employeeID); err != nil {
		return nil, err
	}
	checkedOut, err := s.attendanceRepo.CheckOut(ctx, employeeID, s.today(), s.now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to check out", slog.Int64("employee_id", employeeID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Employee checked out", slog.Int64("employee_id", employeeID))
	return checkedOut, nil
}

func (s *attendanceService) Ledger(ctx context.Context, employeeID int64) ([]domain.LedgerEntry, error) {
	entries, err := s.attendanceRepo.ListLedger(ctx, employeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger", slog.Int64("employee_id", employeeID))
		return nil, err
	}
	return entries, nil
}
