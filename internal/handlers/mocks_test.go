package handlers_test

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/dto"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) LoginAdmin(ctx context.Context, phone, password string) (string, *domain.Admin, error) {
	args := m.Called(ctx, phone, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.Admin), args.Error(2)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context, name, phone, password string) (bool, error) {
	args := m.Called(ctx, name, phone, password)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthService) LoginEmployee(ctx context.Context, phone, password string) (string, *domain.Employee, error) {
	args := m.Called(ctx, phone, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.Employee), args.Error(2)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) employee(args mock.Arguments) (*domain.Employee, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) salary(args mock.Arguments) (*domain.Salary, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salary), args.Error(1)
}

func (m *MockEmployeeService) GetEmployee(ctx context.Context, adminID, employeeID int64) (*domain.Employee, error) {
	return m.employee(m.Called(ctx, adminID, employeeID))
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context, adminID int64) ([]domain.Employee, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) GetSalary(ctx context.Context, adminID, employeeID int64) (*domain.Salary, error) {
	return m.salary(m.Called(ctx, adminID, employeeID))
}

func (m *MockEmployeeService) EnrollEmployee(ctx context.Context, adminID int64, req dto.EnrollEmployeeRequest) (*domain.Employee, error) {
	return m.employee(m.Called(ctx, adminID, req))
}

func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, adminID, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	return m.employee(m.Called(ctx, adminID, employeeID, req))
}

func (m *MockEmployeeService) DeactivateEmployee(ctx context.Context, adminID, employeeID int64) error {
	return m.Called(ctx, adminID, employeeID).Error(0)
}

func (m *MockEmployeeService) UpdateSalary(ctx context.Context, adminID, employeeID int64, amount decimal.Decimal) (*domain.Salary, error) {
	return m.salary(m.Called(ctx, adminID, employeeID, amount))
}

func (m *MockEmployeeService) RecordPayment(ctx context.Context, adminID, employeeID int64, req dto.RecordPaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, adminID, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockEmployeeService) ListPayments(ctx context.Context, adminID, employeeID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, adminID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock AttendanceService ---
type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) attendance(args mock.Arguments) (*domain.Attendance, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}

func (m *MockAttendanceService) AddAttendance(ctx context.Context, adminID int64, req dto.AttendanceRequest) (*domain.Attendance, error) {
	return m.attendance(m.Called(ctx, adminID, req))
}

func (m *MockAttendanceService) UpdateAttendance(ctx context.Context, adminID int64, req dto.AttendanceRequest) (*domain.Attendance, error) {
	return m.attendance(m.Called(ctx, adminID, req))
}

func (m *MockAttendanceService) DayScreen(ctx context.Context, adminID int64, from, to *time.Time) ([]domain.EmployeeAttendance, error) {
	args := m.Called(ctx, adminID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeAttendance), args.Error(1)
}

func (m *MockAttendanceService) ExportDayScreen(ctx context.Context, adminID int64, from, to *time.Time, w io.Writer) error {
	args := m.Called(ctx, adminID, from, to, w)
	if payload, ok := args.Get(0).([]byte); ok {
		_, _ = w.Write(payload)
		return nil
	}
	return args.Error(0)
}

func (m *MockAttendanceService) CheckIn(ctx context.Context, employeeID int64) (*domain.Attendance, error) {
	return m.attendance(m.Called(ctx, employeeID))
}

func (m *MockAttendanceService) CheckOut(ctx context.Context, employeeID int64) (*domain.Attendance, error) {
	return m.attendance(m.Called(ctx, employeeID))
}

func (m *MockAttendanceService) Ledger(ctx context.Context, employeeID int64) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

var _ portssvc.AttendanceSvcFacade = (*MockAttendanceService)(nil)

// --- Mock AbsenceService ---
type MockAbsenceService struct {
	mock.Mock
}

func (m *MockAbsenceService) ReconcileDay(ctx context.Context) (time.Time, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Get(1).(int64), args.Error(2)
}

func (m *MockAbsenceService) ReconcileDate(ctx context.Context, date time.Time) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) RecomputeBalances(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock AdvanceService ---
type MockAdvanceService struct {
	mock.Mock
}

func (m *MockAdvanceService) advance(args mock.Arguments) (*domain.AdvanceRequest, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdvanceRequest), args.Error(1)
}

func (m *MockAdvanceService) RequestAdvance(ctx context.Context, employeeID int64, req dto.CreateAdvanceRequest) (*domain.AdvanceRequest, error) {
	return m.advance(m.Called(ctx, employeeID, req))
}

func (m *MockAdvanceService) ListAdvances(ctx context.Context, adminID int64, status string) ([]domain.AdvanceRequest, error) {
	args := m.Called(ctx, adminID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AdvanceRequest), args.Error(1)
}

func (m *MockAdvanceService) DecideAdvance(ctx context.Context, adminID, advanceID int64, status string) (*domain.AdvanceRequest, error) {
	return m.advance(m.Called(ctx, adminID, advanceID, status))
}

var _ portssvc.AdvanceSvcFacade = (*MockAdvanceService)(nil)
