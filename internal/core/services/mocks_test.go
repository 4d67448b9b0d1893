package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	"github.com/vnpayroll/attendance_backend/internal/core/services"
)

// --- Shared test clock ---

var testLocation = time.FixedZone("ICT", 7*60*60)

// fixedClock pins "now" to 2024-03-10 09:30 in the business timezone.
func fixedClock() services.Clock {
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, testLocation)
	return services.Clock{Now: func() time.Time { return now }, Location: testLocation}
}

func civil(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- Mock AdminRepository ---
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) FindAdminByPhone(ctx context.Context, phone string) (*domain.Admin, error) {
	args := m.Called(ctx, phone)
	var admin *domain.Admin
	if args.Get(0) != nil {
		admin = args.Get(0).(*domain.Admin)
	}
	return admin, args.Error(1)
}

func (m *MockAdminRepository) FindAdminByID(ctx context.Context, adminID int64) (*domain.Admin, error) {
	args := m.Called(ctx, adminID)
	var admin *domain.Admin
	if args.Get(0) != nil {
		admin = args.Get(0).(*domain.Admin)
	}
	return admin, args.Error(1)
}

func (m *MockAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) (bool, error) {
	args := m.Called(ctx, admin)
	return args.Bool(0), args.Error(1)
}

// --- Mock EmployeeRepositoryFacade ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByPhone(ctx context.Context, phone string) (*domain.Employee, error) {
	args := m.Called(ctx, phone)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployeesByAdmin(ctx context.Context, adminID int64) ([]domain.Employee, error) {
	args := m.Called(ctx, adminID)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) EnrollEmployee(ctx context.Context, employee domain.Employee, salary domain.Salary) (*domain.Employee, error) {
	args := m.Called(ctx, employee, salary)
	var enrolled *domain.Employee
	if args.Get(0) != nil {
		enrolled = args.Get(0).(*domain.Employee)
	}
	return enrolled, args.Error(1)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employeeID int64, update domain.EmployeeUpdate, now time.Time) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, update, now)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) DeactivateEmployee(ctx context.Context, employeeID int64, now time.Time) error {
	args := m.Called(ctx, employeeID, now)
	return args.Error(0)
}

func (m *MockEmployeeRepository) FindSalaryByEmployeeID(ctx context.Context, employeeID int64) (*domain.Salary, error) {
	args := m.Called(ctx, employeeID)
	var salary *domain.Salary
	if args.Get(0) != nil {
		salary = args.Get(0).(*domain.Salary)
	}
	return salary, args.Error(1)
}

func (m *MockEmployeeRepository) UpdateSalaryAmount(ctx context.Context, employeeID int64, amount decimal.Decimal) (*domain.Salary, error) {
	args := m.Called(ctx, employeeID, amount)
	var salary *domain.Salary
	if args.Get(0) != nil {
		salary = args.Get(0).(*domain.Salary)
	}
	return salary, args.Error(1)
}

// --- Mock AttendanceRepositoryFacade ---
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) ListAttendanceRows(ctx context.Context, adminID int64, from, to *time.Time) ([]domain.AttendanceRow, error) {
	args := m.Called(ctx, adminID, from, to)
	var rows []domain.AttendanceRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.AttendanceRow)
	}
	return rows, args.Error(1)
}

func (m *MockAttendanceRepository) ListLedger(ctx context.Context, employeeID int64) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, employeeID)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	return entries, args.Error(1)
}

func (m *MockAttendanceRepository) attendanceResult(args mock.Arguments) (*domain.Attendance, error) {
	var attendance *domain.Attendance
	if args.Get(0) != nil {
		attendance = args.Get(0).(*domain.Attendance)
	}
	return attendance, args.Error(1)
}

func (m *MockAttendanceRepository) CreateAttendance(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error) {
	return m.attendanceResult(m.Called(ctx, attendance))
}

func (m *MockAttendanceRepository) UpdateAttendance(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error) {
	return m.attendanceResult(m.Called(ctx, attendance))
}

func (m *MockAttendanceRepository) CheckIn(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error) {
	return m.attendanceResult(m.Called(ctx, attendance))
}

func (m *MockAttendanceRepository) CheckOut(ctx context.Context, employeeID int64, date time.Time, at time.Time) (*domain.Attendance, error) {
	return m.attendanceResult(m.Called(ctx, employeeID, date, at))
}

func (m *MockAttendanceRepository) InsertMissingAbsences(ctx context.Context, date time.Time) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock BalanceRepository ---
type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) RecomputeAll(ctx context.Context, today time.Time) (int64, error) {
	args := m.Called(ctx, today)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, payment)
	var saved *domain.Payment
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Payment)
	}
	return saved, args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByEmployee(ctx context.Context, employeeID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, employeeID)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	return payments, args.Error(1)
}

// --- Mock AdvanceRepository ---
type MockAdvanceRepository struct {
	mock.Mock
}

func (m *MockAdvanceRepository) advanceResult(args mock.Arguments) (*domain.AdvanceRequest, error) {
	var advance *domain.AdvanceRequest
	if args.Get(0) != nil {
		advance = args.Get(0).(*domain.AdvanceRequest)
	}
	return advance, args.Error(1)
}

func (m *MockAdvanceRepository) SaveAdvance(ctx context.Context, advance domain.AdvanceRequest) (*domain.AdvanceRequest, error) {
	return m.advanceResult(m.Called(ctx, advance))
}

func (m *MockAdvanceRepository) FindAdvanceByID(ctx context.Context, advanceID int64) (*domain.AdvanceRequest, error) {
	return m.advanceResult(m.Called(ctx, advanceID))
}

func (m *MockAdvanceRepository) ListAdvancesByAdmin(ctx context.Context, adminID int64, status *domain.AdvanceStatus) ([]domain.AdvanceRequest, error) {
	args := m.Called(ctx, adminID, status)
	var advances []domain.AdvanceRequest
	if args.Get(0) != nil {
		advances = args.Get(0).([]domain.AdvanceRequest)
	}
	return advances, args.Error(1)
}

func (m *MockAdvanceRepository) UpdateAdvanceStatus(ctx context.Context, advanceID int64, status domain.AdvanceStatus, decidedAt time.Time) (*domain.AdvanceRequest, error) {
	return m.advanceResult(m.Called(ctx, advanceID, status, decidedAt))
}
