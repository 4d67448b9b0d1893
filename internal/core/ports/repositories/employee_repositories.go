package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee by ID.
	FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)

	// FindEmployeeByPhone retrieves an employee by login phone.
	FindEmployeeByPhone(ctx context.Context, phone string) (*domain.Employee, error)

	// ListEmployeesByAdmin retrieves every employee owned by an admin.
	ListEmployeesByAdmin(ctx context.Context, adminID int64) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// EnrollEmployee inserts an employee and its salary row atomically.
	EnrollEmployee(ctx context.Context, employee domain.Employee, salary domain.Salary) (*domain.Employee, error)

	// UpdateEmployee applies a partial update and returns the stored employee.
	UpdateEmployee(ctx context.Context, employeeID int64, update domain.EmployeeUpdate, now time.Time) (*domain.Employee, error)

	// DeactivateEmployee marks an employee unactive.
	DeactivateEmployee(ctx context.Context, employeeID int64, now time.Time) error
}

// SalaryRepository defines persistence operations for salaries.
type SalaryRepository interface {
	// FindSalaryByEmployeeID retrieves the salary row of an employee.
	FindSalaryByEmployeeID(ctx context.Context, employeeID int64) (*domain.Salary, error)

	// UpdateSalaryAmount changes the base salary. Existing attendance rows are not touched.
	UpdateSalaryAmount(ctx context.Context, employeeID int64, amount decimal.Decimal) (*domain.Salary, error)
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	SalaryRepository
}
