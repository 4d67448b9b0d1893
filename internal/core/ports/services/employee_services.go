package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	"github.com/vnpayroll/attendance_backend/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data.
// Every operation is scoped to the employees owned by adminID.
type EmployeeReaderSvc interface {
	GetEmployee(ctx context.Context, adminID, employeeID int64) (*domain.Employee, error)
	ListEmployees(ctx context.Context, adminID int64) ([]domain.Employee, error)
	GetSalary(ctx context.Context, adminID, employeeID int64) (*domain.Salary, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	// EnrollEmployee creates an employee and their salary atomically.
	EnrollEmployee(ctx context.Context, adminID int64, req dto.EnrollEmployeeRequest) (*domain.Employee, error)

	UpdateEmployee(ctx context.Context, adminID, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// DeactivateEmployee marks the employee unactive. The reconciler skips them from then on.
	DeactivateEmployee(ctx context.Context, adminID, employeeID int64) error

	// UpdateSalary changes the base salary. Already recorded accruals keep their value.
	UpdateSalary(ctx context.Context, adminID, employeeID int64, amount decimal.Decimal) (*domain.Salary, error)
}

// PaymentSvc records and lists payouts.
type PaymentSvc interface {
	RecordPayment(ctx context.Context, adminID, employeeID int64, req dto.RecordPaymentRequest) (*domain.Payment, error)
	ListPayments(ctx context.Context, adminID, employeeID int64) ([]domain.Payment, error)
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	PaymentSvc
}
