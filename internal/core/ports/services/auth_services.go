package services

import (
	"context"

	"github.com/vnpayroll/attendance_backend/internal/core/domain"
)

// AdminAuthSvc authenticates admins.
type AdminAuthSvc interface {
	// LoginAdmin verifies credentials and returns a signed token and the admin.
	LoginAdmin(ctx context.Context, phone, password string) (string, *domain.Admin, error)

	// EnsureAdmin creates an admin with the given credentials unless the phone
	// is already registered. It reports whether an admin was created.
	EnsureAdmin(ctx context.Context, name, phone, password string) (bool, error)
}

// EmployeeAuthSvc authenticates employees.
type EmployeeAuthSvc interface {
	// LoginEmployee verifies credentials and returns a signed token and the employee.
	LoginEmployee(ctx context.Context, phone, password string) (string, *domain.Employee, error)
}

// AuthSvcFacade combines all authentication service interfaces
type AuthSvcFacade interface {
	AdminAuthSvc
	EmployeeAuthSvc
}
