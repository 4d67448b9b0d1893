package pgsql

import (
	portsrepo "github.com/vnpayroll/attendance_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository onto the shared pool.
func NewRepositoryProvider(db DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AdminRepo:      newPgxAdminRepository(db),
		EmployeeRepo:   newPgxEmployeeRepository(db),
		AttendanceRepo: newPgxAttendanceRepository(db),
		BalanceRepo:    newPgxBalanceRepository(db),
		PaymentRepo:    newPgxPaymentRepository(db),
		AdvanceRepo:    newPgxAdvanceRepository(db),
	}
}
