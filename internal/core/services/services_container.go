package services

import (
	portsrepo "github.com/vnpayroll/attendance_backend/internal/core/ports/repositories"
	portssvc "github.com/vnpayroll/attendance_backend/internal/core/ports/services"
	"github.com/vnpayroll/attendance_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	// Every service evaluates civil dates in the configured business timezone
	clock := WithClock(NewClock(cfg.Location))

	return &portssvc.ServiceContainer{
		Auth:       NewAuthService(repos.AdminRepo, repos.EmployeeRepo, cfg, clock),
		Employee:   NewEmployeeService(repos.EmployeeRepo, repos.PaymentRepo, clock),
		Attendance: NewAttendanceService(repos.AttendanceRepo, repos.EmployeeRepo, clock),
		Absence:    NewAbsenceService(repos.AttendanceRepo, clock),
		Balance:    NewBalanceService(repos.BalanceRepo, clock),
		Advance:    NewAdvanceService(repos.AdvanceRepo, repos.EmployeeRepo, clock),
	}
}
