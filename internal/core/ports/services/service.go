package services

// ServiceContainer holds instances of all the application services.
// Handlers and the scheduler reach every service through it.
type ServiceContainer struct {
	Auth       AuthSvcFacade
	Employee   EmployeeSvcFacade
	Attendance AttendanceSvcFacade
	Absence    AbsenceSvc
	Balance    BalanceSvc
	Advance    AdvanceSvcFacade
}
