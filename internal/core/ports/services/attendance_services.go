package services

import (
	"context"
	"io"
	"time"

	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	"github.com/vnpayroll/attendance_backend/internal/dto"
)

// AttendanceAdminSvc covers the admin-side attendance operations.
type AttendanceAdminSvc interface {
	// AddAttendance records a day, freezing its accrual from the current salary.
	AddAttendance(ctx context.Context, adminID int64, req dto.AttendanceRequest) (*domain.Attendance, error)

	// UpdateAttendance changes a day's status and recomputes its accrual from the current salary.
	UpdateAttendance(ctx context.Context, adminID int64, req dto.AttendanceRequest) (*domain.Attendance, error)

	// DayScreen returns every employee of the admin with their attendance in the optional range.
	DayScreen(ctx context.Context, adminID int64, from, to *time.Time) ([]domain.EmployeeAttendance, error)

	// ExportDayScreen writes the day screen as an XLSX workbook.
	ExportDayScreen(ctx context.Context, adminID int64, from, to *time.Time, w io.Writer) error
}

// AttendanceSelfSvc covers the operations employees perform on their own records.
type AttendanceSelfSvc interface {
	CheckIn(ctx context.Context, employeeID int64) (*domain.Attendance, error)
	CheckOut(ctx context.Context, employeeID int64) (*domain.Attendance, error)
	Ledger(ctx context.Context, employeeID int64) ([]domain.LedgerEntry, error)
}

// AttendanceSvcFacade combines all attendance-related service interfaces
type AttendanceSvcFacade interface {
	AttendanceAdminSvc
	AttendanceSelfSvc
}

// AbsenceSvc is the daily absence reconciler.
type AbsenceSvc interface {
	// ReconcileDay marks every active employee without a record today as
	// absent. It returns the date used and the number of rows inserted.
	ReconcileDay(ctx context.Context) (time.Time, int64, error)

	// ReconcileDate does the same for an explicit civil date.
	ReconcileDate(ctx context.Context, date time.Time) (int64, error)
}

// BalanceSvc recomputes cached employee balances.
type BalanceSvc interface {
	// RecomputeBalances runs the recomputation for today and returns the
	// number of employees updated.
	RecomputeBalances(ctx context.Context) (int64, error)
}
