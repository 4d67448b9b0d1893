package repositories

import (
	"context"
	"time"

	"github.com/vnpayroll/attendance_backend/internal/core/domain"
)

// AttendanceReader defines read operations for attendance data
type AttendanceReader interface {
	// ListAttendanceRows returns employees of an admin LEFT JOIN their
	// attendance in [from, to], ordered by employee then date.
	ListAttendanceRows(ctx context.Context, adminID int64, from, to *time.Time) ([]domain.AttendanceRow, error)

	// ListLedger returns an employee's attendance joined with their advances by date.
	ListLedger(ctx context.Context, employeeID int64) ([]domain.LedgerEntry, error)
}

// AttendanceWriter defines write operations for attendance data
type AttendanceWriter interface {
	// CreateAttendance inserts a record; ErrDuplicate if the day already has one.
	CreateAttendance(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error)

	// UpdateAttendance rewrites status and salaryinday of an existing record.
	UpdateAttendance(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error)

	// CheckIn records an employee's arrival. A reconciler-generated absence
	// without a check-in is upgraded; any other existing record yields ErrDuplicate.
	CheckIn(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error)

	// CheckOut stamps the check-out time on today's record.
	CheckOut(ctx context.Context, employeeID int64, date time.Time, at time.Time) (*domain.Attendance, error)
}

// AbsenceRecorder backs the daily absence reconciler.
type AbsenceRecorder interface {
	// InsertMissingAbsences inserts an ABSENT record dated date for every
	// active employee without one, and returns how many were inserted.
	InsertMissingAbsences(ctx context.Context, date time.Time) (int64, error)
}

// AttendanceRepositoryFacade combines all attendance-related repository interfaces
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
	AbsenceRecorder
}
