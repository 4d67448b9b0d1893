package mapping

import (
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	"github.com/vnpayroll/attendance_backend/internal/models"
)

// ToModelAttendance converts a domain Attendance to a model Attendance
func ToModelAttendance(d domain.Attendance) models.Attendance {
	return models.Attendance{
		AttendanceID: d.AttendanceID,
		EmployeeID:   d.EmployeeID,
		Date:         d.Date,
		Status:       string(d.Status),
		SalaryInDay:  d.SalaryInDay,
		CheckInTime:  d.CheckInTime,
		CheckOutTime: d.CheckOutTime,
	}
}

// ToDomainAttendance converts a model Attendance to a domain Attendance
func ToDomainAttendance(m models.Attendance) domain.Attendance {
	return domain.Attendance{
		AttendanceID: m.AttendanceID,
		EmployeeID:   m.EmployeeID,
		Date:         m.Date,
		Status:       domain.AttendanceStatus(m.Status),
		SalaryInDay:  m.SalaryInDay,
		CheckInTime:  m.CheckInTime,
		CheckOutTime: m.CheckOutTime,
	}
}

// ToDomainAttendanceRow converts a LEFT JOIN row. Attendance is nil when the
// employee had no record in range.
func ToDomainAttendanceRow(m models.DayScreenRow) domain.AttendanceRow {
	row := domain.AttendanceRow{
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
	}
	if m.AttendanceID == nil {
		return row
	}
	a := domain.Attendance{
		AttendanceID: *m.AttendanceID,
		EmployeeID:   m.EmployeeID,
		CheckInTime:  m.CheckInTime,
		CheckOutTime: m.CheckOutTime,
	}
	if m.Date != nil {
		a.Date = *m.Date
	}
	if m.Status != nil {
		a.Status = domain.AttendanceStatus(*m.Status)
	}
	if m.SalaryInDay != nil {
		a.SalaryInDay = *m.SalaryInDay
	}
	row.Attendance = &a
	return row
}

// ToDomainLedgerEntry converts an attendance/advance join row.
func ToDomainLedgerEntry(m models.LedgerRow) domain.LedgerEntry {
	e := domain.LedgerEntry{
		Date:          m.Date,
		Status:        domain.AttendanceStatus(m.Status),
		SalaryInDay:   m.SalaryInDay,
		AdvanceAmount: m.AdvanceAmount,
	}
	if m.AdvanceStatus != nil {
		st := domain.AdvanceStatus(*m.AdvanceStatus)
		e.AdvanceStatus = &st
	}
	return e
}
