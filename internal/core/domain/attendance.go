package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AttendanceStatus is the single source of truth for a day's attendance.
// Presentation values (label, color) are derived from it.
type AttendanceStatus string

const (
	AttendanceFull   AttendanceStatus = "FULL"
	AttendanceHalf   AttendanceStatus = "HALF"
	AttendanceAbsent AttendanceStatus = "ABSENT"
)

var two = decimal.NewFromInt(2)

// ParseAttendanceStatus accepts the canonical codes and the Vietnamese
// labels the admin frontend sends ("Đủ", "Nửa", "Vắng").
func ParseAttendanceStatus(s string) (AttendanceStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "đủ":
		return AttendanceFull, nil
	case "half", "nửa":
		return AttendanceHalf, nil
	case "absent", "vắng":
		return AttendanceAbsent, nil
	}
	return "", fmt.Errorf("unknown attendance status %q", s)
}

// Valid reports whether s is one of the three known statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceFull, AttendanceHalf, AttendanceAbsent:
		return true
	}
	return false
}

// Accrue returns the pay earned for one day with this status on the given
// base salary. The result is frozen into the attendance row at write time.
func (s AttendanceStatus) Accrue(salary decimal.Decimal) decimal.Decimal {
	switch s {
	case AttendanceFull:
		return salary
	case AttendanceHalf:
		return salary.Div(two)
	default:
		return decimal.Zero
	}
}

// Color is the presentation tag shown on the day screen.
func (s AttendanceStatus) Color() string {
	switch s {
	case AttendanceFull:
		return "green"
	case AttendanceHalf:
		return "yellow"
	case AttendanceAbsent:
		return "red"
	}
	return ""
}

// Label is the localized display label.
func (s AttendanceStatus) Label() string {
	switch s {
	case AttendanceFull:
		return "Đủ"
	case AttendanceHalf:
		return "Nửa"
	case AttendanceAbsent:
		return "Vắng"
	}
	return ""
}

// Attendance is one employee's record for one calendar date.
type Attendance struct {
	AttendanceID int64            `json:"attendanceID"`
	EmployeeID   int64            `json:"employeeID"`
	Date         time.Time        `json:"date"`
	Status       AttendanceStatus `json:"status"`
	SalaryInDay  decimal.Decimal  `json:"salaryInDay"`
	CheckInTime  *time.Time       `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time       `json:"checkOutTime,omitempty"`
}

// NewAttendance builds a record for date with its accrual computed from the
// employee's current base salary.
func NewAttendance(employeeID int64, date time.Time, status AttendanceStatus, salary decimal.Decimal) Attendance {
	return Attendance{
		EmployeeID:  employeeID,
		Date:        date,
		Status:      status,
		SalaryInDay: status.Accrue(salary),
	}
}

// EmployeeAttendance groups an employee's attendance rows for the day screen.
type EmployeeAttendance struct {
	EmployeeID int64        `json:"employeeID"`
	Name       string       `json:"name"`
	Attendance []Attendance `json:"attendance"`
}

// LedgerEntry is one day of an employee's self-service ledger: the
// attendance for the date and any advance requested on it.
type LedgerEntry struct {
	Date          time.Time        `json:"date"`
	Status        AttendanceStatus `json:"status"`
	SalaryInDay   decimal.Decimal  `json:"salaryInDay"`
	AdvanceAmount *decimal.Decimal `json:"advanceAmount,omitempty"`
	AdvanceStatus *AdvanceStatus   `json:"advanceStatus,omitempty"`
}

// GroupAttendance folds rows ordered by employee into one entry per employee,
// preserving order. A row without attendance still yields its employee with
// an empty list.
func GroupAttendance(rows []AttendanceRow) []EmployeeAttendance {
	result := make([]EmployeeAttendance, 0)
	for _, row := range rows {
		if n := len(result); n == 0 || result[n-1].EmployeeID != row.EmployeeID {
			result = append(result, EmployeeAttendance{
				EmployeeID: row.EmployeeID,
				Name:       row.EmployeeName,
				Attendance: []Attendance{},
			})
		}
		if row.Attendance == nil {
			continue
		}
		last := &result[len(result)-1]
		last.Attendance = append(last.Attendance, *row.Attendance)
	}
	return result
}

// AttendanceRow is a flat employee LEFT JOIN attendance row.
type AttendanceRow struct {
	EmployeeID   int64
	EmployeeName string
	Attendance   *Attendance
}
