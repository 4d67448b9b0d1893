package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is a row of the attendance table.
type Attendance struct {
	AttendanceID int64           `db:"id"`
	EmployeeID   int64           `db:"employee_id"`
	Date         time.Time       `db:"date"`
	Status       string          `db:"status"`
	SalaryInDay  decimal.Decimal `db:"salaryinday"`
	CheckInTime  *time.Time      `db:"check_in_time"`
	CheckOutTime *time.Time      `db:"check_out_time"`
}

// DayScreenRow is one row of employees LEFT JOIN attendance. The attendance
// columns are null for employees with no record in range.
type DayScreenRow struct {
	EmployeeID   int64
	EmployeeName string
	AttendanceID *int64
	Date         *time.Time
	Status       *string
	SalaryInDay  *decimal.Decimal
	CheckInTime  *time.Time
	CheckOutTime *time.Time
}

// LedgerRow is one row of attendance LEFT JOIN advance requests on date.
type LedgerRow struct {
	Date          time.Time
	Status        string
	SalaryInDay   decimal.Decimal
	AdvanceAmount *decimal.Decimal
	AdvanceStatus *string
}
