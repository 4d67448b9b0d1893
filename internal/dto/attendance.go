package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
)

// AttendanceRequest adds or updates one employee's record for one date.
type AttendanceRequest struct {
	EmployeeID int64  `json:"employee_id" binding:"required,gt=0"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	Status     string `json:"status" binding:"required,attendance_status"`
}

// DateRangeParams is an optional inclusive date range filter.
type DateRangeParams struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// AttendanceResponse defines the data returned for an attendance record.
type AttendanceResponse struct {
	EmployeeID   int64           `json:"employeeID"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
	Label        string          `json:"label"`
	Color        string          `json:"color"`
	SalaryInDay  decimal.Decimal `json:"salaryInDay"`
	CheckInTime  *time.Time      `json:"checkInTime,omitempty"`
	CheckOutTime *time.Time      `json:"checkOutTime,omitempty"`
}

// DayScreenEntry is one employee with their attendance history.
type DayScreenEntry struct {
	ID         int64                `json:"id"`
	Name       string               `json:"name"`
	Attendance []AttendanceResponse `json:"attendance"`
}

// LedgerEntryResponse is one date of an employee's ledger.
type LedgerEntryResponse struct {
	Date          string           `json:"date"`
	Status        string           `json:"status"`
	Color         string           `json:"color"`
	SalaryInDay   decimal.Decimal  `json:"salaryInDay"`
	AdvanceAmount *decimal.Decimal `json:"advanceAmount,omitempty"`
	AdvanceStatus *string          `json:"advanceStatus,omitempty"`
}

// ToAttendanceResponse converts a domain.Attendance to AttendanceResponse DTO
func ToAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	return AttendanceResponse{
		EmployeeID:   a.EmployeeID,
		Date:         a.Date.Format(domain.DateLayout),
		Status:       string(a.Status),
		Label:        a.Status.Label(),
		Color:        a.Status.Color(),
		SalaryInDay:  a.SalaryInDay,
		CheckInTime:  a.CheckInTime,
		CheckOutTime: a.CheckOutTime,
	}
}

// ToDayScreenResponse converts grouped attendance to the day screen payload.
func ToDayScreenResponse(groups []domain.EmployeeAttendance) []DayScreenEntry {
	res := make([]DayScreenEntry, len(groups))
	for i, g := range groups {
		entries := make([]AttendanceResponse, len(g.Attendance))
		for j := range g.Attendance {
			entries[j] = ToAttendanceResponse(&g.Attendance[j])
		}
		res[i] = DayScreenEntry{ID: g.EmployeeID, Name: g.Name, Attendance: entries}
	}
	return res
}

// ToLedgerResponse converts ledger entries to their DTOs.
func ToLedgerResponse(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = LedgerEntryResponse{
			Date:          e.Date.Format(domain.DateLayout),
			Status:        string(e.Status),
			Color:         e.Status.Color(),
			SalaryInDay:   e.SalaryInDay,
			AdvanceAmount: e.AdvanceAmount,
		}
		if e.AdvanceStatus != nil {
			s := string(*e.AdvanceStatus)
			res[i].AdvanceStatus = &s
		}
	}
	return res
}
