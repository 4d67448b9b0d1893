package services

import (
	"io"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	"github.com/xuri/excelize/v2"
)

const attendanceSheet = "Attendance"

var statusFill = map[domain.AttendanceStatus]string{
	domain.AttendanceFull:   "#C6EFCE",
	domain.AttendanceHalf:   "#FFEB9C",
	domain.AttendanceAbsent: "#FFC7CE",
}

// writeAttendanceWorkbook lays the day screen out as one row per employee
// and one column per date, followed by the accrued total.
func writeAttendanceWorkbook(groups []domain.EmployeeAttendance, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", attendanceSheet); err != nil {
		return err
	}

	dates := collectDates(groups)

	styles := make(map[domain.AttendanceStatus]int, len(statusFill))
	for status, color := range statusFill {
		id, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err != nil {
			return err
		}
		styles[status] = id
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	header := []any{"ID", "Name"}
	for _, d := range dates {
		header = append(header, d.Format(domain.DateLayout))
	}
	header = append(header, "Total")
	if err := f.SetSheetRow(attendanceSheet, "A1", &header); err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(attendanceSheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, g := range groups {
		row := i + 2
		byDate := make(map[time.Time]domain.Attendance, len(g.Attendance))
		total := decimal.Zero
		for _, a := range g.Attendance {
			byDate[a.Date] = a
			total = total.Add(a.SalaryInDay)
		}

		values := []any{g.EmployeeID, g.Name}
		for _, d := range dates {
			if a, ok := byDate[d]; ok {
				values = append(values, a.Status.Label())
			} else {
				values = append(values, "")
			}
		}
		values = append(values, total.InexactFloat64())

		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(attendanceSheet, cell, &values); err != nil {
			return err
		}

		for col, d := range dates {
			a, ok := byDate[d]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+3, row)
			if err != nil {
				return err
			}
			if err := f.SetCellStyle(attendanceSheet, cell, cell, styles[a.Status]); err != nil {
				return err
			}
		}
	}

	_, err = f.WriteTo(w)
	return err
}

func collectDates(groups []domain.EmployeeAttendance) []time.Time {
	seen := map[time.Time]struct{}{}
	for _, g := range groups {
		for _, a := range g.Attendance {
			seen[a.Date] = struct{}{}
		}
	}
	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
