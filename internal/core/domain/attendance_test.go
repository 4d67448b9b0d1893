package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
)

func TestAttendanceStatus_Accrue(t *testing.T) {
	tests := []struct {
		name   string
		status domain.AttendanceStatus
		salary decimal.Decimal
		want   decimal.Decimal
	}{
		{name: "full day pays the whole salary", status: domain.AttendanceFull, salary: decimal.NewFromInt(100), want: decimal.NewFromInt(100)},
		{name: "half day pays half", status: domain.AttendanceHalf, salary: decimal.NewFromInt(100), want: decimal.NewFromInt(50)},
		{name: "half day on an odd amount keeps the fraction", status: domain.AttendanceHalf, salary: decimal.NewFromInt(333), want: decimal.RequireFromString("166.5")},
		{name: "absent pays nothing", status: domain.AttendanceAbsent, salary: decimal.NewFromInt(100), want: decimal.Zero},
		{name: "absent pays nothing on a large salary", status: domain.AttendanceAbsent, salary: decimal.NewFromInt(5_000_000), want: decimal.Zero},
		{name: "unknown status pays nothing", status: domain.AttendanceStatus("LATE"), salary: decimal.NewFromInt(100), want: decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.status.Accrue(tt.salary)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestNewAttendance_FreezesAccrualAtWriteTime(t *testing.T) {
	salary := decimal.NewFromInt(100)
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	row := domain.NewAttendance(7, day, domain.AttendanceFull, salary)
	require.True(t, decimal.NewFromInt(100).Equal(row.SalaryInDay))

	// a later raise produces a new value for new rows only
	salary = decimal.NewFromInt(200)
	next := domain.NewAttendance(7, day.AddDate(0, 0, 1), domain.AttendanceFull, salary)

	assert.True(t, decimal.NewFromInt(100).Equal(row.SalaryInDay))
	assert.True(t, decimal.NewFromInt(200).Equal(next.SalaryInDay))
}

func TestParseAttendanceStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.AttendanceStatus
		wantErr bool
	}{
		{in: "FULL", want: domain.AttendanceFull},
		{in: "half", want: domain.AttendanceHalf},
		{in: " Absent ", want: domain.AttendanceAbsent},
		{in: "Đủ", want: domain.AttendanceFull},
		{in: "Nửa", want: domain.AttendanceHalf},
		{in: "Vắng", want: domain.AttendanceAbsent},
		{in: "late", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseAttendanceStatus(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestAttendanceStatus_Presentation(t *testing.T) {
	assert.Equal(t, "green", domain.AttendanceFull.Color())
	assert.Equal(t, "yellow", domain.AttendanceHalf.Color())
	assert.Equal(t, "red", domain.AttendanceAbsent.Color())
	assert.Equal(t, "Vắng", domain.AttendanceAbsent.Label())
	assert.Empty(t, domain.AttendanceStatus("x").Color())
}

func TestGroupAttendance(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)
	a1 := domain.Attendance{EmployeeID: 1, Date: d1, Status: domain.AttendanceFull}
	a2 := domain.Attendance{EmployeeID: 1, Date: d2, Status: domain.AttendanceHalf}

	rows := []domain.AttendanceRow{
		{EmployeeID: 1, EmployeeName: "An", Attendance: &a1},
		{EmployeeID: 1, EmployeeName: "An", Attendance: &a2},
		{EmployeeID: 2, EmployeeName: "Bình"},
	}

	grouped := domain.GroupAttendance(rows)

	require.Len(t, grouped, 2)
	assert.Equal(t, "An", grouped[0].Name)
	assert.Len(t, grouped[0].Attendance, 2)
	assert.Equal(t, d2, grouped[0].Attendance[1].Date)
	assert.Equal(t, int64(2), grouped[1].EmployeeID)
	assert.NotNil(t, grouped[1].Attendance)
	assert.Empty(t, grouped[1].Attendance)

	assert.Empty(t, domain.GroupAttendance(nil))
}
