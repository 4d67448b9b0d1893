package pgsql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vnpayroll/attendance_backend/internal/apperrors"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
)

var attendanceCols = []string{"id", "employee_id", "date", "status", "salaryinday", "check_in_time", "check_out_time"}

func TestInsertMissingAbsences(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO attendance (employee_id, date, status, salaryinday)`)).
		WithArgs(date, "ABSENT", "active").
		WillReturnResult(pgxmock.NewResult("INSERT", 3))

	repo := newPgxAttendanceRepository(mock)
	inserted, err := repo.InsertMissingAbsences(context.Background(), date)

	require.NoError(t, err)
	assert.Equal(t, int64(3), inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAttendance_DuplicateDay(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO attendance`)).
		WithArgs(int64(1), date, "FULL", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})

	repo := newPgxAttendanceRepository(mock)
	_, err = repo.CreateAttendance(context.Background(),
		domain.NewAttendance(1, date, domain.AttendanceFull, decimal.NewFromInt(100)))

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckIn(t *testing.T) {
	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	at := time.Date(2024, 5, 2, 1, 30, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`ON CONFLICT (employee_id, date) DO UPDATE SET`)

	t.Run("inserts or upgrades an untouched absence", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		pay := decimal.NewFromInt(100)
		mock.ExpectQuery(query).
			WithArgs(int64(1), date, "FULL", pgxmock.AnyArg(), &at, "ABSENT").
			WillReturnRows(pgxmock.NewRows(attendanceCols).
				AddRow(int64(10), int64(1), date, "FULL", pay, &at, (*time.Time)(nil)))

		a := domain.NewAttendance(1, date, domain.AttendanceFull, pay)
		a.CheckInTime = &at
		got, err := newPgxAttendanceRepository(mock).CheckIn(context.Background(), a)

		require.NoError(t, err)
		assert.Equal(t, int64(10), got.AttendanceID)
		assert.Equal(t, domain.AttendanceFull, got.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing record is left alone", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(query).
			WithArgs(int64(1), date, "FULL", pgxmock.AnyArg(), &at, "ABSENT").
			WillReturnError(pgx.ErrNoRows)

		a := domain.NewAttendance(1, date, domain.AttendanceFull, decimal.NewFromInt(100))
		a.CheckInTime = &at
		_, err = newPgxAttendanceRepository(mock).CheckIn(context.Background(), a)

		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateAttendance_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE attendance SET status = $3, salaryinday = $4`)).
		WithArgs(int64(1), date, "HALF", pgxmock.AnyArg()).
		WillReturnError(pgx.ErrNoRows)

	_, err = newPgxAttendanceRepository(mock).UpdateAttendance(context.Background(),
		domain.NewAttendance(1, date, domain.AttendanceHalf, decimal.NewFromInt(100)))

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAttendanceRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	date := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	attID := int64(5)
	status := "HALF"
	pay := decimal.NewFromInt(50)

	mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN attendance a ON a.employee_id = e.id`)).
		WithArgs(int64(7), (*time.Time)(nil), (*time.Time)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "a_id", "date", "status", "salaryinday", "check_in_time", "check_out_time"}).
			AddRow(int64(1), "An", &attID, &date, &status, &pay, (*time.Time)(nil), (*time.Time)(nil)).
			AddRow(int64(2), "Binh", (*int64)(nil), (*time.Time)(nil), (*string)(nil), (*decimal.Decimal)(nil), (*time.Time)(nil), (*time.Time)(nil)))

	rows, err := newPgxAttendanceRepository(mock).ListAttendanceRows(context.Background(), 7, nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].Attendance)
	assert.Equal(t, domain.AttendanceHalf, rows[0].Attendance.Status)
	assert.Nil(t, rows[1].Attendance)
	assert.Equal(t, "Binh", rows[1].EmployeeName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
