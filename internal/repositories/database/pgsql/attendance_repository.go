package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vnpayroll/attendance_backend/internal/apperrors"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portsrepo "github.com/vnpayroll/attendance_backend/internal/core/ports/repositories"
	"github.com/vnpayroll/attendance_backend/internal/models"
	"github.com/vnpayroll/attendance_backend/internal/utils/mapping"
)

type PgxAttendanceRepository struct {
	BaseRepository
}

func newPgxAttendanceRepository(db DB) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

const attendanceColumns = `id, employee_id, date, status, salaryinday, check_in_time, check_out_time`

func scanAttendance(row pgx.Row) (*domain.Attendance, error) {
	var m models.Attendance
	if err := row.Scan(
		&m.AttendanceID,
		&m.EmployeeID,
		&m.Date,
		&m.Status,
		&m.SalaryInDay,
		&m.CheckInTime,
		&m.CheckOutTime,
	); err != nil {
		return nil, err
	}
	a := mapping.ToDomainAttendance(m)
	return &a, nil
}

func (r *PgxAttendanceRepository) ListAttendanceRows(ctx context.Context, adminID int64, from, to *time.Time) ([]domain.AttendanceRow, error) {
	query := `
		SELECT e.id, e.name, a.id, a.date, a.status, a.salaryinday, a.check_in_time, a.check_out_time
		FROM employees e
		LEFT JOIN attendance a ON a.employee_id = e.id
			AND ($2::date IS NULL OR a.date >= $2::date)
			AND ($3::date IS NULL OR a.date <= $3::date)
		WHERE e.admin_id = $1
		ORDER BY e.id, a.date;
	`
	rows, err := r.Pool.Query(ctx, query, adminID, from, to)
	if err != nil {
		return nil, mapDBError(err, "failed to query day screen")
	}
	defer rows.Close()

	result := []domain.AttendanceRow{}
	for rows.Next() {
		var m models.DayScreenRow
		if err := rows.Scan(
			&m.EmployeeID,
			&m.EmployeeName,
			&m.AttendanceID,
			&m.Date,
			&m.Status,
			&m.SalaryInDay,
			&m.CheckInTime,
			&m.CheckOutTime,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan day screen row", err)
		}
		result = append(result, mapping.ToDomainAttendanceRow(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating day screen rows", err)
	}
	return result, nil
}

func (r *PgxAttendanceRepository) ListLedger(ctx context.Context, employeeID int64) ([]domain.LedgerEntry, error) {
	query := `
		SELECT a.date, a.status, a.salaryinday, adv.amount, adv.status
		FROM attendance a
		LEFT JOIN advance_amount_alert adv ON adv.employee_id = a.employee_id AND adv.date = a.date
		WHERE a.employee_id = $1
		ORDER BY a.date DESC, adv.id;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, mapDBError(err, "failed to query ledger")
	}
	defer rows.Close()

	result := []domain.LedgerEntry{}
	for rows.Next() {
		var m models.LedgerRow
		if err := rows.Scan(&m.Date, &m.Status, &m.SalaryInDay, &m.AdvanceAmount, &m.AdvanceStatus); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger row", err)
		}
		result = append(result, mapping.ToDomainLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger rows", err)
	}
	return result, nil
}

func (r *PgxAttendanceRepository) CreateAttendance(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error) {
	m := mapping.ToModelAttendance(attendance)
	query := `
		INSERT INTO attendance (employee_id, date, status, salaryinday, check_in_time, check_out_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + attendanceColumns + `;
	`
	created, err := scanAttendance(r.Pool.QueryRow(ctx, query,
		m.EmployeeID, m.Date, m.Status, m.SalaryInDay, m.CheckInTime, m.CheckOutTime))
	if err != nil {
		return nil, mapDBError(err, "failed to insert attendance")
	}
	return created, nil
}

func (r *PgxAttendanceRepository) UpdateAttendance(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error) {
	m := mapping.ToModelAttendance(attendance)
	query := `
		UPDATE attendance SET status = $3, salaryinday = $4
		WHERE employee_id = $1 AND date = $2
		RETURNING ` + attendanceColumns + `;
	`
	updated, err := scanAttendance(r.Pool.QueryRow(ctx, query, m.EmployeeID, m.Date, m.Status, m.SalaryInDay))
	if err != nil {
		return nil, mapDBError(err, "failed to update attendance")
	}
	return updated, nil
}

// CheckIn inserts today's record, or upgrades an untouched ABSENT record
// written by the reconciler. Anything else already recorded is left alone.
func (r *PgxAttendanceRepository) CheckIn(ctx context.Context, attendance domain.Attendance) (*domain.Attendance, error) {
	m := mapping.ToModelAttendance(attendance)
	query := `
		INSERT INTO attendance (employee_id, date, status, salaryinday, check_in_time)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			salaryinday = EXCLUDED.salaryinday,
			check_in_time = EXCLUDED.check_in_time
		WHERE attendance.status = $6 AND attendance.check_in_time IS NULL
		RETURNING ` + attendanceColumns + `;
	`
	checkedIn, err := scanAttendance(r.Pool.QueryRow(ctx, query,
		m.EmployeeID, m.Date, m.Status, m.SalaryInDay, m.CheckInTime, string(domain.AttendanceAbsent)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("attendance already recorded for %s: %w", m.Date.Format(domain.DateLayout), apperrors.ErrDuplicate)
		}
		return nil, mapDBError(err, "failed to check in")
	}
	return checkedIn, nil
}

func (r *PgxAttendanceRepository) CheckOut(ctx context.Context, employeeID int64, date time.Time, at time.Time) (*domain.Attendance, error) {
	query := `
		UPDATE attendance SET check_out_time = $3
		WHERE employee_id = $1 AND date = $2 AND check_in_time IS NOT NULL AND check_out_time IS NULL
		RETURNING ` + attendanceColumns + `;
	`
	checkedOut, err := scanAttendance(r.Pool.QueryRow(ctx, query, employeeID, date, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no open check-in for %s: %w", date.Format(domain.DateLayout), apperrors.ErrNotFound)
		}
		return nil, mapDBError(err, "failed to check out")
	}
	return checkedOut, nil
}

// InsertMissingAbsences is the reconciler statement. NOT EXISTS skips
// employees that already have a record; ON CONFLICT absorbs a concurrent
// check-in landing between the check and the insert.
func (r *PgxAttendanceRepository) InsertMissingAbsences(ctx context.Context, date time.Time) (int64, error) {
	query := `
		INSERT INTO attendance (employee_id, date, status, salaryinday)
		SELECT e.id, $1::date, $2, 0
		FROM employees e
		WHERE e.active_status = $3
			AND NOT EXISTS (
				SELECT 1 FROM attendance a
				WHERE a.employee_id = e.id AND a.date = $1::date AND a.status IS NOT NULL
			)
		ON CONFLICT (employee_id, date) DO NOTHING;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, date, string(domain.AttendanceAbsent), string(domain.StatusActive))
	if err != nil {
		return 0, mapDBError(err, "failed to insert missing absences")
	}
	return cmdTag.RowsAffected(), nil
}
