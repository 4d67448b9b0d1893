package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/vnpayroll/attendance_backend/internal/apperrors"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portsrepo "github.com/vnpayroll/attendance_backend/internal/core/ports/repositories"
	"github.com/vnpayroll/attendance_backend/internal/models"
	"github.com/vnpayroll/attendance_backend/internal/utils/mapping"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(db DB) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `id, admin_id, name, phone, password_hash, cmnd, birth_date, address,
	active_status, balance, initiated_date, created_at, updated_at`

const salaryColumns = `id, employee_id, type, salary, currency, pay_date`

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.AdminID,
		&m.Name,
		&m.Phone,
		&m.PasswordHash,
		&m.NationalID,
		&m.BirthDate,
		&m.Address,
		&m.ActiveStatus,
		&m.Balance,
		&m.InitiatedDate,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func scanSalary(row pgx.Row) (models.Salary, error) {
	var m models.Salary
	err := row.Scan(&m.SalaryID, &m.EmployeeID, &m.Type, &m.Amount, &m.Currency, &m.PayDate)
	return m, err
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1;`
	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		return nil, mapDBError(err, fmt.Sprintf("failed to find employee %d", employeeID))
	}
	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByPhone(ctx context.Context, phone string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE phone = $1;`
	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, phone))
	if err != nil {
		return nil, mapDBError(err, "failed to find employee by phone")
	}
	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}

func (r *PgxEmployeeRepository) ListEmployeesByAdmin(ctx context.Context, adminID int64) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE admin_id = $1 ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query, adminID)
	if err != nil {
		return nil, mapDBError(err, "failed to query employees")
	}
	defer rows.Close()

	modelEmployees := []models.Employee{}
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employee row", err)
		}
		modelEmployees = append(modelEmployees, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating employee rows", err)
	}

	return mapping.ToDomainEmployeeSlice(modelEmployees), nil
}

// EnrollEmployee inserts the employee and its salary in one transaction.
func (r *PgxEmployeeRepository) EnrollEmployee(ctx context.Context, employee domain.Employee, salary domain.Salary) (*domain.Employee, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelEmployee(employee)
	employeeQuery := `
		INSERT INTO employees (
			admin_id, name, phone, password_hash, cmnd, birth_date, address,
			active_status, balance, initiated_date, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, employeeQuery,
		m.AdminID,
		m.Name,
		m.Phone,
		m.PasswordHash,
		m.NationalID,
		m.BirthDate,
		m.Address,
		m.ActiveStatus,
		m.Balance,
		m.InitiatedDate,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&m.EmployeeID)
	if err != nil {
		return nil, mapDBError(err, "failed to insert employee")
	}

	sm := mapping.ToModelSalary(salary)
	salaryQuery := `
		INSERT INTO salaries (employee_id, type, salary, currency, pay_date)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := tx.Exec(ctx, salaryQuery, m.EmployeeID, sm.Type, sm.Amount, sm.Currency, sm.PayDate); err != nil {
		return nil, mapDBError(err, "failed to insert salary")
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	enrolled := mapping.ToDomainEmployee(m)
	return &enrolled, nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employeeID int64, update domain.EmployeeUpdate, now time.Time) (*domain.Employee, error) {
	query := `
		UPDATE employees SET
			name = COALESCE($2, name),
			phone = COALESCE($3, phone),
			cmnd = COALESCE($4, cmnd),
			birth_date = COALESCE($5, birth_date),
			address = COALESCE($6, address),
			updated_at = $7
		WHERE id = $1
		RETURNING ` + employeeColumns + `;
	`
	m, err := scanEmployee(r.Pool.QueryRow(ctx, query,
		employeeID,
		update.Name,
		update.Phone,
		update.NationalID,
		update.BirthDate,
		update.Address,
		now,
	))
	if err != nil {
		return nil, mapDBError(err, fmt.Sprintf("failed to update employee %d", employeeID))
	}
	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}

func (r *PgxEmployeeRepository) DeactivateEmployee(ctx context.Context, employeeID int64, now time.Time) error {
	query := `UPDATE employees SET active_status = $2, updated_at = $3 WHERE id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, employeeID, string(domain.StatusUnactive), now)
	if err != nil {
		return mapDBError(err, "failed to deactivate employee")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEmployeeRepository) FindSalaryByEmployeeID(ctx context.Context, employeeID int64) (*domain.Salary, error) {
	query := `SELECT ` + salaryColumns + ` FROM salaries WHERE employee_id = $1;`
	m, err := scanSalary(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		return nil, mapDBError(err, "failed to find salary")
	}
	salary := mapping.ToDomainSalary(m)
	return &salary, nil
}

func (r *PgxEmployeeRepository) UpdateSalaryAmount(ctx context.Context, employeeID int64, amount decimal.Decimal) (*domain.Salary, error) {
	query := `UPDATE salaries SET salary = $2 WHERE employee_id = $1 RETURNING ` + salaryColumns + `;`
	m, err := scanSalary(r.Pool.QueryRow(ctx, query, employeeID, amount))
	if err != nil {
		return nil, mapDBError(err, "failed to update salary")
	}
	salary := mapping.ToDomainSalary(m)
	return &salary, nil
}
