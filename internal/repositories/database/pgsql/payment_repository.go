package pgsql

import (
	"context"

	"github.com/vnpayroll/attendance_backend/internal/apperrors"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portsrepo "github.com/vnpayroll/attendance_backend/internal/core/ports/repositories"
	"github.com/vnpayroll/attendance_backend/internal/models"
	"github.com/vnpayroll/attendance_backend/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(db DB) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments_history (employee_id, payment_date, amount, note, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	if err := r.Pool.QueryRow(ctx, query, m.EmployeeID, m.PaymentDate, m.Amount, m.Note, m.CreatedAt).Scan(&m.PaymentID); err != nil {
		return nil, mapDBError(err, "failed to save payment")
	}
	saved := mapping.ToDomainPayment(m)
	return &saved, nil
}

func (r *PgxPaymentRepository) ListPaymentsByEmployee(ctx context.Context, employeeID int64) ([]domain.Payment, error) {
	query := `
		SELECT id, employee_id, payment_date, amount, note, created_at
		FROM payments_history
		WHERE employee_id = $1
		ORDER BY payment_date DESC, id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, mapDBError(err, "failed to query payments")
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(&m.PaymentID, &m.EmployeeID, &m.PaymentDate, &m.Amount, &m.Note, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return payments, nil
}
