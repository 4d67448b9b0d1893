package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vnpayroll/attendance_backend/internal/apperrors"
	portsrepo "github.com/vnpayroll/attendance_backend/internal/core/ports/repositories"
)

// recomputeLockKey identifies the transaction-scoped advisory lock that
// serialises balance recomputations across processes.
const recomputeLockKey int64 = 7_020_001

type PgxBalanceRepository struct {
	BaseRepository
}

func newPgxBalanceRepository(db DB) portsrepo.BalanceRepository {
	return &PgxBalanceRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.BalanceRepository = (*PgxBalanceRepository)(nil)

// RecomputeAll replaces every employee's balance with the sum of salaryinday
// over [GREATEST(last payment date, initiated date), today]. Employees with no
// attendance in their window are not touched. It fails with ErrConflict when
// another recomputation holds the lock.
func (r *PgxBalanceRepository) RecomputeAll(ctx context.Context, today time.Time) (int64, error) {
	tx, err := r.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	var locked bool
	if err := tx.QueryRow(ctx, `SELECT pg_try_advisory_xact_lock($1);`, recomputeLockKey).Scan(&locked); err != nil {
		return 0, mapDBError(err, "failed to acquire recompute lock")
	}
	if !locked {
		return 0, apperrors.ErrConflict
	}

	query := `
		UPDATE employees e
		SET balance = s.total
		FROM (
			SELECT a.employee_id, SUM(a.salaryinday) AS total
			FROM attendance a
			JOIN employees e2 ON e2.id = a.employee_id
			LEFT JOIN (
				SELECT employee_id, MAX(payment_date) AS last_paid
				FROM payments_history
				GROUP BY employee_id
			) p ON p.employee_id = a.employee_id
			WHERE a.date >= GREATEST(p.last_paid, e2.initiated_date)
				AND a.date <= $1::date
			GROUP BY a.employee_id
		) s
		WHERE e.id = s.employee_id;
	`
	cmdTag, err := tx.Exec(ctx, query, today)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to recompute balances", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return cmdTag.RowsAffected(), nil
}
