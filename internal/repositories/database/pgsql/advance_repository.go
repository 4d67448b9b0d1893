package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vnpayroll/attendance_backend/internal/apperrors"
	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portsrepo "github.com/vnpayroll/attendance_backend/internal/core/ports/repositories"
	"github.com/vnpayroll/attendance_backend/internal/models"
	"github.com/vnpayroll/attendance_backend/internal/utils/mapping"
)

type PgxAdvanceRepository struct {
	BaseRepository
}

func newPgxAdvanceRepository(db DB) portsrepo.AdvanceRepository {
	return &PgxAdvanceRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.AdvanceRepository = (*PgxAdvanceRepository)(nil)

const advanceColumns = `id, employee_id, date, amount, status, reason, created_at, decided_at`

func scanAdvance(row pgx.Row) (*domain.AdvanceRequest, error) {
	var m models.Advance
	if err := row.Scan(
		&m.AdvanceID,
		&m.EmployeeID,
		&m.Date,
		&m.Amount,
		&m.Status,
		&m.Reason,
		&m.CreatedAt,
		&m.DecidedAt,
	); err != nil {
		return nil, err
	}
	a := mapping.ToDomainAdvance(m)
	return &a, nil
}

func (r *PgxAdvanceRepository) SaveAdvance(ctx context.Context, advance domain.AdvanceRequest) (*domain.AdvanceRequest, error) {
	m := mapping.ToModelAdvance(advance)
	query := `
		INSERT INTO advance_amount_alert (employee_id, date, amount, status, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + advanceColumns + `;
	`
	saved, err := scanAdvance(r.Pool.QueryRow(ctx, query, m.EmployeeID, m.Date, m.Amount, m.Status, m.Reason, m.CreatedAt))
	if err != nil {
		return nil, mapDBError(err, "failed to save advance request")
	}
	return saved, nil
}

func (r *PgxAdvanceRepository) FindAdvanceByID(ctx context.Context, advanceID int64) (*domain.AdvanceRequest, error) {
	query := `SELECT ` + advanceColumns + ` FROM advance_amount_alert WHERE id = $1;`
	advance, err := scanAdvance(r.Pool.QueryRow(ctx, query, advanceID))
	if err != nil {
		return nil, mapDBError(err, "failed to find advance request")
	}
	return advance, nil
}

func (r *PgxAdvanceRepository) ListAdvancesByAdmin(ctx context.Context, adminID int64, status *domain.AdvanceStatus) ([]domain.AdvanceRequest, error) {
	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}
	query := `
		SELECT adv.id, adv.employee_id, adv.date, adv.amount, adv.status, adv.reason, adv.created_at, adv.decided_at
		FROM advance_amount_alert adv
		JOIN employees e ON e.id = adv.employee_id
		WHERE e.admin_id = $1 AND ($2::text IS NULL OR adv.status = $2::text)
		ORDER BY adv.date DESC, adv.id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, adminID, statusArg)
	if err != nil {
		return nil, mapDBError(err, "failed to query advance requests")
	}
	defer rows.Close()

	advances := []domain.AdvanceRequest{}
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan advance row", err)
		}
		advances = append(advances, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating advance rows", err)
	}
	return advances, nil
}

func (r *PgxAdvanceRepository) UpdateAdvanceStatus(ctx context.Context, advanceID int64, status domain.AdvanceStatus, decidedAt time.Time) (*domain.AdvanceRequest, error) {
	query := `
		UPDATE advance_amount_alert SET status = $2, decided_at = $3
		WHERE id = $1
		RETURNING ` + advanceColumns + `;
	`
	updated, err := scanAdvance(r.Pool.QueryRow(ctx, query, advanceID, string(status), decidedAt))
	if err != nil {
		return nil, mapDBError(err, "failed to update advance request")
	}
	return updated, nil
}
