package pgsql

import (
	"context"

	"github.com/vnpayroll/attendance_backend/internal/core/domain"
	portsrepo "github.com/vnpayroll/attendance_backend/internal/core/ports/repositories"
	"github.com/vnpayroll/attendance_backend/internal/models"
	"github.com/vnpayroll/attendance_backend/internal/utils/mapping"
)

type PgxAdminRepository struct {
	BaseRepository
}

func newPgxAdminRepository(db DB) portsrepo.AdminRepository {
	return &PgxAdminRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.AdminRepository = (*PgxAdminRepository)(nil)

const adminColumns = `id, name, phone, password_hash, created_at, updated_at`

func (r *PgxAdminRepository) FindAdminByPhone(ctx context.Context, phone string) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE phone = $1;`
	return r.findOne(ctx, query, phone)
}

func (r *PgxAdminRepository) FindAdminByID(ctx context.Context, adminID int64) (*domain.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1;`
	return r.findOne(ctx, query, adminID)
}

func (r *PgxAdminRepository) findOne(ctx context.Context, query string, arg any) (*domain.Admin, error) {
	var m models.Admin
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&m.AdminID,
		&m.Name,
		&m.Phone,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, mapDBError(err, "failed to find admin")
	}
	admin := mapping.ToDomainAdmin(m)
	return &admin, nil
}

func (r *PgxAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) (bool, error) {
	m := mapping.ToModelAdmin(admin)
	query := `
		INSERT INTO admins (name, phone, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (phone) DO NOTHING;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Name, m.Phone, m.PasswordHash, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return false, mapDBError(err, "failed to save admin")
	}
	return cmdTag.RowsAffected() == 1, nil
}
