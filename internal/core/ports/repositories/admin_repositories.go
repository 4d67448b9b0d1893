package repositories

import (
	"context"

	"github.com/vnpayroll/attendance_backend/internal/core/domain"
)

// AdminRepository defines persistence operations for admins.
type AdminRepository interface {
	// FindAdminByPhone retrieves an admin by login phone.
	FindAdminByPhone(ctx context.Context, phone string) (*domain.Admin, error)

	// FindAdminByID retrieves an admin by ID.
	FindAdminByID(ctx context.Context, adminID int64) (*domain.Admin, error)

	// SaveAdmin inserts an admin unless the phone is already registered.
	// It reports whether a row was created.
	SaveAdmin(ctx context.Context, admin domain.Admin) (bool, error)
}
