package repositories

import (
	"context"
	"time"

	"github.com/vnpayroll/attendance_backend/internal/core/domain"
)

// AdvanceRepository defines persistence operations for salary advance requests.
type AdvanceRepository interface {
	SaveAdvance(ctx context.Context, advance domain.AdvanceRequest) (*domain.AdvanceRequest, error)
	FindAdvanceByID(ctx context.Context, advanceID int64) (*domain.AdvanceRequest, error)

	// ListAdvancesByAdmin lists requests of an admin's employees, optionally filtered by status.
	ListAdvancesByAdmin(ctx context.Context, adminID int64, status *domain.AdvanceStatus) ([]domain.AdvanceRequest, error)

	UpdateAdvanceStatus(ctx context.Context, advanceID int64, status domain.AdvanceStatus, decidedAt time.Time) (*domain.AdvanceRequest, error)
}
