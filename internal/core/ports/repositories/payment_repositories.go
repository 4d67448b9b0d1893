package repositories

import (
	"context"

	"github.com/vnpayroll/attendance_backend/internal/core/domain"
)

// PaymentRepository defines persistence operations for payments history.
type PaymentRepository interface {
	// SavePayment records a payout.
	SavePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)

	// ListPaymentsByEmployee returns payouts newest first.
	ListPaymentsByEmployee(ctx context.Context, employeeID int64) ([]domain.Payment, error)
}
