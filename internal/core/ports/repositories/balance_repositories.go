package repositories

import (
	"context"
	"time"
)

// BalanceRepository recomputes cached employee balances.
type BalanceRepository interface {
	// RecomputeAll sets every employee's balance to the sum of salaryinday
	// over their accrual window ending at today, in one transaction.
	// Employees without attendance in the window keep their balance.
	// It returns the number of employees updated.
	RecomputeAll(ctx context.Context, today time.Time) (int64, error)
}
