package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of the payments_history table.
type Payment struct {
	PaymentID   int64           `db:"id"`
	EmployeeID  int64           `db:"employee_id"`
	PaymentDate time.Time       `db:"payment_date"`
	Amount      decimal.Decimal `db:"amount"`
	Note        *string         `db:"note"`
	CreatedAt   time.Time       `db:"created_at"`
}

// Advance is a row of the advance_amount_alert table.
type Advance struct {
	AdvanceID  int64           `db:"id"`
	EmployeeID int64           `db:"employee_id"`
	Date       time.Time       `db:"date"`
	Amount     decimal.Decimal `db:"amount"`
	Status     string          `db:"status"`
	Reason     *string         `db:"reason"`
	CreatedAt  time.Time       `db:"created_at"`
	DecidedAt  *time.Time      `db:"decided_at"`
}
